package domain

// Rótulos binários do classificador de clientes
const (
	LabelNew    = 0
	LabelRepeat = 1
)

// ClassLabelNames nomeia os rótulos na ordem do índice
var ClassLabelNames = []string{"New", "Repeat"}

// ClassMetrics contém precisão, revocação, F1 e suporte de um rótulo (ou de uma média)
type ClassMetrics struct {
	Label     string  `json:"label"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1_score"`
	Support   int     `json:"support"`
}

// ClassificationReport resume a avaliação do classificador na partição de teste
type ClassificationReport struct {
	Classes     []ClassMetrics `json:"classes"`
	Accuracy    float64        `json:"accuracy"`
	MacroAvg    ClassMetrics   `json:"macro_avg"`
	WeightedAvg ClassMetrics   `json:"weighted_avg"`
	Support     int            `json:"support"`
	Text        string         `json:"text"`
}

// ConfusionMatrix é a matriz 2x2 indexada por [real][previsto] sobre [New, Repeat]
type ConfusionMatrix [2][2]int

// ClassificationResult é o resultado completo da etapa de classificação
type ClassificationResult struct {
	TrainSize      int                  `json:"train_size"`
	TestSize       int                  `json:"test_size"`
	Trees          int                  `json:"trees"`
	Features       []string             `json:"features"`
	Report         ClassificationReport `json:"report"`
	Confusion      ConfusionMatrix      `json:"confusion_matrix"`
	LeakageWarning string               `json:"leakage_warning"`
}
