package classifying

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-dashboard/internal/config"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

// FeatureNames são as colunas usadas como entrada da floresta, nesta ordem
var FeatureNames = []string{"Total_Spent", "Order_Frequency", "Unique_Items"}

// LeakageWarning é anexado ao resultado: o rótulo é Order_Frequency > 1 e
// Order_Frequency também é atributo, então as métricas ficam otimistas
const LeakageWarning = "The Repeat/New label is derived from Order_Frequency, which is also a model feature; " +
	"these scores measure how well the forest recovers that threshold, not true predictive power."

// Features monta a matriz de atributos e os rótulos a partir dos agregados por cliente
func Features(rollups []domain.CustomerRollup) ([][]float64, []int) {
	x := make([][]float64, len(rollups))
	y := make([]int, len(rollups))
	for i, r := range rollups {
		x[i] = []float64{
			r.TotalSpent.InexactFloat64(),
			float64(r.OrderFrequency),
			float64(r.UniqueItems),
		}
		if r.IsRepeat() {
			y[i] = domain.LabelRepeat
		} else {
			y[i] = domain.LabelNew
		}
	}
	return x, y
}

// Classify separa treino e teste, treina a floresta e avalia na partição de teste
func Classify(ctx context.Context, rollups []domain.CustomerRollup, cfg config.Classifier) (*domain.ClassificationResult, error) {
	start := time.Now()

	x, y := Features(rollups)
	trainIdx, testIdx, err := TrainTestSplit(len(x), cfg.TestSize, cfg.SplitSeed)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	xTrain, yTrain := subset(x, y, trainIdx)
	xTest, yTest := subset(x, y, testIdx)

	forest := NewRandomForest(cfg.Trees, cfg.ForestSeed)
	if err := forest.Fit(xTrain, yTrain); err != nil {
		return nil, err
	}

	yPred, err := forest.Predict(xTest)
	if err != nil {
		return nil, err
	}

	report, err := Report(yTest, yPred)
	if err != nil {
		return nil, err
	}

	confusion, err := ConfusionMatrix(yTest, yPred)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"train_size":  len(trainIdx),
		"test_size":   len(testIdx),
		"trees":       forest.nTrees,
		"accuracy":    report.Accuracy,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Classificador de clientes treinado")

	return &domain.ClassificationResult{
		TrainSize:      len(trainIdx),
		TestSize:       len(testIdx),
		Trees:          forest.nTrees,
		Features:       append([]string(nil), FeatureNames...),
		Report:         report,
		Confusion:      confusion,
		LeakageWarning: LeakageWarning,
	}, nil
}

func subset(x [][]float64, y []int, idx []int) ([][]float64, []int) {
	xs := make([][]float64, len(idx))
	ys := make([]int, len(idx))
	for i, j := range idx {
		xs[i] = x[j]
		ys[i] = y[j]
	}
	return xs, ys
}
