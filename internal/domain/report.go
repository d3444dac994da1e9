package domain

import "time"

// SectionKind identifica o tipo de conteúdo de uma seção do relatório
type SectionKind string

const (
	SectionKindHeader      SectionKind = "header"
	SectionKindChart       SectionKind = "chart"
	SectionKindText        SectionKind = "text"
	SectionKindSuggestions SectionKind = "suggestions"
)

// ChartKind identifica o tipo de gráfico
type ChartKind string

const (
	ChartKindBar     ChartKind = "bar"
	ChartKindPie     ChartKind = "pie"
	ChartKindHeatmap ChartKind = "heatmap"
)

// Identificadores das seções do painel, na ordem de exibição
const (
	SectionTitle           = "title"
	SectionTopItems        = "top-items"
	SectionMonthlyRevenue  = "monthly-revenue"
	SectionPeakDays        = "peak-days"
	SectionPaymentModes    = "payment-modes"
	SectionCustomerLoyalty = "customer-loyalty"
	SectionClassification  = "classification"
	SectionSuggestions     = "suggestions"
)

// ChartSpec descreve um gráfico de forma independente da biblioteca de desenho.
// Colors usa hexadecimal (#rrggbb) e é reaproveitado em ciclo; TickRotation é em graus.
type ChartSpec struct {
	Kind          ChartKind   `json:"kind"`
	Title         string      `json:"title"`
	YLabel        string      `json:"y_label,omitempty"`
	Labels        []string    `json:"labels,omitempty"`
	Values        []float64   `json:"values,omitempty"`
	Colors        []string    `json:"colors,omitempty"`
	TickRotation  float64     `json:"tick_rotation,omitempty"`
	Matrix        [][]float64 `json:"matrix,omitempty"`
	XTickLabels   []string    `json:"x_tick_labels,omitempty"`
	YTickLabels   []string    `json:"y_tick_labels,omitempty"`
	ShowPercent   bool        `json:"show_percent,omitempty"`
	AnnotateCells bool        `json:"annotate_cells,omitempty"`
}

// Suggestion é uma recomendação estática exibida no final do painel
type Suggestion struct {
	Icon   string `json:"icon"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Section é um bloco do relatório
type Section struct {
	ID          string       `json:"id"`
	Kind        SectionKind  `json:"kind"`
	Heading     string       `json:"heading"`
	Body        string       `json:"body,omitempty"`
	Text        string       `json:"text,omitempty"` // Texto pré-formatado
	Chart       *ChartSpec   `json:"chart,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	Notes       []string     `json:"notes,omitempty"`
}

// Report é o documento completo gerado em uma execução
type Report struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	GeneratedAt    time.Time             `json:"generated_at"`
	Summary        SalesSummary          `json:"summary"`
	TopItems       []CountRow            `json:"top_items"`
	MonthlyRevenue []MonthlyRevenue      `json:"monthly_revenue"`
	PeakDays       []CountRow            `json:"peak_days"`
	PaymentModes   []CountRow            `json:"payment_modes"`
	Loyalty        LoyaltySplit          `json:"loyalty"`
	Classification *ClassificationResult `json:"classification"`
	Sections       []Section             `json:"sections"`
	Footer         string                `json:"footer"`
}

// Section retorna a seção com o ID informado
func (r *Report) Section(id string) (*Section, bool) {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i], true
		}
	}
	return nil, false
}
