package reporting

import (
	"fmt"

	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/pkg/utils"
)

func titleSection(title string, summary domain.SalesSummary) domain.Section {
	return domain.Section{
		ID:      domain.SectionTitle,
		Kind:    domain.SectionKindHeader,
		Heading: "🎂 " + title,
		Body:    Tagline,
		Notes: []string{
			fmt.Sprintf("Orders: %d", summary.Records),
			fmt.Sprintf("Customers: %d", summary.DistinctCustomers),
			fmt.Sprintf("Revenue: ₹%s", summary.TotalRevenue.StringFixed(2)),
			fmt.Sprintf("Average order: ₹%s", summary.AverageOrderValue.StringFixed(2)),
			fmt.Sprintf("Period: %s to %s", summary.FirstDate.Format("02 Jan 2006"), summary.LastDate.Format("02 Jan 2006")),
		},
	}
}

func topItemsSection(rows []domain.CountRow, limit int) domain.Section {
	labels, values := countSeries(rows)
	return domain.Section{
		ID:      domain.SectionTopItems,
		Kind:    domain.SectionKindChart,
		Heading: fmt.Sprintf("🍪 Top %d Best-Selling Items", limit),
		Chart: &domain.ChartSpec{
			Kind:         domain.ChartKindBar,
			Title:        "Top Items",
			YLabel:       "Orders",
			Labels:       labels,
			Values:       values,
			Colors:       pastelPalette,
			TickRotation: 30,
		},
	}
}

func monthlyRevenueSection(rows []domain.MonthlyRevenue) domain.Section {
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.Period
		values[i] = utils.MoneyToFloat(r.Revenue)
	}

	return domain.Section{
		ID:      domain.SectionMonthlyRevenue,
		Kind:    domain.SectionKindChart,
		Heading: "📈 Monthly Revenue Trends",
		Chart: &domain.ChartSpec{
			Kind:         domain.ChartKindBar,
			Title:        "Monthly Revenue",
			YLabel:       "₹",
			Labels:       labels,
			Values:       values,
			Colors:       []string{revenueColor},
			TickRotation: 45,
		},
	}
}

func peakDaysSection(rows []domain.CountRow) domain.Section {
	labels, values := countSeries(rows)
	return domain.Section{
		ID:      domain.SectionPeakDays,
		Kind:    domain.SectionKindChart,
		Heading: "🗓️ Peak Sale Days",
		Chart: &domain.ChartSpec{
			Kind:         domain.ChartKindBar,
			Title:        "Orders by Day",
			Labels:       labels,
			Values:       values,
			Colors:       coolwarmPalette(len(rows)),
			TickRotation: 45,
		},
	}
}

func paymentModesSection(rows []domain.CountRow) domain.Section {
	labels, values := countSeries(rows)
	return domain.Section{
		ID:      domain.SectionPaymentModes,
		Kind:    domain.SectionKindChart,
		Heading: "💳 Payment Modes",
		Chart: &domain.ChartSpec{
			Kind:   domain.ChartKindBar,
			Title:  "Payment Method Usage",
			Labels: labels,
			Values: values,
			Colors: mutedPalette,
		},
	}
}

func loyaltySection(split domain.LoyaltySplit) domain.Section {
	return domain.Section{
		ID:      domain.SectionCustomerLoyalty,
		Kind:    domain.SectionKindChart,
		Heading: "👥 Customer Loyalty",
		Chart: &domain.ChartSpec{
			Kind:        domain.ChartKindPie,
			Labels:      []string{"Repeat", "New"},
			Values:      []float64{float64(split.Repeat), float64(split.New)},
			Colors:      loyaltyColors,
			ShowPercent: true,
		},
	}
}

func classificationSection(result *domain.ClassificationResult) domain.Section {
	matrix := make([][]float64, len(result.Confusion))
	for i, row := range result.Confusion {
		matrix[i] = make([]float64, len(row))
		for j, v := range row {
			matrix[i][j] = float64(v)
		}
	}

	return domain.Section{
		ID:      domain.SectionClassification,
		Kind:    domain.SectionKindText,
		Heading: "🧠 Customer Classification (ML)",
		Body:    "🔍 Classification Report",
		Text:    result.Report.Text,
		Chart: &domain.ChartSpec{
			Kind:          domain.ChartKindHeatmap,
			Title:         "Confusion Matrix",
			Matrix:        matrix,
			XTickLabels:   domain.ClassLabelNames,
			YTickLabels:   domain.ClassLabelNames,
			Colors:        bluesPalette,
			AnnotateCells: true,
		},
		Notes: []string{
			fmt.Sprintf("Random forest with %d trees, trained on %d customers and tested on %d.",
				result.Trees, result.TrainSize, result.TestSize),
			result.LeakageWarning,
		},
	}
}

func suggestionsSection() domain.Section {
	suggestions := make([]domain.Suggestion, len(Suggestions))
	copy(suggestions, Suggestions)

	return domain.Section{
		ID:          domain.SectionSuggestions,
		Kind:        domain.SectionKindSuggestions,
		Heading:     "💡 Smart Suggestions to Grow Your Bakery",
		Suggestions: suggestions,
	}
}

func countSeries(rows []domain.CountRow) ([]string, []float64) {
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.Value
		values[i] = float64(r.Count)
	}
	return labels, values
}
