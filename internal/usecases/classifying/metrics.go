package classifying

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

const (
	reportDigits     = 2
	lastLineHeading  = "weighted avg"
	reportCellWidth  = 9
	reportLabelWidth = len(lastLineHeading)
)

// Report calcula precisão, revocação, F1 e suporte por rótulo presente em
// yTrue ou yPred, além de acurácia, média macro e média ponderada.
// Divisões por zero resultam em 0.
func Report(yTrue, yPred []int) (domain.ClassificationReport, error) {
	if len(yTrue) != len(yPred) {
		return domain.ClassificationReport{}, fmt.Errorf("%w: %d != %d", ErrShapeMismatch, len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return domain.ClassificationReport{}, ErrInsufficientSamples
	}

	labels := unionLabels(yTrue, yPred)
	report := domain.ClassificationReport{Support: len(yTrue)}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	report.Accuracy = float64(correct) / float64(len(yTrue))

	var macro, weighted domain.ClassMetrics
	for _, label := range labels {
		tp, predicted, support := 0, 0, 0
		for i := range yTrue {
			if yPred[i] == label {
				predicted++
			}
			if yTrue[i] == label {
				support++
				if yPred[i] == label {
					tp++
				}
			}
		}

		m := domain.ClassMetrics{
			Label:     strconv.Itoa(label),
			Precision: safeDiv(float64(tp), float64(predicted)),
			Recall:    safeDiv(float64(tp), float64(support)),
			Support:   support,
		}
		m.F1 = safeDiv(2*m.Precision*m.Recall, m.Precision+m.Recall)
		report.Classes = append(report.Classes, m)

		macro.Precision += m.Precision
		macro.Recall += m.Recall
		macro.F1 += m.F1

		w := float64(support)
		weighted.Precision += m.Precision * w
		weighted.Recall += m.Recall * w
		weighted.F1 += m.F1 * w
	}

	n := float64(len(labels))
	macro.Label = "macro avg"
	macro.Precision /= n
	macro.Recall /= n
	macro.F1 /= n
	macro.Support = report.Support

	total := float64(report.Support)
	weighted.Label = lastLineHeading
	weighted.Precision /= total
	weighted.Recall /= total
	weighted.F1 /= total
	weighted.Support = report.Support

	report.MacroAvg = macro
	report.WeightedAvg = weighted
	report.Text = FormatReport(report)

	return report, nil
}

// FormatReport gera o bloco de texto de largura fixa do relatório de classificação
func FormatReport(r domain.ClassificationReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%*s ", reportLabelWidth, "")
	for _, h := range []string{"precision", "recall", "f1-score", "support"} {
		fmt.Fprintf(&sb, " %*s", reportCellWidth, h)
	}
	sb.WriteString("\n\n")

	for _, m := range r.Classes {
		writeMetricsRow(&sb, m)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%*s ", reportLabelWidth, "accuracy")
	fmt.Fprintf(&sb, " %*s %*s", reportCellWidth, "", reportCellWidth, "")
	fmt.Fprintf(&sb, " %*.*f", reportCellWidth, reportDigits, r.Accuracy)
	fmt.Fprintf(&sb, " %*d\n", reportCellWidth, r.Support)

	writeMetricsRow(&sb, r.MacroAvg)
	writeMetricsRow(&sb, r.WeightedAvg)

	return sb.String()
}

func writeMetricsRow(sb *strings.Builder, m domain.ClassMetrics) {
	fmt.Fprintf(sb, "%*s ", reportLabelWidth, m.Label)
	for _, v := range []float64{m.Precision, m.Recall, m.F1} {
		fmt.Fprintf(sb, " %*.*f", reportCellWidth, reportDigits, v)
	}
	fmt.Fprintf(sb, " %*d\n", reportCellWidth, m.Support)
}

// ConfusionMatrix conta os pares [real][previsto] sobre os rótulos [New, Repeat],
// sempre 2x2 mesmo quando um rótulo não aparece
func ConfusionMatrix(yTrue, yPred []int) (domain.ConfusionMatrix, error) {
	var cm domain.ConfusionMatrix
	if len(yTrue) != len(yPred) {
		return cm, fmt.Errorf("%w: %d != %d", ErrShapeMismatch, len(yTrue), len(yPred))
	}

	for i := range yTrue {
		t, p := yTrue[i], yPred[i]
		if t < 0 || t >= numClasses || p < 0 || p >= numClasses {
			return cm, fmt.Errorf("%w: real %d, previsto %d", ErrInvalidLabel, t, p)
		}
		cm[t][p]++
	}
	return cm, nil
}

func unionLabels(a, b []int) []int {
	seen := make(map[int]struct{})
	for _, v := range a {
		seen[v] = struct{}{}
	}
	for _, v := range b {
		seen[v] = struct{}{}
	}

	labels := make([]int, 0, len(seen))
	for v := range seen {
		labels = append(labels, v)
	}
	sort.Ints(labels)
	return labels
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
