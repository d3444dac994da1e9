package presentation

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	ErrEmptyChart       = errors.New("chart has no data")
	ErrUnknownChartKind = errors.New("unknown chart kind")
)

const (
	chartWidth  = 6.4 * vg.Inch
	chartHeight = 4.8 * vg.Inch
)

// ChartRenderer desenha um ChartSpec como imagem
type ChartRenderer interface {
	Render(w io.Writer, spec *domain.ChartSpec) error
}

// PNGChartRenderer desenha os gráficos em PNG com gonum/plot
type PNGChartRenderer struct {
	Width  vg.Length
	Height vg.Length
}

func NewPNGChartRenderer() *PNGChartRenderer {
	return &PNGChartRenderer{Width: chartWidth, Height: chartHeight}
}

func (r *PNGChartRenderer) Render(w io.Writer, spec *domain.ChartSpec) error {
	if spec == nil {
		return ErrEmptyChart
	}

	var (
		p   *plot.Plot
		err error
	)
	switch spec.Kind {
	case domain.ChartKindBar:
		p, err = barPlot(spec)
	case domain.ChartKindPie:
		p, err = piePlot(spec)
	case domain.ChartKindHeatmap:
		p, err = heatmapPlot(spec)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownChartKind, spec.Kind)
	}
	if err != nil {
		return err
	}

	height := r.Height
	if spec.Kind == domain.ChartKindPie {
		height = r.Width
	}

	writer, err := p.WriterTo(r.Width, height, "png")
	if err != nil {
		return fmt.Errorf("erro ao preparar imagem do gráfico %q: %w", spec.Title, err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("erro ao escrever imagem do gráfico %q: %w", spec.Title, err)
	}
	return nil
}

// barPlot desenha uma barra por rótulo, cada uma com a próxima cor da paleta
func barPlot(spec *domain.ChartSpec) (*plot.Plot, error) {
	if len(spec.Values) == 0 || len(spec.Values) != len(spec.Labels) {
		return nil, fmt.Errorf("%w: %q", ErrEmptyChart, spec.Title)
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.Y.Label.Text = spec.YLabel
	p.Y.Min = 0

	width := vg.Points(math.Max(8, math.Min(40, 320/float64(len(spec.Values)))))
	for i, v := range spec.Values {
		bar, err := plotter.NewBarChart(plotter.Values{v}, width)
		if err != nil {
			return nil, fmt.Errorf("erro ao criar barra %q: %w", spec.Labels[i], err)
		}
		bar.XMin = float64(i)
		bar.Color = paletteColor(spec.Colors, i)
		bar.LineStyle.Width = vg.Length(0)
		p.Add(bar)
	}

	p.NominalX(spec.Labels...)
	if spec.TickRotation != 0 {
		p.X.Tick.Label.Rotation = spec.TickRotation * math.Pi / 180
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	return p, nil
}

// piePlot desenha a pizza em coordenadas de dados (raio 1, centro na origem)
func piePlot(spec *domain.ChartSpec) (*plot.Plot, error) {
	total := 0.0
	for _, v := range spec.Values {
		total += v
	}
	if total <= 0 || len(spec.Values) != len(spec.Labels) {
		return nil, fmt.Errorf("%w: %q", ErrEmptyChart, spec.Title)
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.HideAxes()

	wedges := &pieWedges{values: spec.Values, total: total}
	for i := range spec.Values {
		wedges.colors = append(wedges.colors, paletteColor(spec.Colors, i))
	}
	p.Add(wedges)

	points, labels := pieLabels(spec, total)
	text, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar rótulos da pizza: %w", err)
	}
	for i := range text.TextStyle {
		text.TextStyle[i].XAlign = draw.XCenter
		text.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(text)

	return p, nil
}

// pieLabels posiciona o nome de cada fatia por fora e, se pedido, o percentual por dentro.
// Fatias vazias também recebem o percentual (0.0%).
func pieLabels(spec *domain.ChartSpec, total float64) ([]plotter.XY, []string) {
	var (
		points []plotter.XY
		labels []string
	)
	angle := 0.0
	for i, v := range spec.Values {
		share := v / total
		mid := angle + share*math.Pi
		angle += share * 2 * math.Pi

		points = append(points, plotter.XY{X: 1.1 * math.Cos(mid), Y: 1.1 * math.Sin(mid)})
		labels = append(labels, spec.Labels[i])

		if spec.ShowPercent {
			points = append(points, plotter.XY{X: 0.6 * math.Cos(mid), Y: 0.6 * math.Sin(mid)})
			labels = append(labels, strconv.FormatFloat(share*100, 'f', 1, 64)+"%")
		}
	}
	return points, labels
}

type pieWedges struct {
	values []float64
	colors []color.Color
	total  float64
}

// Plot implementa plot.Plotter
func (w *pieWedges) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	angle := 0.0
	for i, v := range w.values {
		sweep := v / w.total * 2 * math.Pi
		if sweep <= 0 {
			continue
		}

		steps := max(2, int(math.Ceil(sweep/(math.Pi/90))))
		poly := []vg.Point{{X: trX(0), Y: trY(0)}}
		for s := 0; s <= steps; s++ {
			a := angle + sweep*float64(s)/float64(steps)
			poly = append(poly, vg.Point{X: trX(math.Cos(a)), Y: trY(math.Sin(a))})
		}
		c.FillPolygon(w.colors[i], poly)

		angle += sweep
	}
}

// DataRange implementa plot.DataRanger, com folga para os rótulos externos
func (w *pieWedges) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1.35, 1.35, -1.35, 1.35
}

// heatmapPlot desenha a matriz com a linha 0 no topo e o valor anotado em cada célula
func heatmapPlot(spec *domain.ChartSpec) (*plot.Plot, error) {
	if len(spec.Matrix) == 0 || len(spec.Matrix[0]) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyChart, spec.Title)
	}

	grid := matrixGrid(spec.Matrix)
	pal := hexPalette(spec.Colors)
	if len(pal) == 0 {
		pal = hexPalette([]string{"#ffffff", "#000000"})
	}

	heat := plotter.NewHeatMap(grid, pal)
	lo, hi := grid.span()
	heat.Min, heat.Max = lo, hi
	if hi <= lo {
		heat.Max = lo + 1
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.Add(heat)

	if spec.AnnotateCells {
		rows, cols := len(spec.Matrix), len(spec.Matrix[0])
		var (
			points []plotter.XY
			labels []string
			dark   []bool
		)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := spec.Matrix[r][c]
				points = append(points, plotter.XY{X: float64(c), Y: float64(rows - 1 - r)})
				labels = append(labels, strconv.FormatFloat(v, 'f', -1, 64))
				dark = append(dark, v > (heat.Min+heat.Max)/2)
			}
		}

		text, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
		if err != nil {
			return nil, fmt.Errorf("erro ao anotar a matriz: %w", err)
		}
		for i := range text.TextStyle {
			text.TextStyle[i].XAlign = draw.XCenter
			text.TextStyle[i].YAlign = draw.YCenter
			if dark[i] {
				text.TextStyle[i].Color = color.White
			}
		}
		p.Add(text)
	}

	if len(spec.XTickLabels) > 0 {
		p.NominalX(spec.XTickLabels...)
	}
	if len(spec.YTickLabels) > 0 {
		reversed := make([]string, len(spec.YTickLabels))
		for i, l := range spec.YTickLabels {
			reversed[len(reversed)-1-i] = l
		}
		p.NominalY(reversed...)
	}

	return p, nil
}

// matrixGrid adapta uma matriz [linha][coluna] para plotter.GridXYZ.
// A linha 0 da matriz fica no topo do gráfico.
type matrixGrid [][]float64

func (m matrixGrid) Dims() (c, r int) {
	return len(m[0]), len(m)
}

func (m matrixGrid) Z(c, r int) float64 {
	return m[len(m)-1-r][c]
}

func (m matrixGrid) X(c int) float64 {
	return float64(c)
}

func (m matrixGrid) Y(r int) float64 {
	return float64(r)
}

func (m matrixGrid) span() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range m {
		for _, v := range row {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// hexPalette implementa palette.Palette a partir de cores #rrggbb
type hexPalette []string

func (h hexPalette) Colors() []color.Color {
	out := make([]color.Color, len(h))
	for i, s := range h {
		out[i] = parseHex(s)
	}
	return out
}

func paletteColor(colors []string, i int) color.Color {
	if len(colors) == 0 {
		return color.RGBA{R: 76, G: 114, B: 176, A: 255}
	}
	return parseHex(colors[i%len(colors)])
}

// parseHex converte #rrggbb. Valores inválidos viram cinza.
func parseHex(s string) color.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.Gray{Y: 128}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.Gray{Y: 128}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
