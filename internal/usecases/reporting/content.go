package reporting

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

const (
	Tagline = "Grow your bakery business with insights that are as sweet as your treats! 🍰"
	Footer  = "🚀 Built by Mrudula • Powered by Go & ML"
)

// Paletas nomeadas do painel
var (
	pastelPalette = []string{
		"#a1c9f4", "#ffb482", "#8de5a1", "#ff9f9b", "#d0bbff",
		"#debb9b", "#fab0e4", "#cfcfcf", "#fffea3", "#b9f2f0",
	}
	mutedPalette = []string{
		"#4878d0", "#ee854a", "#6acc64", "#d65f5f", "#956cb4",
		"#8c613c", "#dc7ec0", "#797979", "#d5bb67", "#82c6e2",
	}
	bluesPalette = []string{
		"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
		"#4292c6", "#2171b5", "#08519c", "#08306b",
	}
	revenueColor  = "#fc9ab4"
	loyaltyColors = []string{"#66c2a5", "#fc8d62"}
)

// coolwarm: azul, cinza claro e vermelho nas posições 0, 0.5 e 1
var coolwarmAnchors = []color.RGBA{
	{R: 59, G: 76, B: 192, A: 255},
	{R: 221, G: 221, B: 221, A: 255},
	{R: 180, G: 4, B: 38, A: 255},
}

// coolwarmPalette amostra n cores do mapa coolwarm, sem as extremidades
func coolwarmPalette(n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		t := float64(i+1) / float64(n+1)
		out[i] = hexColor(interpolate(coolwarmAnchors, t))
	}
	return out
}

func interpolate(anchors []color.RGBA, t float64) color.RGBA {
	segments := float64(len(anchors) - 1)
	pos := t * segments
	i := int(math.Min(math.Floor(pos), segments-1))
	frac := pos - float64(i)

	a, b := anchors[i], anchors[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*frac))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Suggestions são as recomendações fixas exibidas no final do painel
var Suggestions = []domain.Suggestion{
	{Icon: "🎯", Title: "Boost Tue, Wed & Sun", Detail: "Run offers or exclusive launches on peak days."},
	{Icon: "🍫", Title: "Promote Chocolate Cake", Detail: "Bundle it with slower items."},
	{Icon: "📦", Title: "Stock by Monday", Detail: "Ensure inventory is full before peak days."},
	{Icon: "📱", Title: "Instagram Timing", Detail: "Post before 11 AM with polls or giveaways."},
	{Icon: "🔁", Title: "Loyalty Drive", Detail: "Collect WhatsApp numbers or emails."},
	{Icon: "🎁", Title: "Repeat Reward", Detail: "Offer 20% off on ₹300+ repeat orders."},
	{Icon: "📊", Title: "Plan for June 23 & 25", Detail: "Forecast shows high demand."},
	{Icon: "⚠️", Title: "Counter June 24 Drop", Detail: "Use flash or “today-only” offers."},
	{Icon: "📋", Title: "Start Feedback", Detail: "Add QR-based feedback at the counter."},
}
