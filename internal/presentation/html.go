package presentation

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"

	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

// Renderer escreve o relatório completo em um formato de saída
type Renderer interface {
	Render(w io.Writer, report *domain.Report) error
	ContentType() string
}

const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
    body {
        background-color: #ffffff;
        font-family: "Source Sans Pro", sans-serif;
        max-width: 960px;
        margin: 0 auto;
        padding: 20px;
    }

    .section {
        background-color: #f0f4ff;
        padding: 25px;
        border-radius: 15px;
        margin: 30px 0;
        box-shadow: 0 2px 6px rgba(0,0,0,0.05);
        color: #111111;
    }

    .section h1, .section h2, .section h3, .section h4, .section h5,
    .section p, .section li, .section ul {
        color: #222222;
    }

    .section h2 {
        color: #4a148c;
    }

    .section li::marker {
        color: #f06292;
    }

    .section img {
        max-width: 100%;
    }

    .kpis {
        display: flex;
        flex-wrap: wrap;
        gap: 12px;
        padding: 0;
        list-style: none;
    }

    .kpis li {
        background: #ffffff;
        border-radius: 10px;
        padding: 8px 14px;
    }

    .note {
        font-size: 0.9em;
        color: #555555;
    }

    footer {
        color: #888888;
        font-size: 0.85em;
    }
</style>
</head>
<body>
{{range .Sections}}
<div class="section" id="{{.ID}}">
    {{if eq .Kind "header"}}<h1>{{.Heading}}</h1>{{else}}<h2>{{.Heading}}</h2>{{end}}
    {{with .Body}}<p>{{.}}</p>{{end}}
    {{with .Text}}<pre>{{.}}</pre>{{end}}
    {{with .Image}}<img src="{{.}}" alt="{{$.Title}}">{{end}}
    {{if eq .Kind "header"}}{{with .Notes}}<ul class="kpis">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{else}}{{range .Notes}}<p class="note">{{.}}</p>{{end}}{{end}}
    {{with .Suggestions}}<ul>{{range .}}<li>{{.Icon}} <strong>{{.Title}}</strong> – {{.Detail}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
<footer>{{.Footer}}</footer>
</body>
</html>
`

type htmlSection struct {
	domain.Section
	Image template.URL
}

type htmlPage struct {
	Title    string
	Sections []htmlSection
	Footer   string
}

// HTMLRenderer gera a página do painel com os gráficos embutidos como data URL
type HTMLRenderer struct {
	charts ChartRenderer
	tmpl   *template.Template
}

func NewHTMLRenderer(charts ChartRenderer) *HTMLRenderer {
	return &HTMLRenderer{
		charts: charts,
		tmpl:   template.Must(template.New("dashboard").Parse(dashboardTemplate)),
	}
}

func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *HTMLRenderer) Render(w io.Writer, report *domain.Report) error {
	page := htmlPage{
		Title:    report.Title,
		Sections: make([]htmlSection, 0, len(report.Sections)),
		Footer:   report.Footer,
	}

	for _, section := range report.Sections {
		hs := htmlSection{Section: section}
		if section.Chart != nil {
			var buf bytes.Buffer
			if err := r.charts.Render(&buf, section.Chart); err != nil {
				return fmt.Errorf("erro ao desenhar gráfico da seção %s: %w", section.ID, err)
			}
			hs.Image = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()))
		}
		page.Sections = append(page.Sections, hs)
	}

	// Renderiza em memória para não entregar página parcial em caso de erro
	var out bytes.Buffer
	if err := r.tmpl.Execute(&out, page); err != nil {
		return fmt.Errorf("erro ao executar template do painel: %w", err)
	}

	_, err := out.WriteTo(w)
	return err
}
