package handler

import (
	"bytes"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/bakery-dashboard/internal/presentation"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/bakery-dashboard/pkg/apiErrors"
	"github.com/vfg2006/bakery-dashboard/pkg/log"
)

// Formatos aceitos em GET /v1/report
const (
	FormatJSON = "json"
	FormatHTML = "html"
)

// Renderers agrupa as saídas disponíveis para o relatório
type Renderers struct {
	HTML   presentation.Renderer
	JSON   presentation.Renderer
	Charts presentation.ChartRenderer
}

// GetDashboard gera o relatório e responde a página HTML completa
func GetDashboard(generator reporting.Generator, renderers Renderers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderReport(w, r, generator, renderers.HTML)
	}
}

// GetReport responde o relatório em JSON, ou em HTML com ?format=html
func GetReport(generator reporting.Generator, renderers Renderers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := r.URL.Query().Get("format")

		switch format {
		case "", FormatJSON:
			renderReport(w, r, generator, renderers.JSON)
		case FormatHTML:
			renderReport(w, r, generator, renderers.HTML)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato inválido. Valores aceitos: json, html", map[string]string{"format": format})
		}
	}
}

// GetSectionChart gera o relatório e responde o PNG do gráfico da seção informada
func GetSectionChart(generator reporting.Generator, renderers Renderers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger := log.ForContext(r.Context()).WithField("section", sectionID)

		report, err := generator.Generate(r.Context())
		if err != nil {
			writeReportError(w, err)
			return
		}

		section, ok := report.Section(sectionID)
		if !ok || section.Chart == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Seção sem gráfico ou inexistente", map[string]string{"section": sectionID})
			return
		}

		var buf bytes.Buffer
		if err := renderers.Charts.Render(&buf, section.Chart); err != nil {
			logger.WithError(err).Error("Erro ao desenhar o gráfico da seção")
			apiErrors.WriteError(w, apiErrors.ErrRendering, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Warn("Erro ao enviar o gráfico")
		}
	}
}

// renderReport renderiza em memória para que uma falha ainda possa virar resposta de erro
func renderReport(w http.ResponseWriter, r *http.Request, generator reporting.Generator, renderer presentation.Renderer) {
	logger := log.ForContext(r.Context())

	report, err := generator.Generate(r.Context())
	if err != nil {
		writeReportError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, report); err != nil {
		logger.WithError(err).Error("Erro ao renderizar o relatório")
		apiErrors.WriteError(w, apiErrors.ErrRendering, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.WithError(err).Warn("Erro ao enviar o relatório")
	}
}
