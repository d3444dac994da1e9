package presentation

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONRenderer escreve o documento do relatório (agregados e seções) como JSON
type JSONRenderer struct {
	Indent bool
}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{Indent: true}
}

func (r *JSONRenderer) ContentType() string {
	return "application/json"
}

func (r *JSONRenderer) Render(w io.Writer, report *domain.Report) error {
	encoder := json.NewEncoder(w)
	if r.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
