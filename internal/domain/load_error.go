package domain

import (
	"errors"
	"fmt"
)

// Erros de carga da tabela de vendas
var (
	ErrSourceUnavailable = errors.New("sales source unavailable")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrMissingColumn     = errors.New("missing required column")
	ErrUnparseableDate   = errors.New("unparseable date")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// LoadError é um erro de carga com o contexto da linha e coluna envolvidas
type LoadError struct {
	Err    error  // Erro base
	Row    int    // Linha da planilha (1 = cabeçalho), 0 quando não se aplica
	Column string // Coluna envolvida
	Value  string // Valor original da célula
}

// Error implementa a interface error
func (e *LoadError) Error() string {
	switch {
	case e.Row > 0 && e.Value != "":
		return fmt.Sprintf("%s: coluna %s, linha %d: %q", e.Err.Error(), e.Column, e.Row, e.Value)
	case e.Row > 0:
		return fmt.Sprintf("%s: coluna %s, linha %d", e.Err.Error(), e.Column, e.Row)
	case e.Column != "":
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Column)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError cria um novo LoadError
func NewLoadError(err error, row int, column string, value string) *LoadError {
	return &LoadError{
		Err:    err,
		Row:    row,
		Column: column,
		Value:  value,
	}
}
