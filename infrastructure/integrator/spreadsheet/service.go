// Package spreadsheet lê a planilha de vendas (xlsx) e converte as linhas em registros de domínio
package spreadsheet

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

// SpreadsheetReader lê todas as vendas de uma planilha
type SpreadsheetReader interface {
	ReadSales(ctx context.Context) ([]domain.SalesRecord, error)
}

var _ SpreadsheetReader = (*ExcelReader)(nil)

type ExcelReader struct {
	path  string
	sheet string
}

// NewExcelReader cria um leitor para o arquivo informado. Planilha vazia usa a primeira do arquivo.
func NewExcelReader(path string, sheet string) *ExcelReader {
	return &ExcelReader{
		path:  path,
		sheet: sheet,
	}
}

func (r *ExcelReader) ReadSales(ctx context.Context) ([]domain.SalesRecord, error) {
	if _, err := os.Stat(r.path); err != nil {
		return nil, errors.Wrapf(domain.ErrSourceUnavailable, "spreadsheet: arquivo %s: %v", r.path, err)
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrSourceUnavailable, "spreadsheet: erro ao abrir %s: %v", r.path, err)
	}
	defer f.Close()

	sheet, err := r.resolveSheet(f)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "spreadsheet: erro ao ler linhas da planilha %s", sheet)
	}

	logrus.WithFields(logrus.Fields{
		"path":  r.path,
		"sheet": sheet,
		"rows":  len(rows),
	}).Debug("spreadsheet: planilha lida")

	return ParseRows(ctx, rows)
}

func (r *ExcelReader) resolveSheet(f *excelize.File) (string, error) {
	if r.sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return "", errors.Wrapf(domain.ErrSheetNotFound, "spreadsheet: nenhuma planilha em %s", r.path)
		}
		return sheets[0], nil
	}

	index, err := f.GetSheetIndex(r.sheet)
	if err != nil || index == -1 {
		return "", domain.NewLoadError(domain.ErrSheetNotFound, 0, r.sheet, "")
	}

	return r.sheet, nil
}
