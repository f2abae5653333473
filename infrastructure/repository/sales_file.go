package repository

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/domain"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/log"
)

type salesFileRepository struct {
	path string
}

// NewSalesFileRepository lê as vendas de um arquivo .csv ou .xlsx
func NewSalesFileRepository(path string) SalesRepository {
	return &salesFileRepository{path: path}
}

func (r *salesFileRepository) Source() string {
	return r.path
}

// ListRecords relê o arquivo inteiro a cada chamada
func (r *salesFileRepository) ListRecords(ctx context.Context) ([]*domain.Record, error) {
	if _, err := os.Stat(r.path); err != nil {
		if os.IsNotExist(err) {
			return nil, &domain.DataError{Err: domain.ErrDataFileNotFound, Path: r.path}
		}
		return nil, errors.Wrapf(err, "erro ao acessar o arquivo %s", r.path)
	}

	var (
		rows [][]string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(r.path)); ext {
	case ".csv", ".txt", "":
		rows, err = readCSV(r.path)
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(r.path)
	default:
		return nil, &domain.DataError{Err: domain.ErrUnsupportedFormat, Value: ext, Path: r.path}
	}
	if err != nil {
		return nil, err
	}

	records, err := parseTable(rows, r.path)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"source":  r.path,
		"records": len(records),
	}).Debug("sales-file: arquivo de vendas carregado")

	return records, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o arquivo CSV")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o arquivo CSV")
	}

	return rows, nil
}

// readXLSX lê a primeira planilha da pasta de trabalho
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o arquivo XLSX")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &domain.DataError{Err: domain.ErrMissingColumn, Column: domain.ColumnBranch, Path: path}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a planilha %s", sheets[0])
	}

	return rows, nil
}
