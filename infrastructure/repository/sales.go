// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=sales.go -destination=mocks/mock_sales.go -package=mocks

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/domain"
)

// SalesRepository carrega a tabela de vendas completa a cada chamada
type SalesRepository interface {
	ListRecords(ctx context.Context) ([]*domain.Record, error)
	// Source descreve a origem dos dados (caminho do arquivo ou tabela)
	Source() string
}

const utf8BOM = "\uFEFF"

// columnIndex resolve a posição de cada coluna obrigatória no cabeçalho
func columnIndex(header []string, path string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if _, exists := positions[name]; !exists {
			positions[name] = i
		}
	}

	index := make(map[string]int, len(domain.RequiredColumns))
	for _, column := range domain.RequiredColumns {
		pos, ok := positions[column]
		if !ok {
			return nil, &domain.DataError{Err: domain.ErrMissingColumn, Column: column, Path: path}
		}
		index[column] = pos
	}

	return index, nil
}

// parseTable converte as linhas de uma planilha (cabeçalho na primeira linha) em registros
func parseTable(rows [][]string, path string) ([]*domain.Record, error) {
	if len(rows) == 0 {
		return nil, &domain.DataError{Err: domain.ErrMissingColumn, Column: domain.ColumnBranch, Path: path}
	}

	index, err := columnIndex(rows[0], path)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		if isBlankRow(row) {
			continue
		}

		cell := func(column string) string {
			pos := index[column]
			if pos >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[pos])
		}

		measures := make(map[string]float64, 3)
		for _, column := range []string{domain.ColumnUnits, domain.ColumnRevenue, domain.ColumnCost} {
			value, err := parseMeasure(cell(column))
			if err != nil {
				return nil, &domain.DataError{
					Err:    domain.ErrInvalidValue,
					Column: column,
					Line:   line,
					Value:  cell(column),
					Path:   path,
				}
			}
			measures[column] = value
		}

		records = append(records, domain.NewRecord(
			cell(domain.ColumnBranch),
			cell(domain.ColumnProduct),
			parsePeriodPart(cell(domain.ColumnYear)),
			parsePeriodPart(cell(domain.ColumnMonth)),
			measures[domain.ColumnUnits],
			measures[domain.ColumnRevenue],
			measures[domain.ColumnCost],
		))
	}

	return records, nil
}

// parseMeasure interpreta uma célula numérica; célula vazia vale zero
func parseMeasure(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, strconv.ErrSyntax
	}

	return value, nil
}

// parsePeriodPart interpreta ano ou mês; valores inválidos viram zero e a linha fica sem data
func parsePeriodPart(raw string) int {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value != math.Trunc(value) || math.IsInf(value, 0) {
		return 0
	}
	return int(value)
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
