package domain

import (
	"errors"
	"fmt"
)

// Erros da fonte de dados de vendas
var (
	ErrDataFileNotFound  = errors.New("data file not found")
	ErrMissingColumn     = errors.New("missing required column")
	ErrInvalidValue      = errors.New("invalid numeric value")
	ErrUnsupportedFormat = errors.New("unsupported data file format")
)

// DataError adiciona contexto (arquivo, coluna, linha) a um erro de leitura
type DataError struct {
	Err    error
	Path   string
	Column string
	Line   int
	Value  string
}

func (e *DataError) Error() string {
	msg := e.Err.Error()
	if e.Column != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Column)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (linha %d, valor %q)", msg, e.Line, e.Value)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Path)
	}
	return msg
}

func (e *DataError) Unwrap() error {
	return e.Err
}
