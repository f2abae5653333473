package dashboarding

import (
	"errors"
	"fmt"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/domain"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/apiErrors"
)

// Erros específicos do contexto do painel
var (
	// Erros de seleção
	ErrUnknownBranch   = errors.New("unknown branch")
	ErrProductNotFound = errors.New("product not found")

	// Erros de carga
	ErrLoadSales = errors.New("error loading sales data")

	ErrGenerateID = errors.New("error generating render ID")
)

// DashboardError é um erro com contexto adicional para o painel
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// codeForLoadError classifica um erro de leitura da fonte de dados
func codeForLoadError(err error) string {
	switch {
	case errors.Is(err, domain.ErrDataFileNotFound):
		return apiErrors.ErrDataNotFound
	case errors.Is(err, domain.ErrMissingColumn):
		return apiErrors.ErrMissingColumn
	case errors.Is(err, domain.ErrInvalidValue):
		return apiErrors.ErrInvalidValue
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return apiErrors.ErrUnsupportedFormat
	default:
		return apiErrors.ErrInternalServer
	}
}

// kindForLoadError devolve o rótulo usado nas métricas de falha de carga
func kindForLoadError(err error) string {
	switch {
	case errors.Is(err, domain.ErrDataFileNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrMissingColumn):
		return "missing_column"
	case errors.Is(err, domain.ErrInvalidValue):
		return "invalid_value"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return "unsupported_format"
	default:
		return "internal"
	}
}
