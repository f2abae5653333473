package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/chart"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/exporter"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/usecases/dashboarding"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/apiErrors"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Parâmetros de consulta do painel
const (
	BranchParam  = "sucursal"
	ProductParam = "producto"
)

// DashboardPage renderiza o painel HTML
func DashboardPage(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.BuildDashboard(r.Context(), r.URL.Query().Get(BranchParam))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar o painel")
			return
		}

		var buf bytes.Buffer
		if err := renderDashboard(&buf, dashboard); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao renderizar o template")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao renderizar o painel", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}

// GetDashboard retorna o modelo do painel em JSON
func GetDashboard(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.BuildDashboard(r.Context(), r.URL.Query().Get(BranchParam))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar o painel")
			return
		}

		writeJSON(w, r, dashboard)
	}
}

// ListBranches retorna as opções do seletor de sucursal
func ListBranches(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		branches, err := service.ListBranches(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar as sucursais")
			return
		}

		writeJSON(w, r, map[string][]string{"branches": branches})
	}
}

// GetProductChart desenha o gráfico de evolução de um produto
func GetProductChart(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// o produto vai na query: nomes com "/" não cabem num segmento de rota
		product := r.URL.Query().Get(ProductParam)
		if product == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Produto é obrigatório", nil)
			return
		}

		format, err := chart.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato inválido, use png ou svg", nil)
			return
		}

		trend, err := service.ProductTrend(r.Context(), r.URL.Query().Get(BranchParam), product)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar a série do produto")
			return
		}

		var buf bytes.Buffer
		if err := chart.Render(&buf, trend, format); err != nil {
			if errors.Is(err, chart.ErrNotEnoughPoints) {
				apiErrors.WriteError(w, apiErrors.ErrNotEnoughData, "Períodos insuficientes para o gráfico", map[string]int{"points": len(trend.Points)})
				return
			}
			log.ForContext(r.Context()).WithError(err).WithField("product", product).Error("dashboard: erro ao desenhar o gráfico")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao desenhar o gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", chart.ContentType(format))
		w.Header().Set("Cache-Control", "no-store")
		_, _ = buf.WriteTo(w)
	}
}

// ExportDashboard gera a planilha de resumo do painel
func ExportDashboard(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.BuildDashboard(r.Context(), r.URL.Query().Get(BranchParam))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar o painel")
			return
		}

		var buf bytes.Buffer
		if err := exporter.WriteXLSX(&buf, dashboard); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao exportar a planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar a planilha", nil)
			return
		}

		w.Header().Set("Content-Type", exporter.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporter.Filename(dashboard)))
		_, _ = buf.WriteTo(w)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros do serviço para o corpo padronizado da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) {
		log.ForContext(r.Context()).WithError(err).Warn(message)
		apiErr := apiErrors.FromError(dashErr, dashErr.Code)
		apiErrors.WriteError(w, apiErr.Code, message, apiErr.Message)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}
