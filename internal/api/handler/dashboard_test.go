package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/infrastructure/repository/mocks"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/api/handler/router"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/config"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/domain"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/exporter"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/usecases/dashboarding"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func salesFixture() []*domain.Record {
	return []*domain.Record{
		domain.NewRecord("Norte", "Widget", 2024, 1, 10, 100, 60),
		domain.NewRecord("Sur", "Gadget", 2024, 1, 1000, 1234.5, 0),
		domain.NewRecord("Norte", "Widget", 2024, 2, 20, 220, 110),
	}
}

func newTestRouter(t *testing.T, records []*domain.Record, err error) http.Handler {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)
	repo.EXPECT().Source().Return("ruta/a/tu/carpeta/datos_ventas.csv").AnyTimes()
	repo.EXPECT().ListRecords(gomock.Any()).Return(records, err).AnyTimes()

	cfg := &config.Config{Dashboard: config.Dashboard{StudentID: "59.099", StudentName: "Moyano Berrondo Tahiel Lisandro", StudentCommission: "C5"}}
	service := dashboarding.NewService(repo, cfg)

	return router.New(
		router.WithRoutes(Healthcheck(repo.Source())...),
		router.WithRoutes(Dashboard(service)...),
	)
}

func doGet(handler http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestDashboardPage(t *testing.T) {
	rec := doGet(newTestRouter(t, salesFixture(), nil), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "Datos de Todas las Sucursales")
	assert.Contains(t, body, "Moyano Berrondo Tahiel Lisandro")
	assert.Contains(t, body, `<option value="Norte">Norte</option>`)
	assert.Contains(t, body, "$11.00")
	assert.Contains(t, body, "50.00%")
	assert.Contains(t, body, "25.00%")
	assert.Contains(t, body, "100.00%")
	assert.Contains(t, body, "1,000")
	assert.Contains(t, body, "/v1/products/chart?format=png&amp;producto=Widget&amp;sucursal=Todas")
	assert.Contains(t, body, "Sin períodos suficientes")
}

func TestDashboardPage_Branch(t *testing.T) {
	rec := doGet(newTestRouter(t, salesFixture(), nil), "/?sucursal=Sur")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Datos de Sur")
	assert.Contains(t, body, `<option value="Sur" selected>Sur</option>`)
	assert.Contains(t, body, "Gadget")
	assert.NotContains(t, body, "<h2>Widget</h2>")
}

func TestDashboardPage_MissingFile(t *testing.T) {
	missing := &domain.DataError{Err: domain.ErrDataFileNotFound, Path: "ruta/a/tu/carpeta/datos_ventas.csv"}
	rec := doGet(newTestRouter(t, nil, missing), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "No se encontró el archivo en la ruta: ruta/a/tu/carpeta/datos_ventas.csv. Por favor, verifica la ubicación del archivo.")
	assert.Contains(t, body, "Legajo:")
	assert.NotContains(t, body, "Precio Promedio")
	assert.NotContains(t, body, "Seleccionar Sucursal")
}

func TestGetDashboard(t *testing.T) {
	handler := newTestRouter(t, salesFixture(), nil)

	rec := doGet(handler, "/v1/dashboard?sucursal=Norte")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var dashboard domain.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
	assert.Equal(t, "Norte", dashboard.Branch)
	assert.NotEmpty(t, dashboard.RenderID)
	require.Len(t, dashboard.Products, 1)
	assert.InDelta(t, 10.0, dashboard.Products[0].Metrics.AveragePrice.Variation, 1e-9)

	rec = doGet(handler, "/v1/dashboard?sucursal=Oeste")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_001")
}

func TestGetDashboard_LoadError(t *testing.T) {
	invalid := &domain.DataError{Err: domain.ErrInvalidValue, Column: domain.ColumnUnits, Line: 4, Value: "dez"}
	rec := doGet(newTestRouter(t, nil, invalid), "/v1/dashboard")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "DATA_003")
}

func TestListBranches(t *testing.T) {
	rec := doGet(newTestRouter(t, salesFixture(), nil), "/v1/branches")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Todas", "Norte", "Sur"}, body["branches"])
}

func TestGetProductChart(t *testing.T) {
	handler := newTestRouter(t, salesFixture(), nil)

	tests := []struct {
		name        string
		target      string
		wantStatus  int
		wantType    string
		wantContain string
	}{
		{
			name:       "png",
			target:     "/v1/products/chart?producto=Widget",
			wantStatus: http.StatusOK,
			wantType:   "image/png",
		},
		{
			name:        "svg",
			target:      "/v1/products/chart?producto=Widget&format=svg&sucursal=Norte",
			wantStatus:  http.StatusOK,
			wantType:    "image/svg+xml",
			wantContain: "<svg",
		},
		{
			name:        "um único período",
			target:      "/v1/products/chart?producto=Gadget",
			wantStatus:  http.StatusUnprocessableEntity,
			wantContain: "DATA_005",
		},
		{
			name:        "produto inexistente",
			target:      "/v1/products/chart?producto=Gizmo",
			wantStatus:  http.StatusNotFound,
			wantContain: "DATA_004",
		},
		{
			name:        "produto ausente",
			target:      "/v1/products/chart",
			wantStatus:  http.StatusBadRequest,
			wantContain: "VAL_002",
		},
		{
			name:        "formato inválido",
			target:      "/v1/products/chart?producto=Widget&format=gif",
			wantStatus:  http.StatusBadRequest,
			wantContain: "VAL_003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(handler, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, rec.Header().Get("Content-Type"))
			}
			if tt.wantContain != "" {
				assert.Contains(t, rec.Body.String(), tt.wantContain)
			}
		})
	}
}

func TestGetProductChart_NameWithSlash(t *testing.T) {
	records := []*domain.Record{
		domain.NewRecord("Norte", "Cable 1/2", 2024, 1, 10, 100, 60),
		domain.NewRecord("Norte", "Cable 1/2", 2024, 2, 12, 130, 70),
	}
	handler := newTestRouter(t, records, nil)

	page := doGet(handler, "/")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "producto=Cable")

	rec := doGet(handler, chartURL(domain.AllBranches, "Cable 1/2"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestExportDashboard(t *testing.T) {
	rec := doGet(newTestRouter(t, salesFixture(), nil), "/v1/dashboard/export?sucursal=Norte")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, exporter.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "resumen_ventas_")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))
}

func TestHealthcheck(t *testing.T) {
	rec := doGet(newTestRouter(t, nil, nil), "/healthcheck")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "$1,234.56", FormatMoney(1234.56))
	assert.Equal(t, "12.34%", FormatPercent(12.34))
	assert.Equal(t, "-5.00%", FormatPercent(-5))
	assert.Equal(t, "1,234", FormatUnits(1234))
	assert.Equal(t, "up", deltaClass(1))
	assert.Equal(t, "down", deltaClass(-1))
	assert.Equal(t, "flat", deltaClass(0))
	assert.Equal(t, "/v1/products/chart?format=png&producto=Caf%C3%A9+Molido&sucursal=Todas", chartURL("Todas", "Café Molido"))
}
