package domain

import "time"

// StudentInfo é o texto de identificação exibido na barra lateral
type StudentInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Commission string `json:"commission"`
}

// ProductDashboard é o bloco de métricas e gráfico de um produto
type ProductDashboard struct {
	Product string          `json:"product"`
	Metrics *MetricSnapshot `json:"metrics"`
	Trend   *TrendSeries    `json:"trend"`
}

// Dashboard é o modelo completo de uma renderização
type Dashboard struct {
	RenderID    string              `json:"render_id"`
	Title       string              `json:"title"`
	Branch      string              `json:"branch"`
	Branches    []string            `json:"branches"`
	Notice      string              `json:"notice,omitempty"`
	Student     StudentInfo         `json:"student"`
	Products    []*ProductDashboard `json:"products"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// HasData indica se a renderização tem dados para exibir
func (d *Dashboard) HasData() bool {
	return d.Notice == "" && len(d.Products) > 0
}

// DashboardTitle monta o título da página de acordo com a sucursal escolhida
func DashboardTitle(branch string) string {
	if branch == "" || branch == AllBranches {
		return "Datos de Todas las Sucursales"
	}
	return "Datos de " + branch
}
