package domain

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// TrendPoint é um ponto da série mensal de um produto
type TrendPoint struct {
	Date    time.Time `json:"date"`
	Units   float64   `json:"units"`
	Revenue float64   `json:"revenue"`
	Fitted  float64   `json:"fitted"`
}

// TrendSeries é a série de receita mensal com a reta de tendência ajustada.
// A reta é revenue = Intercept + Slope * i, com i o índice sequencial do período.
type TrendSeries struct {
	Points    []TrendPoint `json:"points"`
	Slope     float64      `json:"slope"`
	Intercept float64      `json:"intercept"`
	HasLine   bool         `json:"has_line"`
}

// BuildTrend monta a série a partir dos registros de um produto
func BuildTrend(records []*Record) *TrendSeries {
	return NewTrendSeries(GroupByPeriod(records))
}

// NewTrendSeries ajusta uma reta de mínimos quadrados (grau 1) à receita dos períodos
func NewTrendSeries(periods []ProductPeriod) *TrendSeries {
	series := &TrendSeries{Points: make([]TrendPoint, 0, len(periods))}
	if len(periods) == 0 {
		return series
	}

	xs := make([]float64, len(periods))
	ys := make([]float64, len(periods))
	for i, p := range periods {
		xs[i] = float64(i)
		ys[i] = p.Revenue
	}

	if len(periods) == 1 {
		series.Intercept = ys[0]
	} else {
		series.Intercept, series.Slope = stat.LinearRegression(xs, ys, nil, false)
	}
	series.HasLine = true

	for i, p := range periods {
		series.Points = append(series.Points, TrendPoint{
			Date:    p.Date,
			Units:   p.Units,
			Revenue: p.Revenue,
			Fitted:  series.Intercept + series.Slope*xs[i],
		})
	}

	return series
}

// Dates retorna as datas dos pontos
func (t *TrendSeries) Dates() []time.Time {
	dates := make([]time.Time, len(t.Points))
	for i, p := range t.Points {
		dates[i] = p.Date
	}
	return dates
}

// Revenues retorna a receita de cada ponto
func (t *TrendSeries) Revenues() []float64 {
	values := make([]float64, len(t.Points))
	for i, p := range t.Points {
		values[i] = p.Revenue
	}
	return values
}

// FittedValues retorna os valores da reta de tendência em cada ponto
func (t *TrendSeries) FittedValues() []float64 {
	values := make([]float64, len(t.Points))
	for i, p := range t.Points {
		values[i] = p.Fitted
	}
	return values
}
