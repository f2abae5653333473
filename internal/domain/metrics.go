package domain

// Totals representa os valores acumulados de um produto em todas as linhas
type Totals struct {
	Units   float64 `json:"units"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
}

// Metric guarda o valor atual, o do período anterior e a variação percentual
type Metric struct {
	Current   float64 `json:"current"`
	Previous  float64 `json:"previous"`
	Variation float64 `json:"variation"`
}

// NewMetric cria uma métrica calculando a variação entre os dois períodos
func NewMetric(current, previous float64) Metric {
	return Metric{
		Current:   current,
		Previous:  previous,
		Variation: Variation(current, previous),
	}
}

// MetricSnapshot reúne as métricas de um produto para uma renderização
type MetricSnapshot struct {
	Product      string `json:"product"`
	AveragePrice Metric `json:"average_price"`
	Margin       Metric `json:"margin"`
	UnitsSold    Metric `json:"units_sold"`
	Totals       Totals `json:"totals"`
	DatedRows    int    `json:"dated_rows"`
}

// AveragePrice é receita / unidades, zero quando não há unidades vendidas
func AveragePrice(revenue, units float64) float64 {
	if units <= 0 {
		return 0
	}
	return revenue / units
}

// MarginPercent é (receita - custo) / receita * 100, zero quando não há receita
func MarginPercent(revenue, cost float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return (revenue - cost) / revenue * 100
}

// Variation é a variação percentual do valor atual sobre o anterior
func Variation(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// BuildSnapshot calcula as métricas de um produto.
//
// Com pelo menos duas linhas datadas a atual é a última linha em ordem de data e a anterior a
// penúltima, cada uma com seus próprios valores. Caso contrário a atual são os totais do produto
// e a anterior é igual à atual.
func BuildSnapshot(product string, records []*Record) *MetricSnapshot {
	totals := SumRecords(records)
	dated := SortedDatedRecords(records)

	current := ProductPeriod{Units: totals.Units, Revenue: totals.Revenue, Cost: totals.Cost}
	previous := current

	if len(dated) > 1 {
		current = dated[len(dated)-1].Period()
		previous = dated[len(dated)-2].Period()
	}

	return &MetricSnapshot{
		Product:      product,
		AveragePrice: NewMetric(current.Price(), previous.Price()),
		Margin:       NewMetric(current.Margin(), previous.Margin()),
		UnitsSold:    NewMetric(current.Units, previous.Units),
		Totals:       totals,
		DatedRows:    len(dated),
	}
}
