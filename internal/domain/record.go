// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"sort"
	"time"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/utils"
	"github.com/shopspring/decimal"
)

// AllBranches é o valor sentinela do seletor que representa todas as sucursais
const AllBranches = "Todas"

// Colunas esperadas na fonte de dados
const (
	ColumnBranch  = "Sucursal"
	ColumnProduct = "Producto"
	ColumnYear    = "Año"
	ColumnMonth   = "Mes"
	ColumnUnits   = "Unidades_vendidas"
	ColumnRevenue = "Ingreso_total"
	ColumnCost    = "Costo_total"
)

// RequiredColumns lista as colunas na ordem em que são lidas
var RequiredColumns = []string{
	ColumnBranch,
	ColumnProduct,
	ColumnYear,
	ColumnMonth,
	ColumnUnits,
	ColumnRevenue,
	ColumnCost,
}

// Record representa uma linha da tabela de vendas
type Record struct {
	Branch  string     `json:"branch"`
	Product string     `json:"product"`
	Year    int        `json:"year"`
	Month   int        `json:"month"`
	Units   float64    `json:"units"`
	Revenue float64    `json:"revenue"`
	Cost    float64    `json:"cost"`
	Date    *time.Time `json:"date,omitempty"` // nil quando ano/mês não formam uma data válida
}

// NewRecord cria um registro e calcula a data do período
func NewRecord(branch, product string, year, month int, units, revenue, cost float64) *Record {
	record := &Record{
		Branch:  branch,
		Product: product,
		Year:    year,
		Month:   month,
		Units:   units,
		Revenue: revenue,
		Cost:    cost,
	}

	if date, err := utils.ParsePeriodDate(year, month); err == nil {
		record.Date = date
	}

	return record
}

// Period devolve a linha como um período isolado; exige Date preenchida
func (r *Record) Period() ProductPeriod {
	return ProductPeriod{
		Year:    r.Year,
		Month:   r.Month,
		Date:    *r.Date,
		Units:   r.Units,
		Revenue: r.Revenue,
		Cost:    r.Cost,
	}
}

// ProductPeriod agrega as vendas de um produto em um (ano, mês)
type ProductPeriod struct {
	Year    int       `json:"year"`
	Month   int       `json:"month"`
	Date    time.Time `json:"date"`
	Units   float64   `json:"units"`
	Revenue float64   `json:"revenue"`
	Cost    float64   `json:"cost"`
}

// Price retorna o preço médio do período
func (p ProductPeriod) Price() float64 {
	return AveragePrice(p.Revenue, p.Units)
}

// Margin retorna a margem percentual do período
func (p ProductPeriod) Margin() float64 {
	return MarginPercent(p.Revenue, p.Cost)
}

type periodKey struct {
	year  int
	month int
}

// accumulator soma valores monetários sem acumular erro de ponto flutuante
type accumulator struct {
	units   decimal.Decimal
	revenue decimal.Decimal
	cost    decimal.Decimal
}

func (a *accumulator) add(r *Record) {
	a.units = a.units.Add(decimal.NewFromFloat(r.Units))
	a.revenue = a.revenue.Add(decimal.NewFromFloat(r.Revenue))
	a.cost = a.cost.Add(decimal.NewFromFloat(r.Cost))
}

// SumRecords soma unidades, receita e custo de todos os registros
func SumRecords(records []*Record) Totals {
	var acc accumulator
	for _, r := range records {
		acc.add(r)
	}

	return Totals{
		Units:   acc.units.InexactFloat64(),
		Revenue: acc.revenue.InexactFloat64(),
		Cost:    acc.cost.InexactFloat64(),
	}
}

// SortedDatedRecords descarta as linhas sem data e ordena as demais por data.
// A ordenação é estável: linhas do mesmo mês mantêm a ordem da tabela.
func SortedDatedRecords(records []*Record) []*Record {
	dated := make([]*Record, 0, len(records))
	for _, r := range records {
		if r.Date != nil {
			dated = append(dated, r)
		}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].Date.Before(*dated[j].Date)
	})

	return dated
}

// GroupByPeriod agrupa os registros por (ano, mês), descartando os que não têm data,
// e devolve os períodos em ordem crescente de data
func GroupByPeriod(records []*Record) []ProductPeriod {
	groups := make(map[periodKey]*accumulator)
	dates := make(map[periodKey]time.Time)
	keys := make([]periodKey, 0)

	for _, r := range records {
		if r.Date == nil {
			continue
		}

		key := periodKey{year: r.Year, month: r.Month}
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{}
			groups[key] = acc
			dates[key] = *r.Date
			keys = append(keys, key)
		}
		acc.add(r)
	}

	periods := make([]ProductPeriod, 0, len(keys))
	for _, key := range keys {
		acc := groups[key]
		periods = append(periods, ProductPeriod{
			Year:    key.year,
			Month:   key.month,
			Date:    dates[key],
			Units:   acc.units.InexactFloat64(),
			Revenue: acc.revenue.InexactFloat64(),
			Cost:    acc.cost.InexactFloat64(),
		})
	}

	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].Date.Before(periods[j].Date)
	})

	return periods
}
