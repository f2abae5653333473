// Package chart desenha a evolução mensal da receita de um produto com a reta de tendência
package chart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/domain"
)

const (
	Title       = "Evolución de Ventas Mensual"
	XAxisName   = "Fecha"
	YAxisName   = "Ingreso Total"
	RevenueName = "Ingreso Total"
	TrendName   = "Tendencia"
)

// Formatos suportados
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

var (
	ErrNotEnoughPoints   = errors.New("at least two dated periods are required to draw the chart")
	ErrUnsupportedFormat = errors.New("unsupported chart format")
)

// ParseFormat normaliza o formato pedido; vazio vale PNG
func ParseFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// ContentType devolve o tipo MIME do formato
func ContentType(format string) string {
	if format == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Render escreve o gráfico da série no formato pedido
func Render(w io.Writer, series *domain.TrendSeries, format string) error {
	if series == nil || len(series.Points) < 2 {
		return ErrNotEnoughPoints
	}

	format, err := ParseFormat(format)
	if err != nil {
		return err
	}

	renderer := gochart.PNG
	if format == FormatSVG {
		renderer = gochart.SVG
	}

	graph := newChart(series)
	if err := graph.Render(renderer, w); err != nil {
		return fmt.Errorf("erro ao desenhar o gráfico: %w", err)
	}

	return nil
}

func newChart(series *domain.TrendSeries) *gochart.Chart {
	dates := series.Dates()
	revenues := series.Revenues()

	graph := &gochart.Chart{
		Title:  Title,
		Width:  800,
		Height: 400,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		XAxis: gochart.XAxis{
			Name:           XAxisName,
			ValueFormatter: gochart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: gochart.YAxis{
			Name:  YAxisName,
			Range: yRange(revenues, series.FittedValues()),
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    RevenueName,
				XValues: dates,
				YValues: revenues,
				Style: gochart.Style{
					StrokeColor: drawing.ColorFromHex("1f77b4"),
					StrokeWidth: 2,
					DotWidth:    3,
					DotColor:    drawing.ColorFromHex("1f77b4"),
				},
			},
		},
	}

	if series.HasLine {
		graph.Series = append(graph.Series, gochart.TimeSeries{
			Name:    TrendName,
			XValues: dates,
			YValues: series.FittedValues(),
			Style: gochart.Style{
				StrokeColor:     drawing.ColorRed,
				StrokeWidth:     2,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		})
	}

	graph.Elements = []gochart.Renderable{gochart.Legend(graph)}

	return graph
}

// yRange fixa o eixo Y quando todos os valores são iguais, caso em que o go-chart recusa desenhar
func yRange(values ...[]float64) gochart.Range {
	first := true
	var min, max float64
	for _, serie := range values {
		for _, v := range serie {
			if first || v < min {
				min = v
			}
			if first || v > max {
				max = v
			}
			first = false
		}
	}

	if first || min != max {
		return nil
	}

	return &gochart.ContinuousRange{Min: min - 1, Max: max + 1}
}
