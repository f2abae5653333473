package handler

import (
	"embed"
	"html/template"
	"io"
	"net/url"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/domain"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var printer = message.NewPrinter(language.English)

var dashboardTemplate = template.Must(
	template.New("dashboard.tmpl").Funcs(template.FuncMap{
		"money":      FormatMoney,
		"percent":    FormatPercent,
		"units":      FormatUnits,
		"delta":      FormatPercent,
		"deltaClass": deltaClass,
		"chartURL":   chartURL,
	}).ParseFS(templatesFS, "templates/dashboard.tmpl"),
)

// FormatMoney formata valores monetários como $1,234.56
func FormatMoney(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// FormatPercent formata percentuais como 12.34%
func FormatPercent(v float64) string {
	return printer.Sprintf("%.2f%%", v)
}

// FormatUnits formata quantidades inteiras como 1,234
func FormatUnits(v float64) string {
	return printer.Sprintf("%.0f", v)
}

func deltaClass(v float64) string {
	switch {
	case v > 0:
		return "up"
	case v < 0:
		return "down"
	default:
		return "flat"
	}
}

func chartURL(branch, product string) string {
	query := url.Values{}
	query.Set(BranchParam, branch)
	query.Set(ProductParam, product)
	query.Set("format", "png")
	return "/v1/products/chart?" + query.Encode()
}

func renderDashboard(w io.Writer, d *domain.Dashboard) error {
	return dashboardTemplate.Execute(w, d)
}
