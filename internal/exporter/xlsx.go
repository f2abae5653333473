// Package exporter gera a planilha de resumo do painel
package exporter

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/domain"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/utils"
)

const (
	SummarySheet = "Resumen"
	InfoSheet    = "Info"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// SummaryHeader são as colunas da planilha de resumo
var SummaryHeader = []interface{}{
	"Producto",
	"Precio Promedio",
	"Precio Anterior",
	"Variación Precio (%)",
	"Margen Promedio (%)",
	"Margen Anterior (%)",
	"Variación Margen (%)",
	"Unidades Vendidas",
	"Unidades Anteriores",
	"Variación Unidades (%)",
	"Ingreso Total",
	"Costo Total",
}

// Filename monta o nome do arquivo exportado
func Filename(d *domain.Dashboard) string {
	return fmt.Sprintf("resumen_ventas_%s.xlsx", d.RenderID)
}

// WriteXLSX escreve uma linha por produto e uma aba com os dados da renderização
func WriteXLSX(w io.Writer, d *domain.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return errors.Wrap(err, "erro ao renomear a planilha")
	}

	rows := [][]interface{}{SummaryHeader}
	for _, p := range d.Products {
		rows = append(rows, summaryRow(p.Metrics))
	}
	if err := setRows(f, SummarySheet, rows); err != nil {
		return err
	}

	if _, err := f.NewSheet(InfoSheet); err != nil {
		return errors.Wrap(err, "erro ao criar a aba de informações")
	}
	info := [][]interface{}{
		{"render_id", d.RenderID},
		{"Título", d.Title},
		{"Sucursal", d.Branch},
		{"Generado", d.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Legajo", d.Student.ID},
		{"Nombre", d.Student.Name},
		{"Comisión", d.Student.Commission},
	}
	if d.Notice != "" {
		info = append(info, []interface{}{"Aviso", d.Notice})
	}
	if err := setRows(f, InfoSheet, info); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "erro ao gravar a planilha")
	}

	return nil
}

func summaryRow(m *domain.MetricSnapshot) []interface{} {
	return []interface{}{
		m.Product,
		utils.RoundWithTwoDecimalPlace(m.AveragePrice.Current),
		utils.RoundWithTwoDecimalPlace(m.AveragePrice.Previous),
		utils.RoundWithTwoDecimalPlace(m.AveragePrice.Variation),
		utils.RoundWithTwoDecimalPlace(m.Margin.Current),
		utils.RoundWithTwoDecimalPlace(m.Margin.Previous),
		utils.RoundWithTwoDecimalPlace(m.Margin.Variation),
		utils.RoundWithTwoDecimalPlace(m.UnitsSold.Current),
		utils.RoundWithTwoDecimalPlace(m.UnitsSold.Previous),
		utils.RoundWithTwoDecimalPlace(m.UnitsSold.Variation),
		utils.RoundWithTwoDecimalPlace(m.Totals.Revenue),
		utils.RoundWithTwoDecimalPlace(m.Totals.Cost),
	}
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "erro ao calcular a célula")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "erro ao escrever a linha %d de %s", i+1, sheet)
		}
	}
	return nil
}
