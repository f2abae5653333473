package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/infrastructure/database/postgres"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/domain"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/log"
)

// Colunas da tabela de vendas no banco, na mesma ordem de domain.RequiredColumns
var salesColumns = []string{
	"sucursal",
	"producto",
	"anio",
	"mes",
	"unidades_vendidas",
	"ingreso_total",
	"costo_total",
}

type salesPostgresRepository struct {
	conn  postgres.Queryer
	table string
}

// NewSalesPostgresRepository lê as vendas de uma tabela do PostgreSQL
func NewSalesPostgresRepository(conn postgres.Queryer, table string) SalesRepository {
	return &salesPostgresRepository{
		conn:  conn,
		table: table,
	}
}

func (r *salesPostgresRepository) Source() string {
	return "postgres:" + r.table
}

func (r *salesPostgresRepository) buildQuery() (string, []interface{}, error) {
	return squirrel.
		Select(salesColumns...).
		From(r.table).
		OrderBy("anio ASC", "mes ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *salesPostgresRepository) ListRecords(ctx context.Context) ([]*domain.Record, error) {
	query, args, err := r.buildQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.Record, 0)
	for rows.Next() {
		var (
			branch, product      sql.NullString
			year, month          sql.NullInt64
			units, revenue, cost sql.NullFloat64
		)

		if err := rows.Scan(&branch, &product, &year, &month, &units, &revenue, &cost); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de vendas: %w", err)
		}

		records = append(records, domain.NewRecord(
			branch.String,
			product.String,
			int(year.Int64),
			int(month.Int64),
			units.Float64,
			revenue.Float64,
			cost.Float64,
		))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"source":  r.Source(),
		"records": len(records),
	}).Debug("sales-postgres: vendas carregadas do banco")

	return records, nil
}
