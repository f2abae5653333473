package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/config"
)

type Connection struct {
	*sql.DB
}

// NewConnection abre e testa a conexão com o PostgreSQL
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
