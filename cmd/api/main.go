package main

import (
	"context"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/infrastructure/database/postgres"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/infrastructure/repository"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/api"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/config"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/usecases/dashboarding"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/log"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatalf("Erro ao carregar configuração: %v", err)
	}

	log.Configure(log.Options{
		Level: cfg.App.LogLevel,
		File:  cfg.App.LogFile,
	})

	metrics.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	salesRepo, cleanup := salesRepository(ctx, cfg)

	dashboardService := dashboarding.NewService(salesRepo, cfg)

	server, err := api.New(cfg, dashboardService, salesRepo.Source(), cleanup...)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// salesRepository escolhe a fonte da tabela de vendas conforme DATA_SOURCE
func salesRepository(ctx context.Context, cfg *config.Config) (repository.SalesRepository, []func() error) {
	if cfg.Data.Source != config.SourcePostgres {
		log.L.WithField("source", cfg.Data.FilePath()).Info("Lendo vendas do arquivo")
		return repository.NewSalesFileRepository(cfg.Data.FilePath()), nil
	}

	conn := pgconn(ctx, cfg.Database)
	log.L.WithField("source", cfg.Database.Table).Info("Lendo vendas do PostgreSQL")

	return repository.NewSalesPostgresRepository(conn, cfg.Database.Table), []func() error{conn.Close}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		log.L.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
