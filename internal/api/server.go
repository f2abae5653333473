package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/api/handler"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/api/handler/router"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/config"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/usecases/dashboarding"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/log"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	cleanup    []func() error
}

// New monta o roteador e a cadeia de middlewares do painel
func New(
	config *config.Config,
	dashboardService dashboarding.DashboardService,
	dataSource string,
	cleanup ...func() error,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(dataSource)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Dashboard(dashboardService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		cleanup: cleanup,
	}

	return srv, nil
}

// Handler expõe a cadeia HTTP completa
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		log.L.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown para o servidor HTTP e fecha os recursos registrados (conexão com o banco)
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	for _, fn := range s.cleanup {
		if err := fn(); err != nil {
			log.L.WithError(err).Warn("Erro ao liberar recurso no desligamento")
		}
	}

	return nil
}
