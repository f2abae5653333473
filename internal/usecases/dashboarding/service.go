package dashboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/infrastructure/repository"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/config"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/domain"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/apiErrors"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/log"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/metrics"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/utils"
)

const missingFileNotice = "No se encontró el archivo en la ruta: %s. Por favor, verifica la ubicación del archivo."

type DashboardService interface {
	BuildDashboard(ctx context.Context, branch string) (*domain.Dashboard, error)
	ListBranches(ctx context.Context) ([]string, error)
	ProductTrend(ctx context.Context, branch, product string) (*domain.TrendSeries, error)
}

type Service struct {
	salesRepository repository.SalesRepository
	cfg             *config.Config
	now             func() time.Time
}

func NewService(salesRepository repository.SalesRepository, cfg *config.Config) DashboardService {
	return &Service{
		salesRepository: salesRepository,
		cfg:             cfg,
		now:             time.Now,
	}
}

// BuildDashboard executa o pipeline completo: carga, filtro por sucursal e métricas por produto
func (s *Service) BuildDashboard(ctx context.Context, branch string) (*domain.Dashboard, error) {
	branch = NormalizeBranch(branch)
	logger := log.ForContext(ctx).WithField("branch", branch)

	renderID, err := utils.GenerateID()
	if err != nil {
		return nil, NewDashboardError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	logger = logger.WithField("render_id", renderID)

	dashboard := &domain.Dashboard{
		RenderID:    renderID,
		Title:       domain.DashboardTitle(branch),
		Branch:      branch,
		Branches:    []string{domain.AllBranches},
		Student:     s.studentInfo(),
		Products:    make([]*domain.ProductDashboard, 0),
		GeneratedAt: s.now(),
	}

	records, err := s.loadRecords(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrDataFileNotFound) {
			dashboard.Notice = fmt.Sprintf(missingFileNotice, s.missingPath(err))
			logger.Warn("dashboard: arquivo de dados não encontrado, exibindo apenas o aviso")
			// sem tabela a sucursal não pode ser validada; o rótulo fica fixo
			metrics.IncrementRender(domain.AllBranches)
			return dashboard, nil
		}
		return nil, err
	}

	dashboard.Branches = Branches(records)

	filtered, err := FilterByBranch(records, branch)
	if err != nil {
		logger.WithError(err).Warn("dashboard: sucursal desconhecida")
		return nil, err
	}

	for _, group := range GroupByProduct(filtered) {
		dashboard.Products = append(dashboard.Products, &domain.ProductDashboard{
			Product: group.Product,
			Metrics: domain.BuildSnapshot(group.Product, group.Records),
			Trend:   domain.BuildTrend(group.Records),
		})
	}

	metrics.IncrementRender(branch)
	logger.WithFields(log.Fields{
		"records":  len(filtered),
		"products": len(dashboard.Products),
	}).Info("dashboard: painel calculado")

	return dashboard, nil
}

// ListBranches devolve as opções do seletor de sucursal
func (s *Service) ListBranches(ctx context.Context) ([]string, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrDataFileNotFound) {
			return []string{domain.AllBranches}, nil
		}
		return nil, err
	}

	return Branches(records), nil
}

// ProductTrend devolve a série mensal de um produto dentro da sucursal escolhida
func (s *Service) ProductTrend(ctx context.Context, branch, product string) (*domain.TrendSeries, error) {
	branch = NormalizeBranch(branch)

	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := FilterByBranch(records, branch)
	if err != nil {
		return nil, err
	}

	for _, group := range GroupByProduct(filtered) {
		if group.Product == product {
			return domain.BuildTrend(group.Records), nil
		}
	}

	return nil, NewDashboardError(ErrProductNotFound, apiErrors.ErrProductNotFound, product)
}

// loadRecords lê a tabela completa e classifica falhas da fonte de dados
func (s *Service) loadRecords(ctx context.Context) ([]*domain.Record, error) {
	start := time.Now()
	defer metrics.ObserveLoad(start)

	records, err := s.salesRepository.ListRecords(ctx)
	if err != nil {
		metrics.IncrementLoadError(kindForLoadError(err))
		log.ForContext(ctx).WithError(err).WithField("source", s.salesRepository.Source()).
			Error("dashboard: falha ao carregar as vendas")

		return nil, &DashboardError{Err: err, Code: codeForLoadError(err)}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"source":   s.salesRepository.Source(),
		"records":  len(records),
		"duration": time.Since(start).String(),
	}).Debug("dashboard: vendas carregadas")

	return records, nil
}

func (s *Service) missingPath(err error) string {
	var dataErr *domain.DataError
	if errors.As(err, &dataErr) && dataErr.Path != "" {
		return dataErr.Path
	}
	return s.salesRepository.Source()
}

func (s *Service) studentInfo() domain.StudentInfo {
	if s.cfg == nil {
		return domain.StudentInfo{}
	}
	return domain.StudentInfo{
		ID:         s.cfg.Dashboard.StudentID,
		Name:       s.cfg.Dashboard.StudentName,
		Commission: s.cfg.Dashboard.StudentCommission,
	}
}

// NormalizeBranch trata seleção vazia como todas as sucursais
func NormalizeBranch(branch string) string {
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return domain.AllBranches
	}
	return branch
}
