package reporting

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/kpi-bot/infrastructure/repository"
	"github.com/vfg2006/kpi-bot/internal/domain"
)

// Service implementa Reporter sobre o repositório da view de relatório.
// Cada chamada é uma leitura pura: sem cache, sem retry.
type Service struct {
	kpiRepo repository.KPIReportRepository
}

func NewService(kpiRepo repository.KPIReportRepository) Reporter {
	return &Service{
		kpiRepo: kpiRepo,
	}
}

func (s *Service) AvailableYears(phone string) ([]int, error) {
	years, err := s.kpiRepo.ListYears(phone)
	if err != nil {
		return nil, errors.Wrap(err, "consultando anos disponíveis")
	}

	return years, nil
}

func (s *Service) AvailableMonths(phone string, year int) ([]time.Time, error) {
	months, err := s.kpiRepo.ListMonths(phone, year)
	if err != nil {
		return nil, errors.Wrap(err, "consultando meses disponíveis")
	}

	// A view devolve os meses em ordem ascendente; o menu apresenta do
	// mais recente para o mais antigo
	sort.Slice(months, func(i, j int) bool {
		return months[i].After(months[j])
	})

	return months, nil
}

func (s *Service) MonthlyReport(phone string, month time.Time) (*domain.KPIReport, error) {
	report, err := s.kpiRepo.GetByPhoneAndMonth(phone, month)
	if err != nil {
		return nil, errors.Wrap(err, "consultando relatório de KPI")
	}

	return report, nil
}
