package reporting

import (
	"time"

	"github.com/vfg2006/kpi-bot/internal/domain"
)

// Reporter define a interface de consulta de KPI usada pelo bot
type Reporter interface {
	// AvailableYears retorna os anos com dados para o telefone, em
	// ordem decrescente
	AvailableYears(phone string) ([]int, error)

	// AvailableMonths retorna as datas de início de mês com dados para
	// o telefone no ano, ordenadas da mais recente para a mais antiga
	AvailableMonths(phone string, year int) ([]time.Time, error)

	// MonthlyReport retorna o relatório de KPI do telefone no mês, ou
	// nil quando não há linha para a chave
	MonthlyReport(phone string, month time.Time) (*domain.KPIReport, error)
}
