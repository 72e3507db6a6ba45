package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/kpi-bot/infrastructure/database/postgres"
	"github.com/vfg2006/kpi-bot/internal/domain"
)

const (
	// kpiReportsView é a view de relatório mensal, somente leitura,
	// mantida fora deste sistema. Os nomes das colunas são contrato
	// externo e aparecem literalmente no relatório formatado.
	kpiReportsView = "bot.kpi_monthly_v r"
)

type KPIReportRepository interface {
	// ListYears retorna os anos distintos com dados para o telefone,
	// em ordem decrescente. Lista vazia significa "sem dados", não erro.
	ListYears(phone string) ([]int, error)
	// ListMonths retorna as datas de início de mês com dados para o
	// telefone dentro do ano, na ordem ascendente da view.
	ListMonths(phone string, year int) ([]time.Time, error)
	// GetByPhoneAndMonth retorna a linha de KPI do telefone no mês, ou
	// nil quando não existe linha para a chave.
	GetByPhoneAndMonth(phone string, month time.Time) (*domain.KPIReport, error)
}

type kpiReportRepository struct {
	conn *postgres.Connection
}

func NewKPIReportRepository(conn *postgres.Connection) KPIReportRepository {
	return &kpiReportRepository{
		conn: conn,
	}
}

func (r *kpiReportRepository) ListYears(phone string) ([]int, error) {
	query, args, err := squirrel.
		Select("DISTINCT EXTRACT(YEAR FROM r.month)::int AS year").
		From(kpiReportsView).
		Where(squirrel.Eq{"r.phone": phone}).
		OrderBy("year DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	years := make([]int, 0)
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("erro ao escanear ano: %w", err)
		}
		years = append(years, year)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return years, nil
}

func (r *kpiReportRepository) ListMonths(phone string, year int) ([]time.Time, error) {
	query, args, err := squirrel.
		Select("r.month").
		From(kpiReportsView).
		Where(squirrel.Eq{"r.phone": phone}).
		Where(squirrel.Expr("EXTRACT(YEAR FROM r.month) = ?", year)).
		OrderBy("r.month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	months := make([]time.Time, 0)
	for rows.Next() {
		var month time.Time
		if err := rows.Scan(&month); err != nil {
			return nil, fmt.Errorf("erro ao escanear mês: %w", err)
		}
		months = append(months, month)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return months, nil
}

func (r *kpiReportRepository) GetByPhoneAndMonth(phone string, month time.Time) (*domain.KPIReport, error) {
	// Normaliza para o primeiro dia do mês, a chave da view
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	query, args, err := squirrel.
		Select(
			"r.employee_name",
			"r.phone",
			"r.month",
			"r.revenue_services",
			"r.revenue_goods",
			"r.services_count",
			"r.clients_total",
			"r.avg_check",
			"r.repeat_clients",
			"r.new_clients",
			"r.return_rate",
			"r.salary",
		).
		From(kpiReportsView).
		Where(squirrel.Eq{"r.phone": phone, "r.month": monthStart}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	report, err := r.scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório de KPI: %w", err)
	}

	return report, nil
}

// scanReport converte uma linha da view no tipo de domínio. Métricas
// NULL viram zero: o valor zero dos tipos sql.Null* cobre isso.
func (r *kpiReportRepository) scanReport(row *sql.Row) (*domain.KPIReport, error) {
	var (
		report          domain.KPIReport
		revenueServices sql.NullFloat64
		revenueGoods    sql.NullFloat64
		servicesCount   sql.NullInt64
		clientsTotal    sql.NullInt64
		avgCheck        sql.NullFloat64
		repeatClients   sql.NullInt64
		newClients      sql.NullInt64
		returnRate      sql.NullFloat64
		salary          sql.NullFloat64
	)

	err := row.Scan(
		&report.EmployeeName,
		&report.Phone,
		&report.Month,
		&revenueServices,
		&revenueGoods,
		&servicesCount,
		&clientsTotal,
		&avgCheck,
		&repeatClients,
		&newClients,
		&returnRate,
		&salary,
	)
	if err != nil {
		return nil, err
	}

	report.RevenueServices = revenueServices.Float64
	report.RevenueGoods = revenueGoods.Float64
	report.ServicesCount = servicesCount.Int64
	report.ClientsTotal = clientsTotal.Int64
	report.AvgCheck = avgCheck.Float64
	report.RepeatClients = repeatClients.Int64
	report.NewClients = newClients.Int64
	report.ReturnRate = returnRate.Float64
	report.Salary = salary.Float64

	return &report, nil
}
