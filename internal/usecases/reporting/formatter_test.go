package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kpi-bot/internal/domain"
)

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Январь", MonthName(time.January))
	assert.Equal(t, "Март", MonthName(time.March))
	assert.Equal(t, "Декабрь", MonthName(time.December))
}

func TestFormatReport(t *testing.T) {
	report := &domain.KPIReport{
		EmployeeName:    "Иванова Анна",
		Phone:           "79331234567",
		Month:           time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
		RevenueServices: 150000,
		RevenueGoods:    42000.5,
		ServicesCount:   120,
		ClientsTotal:    95,
		AvgCheck:        1600.75,
		RepeatClients:   40,
		NewClients:      55,
		ReturnRate:      42.1,
		Salary:          78000,
	}

	text := FormatReport(report)

	assert.Contains(t, text, "KPI за Март 2023")
	assert.Contains(t, text, "Иванова Анна")
	assert.Contains(t, text, "79331234567")

	// Os identificadores das colunas da view aparecem literalmente
	assert.Contains(t, text, "📌 revenue_services: 150000.00")
	assert.Contains(t, text, "📌 revenue_goods: 42000.50")
	assert.Contains(t, text, "📌 services_count: 120")
	assert.Contains(t, text, "📌 clients_total: 95")
	assert.Contains(t, text, "📌 avg_check: 1600.75")
	assert.Contains(t, text, "📌 repeat_clients: 40")
	assert.Contains(t, text, "📌 new_clients: 55")
	assert.Contains(t, text, "📌 return_rate: 42.10%")
	assert.Contains(t, text, "📌 salary: 78000.00")
}

func TestFormatReport_NullMetricsRenderAsZero(t *testing.T) {
	// Métricas NULL chegam ao domínio como zero e são exibidas como
	// zero, nunca em branco
	report := &domain.KPIReport{
		EmployeeName: "Иванова Анна",
		Phone:        "79331234567",
		Month:        time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	text := FormatReport(report)

	assert.Contains(t, text, "📌 revenue_services: 0.00")
	assert.Contains(t, text, "📌 services_count: 0")
	assert.Contains(t, text, "📌 return_rate: 0.00%")
	assert.Contains(t, text, "📌 salary: 0.00")
	assert.NotContains(t, text, "null")
}
