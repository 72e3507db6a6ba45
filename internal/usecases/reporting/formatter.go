package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/kpi-bot/internal/domain"
)

// monthNames é a tabela fixa dos doze meses do calendário, indexada por
// time.Month (1 a 12)
var monthNames = map[time.Month]string{
	time.January:   "Январь",
	time.February:  "Февраль",
	time.March:     "Март",
	time.April:     "Апрель",
	time.May:       "Май",
	time.June:      "Июнь",
	time.July:      "Июль",
	time.August:    "Август",
	time.September: "Сентябрь",
	time.October:   "Октябрь",
	time.November:  "Ноябрь",
	time.December:  "Декабрь",
}

// MonthName retorna o nome do mês para exibição
func MonthName(month time.Month) string {
	return monthNames[month]
}

// FormatReport monta o texto do relatório de KPI enviado ao usuário.
// Os nomes das métricas são os identificadores literais das colunas da
// view de relatório: são contrato externo e não são traduzidos.
func FormatReport(report *domain.KPIReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 KPI за %s %d\n\n", MonthName(report.Month.Month()), report.Month.Year())
	fmt.Fprintf(&b, "👤 %s\n", report.EmployeeName)
	fmt.Fprintf(&b, "📞 %s\n\n", report.Phone)

	fmt.Fprintf(&b, "📌 revenue_services: %.2f\n", report.RevenueServices)
	fmt.Fprintf(&b, "📌 revenue_goods: %.2f\n", report.RevenueGoods)
	fmt.Fprintf(&b, "📌 services_count: %d\n", report.ServicesCount)
	fmt.Fprintf(&b, "📌 clients_total: %d\n", report.ClientsTotal)
	fmt.Fprintf(&b, "📌 avg_check: %.2f\n", report.AvgCheck)
	fmt.Fprintf(&b, "📌 repeat_clients: %d\n", report.RepeatClients)
	fmt.Fprintf(&b, "📌 new_clients: %d\n", report.NewClients)
	fmt.Fprintf(&b, "📌 return_rate: %.2f%%\n", report.ReturnRate)
	fmt.Fprintf(&b, "📌 salary: %.2f", report.Salary)

	return b.String()
}
