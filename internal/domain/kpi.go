package domain

import (
	"time"
)

// KPIReport representa uma linha da view de relatório bot.kpi_monthly_v,
// chaveada por telefone do funcionário e data de início do mês.
// As colunas numéricas podem ser NULL na view; o repositório converte
// NULL para zero ao escanear.
type KPIReport struct {
	EmployeeName    string    `json:"employee_name"`
	Phone           string    `json:"phone"`
	Month           time.Time `json:"month"`
	RevenueServices float64   `json:"revenue_services"`
	RevenueGoods    float64   `json:"revenue_goods"`
	ServicesCount   int64     `json:"services_count"`
	ClientsTotal    int64     `json:"clients_total"`
	AvgCheck        float64   `json:"avg_check"`
	RepeatClients   int64     `json:"repeat_clients"`
	NewClients      int64     `json:"new_clients"`
	ReturnRate      float64   `json:"return_rate"`
	Salary          float64   `json:"salary"`
}
