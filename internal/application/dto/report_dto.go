package dto

import "github.com/shopspring/decimal"

// SummaryReportDTO resumen financiero del día y del mes en curso.
type SummaryReportDTO struct {
	TodaySales    decimal.Decimal `json:"today_sales"`
	TodayProfit   decimal.Decimal `json:"today_profit"`
	MonthlySales  decimal.Decimal `json:"monthly_sales"`
	MonthlyProfit decimal.Decimal `json:"monthly_profit"`
	Receivable    decimal.Decimal `json:"receivable"` // total por cobrar a clientes
	Payable       decimal.Decimal `json:"payable"`    // total por pagar a proveedores
	TopProducts   []TopProductDTO `json:"top_products"`
	DateLabel     string          `json:"date_label"`
}

// TopProductDTO producto destacado del período.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   decimal.Decimal `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
	Profit      decimal.Decimal `json:"profit"`
}

// LowStockDTO producto bajo el umbral de alerta.
type LowStockDTO struct {
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	Threshold     decimal.Decimal `json:"threshold"`
	VendorName    string          `json:"vendor_name,omitempty"`
}

// InsightResponse respuesta del asistente de insights.
type InsightResponse struct {
	Insight string `json:"insight"`
}
