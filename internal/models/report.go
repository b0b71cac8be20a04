package models

// TodaySales aggregates today's closed orders for the owner dashboard.
type TodaySales struct {
	TotalOrders int     `json:"total_orders"`
	TotalSales  float64 `json:"total_sales"`
	TotalProfit float64 `json:"total_profit"`
}

// TopProduct is a product ranked by units sold today.
type TopProduct struct {
	Name      string `json:"name"`
	TotalSold int    `json:"total_sold"`
}

type DashboardData struct {
	TodaySales        TodaySales         `json:"todaySales"`
	LowStockMaterials []LowStockMaterial `json:"lowStockMaterials"`
	TopProducts       []TopProduct       `json:"topProducts"`
}
