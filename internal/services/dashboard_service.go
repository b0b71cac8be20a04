package services

import (
	"fmt"

	"restaurant_pos/internal/models"
	"restaurant_pos/internal/repository"
)

const (
	lowStockLimit   = 5
	topProductLimit = 5
)

type DashboardService interface {
	GetDashboard() (*models.DashboardData, error)
}

type dashboardService struct {
	reportRepo      repository.ReportRepository
	rawMaterialRepo repository.RawMaterialRepository
}

func NewDashboardService(reportRepo repository.ReportRepository, rawMaterialRepo repository.RawMaterialRepository) DashboardService {
	return &dashboardService{reportRepo: reportRepo, rawMaterialRepo: rawMaterialRepo}
}

func (s *dashboardService) GetDashboard() (*models.DashboardData, error) {
	todaySales, err := s.reportRepo.GetTodaySales()
	if err != nil {
		return nil, fmt.Errorf("failed to get today's sales: %w", err)
	}

	lowStock, err := s.rawMaterialRepo.GetLowStock(lowStockLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get low stock materials: %w", err)
	}

	topProducts, err := s.reportRepo.GetTopProducts(topProductLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top products: %w", err)
	}

	return &models.DashboardData{
		TodaySales:        *todaySales,
		LowStockMaterials: lowStock,
		TopProducts:       topProducts,
	}, nil
}
