package services

import (
	"fmt"

	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/repositories"

	"github.com/sirupsen/logrus"
)

// CategoryStat aggregates the products of one category.
type CategoryStat struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"totalValue"`
}

// InventorySummary is the dashboard report: catalog totals, total inventory
// value (sum of price * quantity), and per-category breakdowns.
type InventorySummary struct {
	TotalProducts   int            `json:"totalProducts"`
	TotalCategories int            `json:"totalCategories"`
	TotalValue      float64        `json:"totalValue"`
	LowStockCount   int            `json:"lowStockCount"`
	CategoryStats   []CategoryStat `json:"categoryStats"`
}

// ReportService computes dashboard aggregates over the catalog.
type ReportService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	threshold    int
	log          *logrus.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, threshold int, log *logrus.Logger) *ReportService {
	if threshold <= 0 {
		threshold = models.LowStockThreshold
	}
	return &ReportService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		threshold:    threshold,
		log:          log,
	}
}

// Summary builds the inventory summary report.
func (s *ReportService) Summary() (*InventorySummary, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load products for report: %w", err)
	}
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for report: %w", err)
	}

	summary := &InventorySummary{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
		CategoryStats:   make([]CategoryStat, 0, len(categories)),
	}

	byCategory := make(map[string]*CategoryStat, len(categories))
	for _, category := range categories {
		summary.CategoryStats = append(summary.CategoryStats, CategoryStat{Name: category.Name})
		byCategory[category.ID] = &summary.CategoryStats[len(summary.CategoryStats)-1]
	}

	for _, product := range products {
		value := product.Price * float64(product.Quantity)
		summary.TotalValue += value
		if product.Quantity < s.threshold {
			summary.LowStockCount++
		}
		if stat, ok := byCategory[product.CategoryID]; ok {
			stat.Count++
			stat.TotalValue += value
		}
	}

	return summary, nil
}
