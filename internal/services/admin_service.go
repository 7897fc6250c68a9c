package services

import (
	"errors"
	"fmt"

	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/repositories"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdminService provides the database management operations behind the
// protected admin endpoints: seeding sample data and wiping the catalog.
type AdminService struct {
	db           *gorm.DB
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
	log          *logrus.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(db *gorm.DB, categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository, log *logrus.Logger) *AdminService {
	return &AdminService{
		db:           db,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		log:          log,
	}
}

type seedProduct struct {
	name        string
	description string
	price       float64
	quantity    int
	imageURL    string
	category    string
}

var seedCategories = []string{"Electronics", "Clothing", "Books", "Home & Kitchen"}

var seedProducts = []seedProduct{
	{"iPhone 15 Pro", "Latest iPhone with A17 Pro chip and titanium design", 999.99, 50, "https://images.unsplash.com/photo-1695048133148-3e0e227f0946?q=80&w=1000", "Electronics"},
	{"MacBook Pro M3", "Powerful laptop with M3 chip and Liquid Retina XDR display", 1999.99, 30, "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?q=80&w=1000", "Electronics"},
	{"AirPods Pro", "Premium wireless earbuds with active noise cancellation", 249.99, 100, "https://images.unsplash.com/photo-1606220588911-5117e7654a3c?q=80&w=1000", "Electronics"},
	{"Smart Watch", "Fitness tracker with heart rate monitoring", 199.99, 55, "https://images.unsplash.com/photo-1523275335684-37898b6baf30?q=80&w=1000", "Electronics"},
	{"Nike Air Max", "Classic running shoes with Air cushioning", 129.99, 75, "https://images.unsplash.com/photo-1542291026-7eec264c27ff?q=80&w=1000", "Clothing"},
	{"Levi's 501 Jeans", "Classic straight fit jeans", 79.99, 60, "https://images.unsplash.com/photo-1542272604-787c3835535d?q=80&w=1000", "Clothing"},
	{"The Great Gatsby", "Classic novel by F. Scott Fitzgerald", 12.99, 45, "https://images.unsplash.com/photo-1544947950-fa07a98d237f?q=80&w=1000", "Books"},
	{"To Kill a Mockingbird", "Harper Lee's Pulitzer Prize-winning novel", 14.99, 40, "https://images.unsplash.com/photo-1541963463532-d68292c34b19?q=80&w=1000", "Books"},
	{"Smart Coffee Maker", "WiFi-enabled coffee maker with app control", 149.99, 25, "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?q=80&w=1000", "Home & Kitchen"},
	{"Air Fryer", "Digital air fryer with multiple cooking functions", 89.99, 35, "https://images.unsplash.com/photo-1587015566902-5dc157c901cf?q=80&w=1000", "Home & Kitchen"},
}

// Seed populates the catalog with sample categories and products. Categories
// that already exist are reused; products are only inserted into an empty
// catalog so repeated seeding does not duplicate them.
func (s *AdminService) Seed() (created int, err error) {
	existing, err := s.productRepo.GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to inspect catalog before seeding: %w", err)
	}
	if len(existing) > 0 {
		s.log.Info("Seed skipped: catalog already has products")
		return 0, nil
	}

	categoryIDs := make(map[string]string, len(seedCategories))
	for _, name := range seedCategories {
		category := &models.Category{Name: name}
		if err := s.categoryRepo.Create(category); err != nil {
			if !errors.Is(err, models.ErrDuplicateName) {
				return created, fmt.Errorf("failed to seed category %q: %w", name, err)
			}
			var row models.Category
			if err := s.db.First(&row, "name = ?", name).Error; err != nil {
				return created, fmt.Errorf("failed to load existing category %q: %w", name, err)
			}
			category = &row
		}
		categoryIDs[name] = category.ID
	}

	for _, sp := range seedProducts {
		product := &models.Product{
			Name:        sp.name,
			Description: sp.description,
			Price:       sp.price,
			Quantity:    sp.quantity,
			ImageURL:    sp.imageURL,
			CategoryID:  categoryIDs[sp.category],
		}
		if err := s.productRepo.Create(product); err != nil {
			return created, fmt.Errorf("failed to seed product %q: %w", sp.name, err)
		}
		created++
	}

	s.log.Infof("Seeded %d categories and %d products", len(seedCategories), created)
	return created, nil
}

// Reset deletes all stock alerts, products, and categories in one
// transaction. Admin users are untouched.
func (s *AdminService) Reset() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.StockAlert{}).Error; err != nil {
			return fmt.Errorf("failed to delete stock alerts: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("failed to delete products: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.Category{}).Error; err != nil {
			return fmt.Errorf("failed to delete categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Warn("Catalog reset: all alerts, products, and categories deleted")
	return nil
}
