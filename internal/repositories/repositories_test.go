package repositories_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database for one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.StockAlert{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func mustCreateCategory(t *testing.T, repo repositories.CategoryRepository, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := repo.Create(category); err != nil {
		t.Fatalf("failed to create category %q: %v", name, err)
	}
	return category
}

func mustCreateProduct(t *testing.T, repo repositories.ProductRepository, name string, quantity int, categoryID string) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Price: 9.99, Quantity: quantity, CategoryID: categoryID}
	if err := repo.Create(product); err != nil {
		t.Fatalf("failed to create product %q: %v", name, err)
	}
	return product
}

func TestCategoryRepository_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCategoryRepository(db)

	mustCreateCategory(t, repo, "Snacks")

	err := repo.Create(&models.Category{Name: "Snacks"})
	assert.True(t, errors.Is(err, models.ErrDuplicateName))

	categories, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestCategoryRepository_GetAllOrdered(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCategoryRepository(db)

	mustCreateCategory(t, repo, "Tools")
	mustCreateCategory(t, repo, "Books")
	mustCreateCategory(t, repo, "Snacks")

	categories, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Equal(t, []string{"Books", "Snacks", "Tools"}, []string{categories[0].Name, categories[1].Name, categories[2].Name})
}

func TestCategoryRepository_DeleteWithProducts(t *testing.T) {
	db := newTestDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	tools := mustCreateCategory(t, categoryRepo, "Tools")
	books := mustCreateCategory(t, categoryRepo, "Books")
	hammer := mustCreateProduct(t, productRepo, "Hammer", 3, tools.ID)
	mustCreateProduct(t, productRepo, "Novel", 5, books.ID)

	err := categoryRepo.DeleteWithProducts(tools.ID)
	assert.NoError(t, err)

	_, err = productRepo.GetByID(hammer.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	_, err = categoryRepo.GetByID(tools.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	// Other categories and their products are untouched.
	remaining, err := productRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, "Novel", remaining[0].Name)
}

func TestCategoryRepository_DeleteWithProducts_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCategoryRepository(db)

	err := repo.DeleteWithProducts("does-not-exist")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestProductRepository_GetAllAttachesCategory(t *testing.T) {
	db := newTestDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	tools := mustCreateCategory(t, categoryRepo, "Tools")
	mustCreateProduct(t, productRepo, "Wrench", 20, tools.ID)
	mustCreateProduct(t, productRepo, "Hammer", 3, tools.ID)

	products, err := productRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	// Name ascending, category preloaded.
	assert.Equal(t, "Hammer", products[0].Name)
	assert.Equal(t, "Tools", products[0].Category.Name)
	assert.Equal(t, "Wrench", products[1].Name)
}

func TestProductRepository_FindBelowQuantity(t *testing.T) {
	db := newTestDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	tools := mustCreateCategory(t, categoryRepo, "Tools")
	mustCreateProduct(t, productRepo, "Wrench", 20, tools.ID)
	hammer := mustCreateProduct(t, productRepo, "Hammer", 3, tools.ID)
	mustCreateProduct(t, productRepo, "Nails", 10, tools.ID)

	lowStock, err := productRepo.FindBelowQuantity(10)
	assert.NoError(t, err)
	assert.Len(t, lowStock, 1, "quantity 10 is not below a threshold of 10")
	assert.Equal(t, hammer.ID, lowStock[0].ID)
	assert.Equal(t, "Tools", lowStock[0].Category.Name)
}

func TestStockAlertRepository_UnreadProductIDs(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMStockAlertRepository(db)

	first := &models.StockAlert{ProductID: "p-1", Message: "low"}
	assert.NoError(t, repo.Create(first))
	assert.NoError(t, repo.Create(&models.StockAlert{ProductID: "p-1", Message: "still low"}))
	assert.NoError(t, repo.Create(&models.StockAlert{ProductID: "p-2", Message: "low"}))

	unread, err := repo.UnreadProductIDs()
	assert.NoError(t, err)
	assert.Equal(t, map[string]bool{"p-1": true, "p-2": true}, unread)

	// Reading an alert removes its product only once no unread alert remains.
	assert.NoError(t, repo.MarkRead(first.ID))
	unread, err = repo.UnreadProductIDs()
	assert.NoError(t, err)
	assert.True(t, unread["p-1"], "a second unread alert still exists for p-1")
}

func TestStockAlertRepository_MarkRead(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMStockAlertRepository(db)

	alert := &models.StockAlert{ProductID: "p-1", Message: "low"}
	assert.NoError(t, repo.Create(alert))

	assert.NoError(t, repo.MarkRead(alert.ID))
	// Marking twice leaves isRead true with no error on the second call.
	assert.NoError(t, repo.MarkRead(alert.ID))
	// An unknown id is a silent no-op.
	assert.NoError(t, repo.MarkRead("does-not-exist"))

	alerts, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.True(t, alerts[0].IsRead)
}
