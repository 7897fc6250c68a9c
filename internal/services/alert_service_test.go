package services_test

import (
	"fmt"
	"testing"

	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAlertPublisher is a mock implementation of services.AlertPublisher
type MockAlertPublisher struct {
	mock.Mock
}

func (m *MockAlertPublisher) PublishStockAlert(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func TestAlertService_Evaluate_InsertsMissingAlerts(t *testing.T) {
	productRepo := new(MockProductRepository)
	alertRepo := new(MockStockAlertRepository)
	service := services.NewAlertService(alertRepo, productRepo, nil, 10, newTestLogger())

	lowStock := []models.Product{
		{ID: "p-1", Name: "Hammer", Quantity: 3},
		{ID: "p-2", Name: "Nails", Quantity: 7},
	}
	productRepo.On("FindBelowQuantity", 10).Return(lowStock, nil)
	// p-1 already has an unread alert outstanding; only p-2 gets a new one.
	alertRepo.On("UnreadProductIDs").Return(map[string]bool{"p-1": true}, nil)
	alertRepo.On("Create", mock.AnythingOfType("*models.StockAlert")).Return(nil).Once()

	products, err := service.Evaluate()

	assert.NoError(t, err)
	assert.Len(t, products, 2, "evaluate returns all low-stock products, alerted or not")
	alertRepo.AssertExpectations(t)

	alert := alertRepo.Calls[len(alertRepo.Calls)-1].Arguments.Get(0).(*models.StockAlert)
	assert.Equal(t, "p-2", alert.ProductID)
	assert.Equal(t, "Low stock alert: Nails has only 7 units remaining.", alert.Message)
}

func TestAlertService_Evaluate_SecondRunInsertsNothing(t *testing.T) {
	productRepo := new(MockProductRepository)
	alertRepo := new(MockStockAlertRepository)
	service := services.NewAlertService(alertRepo, productRepo, nil, 10, newTestLogger())

	lowStock := []models.Product{{ID: "p-1", Name: "Hammer", Quantity: 3}}
	productRepo.On("FindBelowQuantity", 10).Return(lowStock, nil)
	alertRepo.On("UnreadProductIDs").Return(map[string]bool{"p-1": true}, nil)

	products, err := service.Evaluate()

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	alertRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAlertService_Evaluate_PublishesEvents(t *testing.T) {
	productRepo := new(MockProductRepository)
	alertRepo := new(MockStockAlertRepository)
	publisher := new(MockAlertPublisher)
	service := services.NewAlertService(alertRepo, productRepo, publisher, 10, newTestLogger())

	lowStock := []models.Product{{ID: "p-1", Name: "Hammer", Quantity: 3}}
	productRepo.On("FindBelowQuantity", 10).Return(lowStock, nil)
	alertRepo.On("UnreadProductIDs").Return(map[string]bool{}, nil)
	alertRepo.On("Create", mock.AnythingOfType("*models.StockAlert")).Return(nil)
	publisher.On("PublishStockAlert", mock.Anything).Return(nil).Once()

	_, err := service.Evaluate()

	assert.NoError(t, err)
	publisher.AssertExpectations(t)

	event := publisher.Calls[0].Arguments.Get(0).(map[string]interface{})
	assert.Equal(t, "p-1", event["productId"])
	assert.Equal(t, 3, event["quantity"])
}

func TestAlertService_Evaluate_PublishFailureIsSwallowed(t *testing.T) {
	productRepo := new(MockProductRepository)
	alertRepo := new(MockStockAlertRepository)
	publisher := new(MockAlertPublisher)
	service := services.NewAlertService(alertRepo, productRepo, publisher, 10, newTestLogger())

	lowStock := []models.Product{{ID: "p-1", Name: "Hammer", Quantity: 3}}
	productRepo.On("FindBelowQuantity", 10).Return(lowStock, nil)
	alertRepo.On("UnreadProductIDs").Return(map[string]bool{}, nil)
	alertRepo.On("Create", mock.AnythingOfType("*models.StockAlert")).Return(nil)
	publisher.On("PublishStockAlert", mock.Anything).Return(fmt.Errorf("broker down"))

	products, err := service.Evaluate()

	assert.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestAlertService_QuantityReduced_Thresholds(t *testing.T) {
	tests := []struct {
		name        string
		oldQuantity int
		newQuantity int
		wantAlert   bool
	}{
		{"drop below threshold", 30, 4, true},
		{"drop while already below", 8, 2, true},
		{"increase below threshold", 2, 8, false},
		{"increase above threshold", 3, 20, false},
		{"drop staying above threshold", 50, 20, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			productRepo := new(MockProductRepository)
			alertRepo := new(MockStockAlertRepository)
			service := services.NewAlertService(alertRepo, productRepo, nil, 10, newTestLogger())

			if tc.wantAlert {
				alertRepo.On("Create", mock.AnythingOfType("*models.StockAlert")).Return(nil).Once()
			}

			product := &models.Product{ID: "p-1", Name: "Hammer", Quantity: tc.newQuantity}
			service.QuantityReduced(product, tc.oldQuantity)

			if tc.wantAlert {
				alertRepo.AssertExpectations(t)
			} else {
				alertRepo.AssertNotCalled(t, "Create", mock.Anything)
			}
		})
	}
}

func TestAlertService_MarkRead_Idempotent(t *testing.T) {
	productRepo := new(MockProductRepository)
	alertRepo := new(MockStockAlertRepository)
	service := services.NewAlertService(alertRepo, productRepo, nil, 10, newTestLogger())

	// Marking twice, and marking an unknown id, all succeed.
	alertRepo.On("MarkRead", "a-1").Return(nil).Twice()
	alertRepo.On("MarkRead", "missing").Return(nil).Once()

	assert.NoError(t, service.MarkRead("a-1"))
	assert.NoError(t, service.MarkRead("a-1"))
	assert.NoError(t, service.MarkRead("missing"))
	alertRepo.AssertExpectations(t)
}
