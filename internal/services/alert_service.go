package services

import (
	"fmt"

	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/repositories"

	"github.com/sirupsen/logrus"
)

// AlertPublisher publishes low-stock alert events to a message queue.
type AlertPublisher interface {
	PublishStockAlert(event map[string]interface{}) error
}

// AlertService maintains the invariant that every product below the low-stock
// threshold has at most one unread alert outstanding. All alert writes are
// best-effort: a failure is logged and swallowed so it can never fail the
// product mutation it rides on.
type AlertService struct {
	alertRepo   repositories.StockAlertRepository
	productRepo repositories.ProductRepository
	publisher   AlertPublisher // nil when messaging is disabled
	threshold   int
	log         *logrus.Logger
}

// NewAlertService creates a new AlertService. publisher may be nil.
func NewAlertService(alertRepo repositories.StockAlertRepository, productRepo repositories.ProductRepository, publisher AlertPublisher, threshold int, log *logrus.Logger) *AlertService {
	if threshold <= 0 {
		threshold = models.LowStockThreshold
	}
	return &AlertService{
		alertRepo:   alertRepo,
		productRepo: productRepo,
		publisher:   publisher,
		threshold:   threshold,
		log:         log,
	}
}

// Threshold returns the configured low-stock threshold.
func (s *AlertService) Threshold() int {
	return s.threshold
}

// Evaluate scans for products below the threshold, inserts an alert for each
// one that has no unread alert yet, and returns the full low-stock list
// regardless of whether any alert was inserted.
func (s *AlertService) Evaluate() ([]models.Product, error) {
	lowStock, err := s.productRepo.FindBelowQuantity(s.threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for low-stock products: %w", err)
	}

	unread, err := s.alertRepo.UnreadProductIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to load unread alert ids: %w", err)
	}

	for _, product := range lowStock {
		if unread[product.ID] {
			continue
		}
		message := fmt.Sprintf("Low stock alert: %s has only %d units remaining.", product.Name, product.Quantity)
		s.record(&product, message)
	}

	return lowStock, nil
}

// ProductCreated raises an alert for a product created below the threshold.
// Called as a side effect of product creation; never returns an error.
func (s *AlertService) ProductCreated(product *models.Product) {
	if product.Quantity >= s.threshold {
		return
	}
	message := fmt.Sprintf("New product added with low stock: %s has only %d units.", product.Name, product.Quantity)
	s.record(product, message)
}

// QuantityReduced raises an alert when a product's quantity dropped below the
// threshold. A quantity increase never alerts, even if still below threshold.
func (s *AlertService) QuantityReduced(product *models.Product, oldQuantity int) {
	if product.Quantity >= oldQuantity || product.Quantity >= s.threshold {
		return
	}
	message := fmt.Sprintf("Stock updated: %s quantity reduced from %d to %d.", product.Name, oldQuantity, product.Quantity)
	s.record(product, message)
}

// MarkRead sets isRead to true for the given alert. Marking an unknown id is
// a no-op, which also makes the operation idempotent.
func (s *AlertService) MarkRead(id string) error {
	return s.alertRepo.MarkRead(id)
}

// History returns the full alert history, newest first.
func (s *AlertService) History() ([]models.StockAlert, error) {
	return s.alertRepo.GetAll()
}

// record inserts an alert row and publishes the event, swallowing failures.
func (s *AlertService) record(product *models.Product, message string) {
	alert := &models.StockAlert{
		ProductID: product.ID,
		Message:   message,
	}
	if err := s.alertRepo.Create(alert); err != nil {
		s.log.WithFields(logrus.Fields{
			"productId": product.ID,
			"product":   product.Name,
		}).Warnf("Failed to create stock alert: %v", err)
		return
	}

	if s.publisher == nil {
		return
	}
	event := map[string]interface{}{
		"alertId":   alert.ID,
		"productId": product.ID,
		"product":   product.Name,
		"quantity":  product.Quantity,
		"message":   message,
	}
	if err := s.publisher.PublishStockAlert(event); err != nil {
		s.log.WithField("productId", product.ID).Warnf("Failed to publish stock alert event: %v", err)
	}
}
