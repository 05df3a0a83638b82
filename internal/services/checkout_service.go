package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"storehub/internal/models"
	"storehub/internal/repositories"
	"storehub/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutItem is one requested line in a checkout.
type CheckoutItem struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CheckoutBill carries the payment details for the bill generated at checkout.
type CheckoutBill struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// CheckoutRequest is the body of POST /cart/checkout.
type CheckoutRequest struct {
	Status string         `json:"status" validate:"required"`
	Items  []CheckoutItem `json:"items" validate:"required,min=1,dive"`
	Bill   CheckoutBill   `json:"bill"`
}

// CheckoutResult is the composed outcome of a committed checkout.
type CheckoutResult struct {
	Order *models.Order
	Bill  *models.Bill
}

// CheckoutService converts a set of line items into a persisted order, stock
// decrement, and bill, all inside one transaction on the tenant's database.
type CheckoutService struct {
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
	billRepo    repositories.BillRepository
	ledgerRepo  repositories.LedgerRepository
	mqClient    *rabbitmq.Client
	validate    *validator.Validate
	timeout     time.Duration
}

// NewCheckoutService creates a new CheckoutService. The timeout bounds each
// checkout transaction, lock waits included.
func NewCheckoutService(
	productRepo repositories.ProductRepository,
	orderRepo repositories.OrderRepository,
	billRepo repositories.BillRepository,
	ledgerRepo repositories.LedgerRepository,
	mqClient *rabbitmq.Client,
	timeout time.Duration,
) *CheckoutService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CheckoutService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		billRepo:    billRepo,
		ledgerRepo:  ledgerRepo,
		mqClient:    mqClient,
		validate:    validator.New(),
		timeout:     timeout,
	}
}

// Checkout validates the request, then runs one all-or-nothing transaction:
// lock and decrement stock for every product, insert the order with its line
// items, insert the bill, and append a sale entry to the income ledger. Any
// failure rolls the whole transaction back, so partial orders, partial stock
// decrements, or bills without orders are never observable.
func (s *CheckoutService) Checkout(ctx context.Context, db *gorm.DB, req *CheckoutRequest) (*CheckoutResult, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	totalPrice := decimal.Zero
	for _, item := range req.Items {
		totalPrice = totalPrice.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	// Aggregate the requested quantity per product so each row is locked and
	// checked exactly once, and fix the lock order: locks are always taken in
	// ascending product ID, so two checkouts touching the same products can
	// never deadlock by locking them in opposite order.
	needed := make(map[string]int, len(req.Items))
	for _, item := range req.Items {
		needed[item.ProductID] += item.Quantity
	}
	productIDs := make([]string, 0, len(needed))
	for id := range needed {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var result CheckoutResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, productID := range productIDs {
			product, err := s.productRepo.GetByIDForUpdate(tx, productID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{ProductID: productID}
				}
				return fmt.Errorf("failed to lock product %s: %w", productID, err)
			}

			if product.Quantity < needed[productID] {
				return &InsufficientStockError{
					ProductID: productID,
					Requested: needed[productID],
					Available: product.Quantity,
				}
			}

			if err := s.productRepo.DecrementStock(tx, productID, needed[productID]); err != nil {
				if errors.Is(err, repositories.ErrInsufficientStock) {
					return &InsufficientStockError{
						ProductID: productID,
						Requested: needed[productID],
						Available: product.Quantity,
					}
				}
				return err
			}
		}

		order := &models.Order{
			Status:     req.Status,
			TotalPrice: totalPrice,
		}
		for _, item := range req.Items {
			order.Items = append(order.Items, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}
		if err := s.orderRepo.Create(tx, order); err != nil {
			return err
		}

		// The bill carries the total computed above, never recomputed, so the
		// order and its bill cannot disagree on the amount.
		bill := &models.Bill{
			OrderID:       order.ID,
			TotalAmount:   totalPrice,
			PaymentStatus: req.Bill.PaymentStatus,
			PaymentMethod: req.Bill.PaymentMethod,
		}
		if err := s.billRepo.Create(tx, bill); err != nil {
			return err
		}

		entry := &models.LedgerEntry{
			Type:        models.LedgerIncome,
			Source:      models.LedgerSourceSale,
			Description: fmt.Sprintf("Sale for order %s", order.ID),
			Amount:      totalPrice,
			EntryDate:   time.Now(),
		}
		if err := s.ledgerRepo.Append(tx, entry); err != nil {
			return err
		}

		result.Order = order
		result.Bill = bill
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishOrderCreated(result.Order)

	return &result, nil
}

func (s *CheckoutService) validateRequest(req *CheckoutRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	for _, item := range req.Items {
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: unit price for product %s must not be negative", ErrInvalidRequest, item.ProductID)
		}
	}
	return nil
}

// publishOrderCreated emits the order-created event after commit. Publishing
// is best effort: a broker failure never fails an already-committed checkout.
func (s *CheckoutService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		return
	}

	event := map[string]interface{}{
		"orderID": order.ID,
		"status":  order.Status,
		"total":   order.TotalPrice.String(),
	}
	if err := s.mqClient.PublishOrderCreated(event); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
	}
}
