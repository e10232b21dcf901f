package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/manpower-erp-api/internal/dto"
	"github.com/noah-isme/manpower-erp-api/internal/models"
	"github.com/noah-isme/manpower-erp-api/internal/store"
	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
)

// AddToCartRequest adds one unit of a product.
type AddToCartRequest struct {
	ProductID int `json:"product_id" validate:"required"`
}

type checkoutRecorder interface {
	RecordCheckout()
}

// ShopService runs the demo shop over a session cart.
type ShopService struct {
	validator *validator.Validate
	metrics   checkoutRecorder
	logger    *zap.Logger
}

// NewShopService constructs the shop service.
func NewShopService(validate *validator.Validate, metrics checkoutRecorder, logger *zap.Logger) *ShopService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShopService{validator: ensureValidator(validate), metrics: metrics, logger: logger}
}

// Catalog lists the products on sale.
func (s *ShopService) Catalog() []models.Product {
	return store.Catalog()
}

// Add puts a product in the cart and returns the updated cart.
func (s *ShopService) Add(cart *store.Cart, req AddToCartRequest) (*dto.CartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid cart payload")
	}
	product, err := store.FindProduct(req.ProductID)
	if err != nil {
		return nil, err
	}
	cart.Add(product)
	return s.Cart(cart), nil
}

// Cart returns the cart contents and total.
func (s *ShopService) Cart(cart *store.Cart) *dto.CartResponse {
	items := cart.Items()
	var total int64
	for _, p := range items {
		total += p.Price
	}
	return &dto.CartResponse{Items: items, Count: len(items), Total: total}
}

// Checkout places the order and empties the cart.
func (s *ShopService) Checkout(cart *store.Cart) (models.Order, error) {
	order, err := cart.Checkout()
	if err != nil {
		return models.Order{}, err
	}
	if s.metrics != nil {
		s.metrics.RecordCheckout()
	}
	s.logger.Info("order placed", zap.String("order_id", order.ID), zap.Int64("total", order.Total), zap.Int("items", len(order.Items)))
	return order, nil
}
