package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/manpower-erp-api/internal/models"
	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
)

var catalog = []models.Product{
	{ID: 1, Name: "Laptop", Price: 80000, Category: "Electronics"},
	{ID: 2, Name: "Headphones", Price: 5000, Category: "Electronics"},
	{ID: 3, Name: "Coffee Mug", Price: 500, Category: "Home"},
	{ID: 4, Name: "Backpack", Price: 2500, Category: "Fashion"},
}

// Catalog returns the fixed shop catalog.
func Catalog() []models.Product {
	out := make([]models.Product, len(catalog))
	copy(out, catalog)
	return out
}

// FindProduct looks up a catalog product by id.
func FindProduct(id int) (models.Product, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, appErrors.NotFoundf("product %d not found", id)
}

// Cart is a session's shopping cart. The same product may appear more than once.
type Cart struct {
	mu    sync.Mutex
	items []models.Product
	now   func() time.Time
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{now: time.Now}
}

// Add appends a product.
func (c *Cart) Add(p models.Product) {
	c.mu.Lock()
	c.items = append(c.items, p)
	c.mu.Unlock()
}

// Items returns the cart contents in the order they were added.
func (c *Cart) Items() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, len(c.items))
	copy(out, c.items)
	return out
}

// Total sums item prices.
func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sumPrices(c.items)
}

// Checkout places an order for the current items and empties the cart.
func (c *Cart) Checkout() (models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return models.Order{}, appErrors.Validationf("cart is empty")
	}
	order := models.Order{
		ID:       uuid.NewString(),
		Items:    c.items,
		Total:    sumPrices(c.items),
		PlacedAt: c.now().UTC(),
	}
	c.items = nil
	return order, nil
}

func sumPrices(items []models.Product) int64 {
	var total int64
	for _, p := range items {
		total += p.Price
	}
	return total
}
