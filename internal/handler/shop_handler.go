package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/manpower-erp-api/internal/service"
	"github.com/noah-isme/manpower-erp-api/pkg/response"
)

// ShopHandler exposes the demo shop on the session cart.
type ShopHandler struct {
	shop *service.ShopService
}

// NewShopHandler constructs the handler.
func NewShopHandler(shop *service.ShopService) *ShopHandler {
	return &ShopHandler{shop: shop}
}

// Products godoc
// @Summary Product catalog
// @Tags Shop
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /shop/products [get]
func (h *ShopHandler) Products(c *gin.Context) {
	respond(c, http.StatusOK, h.shop.Catalog())
}

// Cart godoc
// @Summary Current cart and total
// @Tags Shop
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /shop/cart [get]
func (h *ShopHandler) Cart(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, h.shop.Cart(sess.Cart))
}

// AddItem godoc
// @Summary Add one unit of a product to the cart
// @Tags Shop
// @Accept json
// @Produce json
// @Param payload body service.AddToCartRequest true "Product"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /shop/cart/items [post]
func (h *ShopHandler) AddItem(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req service.AddToCartRequest
	if !bindJSON(c, &req) {
		return
	}
	cart, err := h.shop.Add(sess.Cart, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusCreated, cart)
}

// Checkout godoc
// @Summary Place an order for the cart contents
// @Tags Shop
// @Produce json
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /shop/cart/checkout [post]
func (h *ShopHandler) Checkout(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	order, err := h.shop.Checkout(sess.Cart)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusCreated, order)
}
