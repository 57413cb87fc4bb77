package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/observability"
	"github.com/spec-kit/restaurant-service/internal/service"
)

// PurchaseHandler exposes purchase records.
type PurchaseHandler struct {
	purchases *service.PurchaseService
	metrics   *observability.Metrics
}

// NewPurchaseHandler constructs handler.
func NewPurchaseHandler(purchases *service.PurchaseService, metrics *observability.Metrics) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases, metrics: metrics}
}

// List handles GET /purchase.
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	items, err := h.purchases.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create handles POST /purchase.
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return err
	}
	res, err := h.purchases.Record(c.UserContext(), doc)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Get handles GET /purchase/:id. Any authenticated caller may read any purchase.
func (h *PurchaseHandler) Get(c *fiber.Ctx) error {
	purchase, err := h.purchases.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(purchase)
}

// MyOrders handles GET /myOrder/:email.
func (h *PurchaseHandler) MyOrders(c *fiber.Ctx) error {
	buyer, err := authorizeOwner(c, h.metrics)
	if err != nil {
		return err
	}
	orders, err := h.purchases.ListByBuyer(c.UserContext(), buyer)
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// Delete handles DELETE /purchase/:id.
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	res, err := h.purchases.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(res)
}
