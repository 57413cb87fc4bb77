package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/observability"
	"github.com/spec-kit/restaurant-service/internal/service"
)

// FoodHandler exposes the food catalogue.
type FoodHandler struct {
	foods   *service.FoodService
	metrics *observability.Metrics
}

// NewFoodHandler constructs handler.
func NewFoodHandler(foods *service.FoodService, metrics *observability.Metrics) *FoodHandler {
	return &FoodHandler{foods: foods, metrics: metrics}
}

// TopFoods handles GET /food.
func (h *FoodHandler) TopFoods(c *fiber.Ctx) error {
	foods, err := h.foods.TopFoods(c.UserContext(), domain.ParseFoodSort(c.Query("sort")))
	if err != nil {
		return err
	}
	return c.JSON(foods)
}

// Get handles GET /food/:id. A missing food is answered with null.
func (h *FoodHandler) Get(c *fiber.Ctx) error {
	food, err := h.foods.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(food)
}

// Search handles GET /all-foods.
func (h *FoodHandler) Search(c *fiber.Ctx) error {
	page := domain.FoodPage{
		Page:   parseIntQuery(c, "page", 1),
		Size:   parseIntQuery(c, "size", 0),
		Search: c.Query("search"),
	}
	foods, err := h.foods.Search(c.UserContext(), page)
	if err != nil {
		return err
	}
	return c.JSON(foods)
}

// Count handles GET /foods-count.
func (h *FoodHandler) Count(c *fiber.Ctx) error {
	count, err := h.foods.Count(c.UserContext(), c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(dto.CountResponse{Count: count})
}

// MyItems handles GET /myItem/:email.
func (h *FoodHandler) MyItems(c *fiber.Ctx) error {
	owner, err := authorizeOwner(c, h.metrics)
	if err != nil {
		return err
	}
	foods, err := h.foods.ListByOwner(c.UserContext(), owner)
	if err != nil {
		return err
	}
	return c.JSON(foods)
}

// Create handles POST /food.
func (h *FoodHandler) Create(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return err
	}
	res, err := h.foods.Create(c.UserContext(), doc)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Update handles PUT /food/:id.
func (h *FoodHandler) Update(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return err
	}
	res, err := h.foods.Update(c.UserContext(), c.Params("id"), doc)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Delete handles DELETE /food/:id.
func (h *FoodHandler) Delete(c *fiber.Ctx) error {
	res, err := h.foods.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(res)
}
