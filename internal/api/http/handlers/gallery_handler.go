package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/service"
)

// GalleryHandler exposes the image gallery.
type GalleryHandler struct {
	gallery *service.GalleryService
}

// NewGalleryHandler constructs handler.
func NewGalleryHandler(gallery *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// List handles GET /gallery.
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	items, err := h.gallery.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create handles POST /gallery.
func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return err
	}
	res, err := h.gallery.Create(c.UserContext(), doc)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
