package service

import (
	"context"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/persistence"
	"github.com/spec-kit/restaurant-service/internal/repository"
)

// GalleryService serves the image gallery.
type GalleryService struct {
	gallery repository.GalleryRepository
}

// NewGalleryService builds the service.
func NewGalleryService(gallery repository.GalleryRepository) *GalleryService {
	return &GalleryService{gallery: gallery}
}

func (s *GalleryService) List(ctx context.Context) ([]domain.Document, error) {
	return s.gallery.List(ctx)
}

func (s *GalleryService) Create(ctx context.Context, doc domain.Document) (*persistence.InsertResult, error) {
	return s.gallery.Create(ctx, doc)
}
