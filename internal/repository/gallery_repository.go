package repository

import (
	"context"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/persistence"
)

// GalleryRepository defines persistence access for gallery images.
type GalleryRepository interface {
	List(ctx context.Context) ([]domain.Document, error)
	Create(ctx context.Context, doc domain.Document) (*persistence.InsertResult, error)
}

type galleryRepository struct {
	coll persistence.Collection
}

// NewGalleryRepository returns a collection-backed implementation.
func NewGalleryRepository(coll persistence.Collection) GalleryRepository {
	return &galleryRepository{coll: coll}
}

func (r *galleryRepository) List(ctx context.Context) ([]domain.Document, error) {
	return r.coll.Find(ctx, persistence.Query{})
}

func (r *galleryRepository) Create(ctx context.Context, doc domain.Document) (*persistence.InsertResult, error) {
	return r.coll.Insert(ctx, doc)
}
