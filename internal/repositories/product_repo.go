package repositories

import "tokobaju/internal/models"

// ProductRepository defines the interface for product data access.
//
// UpdateWithImages is the transactional write path: when replaceImages is
// set, the old image rows are deleted and the new ones inserted in the same
// transaction that persists the product, so a concurrent reader never sees
// a half-replaced image set.
type ProductRepository interface {
	GetAll(limit, offset int) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	GetByTerm(term string) (*models.Product, error)
	Create(product *models.Product) error
	UpdateWithImages(product *models.Product, images []string, replaceImages bool) error
	Delete(id string) error
	DeleteAll() error
	CreateBatch(products []models.Product) error
}
