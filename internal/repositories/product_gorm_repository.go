package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tokobaju/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
// Image rows are owned exclusively by their product and are only ever
// written inside the same transaction as the product itself.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves a page of products with their images and owner, plus the
// total row count.
func (r *GORMProductRepository) GetAll(limit, offset int) ([]models.Product, int64, error) {
	var total int64
	if err := r.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var products []models.Product
	err := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("User").
		Limit(limit).Offset(offset).
		Order("created_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, 0, translateError(err)
	}
	return products, total, nil
}

// GetByID retrieves a single hydrated product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("User").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

// GetByTerm looks a product up by ID when term is a UUID, otherwise by
// title or slug. Slug comparison uses the normalized form.
func (r *GORMProductRepository) GetByTerm(term string) (*models.Product, error) {
	if uuid.Validate(term) == nil {
		return r.GetByID(term)
	}
	var product models.Product
	err := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("User").
		Where("title = ? OR slug = ?", term, models.Slugify(term)).
		First(&product).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

// Create persists a new product and its image rows in one transaction.
// Association writes are explicit, never left to GORM cascades.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		images := product.Images
		product.Images = nil
		if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].ProductID = product.ID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		product.Images = images
		return nil
	})
	return translateError(err)
}

// UpdateWithImages persists a product update as a single atomic unit. When
// replaceImages is set, every existing image row for the product is deleted
// and the new ordered set inserted before the product row is saved; any
// failure rolls the whole transaction back.
func (r *GORMProductRepository) UpdateWithImages(product *models.Product, images []string, replaceImages bool) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if replaceImages {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			if len(images) > 0 {
				rows := make([]models.ProductImage, 0, len(images))
				for _, url := range images {
					rows = append(rows, models.ProductImage{URL: url, ProductID: product.ID})
				}
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}
		res := tx.Omit(clause.Associations).Save(product)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translateError(err)
}

// Delete removes a product and its image rows in one transaction.
func (r *GORMProductRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translateError(err)
}

// DeleteAll wipes products and their images. Seed path only.
func (r *GORMProductRepository) DeleteAll() error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("1 = 1").Delete(&models.Product{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}
	return nil
}

// CreateBatch inserts products one by one. There is no atomicity guarantee
// across the whole batch beyond the per-product transaction.
func (r *GORMProductRepository) CreateBatch(products []models.Product) error {
	for i := range products {
		if err := r.Create(&products[i]); err != nil {
			return err
		}
	}
	return nil
}
