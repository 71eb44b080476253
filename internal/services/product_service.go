package services

import (
	"encoding/json"
	"errors"
	"log"

	"tokobaju/internal/apperrors"
	"tokobaju/internal/models"
	"tokobaju/internal/repositories"
	"tokobaju/pkg/rabbitmq"
)

// ProductInput carries the fields for creating a product.
type ProductInput struct {
	Title       string
	Description string
	Slug        string
	Price       float64
	Stock       int
	Sizes       []string
	Gender      string
	Tags        []string
	Images      []string
}

// ProductPatch is a partial update; nil fields are left untouched. A
// non-nil Images replaces the whole image set.
type ProductPatch struct {
	Title       *string
	Description *string
	Slug        *string
	Price       *float64
	Stock       *int
	Sizes       *[]string
	Gender      *string
	Tags        *[]string
	Images      *[]string
}

// ProductService handles business logic related to products, including the
// transactional update that replaces a product's image set and reassigns
// ownership as one atomic unit.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. mqClient may be nil, in
// which case event publication is skipped.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// Create persists a new product owned by the acting user. The slug is
// derived from the title when absent and normalized either way.
func (s *ProductService) Create(input ProductInput, actingUser *models.User) (models.ProductPlain, error) {
	slug := input.Slug
	if slug == "" {
		slug = input.Title
	}

	product := models.Product{
		Title:       input.Title,
		Slug:        models.Slugify(slug),
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Sizes:       input.Sizes,
		Gender:      input.Gender,
		Tags:        input.Tags,
		UserID:      actingUser.ID,
	}
	for _, url := range input.Images {
		product.Images = append(product.Images, models.ProductImage{URL: url})
	}

	if err := s.repo.Create(&product); err != nil {
		return models.ProductPlain{}, s.translate(err)
	}

	created, err := s.repo.GetByID(product.ID)
	if err != nil {
		return models.ProductPlain{}, s.translate(err)
	}
	s.publishEvent("product.created", created)
	return created.Plain(), nil
}

// Update merges the patch onto the existing product, replaces the image set
// when one is supplied, sets the acting user as owner and persists it all
// in one transaction. The returned product is re-read after commit rather
// than trusted from memory.
func (s *ProductService) Update(id string, patch ProductPatch, actingUser *models.User) (models.ProductPlain, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return models.ProductPlain{}, s.translate(err)
	}

	if patch.Title != nil {
		product.Title = *patch.Title
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Slug != nil {
		product.Slug = *patch.Slug
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.Sizes != nil {
		product.Sizes = *patch.Sizes
	}
	if patch.Gender != nil {
		product.Gender = *patch.Gender
	}
	if patch.Tags != nil {
		product.Tags = *patch.Tags
	}
	product.Slug = models.Slugify(product.Slug)
	product.UserID = actingUser.ID
	product.User = nil
	product.Images = nil

	var images []string
	if patch.Images != nil {
		images = *patch.Images
	}
	if err := s.repo.UpdateWithImages(product, images, patch.Images != nil); err != nil {
		return models.ProductPlain{}, s.translate(err)
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return models.ProductPlain{}, s.translate(err)
	}
	s.publishEvent("product.updated", updated)
	return updated.Plain(), nil
}

// FindAll returns a page of products in their outward shape plus the total
// count. Defaults: limit 10, offset 0.
func (s *ProductService) FindAll(limit, offset int) ([]models.ProductPlain, int64, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	products, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, s.translate(err)
	}
	plains := make([]models.ProductPlain, 0, len(products))
	for i := range products {
		plains = append(plains, products[i].Plain())
	}
	return plains, total, nil
}

// FindOne looks a product up by id, title or slug.
func (s *ProductService) FindOne(term string) (models.ProductPlain, error) {
	product, err := s.repo.GetByTerm(term)
	if err != nil {
		return models.ProductPlain{}, s.translate(err)
	}
	return product.Plain(), nil
}

// Delete removes a product and its images.
func (s *ProductService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return s.translate(err)
	}
	s.publishEvent("product.deleted", &models.Product{ID: id})
	return nil
}

// CreateBatch inserts seed products owned by the acting user. No atomicity
// across the batch.
func (s *ProductService) CreateBatch(inputs []ProductInput, actingUser *models.User) error {
	products := make([]models.Product, 0, len(inputs))
	for _, input := range inputs {
		slug := input.Slug
		if slug == "" {
			slug = input.Title
		}
		product := models.Product{
			Title:       input.Title,
			Slug:        models.Slugify(slug),
			Description: input.Description,
			Price:       input.Price,
			Stock:       input.Stock,
			Sizes:       input.Sizes,
			Gender:      input.Gender,
			Tags:        input.Tags,
			UserID:      actingUser.ID,
		}
		for _, url := range input.Images {
			product.Images = append(product.Images, models.ProductImage{URL: url})
		}
		products = append(products, product)
	}
	if err := s.repo.CreateBatch(products); err != nil {
		return s.translate(err)
	}
	return nil
}

// DeleteAll wipes the catalog. Seed path only.
func (s *ProductService) DeleteAll() error {
	if err := s.repo.DeleteAll(); err != nil {
		return s.translate(err)
	}
	return nil
}

// translate reclassifies repository errors into the shared taxonomy.
// NotFound and Conflict pass through; anything else is logged with full
// detail and surfaced as the opaque internal error.
func (s *ProductService) translate(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.ErrNotFound
	}
	if _, ok := apperrors.IsConflict(err); ok {
		return err
	}
	log.Printf("Product store failure: %v", err)
	return apperrors.ErrInternal
}

// publishEvent sends a product event to the broker. Failures are logged,
// never propagated; events are best-effort.
func (s *ProductService) publishEvent(routingKey string, product *models.Product) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"productId": product.ID,
		"title":     product.Title,
		"slug":      product.Slug,
		"ownerId":   product.UserID,
	})
	if err != nil {
		log.Printf("Failed to marshal product event: %v", err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", routingKey, product.ID, err)
	}
}
