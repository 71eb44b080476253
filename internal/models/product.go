package models

import (
	"strings"

	"gorm.io/gorm"
)

// Genders a product can be listed under.
var ValidGenders = []string{"men", "women", "kid", "unisex"}

// Product represents a catalog item. Images are exclusively owned by the
// product and are replaced as a unit when the product is updated.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string         `json:"title" gorm:"uniqueIndex;type:varchar(255)" validate:"required,min=3"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" validate:"gte=0"`
	Stock       int            `json:"stock" validate:"gte=0"`
	Sizes       []string       `json:"sizes" gorm:"serializer:json"`
	Gender      string         `json:"gender" gorm:"type:varchar(16)" validate:"required,oneof=men women kid unisex"`
	Tags        []string       `json:"tags" gorm:"serializer:json"`
	Images      []ProductImage `json:"images" gorm:"foreignKey:ProductID"`
	UserID      string         `json:"-" gorm:"type:varchar(36)"`
	User        *User          `json:"owner,omitempty" gorm:"foreignKey:UserID"`
	gorm.Model  `json:"-"`
}

// ProductImage is a single image URL owned by a product.
type ProductImage struct {
	ID        uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	URL       string `json:"url" gorm:"type:text"`
	ProductID string `json:"-" gorm:"index;type:varchar(36)"`
}

// ProductPlain is the outward representation of a product: the owned image
// records are flattened to their ordered URL list and the owner is sanitized.
type ProductPlain struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Sizes       []string `json:"sizes"`
	Gender      string   `json:"gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
	Owner       *User    `json:"owner,omitempty"`
}

// Plain converts the product to its outward representation.
func (p *Product) Plain() ProductPlain {
	plain := ProductPlain{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Sizes:       p.Sizes,
		Gender:      p.Gender,
		Tags:        p.Tags,
		Images:      p.ImageURLs(),
	}
	if p.User != nil {
		owner := p.User.Sanitized()
		plain.Owner = &owner
	}
	return plain
}

// ImageURLs flattens the owned image records into their ordered URL list.
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

// Slugify normalizes a title or slug into its canonical URL-safe form:
// lowercase, spaces replaced with underscores, apostrophes removed.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "'", "")
	return s
}
