package services

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"tokobaju/internal/apperrors"
	"tokobaju/internal/models"
	"tokobaju/internal/repositories"
	"tokobaju/internal/seed"
)

// SeedService wipes the store and repopulates it with fixture data.
type SeedService struct {
	userRepo repositories.UserRepository
	products *ProductService
}

// NewSeedService creates a new SeedService.
func NewSeedService(userRepo repositories.UserRepository, products *ProductService) *SeedService {
	return &SeedService{
		userRepo: userRepo,
		products: products,
	}
}

// Run deletes all products and users, then inserts the fixture users and
// the fixture catalog owned by the seeded admin.
func (s *SeedService) Run() error {
	if err := s.products.DeleteAll(); err != nil {
		return err
	}
	if err := s.userRepo.DeleteAll(); err != nil {
		log.Printf("Seed: failed to wipe users: %v", err)
		return apperrors.ErrInternal
	}

	var admin *models.User
	for _, data := range seed.Users() {
		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Seed: failed to hash password: %v", err)
			return apperrors.ErrInternal
		}
		user := models.User{
			Email:    NormalizeEmail(data.Email),
			Password: string(hashed),
			FullName: data.FullName,
			Roles:    data.Roles,
			IsActive: true,
		}
		if err := s.userRepo.Create(&user); err != nil {
			log.Printf("Seed: failed to create user %s: %v", data.Email, err)
			return apperrors.ErrInternal
		}
		if admin == nil {
			admin = &user
		}
	}
	if admin == nil {
		return fmt.Errorf("seed data contains no users")
	}

	inputs := make([]ProductInput, 0, len(seed.Products()))
	for _, data := range seed.Products() {
		inputs = append(inputs, ProductInput{
			Title:       data.Title,
			Description: data.Description,
			Price:       data.Price,
			Stock:       data.Stock,
			Sizes:       data.Sizes,
			Gender:      data.Gender,
			Tags:        data.Tags,
			Images:      data.Images,
		})
	}
	return s.products.CreateBatch(inputs, admin)
}
