package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tokobaju/internal/middleware"
	"tokobaju/internal/models"
	"tokobaju/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog. Mutating
// routes are gated to admin and super-user roles.
type ProductHandler struct {
	productService *services.ProductService
	authService    *services.AuthService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService, authService *services.AuthService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		authService:    authService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	auth := middleware.AuthRequired(h.authService)
	gate := middleware.RoleRequired(models.RoleAdmin, models.RoleSuperUser)

	products := router.Group("/products")
	products.Get("/", h.HandleList)
	products.Get("/:term", h.HandleGet)
	products.Post("/", auth, gate, h.HandleCreate)
	products.Patch("/:id", auth, gate, h.HandleUpdate)
	products.Delete("/:id", auth, gate, h.HandleDelete)
}

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=3"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Price       float64  `json:"price" validate:"omitempty,gte=0"`
	Stock       int      `json:"stock" validate:"omitempty,gte=0"`
	Sizes       []string `json:"sizes" validate:"required"`
	Gender      string   `json:"gender" validate:"required,oneof=men women kid unisex"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// HandleCreate creates a product owned by the acting user.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product body: %v", err)
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	product, err := h.productService.Create(services.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		Slug:        req.Slug,
		Price:       req.Price,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Gender:      req.Gender,
		Tags:        req.Tags,
		Images:      req.Images,
	}, middleware.CurrentUser(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleList returns a page of products.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	offset := c.QueryInt("offset", 0)

	products, total, err := h.productService.FindAll(limit, offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"data":  products,
		"total": total,
	})
}

// HandleGet looks a product up by id, title or slug.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	product, err := h.productService.FindOne(c.Params("term"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(product)
}

// UpdateProductRequest represents a partial product update. Nil fields are
// untouched; a non-nil images list replaces the whole image set.
type UpdateProductRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=3"`
	Description *string   `json:"description"`
	Slug        *string   `json:"slug"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Stock       *int      `json:"stock" validate:"omitempty,gte=0"`
	Sizes       *[]string `json:"sizes"`
	Gender      *string   `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Tags        *[]string `json:"tags"`
	Images      *[]string `json:"images"`
}

// HandleUpdate applies a partial update, replacing the image set and
// reassigning ownership transactionally.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return badRequest(c, "Product id must be a UUID")
	}

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product body: %v", err)
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	product, err := h.productService.Update(id, services.ProductPatch{
		Title:       req.Title,
		Description: req.Description,
		Slug:        req.Slug,
		Price:       req.Price,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Gender:      req.Gender,
		Tags:        req.Tags,
		Images:      req.Images,
	}, middleware.CurrentUser(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(product)
}

// HandleDelete removes a product and its images.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return badRequest(c, "Product id must be a UUID")
	}
	if err := h.productService.Delete(id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted",
	})
}
