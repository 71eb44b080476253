package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"tokobaju/internal/services"
)

// FileHandler handles product image upload and retrieval.
type FileHandler struct {
	fileService *services.FileService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fileService *services.FileService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
	}
}

// RegisterRoutes registers the file routes with the Fiber app.
func (h *FileHandler) RegisterRoutes(router fiber.Router) {
	files := router.Group("/files")
	files.Post("/product", h.HandleUpload)
	files.Get("/product/:imageName", h.HandleGetImage)
}

// HandleUpload stores an uploaded product image under a fresh UUID name and
// returns the absolute URL it is served from.
func (h *FileHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "A file is required")
	}

	storedName, err := h.fileService.NameFor(fileHeader.Filename)
	if err != nil {
		return badRequest(c, err.Error())
	}

	destination, err := h.fileService.StorePath(storedName)
	if err != nil {
		log.Printf("Failed to resolve upload destination: %v", err)
		return errorResponse(c, err)
	}
	if err := c.SaveFile(fileHeader, destination); err != nil {
		log.Printf("Failed to save uploaded file: %v", err)
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"secureUrl": h.fileService.SecureURL(storedName),
	})
}

// HandleGetImage serves a stored product image.
func (h *FileHandler) HandleGetImage(c *fiber.Ctx) error {
	path, err := h.fileService.ResolveImage(c.Params("imageName"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.SendFile(path)
}
