package handlers

import (
	"log"

	"diskon/internal/forms"
	"diskon/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SaleHandler handles HTTP requests for sales.
type SaleHandler struct {
	service *services.SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(service *services.SaleService) *SaleHandler {
	return &SaleHandler{
		service: service,
	}
}

// RegisterRoutes registers the sale routes with the Fiber app.
func (h *SaleHandler) RegisterRoutes(router fiber.Router) {
	saleRoutes := router.Group("/sales")
	saleRoutes.Get("/", h.HandleGetSales)
	saleRoutes.Get("/:id", h.HandleGetSaleByID)
	saleRoutes.Post("/", h.HandleCreateSale)
	saleRoutes.Put("/:id", h.HandleUpdateSale)
	saleRoutes.Delete("/:id", h.HandleDeleteSale)
}

// HandleGetSales retrieves all sales.
func (h *SaleHandler) HandleGetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllSales()
	if err != nil {
		log.Printf("Error getting all sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve sales",
			"error":   err.Error(),
		})
	}
	return c.JSON(sales)
}

// HandleGetSaleByID retrieves a single sale by its ID.
func (h *SaleHandler) HandleGetSaleByID(c *fiber.Ctx) error {
	saleID := c.Params("id")
	sale, err := h.service.GetSaleByID(saleID)
	if err != nil {
		log.Printf("Error getting sale by ID %s: %v", saleID, err)
		return renderServiceError(c, err)
	}
	return c.JSON(sale)
}

// HandleCreateSale creates a new sale from the submitted form.
func (h *SaleHandler) HandleCreateSale(c *fiber.Ctx) error {
	var form forms.SaleForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing sale request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	sale, err := h.service.CreateSale(&form)
	if err != nil {
		log.Printf("Error creating sale: %v", err)
		return renderServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// HandleUpdateSale updates an existing sale from the submitted form.
func (h *SaleHandler) HandleUpdateSale(c *fiber.Ctx) error {
	saleID := c.Params("id")
	var form forms.SaleForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing sale request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	sale, err := h.service.UpdateSale(saleID, &form)
	if err != nil {
		log.Printf("Error updating sale %s: %v", saleID, err)
		return renderServiceError(c, err)
	}
	return c.JSON(sale)
}

// HandleDeleteSale deletes a sale by its ID.
func (h *SaleHandler) HandleDeleteSale(c *fiber.Ctx) error {
	saleID := c.Params("id")
	if err := h.service.DeleteSale(saleID); err != nil {
		log.Printf("Error deleting sale %s: %v", saleID, err)
		return renderServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Sale deleted successfully",
	})
}
