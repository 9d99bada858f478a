package handlers

import (
	"log"

	"diskon/internal/forms"
	"diskon/internal/services"

	"github.com/gofiber/fiber/v2"
)

// VoucherHandler handles HTTP requests for vouchers.
type VoucherHandler struct {
	service *services.VoucherService
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(service *services.VoucherService) *VoucherHandler {
	return &VoucherHandler{
		service: service,
	}
}

// RegisterRoutes registers the voucher routes with the Fiber app.
func (h *VoucherHandler) RegisterRoutes(router fiber.Router) {
	voucherRoutes := router.Group("/vouchers")
	voucherRoutes.Get("/", h.HandleGetVouchers)
	// The countries route must be registered before /:id so "countries"
	// is not captured as a voucher ID.
	voucherRoutes.Get("/countries", h.HandleGetCountryChoices)
	voucherRoutes.Get("/:id", h.HandleGetVoucherByID)
	voucherRoutes.Post("/", h.HandleCreateVoucher)
	voucherRoutes.Put("/:id", h.HandleUpdateVoucher)
	voucherRoutes.Delete("/:id", h.HandleDeleteVoucher)
}

// HandleGetVouchers retrieves all vouchers.
func (h *VoucherHandler) HandleGetVouchers(c *fiber.Ctx) error {
	vouchers, err := h.service.GetAllVouchers()
	if err != nil {
		log.Printf("Error getting all vouchers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve vouchers",
			"error":   err.Error(),
		})
	}
	return c.JSON(vouchers)
}

// HandleGetCountryChoices returns the countries a shipping voucher can
// be limited to, for the dashboard dropdown.
func (h *VoucherHandler) HandleGetCountryChoices(c *fiber.Ctx) error {
	choices, err := h.service.CountryChoices()
	if err != nil {
		log.Printf("Error getting country choices: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve country choices",
			"error":   err.Error(),
		})
	}
	return c.JSON(choices)
}

// HandleGetVoucherByID retrieves a single voucher by its ID.
func (h *VoucherHandler) HandleGetVoucherByID(c *fiber.Ctx) error {
	voucherID := c.Params("id")
	voucher, err := h.service.GetVoucherByID(voucherID)
	if err != nil {
		log.Printf("Error getting voucher by ID %s: %v", voucherID, err)
		return renderServiceError(c, err)
	}
	return c.JSON(voucher)
}

// HandleCreateVoucher creates a new voucher from the submitted form.
// When no code is supplied one is generated.
func (h *VoucherHandler) HandleCreateVoucher(c *fiber.Ctx) error {
	var form forms.VoucherForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing voucher request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	voucher, err := h.service.CreateVoucher(&form)
	if err != nil {
		log.Printf("Error creating voucher: %v", err)
		return renderServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(voucher)
}

// HandleUpdateVoucher updates an existing voucher from the submitted form.
func (h *VoucherHandler) HandleUpdateVoucher(c *fiber.Ctx) error {
	voucherID := c.Params("id")
	var form forms.VoucherForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing voucher request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	voucher, err := h.service.UpdateVoucher(voucherID, &form)
	if err != nil {
		log.Printf("Error updating voucher %s: %v", voucherID, err)
		return renderServiceError(c, err)
	}
	return c.JSON(voucher)
}

// HandleDeleteVoucher deletes a voucher by its ID.
func (h *VoucherHandler) HandleDeleteVoucher(c *fiber.Ctx) error {
	voucherID := c.Params("id")
	if err := h.service.DeleteVoucher(voucherID); err != nil {
		log.Printf("Error deleting voucher %s: %v", voucherID, err)
		return renderServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Voucher deleted successfully",
	})
}
