package services

import (
	"fmt"
	"log"

	"diskon/internal/forms"
	"diskon/internal/models"
	"diskon/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// VoucherService handles business logic related to vouchers.
type VoucherService struct {
	voucherRepo  repositories.VoucherRepository
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	shippingRepo repositories.ShippingRepository
	publisher    DiscountEventPublisher
	validate     *validator.Validate
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(
	voucherRepo repositories.VoucherRepository,
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	shippingRepo repositories.ShippingRepository,
	publisher DiscountEventPublisher,
) *VoucherService {
	return &VoucherService{
		voucherRepo:  voucherRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		shippingRepo: shippingRepo,
		publisher:    publisher,
		validate:     forms.NewValidator(),
	}
}

// GetAllVouchers retrieves all vouchers.
func (s *VoucherService) GetAllVouchers() ([]models.Voucher, error) {
	return s.voucherRepo.GetAll()
}

// GetVoucherByID retrieves a single voucher by its ID.
func (s *VoucherService) GetVoucherByID(id string) (*models.Voucher, error) {
	return s.voucherRepo.GetByID(id)
}

// CountryChoices returns the countries a shipping voucher can be
// limited to, derived from the current shipping method pricing.
func (s *VoucherService) CountryChoices() ([]models.CountryChoice, error) {
	return forms.CountryChoices(s.shippingRepo)
}

// CreateVoucher validates the voucher form, generates a code when none
// was supplied and persists the voucher with the variant fields of the
// other voucher types nulled out.
func (s *VoucherService) CreateVoucher(form *forms.VoucherForm) (*models.Voucher, error) {
	variant, err := s.validateForm(form)
	if err != nil {
		return nil, err
	}

	if err := form.EnsureCode(s.voucherRepo.CodeExists); err != nil {
		return nil, err
	}

	voucher := &models.Voucher{}
	form.Apply(voucher)
	variant.Apply(voucher)

	if err := s.voucherRepo.Create(voucher); err != nil {
		return nil, fmt.Errorf("failed to create voucher in repository: %w", err)
	}

	s.publishEvent("voucher.created", voucher.ID, voucher.Code)
	return voucher, nil
}

// UpdateVoucher validates the voucher form and applies it to an
// existing voucher. The stored code is kept when the form carries none;
// codes are only ever generated at creation.
func (s *VoucherService) UpdateVoucher(id string, form *forms.VoucherForm) (*models.Voucher, error) {
	voucher, err := s.voucherRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if form.Code == "" {
		form.Code = voucher.Code
	}
	variant, err := s.validateForm(form)
	if err != nil {
		return nil, err
	}

	form.Apply(voucher)
	variant.Apply(voucher)

	if err := s.voucherRepo.Update(voucher); err != nil {
		return nil, fmt.Errorf("failed to update voucher in repository: %w", err)
	}

	s.publishEvent("voucher.updated", voucher.ID, voucher.Code)
	return voucher, nil
}

// DeleteVoucher deletes a voucher by its ID.
func (s *VoucherService) DeleteVoucher(id string) error {
	if err := s.voucherRepo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("voucher.deleted", id, "")
	return nil
}

// validateForm runs the common and variant validation and resolves the
// variant form for the voucher type.
func (s *VoucherService) validateForm(form *forms.VoucherForm) (forms.VariantForm, error) {
	if err := form.Validate(s.validate); err != nil {
		return nil, err
	}

	var countries []models.CountryChoice
	if form.Type == models.VoucherTypeShipping {
		var err error
		countries, err = forms.CountryChoices(s.shippingRepo)
		if err != nil {
			return nil, err
		}
	}

	variant, err := forms.VariantFor(form, countries)
	if err != nil {
		return nil, err
	}
	if err := variant.Validate(s.validate); err != nil {
		return nil, err
	}
	if err := s.checkTargets(form); err != nil {
		return nil, err
	}
	return variant, nil
}

// checkTargets verifies that the product or category a targeted voucher
// points at actually exists.
func (s *VoucherService) checkTargets(form *forms.VoucherForm) error {
	errs := forms.FieldErrors{}
	if form.Type == models.VoucherTypeProduct && form.ProductID != "" {
		if _, err := s.productRepo.GetByID(form.ProductID); err != nil {
			errs.Add("product_id", fmt.Sprintf("Product %s does not exist", form.ProductID))
		}
	}
	if form.Type == models.VoucherTypeCategory && form.CategoryID != "" {
		if _, err := s.categoryRepo.GetByID(form.CategoryID); err != nil {
			errs.Add("category_id", fmt.Sprintf("Category %s does not exist", form.CategoryID))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// publishEvent publishes a discount lifecycle event. Publishing is best
// effort; a broker outage must not fail the dashboard operation.
func (s *VoucherService) publishEvent(eventType, voucherID, code string) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}
	event := map[string]interface{}{
		"event":      eventType,
		"voucher_id": voucherID,
	}
	if code != "" {
		event["code"] = code
	}
	if err := s.publisher.PublishDiscountEvent(event); err != nil {
		log.Printf("Warning: Failed to publish %s event for voucher %s: %v", eventType, voucherID, err)
	}
}
