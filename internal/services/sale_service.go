package services

import (
	"fmt"
	"log"

	"diskon/internal/forms"
	"diskon/internal/models"
	"diskon/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// DiscountEventPublisher publishes discount lifecycle events so other
// systems (storefront cache, notifications) can react to dashboard
// changes.
type DiscountEventPublisher interface {
	PublishDiscountEvent(event map[string]interface{}) error
}

// SaleService handles business logic related to sales.
type SaleService struct {
	saleRepo     repositories.SaleRepository
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	publisher    DiscountEventPublisher
	validate     *validator.Validate
}

// NewSaleService creates a new SaleService.
func NewSaleService(
	saleRepo repositories.SaleRepository,
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	publisher DiscountEventPublisher,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		validate:     forms.NewValidator(),
	}
}

// GetAllSales retrieves all sales.
func (s *SaleService) GetAllSales() ([]models.Sale, error) {
	return s.saleRepo.GetAll()
}

// GetSaleByID retrieves a single sale by its ID.
func (s *SaleService) GetSaleByID(id string) (*models.Sale, error) {
	return s.saleRepo.GetByID(id)
}

// CreateSale validates the sale form and persists a new sale.
// Validation failures come back as forms.FieldErrors.
func (s *SaleService) CreateSale(form *forms.SaleForm) (*models.Sale, error) {
	if err := form.Validate(s.validate); err != nil {
		return nil, err
	}
	products, categories, err := s.resolveCatalog(form)
	if err != nil {
		return nil, err
	}

	sale := &models.Sale{}
	form.Apply(sale, products, categories)

	if err := s.saleRepo.Create(sale); err != nil {
		return nil, fmt.Errorf("failed to create sale in repository: %w", err)
	}

	s.publishEvent("sale.created", sale.ID, sale.Name)
	return sale, nil
}

// UpdateSale validates the sale form and applies it to an existing sale.
func (s *SaleService) UpdateSale(id string, form *forms.SaleForm) (*models.Sale, error) {
	sale, err := s.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := form.Validate(s.validate); err != nil {
		return nil, err
	}
	products, categories, err := s.resolveCatalog(form)
	if err != nil {
		return nil, err
	}

	form.Apply(sale, products, categories)

	if err := s.saleRepo.Update(sale); err != nil {
		return nil, fmt.Errorf("failed to update sale in repository: %w", err)
	}

	s.publishEvent("sale.updated", sale.ID, sale.Name)
	return sale, nil
}

// DeleteSale deletes a sale by its ID.
func (s *SaleService) DeleteSale(id string) error {
	if err := s.saleRepo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("sale.deleted", id, "")
	return nil
}

// resolveCatalog loads the products and categories the form refers to.
// Unknown IDs become field-scoped errors, matching how a dropdown
// rejects a choice that is no longer offered.
func (s *SaleService) resolveCatalog(form *forms.SaleForm) ([]models.Product, []models.Category, error) {
	errs := forms.FieldErrors{}

	products := make([]models.Product, 0, len(form.ProductIDs))
	for _, id := range form.ProductIDs {
		product, err := s.productRepo.GetByID(id)
		if err != nil {
			errs.Add("product_ids", fmt.Sprintf("Product %s does not exist", id))
			continue
		}
		products = append(products, *product)
	}

	categories := make([]models.Category, 0, len(form.CategoryIDs))
	for _, id := range form.CategoryIDs {
		category, err := s.categoryRepo.GetByID(id)
		if err != nil {
			errs.Add("category_ids", fmt.Sprintf("Category %s does not exist", id))
			continue
		}
		categories = append(categories, *category)
	}

	if len(errs) > 0 {
		return nil, nil, errs
	}
	return products, categories, nil
}

// publishEvent publishes a discount lifecycle event. Publishing is best
// effort; a broker outage must not fail the dashboard operation.
func (s *SaleService) publishEvent(eventType, saleID, name string) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}
	event := map[string]interface{}{
		"event":   eventType,
		"sale_id": saleID,
	}
	if name != "" {
		event["name"] = name
	}
	if err := s.publisher.PublishDiscountEvent(event); err != nil {
		log.Printf("Warning: Failed to publish %s event for sale %s: %v", eventType, saleID, err)
	}
}
