package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/matt-wil/primalArtTherapy/internal/models"
)

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Service string  `json:"service" validate:"required"`
	Details string  `json:"details"`
	Price   float64 `json:"price" validate:"gte=0"`
}

// CreateProduct stores a new product and returns its generated id.
func (s *Store) CreateProduct(in ProductInput) (uint, error) {
	if err := checkInput("product", in); err != nil {
		return 0, err
	}
	product := models.Product{Service: in.Service, Details: in.Details, Price: in.Price}
	if err := s.db.Create(&product).Error; err != nil {
		return 0, writeError("product", err, nil)
	}
	return product.ID, nil
}

// GetProduct loads one product by id.
func (s *Store) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := getRow(s.db, &product, "product", id); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns every product ordered by id.
func (s *Store) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("store: list products: %w", err)
	}
	return products, nil
}

// UpdateProduct replaces the writable fields of an existing product.
func (s *Store) UpdateProduct(id uint, in ProductInput) error {
	if err := checkInput("product", in); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := getRow(tx, &product, "product", id); err != nil {
			return err
		}
		product.Service = in.Service
		product.Details = in.Details
		product.Price = in.Price
		if err := tx.Save(&product).Error; err != nil {
			return writeError("product", err, nil)
		}
		return nil
	})
}

// DeleteProduct removes one product unless sale lines still reference it.
func (s *Store) DeleteProduct(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		n, err := refCount(tx, &models.ProductSale{}, "product_id", id)
		if err != nil {
			return fmt.Errorf("store: delete product: %w", err)
		}
		if n > 0 {
			return &ConstraintViolation{Entity: "product", Value: fmt.Sprint(id), Ref: "product_sale"}
		}
		return deleteRow(tx, &models.Product{}, "product", id)
	})
}
