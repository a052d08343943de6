package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/matt-wil/primalArtTherapy/internal/models"
)

// SalesReceiptInput carries the writable fields of a sales receipt.
type SalesReceiptInput struct {
	CustomerID    uint      `json:"customer_id" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	TotalAmount   float64   `json:"total_amount" validate:"gte=0"`
	TaxAmount     float64   `json:"tax_amount" validate:"gte=0"`
	PaymentMethod string    `json:"payment_method"`
	Description   string    `json:"description"`
	ReceiptImage  []byte    `json:"receipt_image,omitempty"`
	Category      string    `json:"category"`
	Notes         string    `json:"notes"`
}

// AddSalesReceipt records a numbered receipt for an existing client. This is
// the quick-entry path used by the receipt form; CreateSalesReceipt takes the
// full field set.
func (s *Store) AddSalesReceipt(clientID uint, receiptNumber string, amount float64, date time.Time) (uint, error) {
	return s.CreateSalesReceipt(SalesReceiptInput{
		CustomerID:  clientID,
		Date:        date,
		TotalAmount: amount,
		Description: fmt.Sprintf("Receipt #%s", receiptNumber),
	})
}

// CreateSalesReceipt stores a new sales receipt and returns its generated id.
// The client must already exist.
func (s *Store) CreateSalesReceipt(in SalesReceiptInput) (uint, error) {
	if err := checkInput("sales_receipt", in); err != nil {
		return 0, err
	}
	receipt := models.SalesReceipt{
		CustomerID:    in.CustomerID,
		Date:          in.Date,
		TotalAmount:   in.TotalAmount,
		TaxAmount:     in.TaxAmount,
		PaymentMethod: in.PaymentMethod,
		Description:   in.Description,
		ReceiptImage:  in.ReceiptImage,
		Category:      in.Category,
		Notes:         in.Notes,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Client{}, "client", in.CustomerID); err != nil {
			return err
		}
		if err := tx.Create(&receipt).Error; err != nil {
			return writeError("sales_receipt", err, nil)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return receipt.ID, nil
}

// GetSalesReceipt loads one sales receipt by id.
func (s *Store) GetSalesReceipt(id uint) (*models.SalesReceipt, error) {
	var receipt models.SalesReceipt
	if err := getRow(s.db, &receipt, "sales_receipt", id); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// ListSalesReceipts returns sales receipts ordered by id, scoped to one
// client when customerID is nonzero.
func (s *Store) ListSalesReceipts(customerID uint) ([]models.SalesReceipt, error) {
	q := s.db.Order("id")
	if customerID != 0 {
		q = q.Where("customer_id = ?", customerID)
	}
	var receipts []models.SalesReceipt
	if err := q.Find(&receipts).Error; err != nil {
		return nil, fmt.Errorf("store: list sales receipts: %w", err)
	}
	return receipts, nil
}

// UpdateSalesReceipt replaces the writable fields of an existing receipt.
func (s *Store) UpdateSalesReceipt(id uint, in SalesReceiptInput) error {
	if err := checkInput("sales_receipt", in); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var receipt models.SalesReceipt
		if err := getRow(tx, &receipt, "sales_receipt", id); err != nil {
			return err
		}
		if err := requireRow(tx, &models.Client{}, "client", in.CustomerID); err != nil {
			return err
		}
		receipt.CustomerID = in.CustomerID
		receipt.Date = in.Date
		receipt.TotalAmount = in.TotalAmount
		receipt.TaxAmount = in.TaxAmount
		receipt.PaymentMethod = in.PaymentMethod
		receipt.Description = in.Description
		receipt.ReceiptImage = in.ReceiptImage
		receipt.Category = in.Category
		receipt.Notes = in.Notes
		if err := tx.Save(&receipt).Error; err != nil {
			return writeError("sales_receipt", err, nil)
		}
		return nil
	})
}

// DeleteSalesReceipt removes one receipt unless product sale lines still
// reference it.
func (s *Store) DeleteSalesReceipt(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		n, err := refCount(tx, &models.ProductSale{}, "receipt_id", id)
		if err != nil {
			return fmt.Errorf("store: delete sales receipt: %w", err)
		}
		if n > 0 {
			return &ConstraintViolation{Entity: "sales_receipt", Value: fmt.Sprint(id), Ref: "product_sale"}
		}
		return deleteRow(tx, &models.SalesReceipt{}, "sales_receipt", id)
	})
}

// ProductSaleInput links a receipt to a sold product.
type ProductSaleInput struct {
	ReceiptID uint    `json:"receipt_id" validate:"required"`
	ProductID uint    `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gte=0"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// CreateProductSale stores a new sale line. Receipt and product must exist.
func (s *Store) CreateProductSale(in ProductSaleInput) (uint, error) {
	if err := checkInput("product_sale", in); err != nil {
		return 0, err
	}
	sale := models.ProductSale{
		ReceiptID: in.ReceiptID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Price:     in.Price,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.SalesReceipt{}, "sales_receipt", in.ReceiptID); err != nil {
			return err
		}
		if err := requireRow(tx, &models.Product{}, "product", in.ProductID); err != nil {
			return err
		}
		if err := tx.Create(&sale).Error; err != nil {
			return writeError("product_sale", err, nil)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sale.ID, nil
}

// GetProductSale loads one sale line by id.
func (s *Store) GetProductSale(id uint) (*models.ProductSale, error) {
	var sale models.ProductSale
	if err := getRow(s.db, &sale, "product_sale", id); err != nil {
		return nil, err
	}
	return &sale, nil
}

// ListProductSales returns sale lines ordered by id, scoped to one receipt
// when receiptID is nonzero.
func (s *Store) ListProductSales(receiptID uint) ([]models.ProductSale, error) {
	q := s.db.Order("id")
	if receiptID != 0 {
		q = q.Where("receipt_id = ?", receiptID)
	}
	var sales []models.ProductSale
	if err := q.Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("store: list product sales: %w", err)
	}
	return sales, nil
}

// UpdateProductSale replaces the writable fields of an existing sale line.
func (s *Store) UpdateProductSale(id uint, in ProductSaleInput) error {
	if err := checkInput("product_sale", in); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var sale models.ProductSale
		if err := getRow(tx, &sale, "product_sale", id); err != nil {
			return err
		}
		if err := requireRow(tx, &models.SalesReceipt{}, "sales_receipt", in.ReceiptID); err != nil {
			return err
		}
		if err := requireRow(tx, &models.Product{}, "product", in.ProductID); err != nil {
			return err
		}
		sale.ReceiptID = in.ReceiptID
		sale.ProductID = in.ProductID
		sale.Quantity = in.Quantity
		sale.Price = in.Price
		if err := tx.Save(&sale).Error; err != nil {
			return writeError("product_sale", err, nil)
		}
		return nil
	})
}

// DeleteProductSale removes one sale line.
func (s *Store) DeleteProductSale(id uint) error {
	return deleteRow(s.db, &models.ProductSale{}, "product_sale", id)
}
