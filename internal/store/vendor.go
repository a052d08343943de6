package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/matt-wil/primalArtTherapy/internal/models"
)

// VendorInput carries the writable fields of a vendor.
type VendorInput struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	Notes         string `json:"notes"`
}

// CreateVendor stores a new vendor and returns its generated id.
func (s *Store) CreateVendor(in VendorInput) (uint, error) {
	if err := checkInput("vendor", in); err != nil {
		return 0, err
	}
	vendor := models.Vendor{
		Name:          in.Name,
		Address:       in.Address,
		ContactPerson: in.ContactPerson,
		ContactNumber: in.ContactNumber,
		Email:         in.Email,
		Notes:         in.Notes,
	}
	if err := s.db.Create(&vendor).Error; err != nil {
		return 0, writeError("vendor", err, nil)
	}
	return vendor.ID, nil
}

// GetVendor loads one vendor by id.
func (s *Store) GetVendor(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := getRow(s.db, &vendor, "vendor", id); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// ListVendors returns every vendor ordered by id.
func (s *Store) ListVendors() ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := s.db.Order("id").Find(&vendors).Error; err != nil {
		return nil, fmt.Errorf("store: list vendors: %w", err)
	}
	return vendors, nil
}

// UpdateVendor replaces the writable fields of an existing vendor.
func (s *Store) UpdateVendor(id uint, in VendorInput) error {
	if err := checkInput("vendor", in); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var vendor models.Vendor
		if err := getRow(tx, &vendor, "vendor", id); err != nil {
			return err
		}
		vendor.Name = in.Name
		vendor.Address = in.Address
		vendor.ContactPerson = in.ContactPerson
		vendor.ContactNumber = in.ContactNumber
		vendor.Email = in.Email
		vendor.Notes = in.Notes
		if err := tx.Save(&vendor).Error; err != nil {
			return writeError("vendor", err, nil)
		}
		return nil
	})
}

// DeleteVendor removes one vendor unless purchase receipts still reference it.
func (s *Store) DeleteVendor(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		n, err := refCount(tx, &models.PurchaseReceipt{}, "vendor_id", id)
		if err != nil {
			return fmt.Errorf("store: delete vendor: %w", err)
		}
		if n > 0 {
			return &ConstraintViolation{Entity: "vendor", Value: fmt.Sprint(id), Ref: "purchase_receipt"}
		}
		return deleteRow(tx, &models.Vendor{}, "vendor", id)
	})
}

// PurchaseReceiptInput carries the writable fields of a purchase receipt.
type PurchaseReceiptInput struct {
	VendorID      uint      `json:"vendor_id" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	TotalAmount   float64   `json:"total_amount" validate:"gte=0"`
	TaxAmount     float64   `json:"tax_amount" validate:"gte=0"`
	PaymentMethod string    `json:"payment_method"`
	Description   string    `json:"description"`
	ReceiptImage  []byte    `json:"receipt_image,omitempty"`
	Category      string    `json:"category"`
	Notes         string    `json:"notes"`
}

// CreatePurchaseReceipt stores a new purchase receipt and returns its
// generated id. The vendor must already exist.
func (s *Store) CreatePurchaseReceipt(in PurchaseReceiptInput) (uint, error) {
	if err := checkInput("purchase_receipt", in); err != nil {
		return 0, err
	}
	receipt := models.PurchaseReceipt{
		VendorID:      in.VendorID,
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
		if err := requireRow(tx, &models.Vendor{}, "vendor", in.VendorID); err != nil {
			return err
		}
		if err := tx.Create(&receipt).Error; err != nil {
			return writeError("purchase_receipt", err, nil)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return receipt.ID, nil
}

// GetPurchaseReceipt loads one purchase receipt by id.
func (s *Store) GetPurchaseReceipt(id uint) (*models.PurchaseReceipt, error) {
	var receipt models.PurchaseReceipt
	if err := getRow(s.db, &receipt, "purchase_receipt", id); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// ListPurchaseReceipts returns purchase receipts ordered by id, scoped to one
// vendor when vendorID is nonzero.
func (s *Store) ListPurchaseReceipts(vendorID uint) ([]models.PurchaseReceipt, error) {
	q := s.db.Order("id")
	if vendorID != 0 {
		q = q.Where("vendor_id = ?", vendorID)
	}
	var receipts []models.PurchaseReceipt
	if err := q.Find(&receipts).Error; err != nil {
		return nil, fmt.Errorf("store: list purchase receipts: %w", err)
	}
	return receipts, nil
}

// UpdatePurchaseReceipt replaces the writable fields of an existing receipt.
func (s *Store) UpdatePurchaseReceipt(id uint, in PurchaseReceiptInput) error {
	if err := checkInput("purchase_receipt", in); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var receipt models.PurchaseReceipt
		if err := getRow(tx, &receipt, "purchase_receipt", id); err != nil {
			return err
		}
		if err := requireRow(tx, &models.Vendor{}, "vendor", in.VendorID); err != nil {
			return err
		}
		receipt.VendorID = in.VendorID
		receipt.Date = in.Date
		receipt.TotalAmount = in.TotalAmount
		receipt.TaxAmount = in.TaxAmount
		receipt.PaymentMethod = in.PaymentMethod
		receipt.Description = in.Description
		receipt.ReceiptImage = in.ReceiptImage
		receipt.Category = in.Category
		receipt.Notes = in.Notes
		if err := tx.Save(&receipt).Error; err != nil {
			return writeError("purchase_receipt", err, nil)
		}
		return nil
	})
}

// DeletePurchaseReceipt removes one purchase receipt.
func (s *Store) DeletePurchaseReceipt(id uint) error {
	return deleteRow(s.db, &models.PurchaseReceipt{}, "purchase_receipt", id)
}
