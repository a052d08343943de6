package models

import "time"

// Purchase side: suppliers and the receipts for what was bought from them.
type Vendor struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	Address       string
	ContactPerson string
	ContactNumber string
	Email         string
	Notes         string
	Receipts      []PurchaseReceipt `gorm:"foreignKey:VendorID"`
}

// PurchaseReceipt mirrors SalesReceipt for the buying side.
type PurchaseReceipt struct {
	ID            uint      `gorm:"primaryKey"`
	VendorID      uint      `gorm:"not null;index"` // FK to Vendor
	Date          time.Time `gorm:"not null"`
	TotalAmount   float64
	TaxAmount     float64
	PaymentMethod string
	Description   string
	ReceiptImage  []byte
	Category      string
	Notes         string
}
