package models

import "time"

// Sales side: receipts issued to clients and the product lines sold on them.
type SalesReceipt struct {
	ID            uint      `gorm:"primaryKey"`
	CustomerID    uint      `gorm:"not null;index"` // FK to Client
	Date          time.Time `gorm:"not null"`
	TotalAmount   float64
	TaxAmount     float64
	PaymentMethod string
	Description   string
	ReceiptImage  []byte // scanned receipt, optional
	Category      string
	Notes         string
	Products      []ProductSale `gorm:"foreignKey:ReceiptID"`
}

// ProductSale links a receipt to a sold product.
type ProductSale struct {
	ID        uint `gorm:"primaryKey"`
	ReceiptID uint `gorm:"not null;index"` // FK to SalesReceipt
	ProductID uint `gorm:"not null"`       // FK to Product
	Quantity  int
	Price     float64
}
