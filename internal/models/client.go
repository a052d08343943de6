package models

// Client is a therapy client. Email and phone number identify a person
// uniquely across the practice.
type Client struct {
	ID          uint           `gorm:"primaryKey"`
	FirstName   string         `gorm:"not null"`
	LastName    string         `gorm:"not null"`
	Email       string         `gorm:"not null;uniqueIndex"`
	PhoneNumber string         `gorm:"not null;uniqueIndex"`
	Address     string         `gorm:"not null"`
	Notes       *string        // nil when the client has no notes
	Receipts    []SalesReceipt `gorm:"foreignKey:CustomerID"`
}
