package models

// Product is a service or item sold by the practice.
type Product struct {
	ID      uint   `gorm:"primaryKey"`
	Service string `gorm:"not null"`
	Details string
	Price   float64
}
