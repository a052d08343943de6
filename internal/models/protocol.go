package models

import "time"

// Protocol is a dated session note attached to a client.
type Protocol struct {
	ID           uint `gorm:"primaryKey"`
	ClientID     uint `gorm:"not null;index"` // FK to Client
	ProtocolText string
	Date         time.Time
}
