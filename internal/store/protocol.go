package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/matt-wil/primalArtTherapy/internal/models"
)

// ProtocolInput carries the writable fields of a session protocol.
type ProtocolInput struct {
	ClientID     uint      `json:"client_id" validate:"required"`
	ProtocolText string    `json:"protocol_text" validate:"required"`
	Date         time.Time `json:"date" validate:"required"`
}

// CreateProtocol stores a new protocol and returns its generated id. The
// client must already exist.
func (s *Store) CreateProtocol(in ProtocolInput) (uint, error) {
	if err := checkInput("protocol", in); err != nil {
		return 0, err
	}
	protocol := models.Protocol{ClientID: in.ClientID, ProtocolText: in.ProtocolText, Date: in.Date}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Client{}, "client", in.ClientID); err != nil {
			return err
		}
		if err := tx.Create(&protocol).Error; err != nil {
			return writeError("protocol", err, nil)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return protocol.ID, nil
}

// GetProtocol loads one protocol by id.
func (s *Store) GetProtocol(id uint) (*models.Protocol, error) {
	var protocol models.Protocol
	if err := getRow(s.db, &protocol, "protocol", id); err != nil {
		return nil, err
	}
	return &protocol, nil
}

// ListProtocols returns protocols ordered by id, scoped to one client when
// clientID is nonzero.
func (s *Store) ListProtocols(clientID uint) ([]models.Protocol, error) {
	q := s.db.Order("id")
	if clientID != 0 {
		q = q.Where("client_id = ?", clientID)
	}
	var protocols []models.Protocol
	if err := q.Find(&protocols).Error; err != nil {
		return nil, fmt.Errorf("store: list protocols: %w", err)
	}
	return protocols, nil
}

// UpdateProtocol replaces the writable fields of an existing protocol.
func (s *Store) UpdateProtocol(id uint, in ProtocolInput) error {
	if err := checkInput("protocol", in); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var protocol models.Protocol
		if err := getRow(tx, &protocol, "protocol", id); err != nil {
			return err
		}
		if err := requireRow(tx, &models.Client{}, "client", in.ClientID); err != nil {
			return err
		}
		protocol.ClientID = in.ClientID
		protocol.ProtocolText = in.ProtocolText
		protocol.Date = in.Date
		if err := tx.Save(&protocol).Error; err != nil {
			return writeError("protocol", err, nil)
		}
		return nil
	})
}

// DeleteProtocol removes one protocol.
func (s *Store) DeleteProtocol(id uint) error {
	return deleteRow(s.db, &models.Protocol{}, "protocol", id)
}
