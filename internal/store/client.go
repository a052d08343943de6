package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/matt-wil/primalArtTherapy/internal/models"
)

// ClientInput carries the writable fields of a client. Notes stays nil when
// the client has none.
type ClientInput struct {
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	Email       string  `json:"email" validate:"required"`
	PhoneNumber string  `json:"phone_number" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	Notes       *string `json:"notes,omitempty"`
}

func (in ClientInput) uniqueValues() map[string]string {
	return map[string]string{"email": in.Email, "phone_number": in.PhoneNumber}
}

// CreateClient stores a new client and returns its generated id.
func (s *Store) CreateClient(in ClientInput) (uint, error) {
	if err := checkInput("client", in); err != nil {
		return 0, err
	}
	client := models.Client{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		Notes:       in.Notes,
	}
	if err := s.db.Create(&client).Error; err != nil {
		return 0, writeError("client", err, in.uniqueValues())
	}
	return client.ID, nil
}

// GetClient loads one client by id.
func (s *Store) GetClient(id uint) (*models.Client, error) {
	var client models.Client
	if err := getRow(s.db, &client, "client", id); err != nil {
		return nil, err
	}
	return &client, nil
}

// ListClients returns every client ordered by id.
func (s *Store) ListClients() ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.Order("id").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("store: list clients: %w", err)
	}
	return clients, nil
}

// FindClients filters clients by case-sensitive substring match. name matches
// either name field; empty criteria are skipped; all given criteria must
// match. SQLite LIKE folds ASCII case, hence instr.
func (s *Store) FindClients(name, email, phone string) ([]models.Client, error) {
	q := s.db.Model(&models.Client{})
	if name != "" {
		q = q.Where("(instr(first_name, ?) > 0 OR instr(last_name, ?) > 0)", name, name)
	}
	if email != "" {
		q = q.Where("instr(email, ?) > 0", email)
	}
	if phone != "" {
		q = q.Where("instr(phone_number, ?) > 0", phone)
	}
	var clients []models.Client
	if err := q.Order("id").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("store: find clients: %w", err)
	}
	return clients, nil
}

// GetClientByDetails returns the first client matching every field exactly,
// or nil when none does. A missing match is a normal outcome, not an error.
func (s *Store) GetClientByDetails(in ClientInput) (*models.Client, error) {
	q := s.db.Where(
		"first_name = ? AND last_name = ? AND email = ? AND phone_number = ? AND address = ?",
		in.FirstName, in.LastName, in.Email, in.PhoneNumber, in.Address,
	)
	if in.Notes == nil {
		q = q.Where("notes IS NULL")
	} else {
		q = q.Where("notes = ?", *in.Notes)
	}
	var client models.Client
	err := q.First(&client).Error
	switch {
	case err == nil:
		return &client, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("store: get client by details: %w", err)
	}
}

// UpdateClient replaces the writable fields of an existing client. The same
// validation and uniqueness rules as CreateClient apply.
func (s *Store) UpdateClient(id uint, in ClientInput) error {
	if err := checkInput("client", in); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := getRow(tx, &client, "client", id); err != nil {
			return err
		}
		client.FirstName = in.FirstName
		client.LastName = in.LastName
		client.Email = in.Email
		client.PhoneNumber = in.PhoneNumber
		client.Address = in.Address
		client.Notes = in.Notes
		if err := tx.Save(&client).Error; err != nil {
			return writeError("client", err, in.uniqueValues())
		}
		return nil
	})
}

// DeleteClient removes one client. A client still referenced by sales
// receipts or protocols is not deleted; the caller must remove those first.
func (s *Store) DeleteClient(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, dep := range []struct {
			model  any
			column string
			name   string
		}{
			{&models.SalesReceipt{}, "customer_id", "sales_receipt"},
			{&models.Protocol{}, "client_id", "protocol"},
		} {
			n, err := refCount(tx, dep.model, dep.column, id)
			if err != nil {
				return fmt.Errorf("store: delete client: %w", err)
			}
			if n > 0 {
				return &ConstraintViolation{Entity: "client", Value: fmt.Sprint(id), Ref: dep.name}
			}
		}
		return deleteRow(tx, &models.Client{}, "client", id)
	})
}
