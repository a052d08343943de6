package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorLifecycle(t *testing.T) {
	s := newTestStore(t)

	in := VendorInput{
		Name:          "Farben Krause",
		Address:       "Marktstr. 12",
		ContactPerson: "H. Krause",
		ContactNumber: "030-555123",
		Email:         "info@farben-krause.de",
	}
	id, err := s.CreateVendor(in)
	require.NoError(t, err)

	v, err := s.GetVendor(id)
	require.NoError(t, err)
	assert.Equal(t, "Farben Krause", v.Name)
	assert.Equal(t, "H. Krause", v.ContactPerson)

	in.ContactNumber = "030-555999"
	require.NoError(t, s.UpdateVendor(id, in))
	v, err = s.GetVendor(id)
	require.NoError(t, err)
	assert.Equal(t, "030-555999", v.ContactNumber)

	vendors, err := s.ListVendors()
	require.NoError(t, err)
	assert.Len(t, vendors, 1)

	require.NoError(t, s.DeleteVendor(id))
	_, err = s.GetVendor(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateVendorRequiresName(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateVendor(VendorInput{Address: "somewhere"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "vendor", ve.Entity)
	assert.Equal(t, "required", ve.Violations["name"])
}

func TestPurchaseReceiptLifecycle(t *testing.T) {
	s := newTestStore(t)

	vendorID, err := s.CreateVendor(VendorInput{Name: "Farben Krause"})
	require.NoError(t, err)

	in := PurchaseReceiptInput{
		VendorID:      vendorID,
		Date:          time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		TotalAmount:   45.90,
		TaxAmount:     7.33,
		PaymentMethod: "card",
		Description:   "acrylic paint restock",
		Category:      "supplies",
	}
	id, err := s.CreatePurchaseReceipt(in)
	require.NoError(t, err)

	r, err := s.GetPurchaseReceipt(id)
	require.NoError(t, err)
	assert.Equal(t, vendorID, r.VendorID)
	assert.InDelta(t, 45.90, r.TotalAmount, 0.001)

	// vendor with receipts cannot be deleted
	err = s.DeleteVendor(vendorID)
	var cv *ConstraintViolation
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, "purchase_receipt", cv.Ref)

	in.Notes = "reimbursed"
	require.NoError(t, s.UpdatePurchaseReceipt(id, in))
	r, err = s.GetPurchaseReceipt(id)
	require.NoError(t, err)
	assert.Equal(t, "reimbursed", r.Notes)

	require.NoError(t, s.DeletePurchaseReceipt(id))
	require.NoError(t, s.DeleteVendor(vendorID))
}

func TestCreatePurchaseReceiptUnknownVendor(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreatePurchaseReceipt(PurchaseReceiptInput{
		VendorID: 9999,
		Date:     time.Now(),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	receipts, err := s.ListPurchaseReceipts(0)
	require.NoError(t, err)
	assert.Empty(t, receipts)
}
