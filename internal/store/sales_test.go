package store

import (
	"errors"
	"testing"
	"time"
)

func TestAddSalesReceipt(t *testing.T) {
	s := newTestStore(t)

	clientID, err := s.CreateClient(janeDoe())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	id, err := s.AddSalesReceipt(clientID, "42", 120.50, date)
	if err != nil {
		t.Fatalf("add receipt: %v", err)
	}
	r, err := s.GetSalesReceipt(id)
	if err != nil {
		t.Fatalf("get receipt: %v", err)
	}
	if r.CustomerID != clientID || r.TotalAmount != 120.50 {
		t.Fatalf("receipt mismatch: %+v", r)
	}
	if !r.Date.Equal(date) {
		t.Fatalf("date mismatch: %v", r.Date)
	}
	if r.Description != "Receipt #42" {
		t.Fatalf("unexpected description: %q", r.Description)
	}
}

func TestAddSalesReceiptUnknownClient(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddSalesReceipt(9999, "1", 10, time.Now())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	// the failed create must not leave a receipt behind
	receipts, err := s.ListSalesReceipts(0)
	if err != nil {
		t.Fatalf("list receipts: %v", err)
	}
	if len(receipts) != 0 {
		t.Fatalf("orphan receipt written: %+v", receipts)
	}
}

func TestAddSalesReceiptInvalidInput(t *testing.T) {
	s := newTestStore(t)

	clientID, err := s.CreateClient(janeDoe())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	var ve *ValidationError
	if _, err := s.AddSalesReceipt(clientID, "1", -5, time.Now()); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for negative amount, got %v", err)
	}
	if ve.Violations["total_amount"] == "" {
		t.Fatalf("expected total_amount violation, got %v", ve.Violations)
	}

	if _, err := s.AddSalesReceipt(clientID, "1", 10, time.Time{}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for zero date, got %v", err)
	}
	if ve.Violations["date"] == "" {
		t.Fatalf("expected date violation, got %v", ve.Violations)
	}
}

func TestSalesReceiptImageRoundTrip(t *testing.T) {
	s := newTestStore(t)

	clientID, err := s.CreateClient(janeDoe())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	blob := []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3}
	id, err := s.CreateSalesReceipt(SalesReceiptInput{
		CustomerID:    clientID,
		Date:          time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		TotalAmount:   80,
		TaxAmount:     12.8,
		PaymentMethod: "cash",
		Description:   "group session",
		ReceiptImage:  blob,
		Category:      "therapy",
		Notes:         "paid on site",
	})
	if err != nil {
		t.Fatalf("create receipt: %v", err)
	}
	r, err := s.GetSalesReceipt(id)
	if err != nil {
		t.Fatalf("get receipt: %v", err)
	}
	if string(r.ReceiptImage) != string(blob) {
		t.Fatalf("image blob mismatch: %v", r.ReceiptImage)
	}
	if r.PaymentMethod != "cash" || r.Category != "therapy" || r.Notes != "paid on site" {
		t.Fatalf("field mismatch: %+v", r)
	}
}

func TestListSalesReceiptsScoped(t *testing.T) {
	s := newTestStore(t)

	a, err := s.CreateClient(janeDoe())
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	other := ClientInput{FirstName: "Max", LastName: "Muster", Email: "max@x.com", PhoneNumber: "555-0200", Address: "2 St"}
	b, err := s.CreateClient(other)
	if err != nil {
		t.Fatalf("create b: %v", err)
	}
	for i, clientID := range []uint{a, a, b} {
		if _, err := s.AddSalesReceipt(clientID, "n", float64(10*i), time.Now()); err != nil {
			t.Fatalf("add receipt %d: %v", i, err)
		}
	}

	all, err := s.ListSalesReceipts(0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 receipts, got %d", len(all))
	}
	scoped, err := s.ListSalesReceipts(a)
	if err != nil {
		t.Fatalf("list scoped: %v", err)
	}
	if len(scoped) != 2 {
		t.Fatalf("expected 2 receipts for client %d, got %d", a, len(scoped))
	}
}

func TestUpdateSalesReceipt(t *testing.T) {
	s := newTestStore(t)

	clientID, err := s.CreateClient(janeDoe())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	id, err := s.AddSalesReceipt(clientID, "1", 50, time.Now())
	if err != nil {
		t.Fatalf("add receipt: %v", err)
	}

	in := SalesReceiptInput{
		CustomerID:  clientID,
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: 60,
		Description: "corrected",
	}
	if err := s.UpdateSalesReceipt(id, in); err != nil {
		t.Fatalf("update: %v", err)
	}
	r, err := s.GetSalesReceipt(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if r.TotalAmount != 60 || r.Description != "corrected" {
		t.Fatalf("update not applied: %+v", r)
	}

	if err := s.UpdateSalesReceipt(9999, in); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestProductSaleLifecycle(t *testing.T) {
	s := newTestStore(t)

	clientID, err := s.CreateClient(janeDoe())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	receiptID, err := s.AddSalesReceipt(clientID, "1", 100, time.Now())
	if err != nil {
		t.Fatalf("add receipt: %v", err)
	}
	productID, err := s.CreateProduct(ProductInput{Service: "clay workshop", Price: 25})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	saleID, err := s.CreateProductSale(ProductSaleInput{ReceiptID: receiptID, ProductID: productID, Quantity: 4, Price: 25})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	sale, err := s.GetProductSale(saleID)
	if err != nil {
		t.Fatalf("get sale: %v", err)
	}
	if sale.Quantity != 4 || sale.ProductID != productID {
		t.Fatalf("sale mismatch: %+v", sale)
	}

	// missing parents are NotFound
	if _, err := s.CreateProductSale(ProductSaleInput{ReceiptID: 9999, ProductID: productID, Quantity: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected NotFound for missing receipt, got %v", err)
	}
	if _, err := s.CreateProductSale(ProductSaleInput{ReceiptID: receiptID, ProductID: 9999, Quantity: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected NotFound for missing product, got %v", err)
	}

	// a receipt with sale lines cannot be deleted
	err = s.DeleteSalesReceipt(receiptID)
	var cv *ConstraintViolation
	if !errors.As(err, &cv) {
		t.Fatalf("expected ConstraintViolation, got %v", err)
	}
	// neither can the product
	if err := s.DeleteProduct(productID); !errors.As(err, &cv) {
		t.Fatalf("expected ConstraintViolation, got %v", err)
	}

	// after removing the line, both go away cleanly
	if err := s.DeleteProductSale(saleID); err != nil {
		t.Fatalf("delete sale: %v", err)
	}
	if err := s.DeleteSalesReceipt(receiptID); err != nil {
		t.Fatalf("delete receipt: %v", err)
	}
	if err := s.DeleteProduct(productID); err != nil {
		t.Fatalf("delete product: %v", err)
	}
}
