package store_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/invoice-studio/models"
	"github.com/yourusername/invoice-studio/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestListEmpty(t *testing.T) {
	s := newTestStore(t)

	invoices, err := s.List()
	assert.NoError(t, err)
	assert.NotNil(t, invoices)
	assert.Len(t, invoices, 0)
}

func TestPutGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	inv := models.NewInvoice()
	inv.ClientDetails.Name = "Acme Corp"
	inv.Notes = "net 30"
	inv.Items = append(inv.Items, models.InvoiceItem{
		ID:          "item-1",
		Description: "consulting",
		Quantity:    decimal.NewFromInt(3),
		Rate:        decimal.NewFromInt(50),
		Amount:      decimal.NewFromInt(150),
	})
	inv.Settings.TaxRate = decimal.RequireFromString("7.25")

	require.NoError(t, s.Put(inv))

	got, err := s.Get(inv.ID)
	require.NoError(t, err)

	assert.Equal(t, inv.ID, got.ID)
	assert.Equal(t, inv.InvoiceNumber, got.InvoiceNumber)
	assert.Equal(t, "Acme Corp", got.ClientDetails.Name)
	assert.Equal(t, "net 30", got.Notes)
	assert.Equal(t, models.StatusDraft, got.Status)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "consulting", got.Items[0].Description)
	assert.True(t, got.Items[0].Quantity.Equal(decimal.NewFromInt(3)))
	assert.True(t, got.Items[0].Amount.Equal(decimal.NewFromInt(150)))
	assert.True(t, got.Settings.TaxRate.Equal(decimal.RequireFromString("7.25")))
}

func TestPutUpsert(t *testing.T) {
	s := newTestStore(t)

	inv := models.NewInvoice()
	require.NoError(t, s.Put(inv))

	inv.Notes = "updated"
	require.NoError(t, s.Put(inv))

	got, err := s.Get(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Notes)

	invoices, err := s.List()
	require.NoError(t, err)
	assert.Len(t, invoices, 1)
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteIdempotent(t *testing.T) {
	s := newTestStore(t)

	inv := models.NewInvoice()
	require.NoError(t, s.Put(inv))

	assert.NoError(t, s.Delete(inv.ID))
	// Deleting again is still not an error.
	assert.NoError(t, s.Delete(inv.ID))

	_, err := s.Get(inv.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListAll(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Put(models.NewInvoice()))
	}

	invoices, err := s.List()
	require.NoError(t, err)
	assert.Len(t, invoices, 3)
}
