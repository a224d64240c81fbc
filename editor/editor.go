// Package editor owns the invoice being edited and the hydrated collection of
// saved invoices. It is the only writer of invoice state: every mutation
// recalculates totals before the new value becomes visible, so an invoice
// with stale totals is never observable.
package editor

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/yourusername/invoice-studio/models"
	"github.com/yourusername/invoice-studio/utils"
)

var (
	// ErrNoInvoice is returned by mutations when no invoice is being edited.
	ErrNoInvoice = errors.New("no invoice is being edited")

	// ErrItemNotFound is returned when a line item ID does not match any item
	// of the current invoice. The invoice is left untouched.
	ErrItemNotFound = errors.New("line item not found")

	// ErrInvoiceNotFound is returned when an invoice ID is not present in the
	// hydrated collection.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvalidInput wraps rejected field values (unknown status, unknown
	// discount type).
	ErrInvalidInput = errors.New("invalid input")
)

// Gateway is the persistence interface the editor depends on. The store
// package provides the BoltDB implementation.
type Gateway interface {
	Put(inv *models.Invoice) error
	Delete(id string) error
	List() ([]models.Invoice, error)
}

// Editor holds the single current invoice and the saved collection. All
// mutations go through its methods, and persistence calls happen under the
// same lock, so a save can never race a following mutation.
type Editor struct {
	mu       sync.Mutex
	gateway  Gateway
	current  *models.Invoice
	invoices []models.Invoice
}

func New(gateway Gateway) *Editor {
	return &Editor{gateway: gateway}
}

// Create starts editing a fresh default invoice and returns it.
func (e *Editor) Create() *models.Invoice {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.current = models.NewInvoice()
	return e.current.Clone()
}

// Current returns a snapshot of the invoice being edited, or nil when
// uninitialized.
func (e *Editor) Current() *models.Invoice {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		return nil
	}
	return e.current.Clone()
}

// recalculate replaces the current invoice's totals with values derived from
// its items and settings. Callers must hold e.mu.
func (e *Editor) recalculate() {
	e.current.Totals = utils.Totals(e.current.Items, e.current.Settings)
}

// mutate runs fn against the current invoice and recalculates totals. Scalar
// fields do not affect totals, but recalculating uniformly keeps every
// mutation path on the same contract.
func (e *Editor) mutate(fn func(inv *models.Invoice) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		return ErrNoInvoice
	}
	if err := fn(e.current); err != nil {
		return err
	}
	e.recalculate()
	return nil
}

func (e *Editor) SetInvoiceNumber(number string) error {
	return e.mutate(func(inv *models.Invoice) error {
		inv.InvoiceNumber = number
		return nil
	})
}

func (e *Editor) SetNotes(notes string) error {
	return e.mutate(func(inv *models.Invoice) error {
		inv.Notes = notes
		return nil
	})
}

func (e *Editor) SetStatus(status models.InvoiceStatus) error {
	return e.mutate(func(inv *models.Invoice) error {
		if !status.Valid() {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
		}
		inv.Status = status
		return nil
	})
}

func (e *Editor) SetCreatedAt(t time.Time) error {
	return e.mutate(func(inv *models.Invoice) error {
		inv.CreatedAt = t
		return nil
	})
}

func (e *Editor) SetDueDate(t time.Time) error {
	return e.mutate(func(inv *models.Invoice) error {
		inv.DueDate = t
		return nil
	})
}

// UpdateBusinessDetails merge-patches the business contact record. Nil fields
// are left untouched.
func (e *Editor) UpdateBusinessDetails(patch ContactPatch) error {
	return e.mutate(func(inv *models.Invoice) error {
		d := &inv.BusinessDetails
		applyString(&d.Name, patch.Name)
		applyString(&d.Email, patch.Email)
		applyString(&d.Phone, patch.Phone)
		applyString(&d.Address, patch.Address)
		applyString(&d.Logo, patch.Logo)
		return nil
	})
}

// UpdateClientDetails merge-patches the client contact record. The logo field
// only exists on the business side and is ignored here.
func (e *Editor) UpdateClientDetails(patch ContactPatch) error {
	return e.mutate(func(inv *models.Invoice) error {
		d := &inv.ClientDetails
		applyString(&d.Name, patch.Name)
		applyString(&d.Email, patch.Email)
		applyString(&d.Phone, patch.Phone)
		applyString(&d.Address, patch.Address)
		return nil
	})
}

// UpdateSettings merge-patches invoice settings. Every settings field feeds
// the totals, so the uniform recalculation in mutate is load-bearing here.
func (e *Editor) UpdateSettings(patch SettingsPatch) error {
	return e.mutate(func(inv *models.Invoice) error {
		if patch.DiscountType != nil && !patch.DiscountType.Valid() {
			return fmt.Errorf("%w: unknown discount type %q", ErrInvalidInput, *patch.DiscountType)
		}

		s := &inv.Settings
		applyString(&s.Currency, patch.Currency)
		applyString(&s.TaxLabel, patch.TaxLabel)
		if patch.TaxRate != nil {
			s.TaxRate = *patch.TaxRate
		}
		if patch.DiscountType != nil {
			s.DiscountType = *patch.DiscountType
		}
		if patch.DiscountValue != nil {
			s.DiscountValue = *patch.DiscountValue
		}
		return nil
	})
}

// AddItem appends a blank line item and returns it.
func (e *Editor) AddItem() (models.InvoiceItem, error) {
	var item models.InvoiceItem
	err := e.mutate(func(inv *models.Invoice) error {
		item = models.NewInvoiceItem()
		inv.Items = append(inv.Items, item)
		return nil
	})
	return item, err
}

// UpdateItem patches one line item by ID. When quantity or rate changes the
// item amount is recomputed before totals are derived, keeping
// amount == quantity × rate as an invariant. An unknown ID returns
// ErrItemNotFound and leaves the invoice untouched.
func (e *Editor) UpdateItem(itemID string, patch ItemPatch) error {
	return e.mutate(func(inv *models.Invoice) error {
		for i := range inv.Items {
			if inv.Items[i].ID != itemID {
				continue
			}

			item := &inv.Items[i]
			applyString(&item.Description, patch.Description)
			if patch.Quantity != nil {
				item.Quantity = *patch.Quantity
			}
			if patch.Rate != nil {
				item.Rate = *patch.Rate
			}
			if patch.Quantity != nil || patch.Rate != nil {
				item.Amount = utils.ItemAmount(item.Quantity, item.Rate)
			}
			return nil
		}
		return ErrItemNotFound
	})
}

// RemoveItem filters a line item out of the sequence. Removing an ID that is
// not present is a no-op, like deleting an already-deleted record.
func (e *Editor) RemoveItem(itemID string) error {
	return e.mutate(func(inv *models.Invoice) error {
		items := inv.Items[:0]
		for _, item := range inv.Items {
			if item.ID != itemID {
				items = append(items, item)
			}
		}
		inv.Items = items
		return nil
	})
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
