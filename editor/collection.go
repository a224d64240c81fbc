package editor

import (
	"strings"

	"github.com/yourusername/invoice-studio/models"
	"github.com/yourusername/invoice-studio/utils"
)

// Save persists the current invoice through the gateway with upsert
// semantics, then reflects it into the in-memory collection: replaced in
// place when present by ID, appended otherwise.
func (e *Editor) Save() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		return ErrNoInvoice
	}
	if err := e.gateway.Put(e.current); err != nil {
		return err
	}

	snapshot := *e.current.Clone()
	for i := range e.invoices {
		if e.invoices[i].ID == snapshot.ID {
			e.invoices[i] = snapshot
			return nil
		}
	}
	e.invoices = append(e.invoices, snapshot)
	return nil
}

// LoadAll hydrates the in-memory collection from the gateway. Stored totals
// are not trusted: each record is recalculated from its items and settings on
// the way in.
func (e *Editor) LoadAll() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	invoices, err := e.gateway.List()
	if err != nil {
		return err
	}
	for i := range invoices {
		invoices[i].Totals = utils.Totals(invoices[i].Items, invoices[i].Settings)
	}
	e.invoices = invoices
	return nil
}

// Load sets the current invoice from the hydrated collection. It does not
// query the gateway; LoadAll must have run first.
func (e *Editor) Load(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.invoices {
		if e.invoices[i].ID == id {
			e.current = e.invoices[i].Clone()
			return nil
		}
	}
	return ErrInvoiceNotFound
}

// Delete removes an invoice from the gateway and the collection. When the
// deleted invoice is the one being edited, the editor reverts to the
// uninitialized state.
func (e *Editor) Delete(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.gateway.Delete(id); err != nil {
		return err
	}

	invoices := e.invoices[:0]
	for _, inv := range e.invoices {
		if inv.ID != id {
			invoices = append(invoices, inv)
		}
	}
	e.invoices = invoices

	if e.current != nil && e.current.ID == id {
		e.current = nil
	}
	return nil
}

// Invoices returns a snapshot of the hydrated collection in storage order.
func (e *Editor) Invoices() []models.Invoice {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]models.Invoice(nil), e.invoices...)
}

// SearchInvoices returns the invoices matching the query: a case-insensitive
// substring match against invoice number, client name and status. An empty
// query returns the whole collection in its underlying order. The projection
// is recomputed on every call, never maintained incrementally.
func (e *Editor) SearchInvoices(query string) []models.Invoice {
	e.mu.Lock()
	defer e.mu.Unlock()

	if query == "" {
		return append([]models.Invoice(nil), e.invoices...)
	}

	q := strings.ToLower(query)
	var matched []models.Invoice
	for _, inv := range e.invoices {
		if strings.Contains(strings.ToLower(inv.InvoiceNumber), q) ||
			strings.Contains(strings.ToLower(inv.ClientDetails.Name), q) ||
			strings.Contains(strings.ToLower(string(inv.Status)), q) {
			matched = append(matched, inv)
		}
	}
	if matched == nil {
		matched = []models.Invoice{}
	}
	return matched
}
