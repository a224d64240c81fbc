package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/invoice-studio/editor"
	"github.com/yourusername/invoice-studio/models"
	"github.com/yourusername/invoice-studio/pdf"
)

type InvoiceHandler struct {
	editor *editor.Editor
}

func NewInvoiceHandler(ed *editor.Editor) *InvoiceHandler {
	return &InvoiceHandler{editor: ed}
}

// UpdateInvoiceRequest patches top-level scalar fields of the current
// invoice. Nil fields are left untouched.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string               `json:"invoice_number"`
	Notes         *string               `json:"notes"`
	Status        *models.InvoiceStatus `json:"status"`
	CreatedAt     *time.Time            `json:"created_at"`
	DueDate       *time.Time            `json:"due_date"`
}

// CreateInvoice starts editing a fresh draft and returns it.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	c.JSON(http.StatusCreated, h.editor.Create())
}

// GetCurrent returns the invoice being edited.
func (h *InvoiceHandler) GetCurrent(c *gin.Context) {
	inv := h.editor.Current()
	if inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no invoice is being edited"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// UpdateCurrent applies scalar field changes to the current invoice.
func (h *InvoiceHandler) UpdateCurrent(c *gin.Context) {
	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apply := func(err error) bool {
		if err != nil {
			h.renderEditorError(c, err)
			return false
		}
		return true
	}

	if req.InvoiceNumber != nil && !apply(h.editor.SetInvoiceNumber(*req.InvoiceNumber)) {
		return
	}
	if req.Notes != nil && !apply(h.editor.SetNotes(*req.Notes)) {
		return
	}
	if req.Status != nil && !apply(h.editor.SetStatus(*req.Status)) {
		return
	}
	if req.CreatedAt != nil && !apply(h.editor.SetCreatedAt(*req.CreatedAt)) {
		return
	}
	if req.DueDate != nil && !apply(h.editor.SetDueDate(*req.DueDate)) {
		return
	}

	c.JSON(http.StatusOK, h.editor.Current())
}

// UpdateBusinessDetails merge-patches the business contact record.
func (h *InvoiceHandler) UpdateBusinessDetails(c *gin.Context) {
	var patch editor.ContactPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.editor.UpdateBusinessDetails(patch); err != nil {
		h.renderEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.editor.Current())
}

// UpdateClientDetails merge-patches the client contact record.
func (h *InvoiceHandler) UpdateClientDetails(c *gin.Context) {
	var patch editor.ContactPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.editor.UpdateClientDetails(patch); err != nil {
		h.renderEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.editor.Current())
}

// UpdateSettings merge-patches invoice settings and returns the invoice with
// freshly derived totals.
func (h *InvoiceHandler) UpdateSettings(c *gin.Context) {
	var patch editor.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.editor.UpdateSettings(patch); err != nil {
		h.renderEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.editor.Current())
}

// AddItem appends a blank line item.
func (h *InvoiceHandler) AddItem(c *gin.Context) {
	item, err := h.editor.AddItem()
	if err != nil {
		h.renderEditorError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item, "invoice": h.editor.Current()})
}

// UpdateItem patches one line item by ID.
func (h *InvoiceHandler) UpdateItem(c *gin.Context) {
	var patch editor.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.editor.UpdateItem(c.Param("itemId"), patch); err != nil {
		h.renderEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.editor.Current())
}

// RemoveItem deletes one line item by ID.
func (h *InvoiceHandler) RemoveItem(c *gin.Context) {
	if err := h.editor.RemoveItem(c.Param("itemId")); err != nil {
		h.renderEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.editor.Current())
}

// SaveCurrent persists the current invoice.
func (h *InvoiceHandler) SaveCurrent(c *gin.Context) {
	if err := h.editor.Save(); err != nil {
		h.renderEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice saved", "invoice": h.editor.Current()})
}

// ListInvoices rehydrates the saved collection and returns it, filtered by
// the optional ?q= search query.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	if err := h.editor.LoadAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load invoices"})
		return
	}
	c.JSON(http.StatusOK, h.editor.SearchInvoices(c.Query("q")))
}

// LoadInvoice makes a saved invoice the current one.
func (h *InvoiceHandler) LoadInvoice(c *gin.Context) {
	if err := h.editor.Load(c.Param("id")); err != nil {
		h.renderEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.editor.Current())
}

// DeleteInvoice removes a saved invoice.
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.editor.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete invoice"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}

// ExportPDF renders the current invoice as an A4 PDF download.
func (h *InvoiceHandler) ExportPDF(c *gin.Context) {
	inv := h.editor.Current()
	if inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no invoice is being edited"})
		return
	}

	data, err := pdf.Render(inv)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render PDF"})
		return
	}

	filename := fmt.Sprintf("%s.pdf", inv.InvoiceNumber)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *InvoiceHandler) renderEditorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, editor.ErrNoInvoice),
		errors.Is(err, editor.ErrItemNotFound),
		errors.Is(err, editor.ErrInvoiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, editor.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
