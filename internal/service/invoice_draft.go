package service

import (
	"time"

	"banaapro/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Editable DraftItem field names accepted by InvoiceDraft.UpdateItem.
const (
	FieldDescription = "description"
	FieldUnit        = "unit"
	FieldQuantity    = "quantity"
	FieldUnitPrice   = "unitPrice"
)

// DraftItem is one editable line in an unsaved invoice. ID is a temporary
// identifier valid only for the lifetime of the draft; the database assigns
// the real one on save.
type DraftItem struct {
	ID          string
	Description string
	Unit        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	// Total is always Quantity × UnitPrice; recomputed on every edit of
	// either factor, never set directly.
	Total decimal.Decimal
}

// InvoiceDraft is the in-memory line-item editor backing the invoice form.
// It is a plain value owned by the caller — no shared state, one writer.
// Item order is significant: it becomes the print order.
type InvoiceDraft struct {
	Type     string
	ClientID string
	DueDate  *time.Time
	Notes    *string
	Items    []DraftItem
}

// NewInvoiceDraft returns a draft of the given type holding a single default
// empty item, mirroring a freshly opened invoice form.
func NewInvoiceDraft(invoiceType string) *InvoiceDraft {
	d := &InvoiceDraft{Type: invoiceType}
	d.AddItem()
	return d
}

func defaultItem() DraftItem {
	return DraftItem{
		ID:        uuid.NewString(),
		Unit:      model.UnitMeter,
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.Zero,
		Total:     decimal.Zero,
	}
}

// AddItem appends a new default line item and returns a pointer to it.
// Always succeeds.
func (d *InvoiceDraft) AddItem() *DraftItem {
	d.Items = append(d.Items, defaultItem())
	return &d.Items[len(d.Items)-1]
}

// RemoveItem deletes the item with the given temporary id, preserving the
// order of the rest. Unknown ids are a silent no-op.
func (d *InvoiceDraft) RemoveItem(id string) {
	for i := range d.Items {
		if d.Items[i].ID == id {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return
		}
	}
}

// UpdateItem sets the named field on the matching item. Editing quantity or
// unitPrice recomputes the item total from the post-update values of both.
// Unknown item ids and unknown fields are silent no-ops.
func (d *InvoiceDraft) UpdateItem(id, field string, value interface{}) {
	for i := range d.Items {
		if d.Items[i].ID != id {
			continue
		}
		item := &d.Items[i]
		switch field {
		case FieldDescription:
			if v, ok := value.(string); ok {
				item.Description = v
			}
		case FieldUnit:
			if v, ok := value.(string); ok {
				item.Unit = v
			}
		case FieldQuantity:
			if v, ok := toDecimal(value); ok {
				item.Quantity = v
				item.Total = item.Quantity.Mul(item.UnitPrice)
			}
		case FieldUnitPrice:
			if v, ok := toDecimal(value); ok {
				item.UnitPrice = v
				item.Total = item.Quantity.Mul(item.UnitPrice)
			}
		}
		return
	}
}

// Totals derives the aggregate amounts from the current items. The same
// computation runs on every form render and once more at save time; the
// saved header snapshots its result.
func (d *InvoiceDraft) Totals(taxRate decimal.Decimal) (subTotal, tax, total decimal.Decimal) {
	subTotal = decimal.Zero
	for _, item := range d.Items {
		subTotal = subTotal.Add(item.Total)
	}
	tax = subTotal.Mul(taxRate)
	total = subTotal.Add(tax)
	return subTotal, tax, total
}

// Reset returns the draft to its initial state: one default empty item, no
// client, no due date. Called after a successful save.
func (d *InvoiceDraft) Reset() {
	d.ClientID = ""
	d.DueDate = nil
	d.Notes = nil
	d.Items = nil
	d.AddItem()
}

func toDecimal(value interface{}) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case float64:
		return decimal.NewFromFloat(v), true
	case string:
		dec, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, false
		}
		return dec, true
	default:
		return decimal.Zero, false
	}
}
