package service_test

import (
	"testing"

	"banaapro/internal/model"
	"banaapro/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewDraftSeedsDefaultItem(t *testing.T) {
	d := service.NewInvoiceDraft(model.InvoiceTypeProforma)

	require.Len(t, d.Items, 1)
	item := d.Items[0]
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, model.UnitMeter, item.Unit)
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, item.UnitPrice.IsZero())
	assert.True(t, item.Total.IsZero())
}

func TestAddItemAssignsDistinctIDs(t *testing.T) {
	d := service.NewInvoiceDraft(model.InvoiceTypeProforma)
	a := d.AddItem()
	b := d.AddItem()

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, d.Items, 3)
}

func TestUpdateItemRecomputesTotal(t *testing.T) {
	d := service.NewInvoiceDraft(model.InvoiceTypeProforma)
	id := d.Items[0].ID

	d.UpdateItem(id, service.FieldQuantity, "4")
	d.UpdateItem(id, service.FieldUnitPrice, "25")
	assert.True(t, d.Items[0].Total.Equal(dec("100")), "got %s", d.Items[0].Total)

	// Editing a non-numeric field leaves the total alone
	d.UpdateItem(id, service.FieldDescription, "gravel delivery")
	assert.Equal(t, "gravel delivery", d.Items[0].Description)
	assert.True(t, d.Items[0].Total.Equal(dec("100")))

	// Re-editing quantity recomputes from both current factors
	d.UpdateItem(id, service.FieldQuantity, "10")
	assert.True(t, d.Items[0].Total.Equal(dec("250")))
}

func TestUpdateItemUnknownIDOrFieldIsNoop(t *testing.T) {
	d := service.NewInvoiceDraft(model.InvoiceTypeProforma)
	before := d.Items[0]

	d.UpdateItem("nonexistent", service.FieldQuantity, "99")
	d.UpdateItem(before.ID, "color", "red")

	assert.Equal(t, before, d.Items[0])
}

func TestRemoveItemPreservesOrder(t *testing.T) {
	d := service.NewInvoiceDraft(model.InvoiceTypeProforma)
	first := d.Items[0].ID
	second := d.AddItem().ID
	third := d.AddItem().ID

	d.RemoveItem(second)

	require.Len(t, d.Items, 2)
	assert.Equal(t, first, d.Items[0].ID)
	assert.Equal(t, third, d.Items[1].ID)
}

func TestRemoveItemUnknownIDIsNoop(t *testing.T) {
	d := service.NewInvoiceDraft(model.InvoiceTypeProforma)
	d.AddItem()
	snapshot := append([]service.DraftItem(nil), d.Items...)

	d.RemoveItem("not-a-real-id")

	assert.Equal(t, snapshot, d.Items)
}

func TestTotalsIdentity(t *testing.T) {
	d := service.NewInvoiceDraft(model.InvoiceTypeFinal)
	id := d.Items[0].ID
	d.UpdateItem(id, service.FieldQuantity, "10")
	d.UpdateItem(id, service.FieldUnitPrice, "5000")

	item2 := d.AddItem()
	d.UpdateItem(item2.ID, service.FieldQuantity, "8")
	d.UpdateItem(item2.ID, service.FieldUnitPrice, "1200")

	subTotal, tax, total := d.Totals(dec("0.19"))

	assert.True(t, subTotal.Equal(dec("59600")), "subTotal = %s", subTotal)
	assert.True(t, tax.Equal(dec("11324")), "tax = %s", tax)
	assert.True(t, total.Equal(dec("70924")), "total = %s", total)
	assert.True(t, total.Equal(subTotal.Add(tax)))
}

func TestTotalsOnEmptyDraft(t *testing.T) {
	d := service.NewInvoiceDraft(model.InvoiceTypeProforma)
	d.RemoveItem(d.Items[0].ID)

	subTotal, tax, total := d.Totals(dec("0.19"))
	assert.True(t, subTotal.IsZero())
	assert.True(t, tax.IsZero())
	assert.True(t, total.IsZero())
}

func TestResetRestoresInitialState(t *testing.T) {
	d := service.NewInvoiceDraft(model.InvoiceTypeProforma)
	d.ClientID = "some-client"
	d.UpdateItem(d.Items[0].ID, service.FieldUnitPrice, "500")
	d.AddItem()

	d.Reset()

	assert.Empty(t, d.ClientID)
	assert.Nil(t, d.DueDate)
	assert.Nil(t, d.Notes)
	require.Len(t, d.Items, 1)
	assert.True(t, d.Items[0].Total.IsZero())
}
