package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"banaapro/internal/apierror"
	"banaapro/internal/config"
	"banaapro/internal/model"
	"banaapro/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSurface records every write so tests can assert the placeholder /
// final-document sequence and the close-on-error contract.
type stubSurface struct {
	writes []string
	closed bool
}

func (s *stubSurface) WriteHTML(html string) error {
	s.writes = append(s.writes, html)
	return nil
}

func (s *stubSurface) Close() error {
	s.closed = true
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		TaxRate:             dec("0.19"),
		Currency:            "DZD",
		CompanyName:         "BanaaPro Construction",
		CompanyAddress:      "Cite 120 Logements, Bab Ezzouar, Algiers",
		CompanyPhone:        "+213 770 12 34 56",
		CompanyRegistration: "RC 16/00-1234567 B 16",
	}
}

func seedInvoice(repo *stubInvoiceRepo) *model.Invoice {
	inv := &model.Invoice{
		ID:       uuid.New(),
		Type:     model.InvoiceTypeProforma,
		ClientID: uuid.New(),
		// Stored header totals deliberately differ from the item sum:
		// the renderer must print these, never recompute from items.
		SubTotal:    dec("59600"),
		TaxAmount:   dec("11324"),
		TotalAmount: dec("70924"),
		Status:      model.InvoiceStatusDraft,
		Date:        time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Client: &model.Client{
			ID:      uuid.New(),
			Name:    "Entreprise Benali",
			Address: "Rue Didouche Mourad, Algiers",
			Phone:   "+213 555 11 22 33",
		},
		Items: []model.InvoiceItem{
			{Description: "concrete slab", Unit: model.UnitCubicMeter, Quantity: dec("10"), UnitPrice: dec("5000"), Total: dec("50000")},
			{Description: "rebar", Unit: model.UnitTon, Quantity: dec("8"), UnitPrice: dec("1200"), Total: dec("9600")},
		},
	}
	repo.invoices[inv.ID] = inv
	return inv
}

func TestRenderWritesPlaceholderThenFinal(t *testing.T) {
	repo := newStubInvoiceRepo()
	inv := seedInvoice(repo)
	svc := service.NewDocumentService(repo, testConfig())
	surface := &stubSurface{}

	err := svc.Render(context.Background(), inv.ID, surface)
	require.NoError(t, err)

	require.Len(t, surface.writes, 2)
	assert.Contains(t, surface.writes[0], "Preparing document")
	assert.False(t, surface.closed)

	final := surface.writes[1]
	assert.Contains(t, final, "Proforma Invoice")
	assert.Contains(t, final, inv.ID.String()[:8])
	assert.Contains(t, final, "Entreprise Benali")
	assert.Contains(t, final, "Tax (19%)")
	assert.Contains(t, final, "window.print")
}

func TestRenderPrintsStoredTotalsNotItemSum(t *testing.T) {
	repo := newStubInvoiceRepo()
	inv := seedInvoice(repo)
	// Skew the stored header so it no longer matches Σ item totals
	inv.SubTotal = dec("99999")
	inv.TaxAmount = dec("1")
	inv.TotalAmount = dec("100000")
	svc := service.NewDocumentService(repo, testConfig())
	surface := &stubSurface{}

	require.NoError(t, svc.Render(context.Background(), inv.ID, surface))

	final := surface.writes[len(surface.writes)-1]
	assert.Contains(t, final, "99999.00")
	assert.Contains(t, final, "100000.00")
	assert.NotContains(t, final, "59600.00")
}

func TestRenderItemsAppearInStoredOrder(t *testing.T) {
	repo := newStubInvoiceRepo()
	inv := seedInvoice(repo)
	svc := service.NewDocumentService(repo, testConfig())
	surface := &stubSurface{}

	require.NoError(t, svc.Render(context.Background(), inv.ID, surface))

	final := surface.writes[len(surface.writes)-1]
	first := strings.Index(final, "concrete slab")
	second := strings.Index(final, "rebar")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestRenderUnknownInvoiceClosesSurface(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := service.NewDocumentService(repo, testConfig())
	surface := &stubSurface{}

	err := svc.Render(context.Background(), uuid.New(), surface)

	assert.True(t, apierror.IsNotFound(err))
	assert.True(t, surface.closed)
	// Only the placeholder was ever written; no final document
	require.Len(t, surface.writes, 1)
	assert.Contains(t, surface.writes[0], "Preparing document")
}

func TestRenderRepoFailureClosesSurface(t *testing.T) {
	repo := newStubInvoiceRepo()
	inv := seedInvoice(repo)
	repo.failFind = errors.New("connection refused")
	svc := service.NewDocumentService(repo, testConfig())
	surface := &stubSurface{}

	err := svc.Render(context.Background(), inv.ID, surface)

	var fErr *apierror.FetchError
	require.ErrorAs(t, err, &fErr)
	assert.False(t, apierror.IsNotFound(err))
	assert.True(t, surface.closed)
	require.Len(t, surface.writes, 1)
	assert.Contains(t, surface.writes[0], "Preparing document")
}

func TestRenderFinalInvoiceTitle(t *testing.T) {
	repo := newStubInvoiceRepo()
	inv := seedInvoice(repo)
	inv.Type = model.InvoiceTypeFinal
	svc := service.NewDocumentService(repo, testConfig())
	surface := &stubSurface{}

	require.NoError(t, svc.Render(context.Background(), inv.ID, surface))

	final := surface.writes[len(surface.writes)-1]
	assert.NotContains(t, final, "Proforma Invoice")
	assert.Contains(t, final, "<h2>Invoice —")
}
