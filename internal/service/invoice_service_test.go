package service_test

import (
	"context"
	"errors"
	"testing"

	"banaapro/internal/apierror"
	"banaapro/internal/model"
	"banaapro/internal/repository"
	"banaapro/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory InvoiceRepository stub ─────────────────────────────────────────

type stubInvoiceRepo struct {
	invoices map[uuid.UUID]*model.Invoice

	headerWrites int
	itemWrites   [][]model.InvoiceItem
	failHeader   error
	failItems    error
	failFind     error
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[uuid.UUID]*model.Invoice)}
}

func (r *stubInvoiceRepo) DB() *gorm.DB { return nil }

func (r *stubInvoiceRepo) CreateHeader(_ context.Context, _ *gorm.DB, inv *model.Invoice) error {
	if r.failHeader != nil {
		return r.failHeader
	}
	r.headerWrites++
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	cloned := *inv
	r.invoices[inv.ID] = &cloned
	return nil
}

func (r *stubInvoiceRepo) CreateItems(_ context.Context, _ *gorm.DB, items []model.InvoiceItem) error {
	if r.failItems != nil {
		return r.failItems
	}
	r.itemWrites = append(r.itemWrites, items)
	return nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	if r.failFind != nil {
		return nil, r.failFind
	}
	inv, ok := r.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inv, nil
}

func (r *stubInvoiceRepo) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	return r.FindByID(ctx, id)
}

func (r *stubInvoiceRepo) List(_ context.Context) ([]model.Invoice, error) {
	out := make([]model.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, inv *model.Invoice) error {
	cloned := *inv
	r.invoices[inv.ID] = &cloned
	return nil
}

var _ repository.InvoiceRepository = (*stubInvoiceRepo)(nil)

// ── helpers ──────────────────────────────────────────────────────────────────

func draftWithItems(clientID string) *service.InvoiceDraft {
	d := service.NewInvoiceDraft(model.InvoiceTypeProforma)
	d.ClientID = clientID
	first := d.Items[0].ID
	d.UpdateItem(first, service.FieldDescription, "concrete slab")
	d.UpdateItem(first, service.FieldQuantity, "10")
	d.UpdateItem(first, service.FieldUnitPrice, "5000")
	second := d.AddItem()
	d.UpdateItem(second.ID, service.FieldDescription, "rebar")
	d.UpdateItem(second.ID, service.FieldQuantity, "8")
	d.UpdateItem(second.ID, service.FieldUnitPrice, "1200")
	return d
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreateRejectsMissingClientWithoutWrites(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := service.NewInvoiceService(repo, nil, dec("0.19"))

	_, err := svc.Create(context.Background(), draftWithItems(""))

	var vErr *apierror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, repo.headerWrites)
	assert.Empty(t, repo.itemWrites)
}

func TestCreateRejectsMalformedClientID(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := service.NewInvoiceService(repo, nil, dec("0.19"))

	_, err := svc.Create(context.Background(), draftWithItems("not-a-uuid"))

	var vErr *apierror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, repo.headerWrites)
}

func TestCreateWritesHeaderThenItems(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := service.NewInvoiceService(repo, nil, dec("0.19"))

	resp, err := svc.Create(context.Background(), draftWithItems(uuid.NewString()))
	require.NoError(t, err)

	assert.Equal(t, 1, repo.headerWrites)
	require.Len(t, repo.itemWrites, 1)

	items := repo.itemWrites[0]
	require.Len(t, items, 2)
	headerID, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	for i, item := range items {
		assert.Equal(t, headerID, item.InvoiceID)
		assert.Equal(t, i, item.Position)
	}
	assert.Equal(t, "concrete slab", items[0].Description)
	assert.Equal(t, "rebar", items[1].Description)
}

func TestCreateSnapshotsTotals(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := service.NewInvoiceService(repo, nil, dec("0.19"))

	resp, err := svc.Create(context.Background(), draftWithItems(uuid.NewString()))
	require.NoError(t, err)

	assert.True(t, resp.SubTotal.Equal(dec("59600")), "sub_total = %s", resp.SubTotal)
	assert.True(t, resp.TaxAmount.Equal(dec("11324")), "tax = %s", resp.TaxAmount)
	assert.True(t, resp.TotalAmount.Equal(dec("70924")), "total = %s", resp.TotalAmount)
	assert.True(t, resp.TotalAmount.Equal(resp.SubTotal.Add(resp.TaxAmount)))
}

func TestCreateStatusFollowsType(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := service.NewInvoiceService(repo, nil, dec("0.19"))

	proforma := draftWithItems(uuid.NewString())
	resp, err := svc.Create(context.Background(), proforma)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusDraft, resp.Status)

	final := draftWithItems(uuid.NewString())
	final.Type = model.InvoiceTypeFinal
	resp, err = svc.Create(context.Background(), final)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPending, resp.Status)
}

func TestCreateHeaderFailureSkipsItems(t *testing.T) {
	repo := newStubInvoiceRepo()
	repo.failHeader = errors.New("connection reset")
	svc := service.NewInvoiceService(repo, nil, dec("0.19"))

	_, err := svc.Create(context.Background(), draftWithItems(uuid.NewString()))

	var pErr *apierror.PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Empty(t, repo.itemWrites)
}

func TestCreateItemFailureSurfacesPersistenceError(t *testing.T) {
	repo := newStubInvoiceRepo()
	repo.failItems = errors.New("constraint violation")
	svc := service.NewInvoiceService(repo, nil, dec("0.19"))

	_, err := svc.Create(context.Background(), draftWithItems(uuid.NewString()))

	var pErr *apierror.PersistenceError
	require.ErrorAs(t, err, &pErr)
}

// ── PromoteToFinal ───────────────────────────────────────────────────────────

func TestPromoteRequiresConfirmation(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := service.NewInvoiceService(repo, nil, dec("0.19"))

	resp, err := svc.Create(context.Background(), draftWithItems(uuid.NewString()))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	_, err = svc.PromoteToFinal(context.Background(), id, false)
	var vErr *apierror.ValidationError
	require.ErrorAs(t, err, &vErr)

	// Unconfirmed promotion leaves the invoice untouched
	stored, _ := repo.FindByID(context.Background(), id)
	assert.Equal(t, model.InvoiceTypeProforma, stored.Type)
}

func TestPromoteConvertsProformaToFinal(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := service.NewInvoiceService(repo, nil, dec("0.19"))

	created, err := svc.Create(context.Background(), draftWithItems(uuid.NewString()))
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	promoted, err := svc.PromoteToFinal(context.Background(), id, true)
	require.NoError(t, err)

	assert.Equal(t, model.InvoiceTypeFinal, promoted.Type)
	assert.Equal(t, model.InvoiceStatusPending, promoted.Status)
	// Totals are untouched by promotion
	assert.True(t, promoted.TotalAmount.Equal(created.TotalAmount))
}

func TestPromoteRejectsAlreadyFinal(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := service.NewInvoiceService(repo, nil, dec("0.19"))

	created, err := svc.Create(context.Background(), draftWithItems(uuid.NewString()))
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.PromoteToFinal(context.Background(), id, true)
	require.NoError(t, err)

	_, err = svc.PromoteToFinal(context.Background(), id, true)
	var vErr *apierror.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestPromoteUnknownInvoice(t *testing.T) {
	repo := newStubInvoiceRepo()
	svc := service.NewInvoiceService(repo, nil, dec("0.19"))

	_, err := svc.PromoteToFinal(context.Background(), uuid.New(), true)
	assert.True(t, apierror.IsNotFound(err))
}

func TestPromoteRepoFailureIsNotANotFound(t *testing.T) {
	repo := newStubInvoiceRepo()
	repo.failFind = errors.New("connection refused")
	svc := service.NewInvoiceService(repo, nil, dec("0.19"))

	_, err := svc.PromoteToFinal(context.Background(), uuid.New(), true)

	var fErr *apierror.FetchError
	require.ErrorAs(t, err, &fErr)
	assert.False(t, apierror.IsNotFound(err))
}

func TestGetByIDRepoFailureIsNotANotFound(t *testing.T) {
	repo := newStubInvoiceRepo()
	repo.failFind = errors.New("connection refused")
	svc := service.NewInvoiceService(repo, nil, dec("0.19"))

	_, err := svc.GetByID(context.Background(), uuid.New())

	var fErr *apierror.FetchError
	require.ErrorAs(t, err, &fErr)
	assert.False(t, apierror.IsNotFound(err))
}
