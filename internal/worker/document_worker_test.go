package worker_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"banaapro/internal/config"
	"banaapro/internal/model"
	"banaapro/internal/repository"
	"banaapro/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubInvoiceRepo struct {
	invoices map[uuid.UUID]*model.Invoice
	updated  []*model.Invoice
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[uuid.UUID]*model.Invoice)}
}

func (r *stubInvoiceRepo) DB() *gorm.DB { return nil }

func (r *stubInvoiceRepo) CreateHeader(_ context.Context, _ *gorm.DB, inv *model.Invoice) error {
	r.invoices[inv.ID] = inv
	return nil
}

func (r *stubInvoiceRepo) CreateItems(_ context.Context, _ *gorm.DB, _ []model.InvoiceItem) error {
	return nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inv, nil
}

func (r *stubInvoiceRepo) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	return r.FindByID(ctx, id)
}

func (r *stubInvoiceRepo) List(_ context.Context) ([]model.Invoice, error) { return nil, nil }

func (r *stubInvoiceRepo) Update(_ context.Context, inv *model.Invoice) error {
	r.updated = append(r.updated, inv)
	return nil
}

var _ repository.InvoiceRepository = (*stubInvoiceRepo)(nil)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func workerConfig(dir string) *config.Config {
	return &config.Config{
		TaxRate:        dec("0.19"),
		Currency:       "DZD",
		CompanyName:    "BanaaPro Construction",
		PDFStoragePath: dir,
	}
}

func seedInvoice(repo *stubInvoiceRepo, email *string) *model.Invoice {
	inv := &model.Invoice{
		ID:          uuid.New(),
		Type:        model.InvoiceTypeFinal,
		ClientID:    uuid.New(),
		SubTotal:    dec("59600"),
		TaxAmount:   dec("11324"),
		TotalAmount: dec("70924"),
		Status:      model.InvoiceStatusPending,
		Date:        time.Now(),
		Client:      &model.Client{ID: uuid.New(), Name: "Entreprise Benali", Email: email},
		Items: []model.InvoiceItem{
			{Description: "concrete slab", Unit: model.UnitCubicMeter, Quantity: dec("10"), UnitPrice: dec("5000"), Total: dec("50000")},
		},
	}
	repo.invoices[inv.ID] = inv
	return inv
}

func documentJob(t *testing.T, invoiceID uuid.UUID) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(worker.DocumentJobPayload{InvoiceID: invoiceID.String()})
	require.NoError(t, err)
	return raw
}

func TestDocumentWorkerStoresPDFPath(t *testing.T) {
	repo := newStubInvoiceRepo()
	inv := seedInvoice(repo, nil)
	w := worker.NewDocumentWorker(repo, worker.NewDispatcher(nil), workerConfig(t.TempDir()))

	w.Process(context.Background(), documentJob(t, inv.ID))

	require.Len(t, repo.updated, 1)
	require.NotNil(t, repo.updated[0].PDFPath)
	info, err := os.Stat(*repo.updated[0].PDFPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestDocumentWorkerFallsBackToClientEmail(t *testing.T) {
	repo := newStubInvoiceRepo()
	email := "benali@example.dz"
	inv := seedInvoice(repo, &email)
	// Nil redis: the email enqueue is a silent no-op, but the address
	// selection path still runs against the client's optional email.
	w := worker.NewDocumentWorker(repo, worker.NewDispatcher(nil), workerConfig(t.TempDir()))

	w.Process(context.Background(), documentJob(t, inv.ID))

	require.Len(t, repo.updated, 1)
	assert.NotNil(t, repo.updated[0].PDFPath)
}

func TestDocumentWorkerHandlesEmptyClientEmail(t *testing.T) {
	repo := newStubInvoiceRepo()
	empty := ""
	inv := seedInvoice(repo, &empty)
	w := worker.NewDocumentWorker(repo, worker.NewDispatcher(nil), workerConfig(t.TempDir()))

	w.Process(context.Background(), documentJob(t, inv.ID))

	require.Len(t, repo.updated, 1)
}

func TestDocumentWorkerIgnoresUnknownInvoice(t *testing.T) {
	repo := newStubInvoiceRepo()
	w := worker.NewDocumentWorker(repo, worker.NewDispatcher(nil), workerConfig(t.TempDir()))

	w.Process(context.Background(), documentJob(t, uuid.New()))

	assert.Empty(t, repo.updated)
}
