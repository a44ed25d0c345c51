package service_test

import (
	"context"
	"testing"
	"time"

	"banaapro/internal/apierror"
	"banaapro/internal/dto"
	"banaapro/internal/model"
	"banaapro/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── finance stubs ────────────────────────────────────────────────────────────

type stubTransactionRepo struct {
	txs     []model.Transaction
	created []*model.Transaction
}

func (r *stubTransactionRepo) Create(_ context.Context, t *model.Transaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.created = append(r.created, t)
	r.txs = append(r.txs, *t)
	return nil
}

func (r *stubTransactionRepo) List(_ context.Context) ([]model.Transaction, error) {
	return r.txs, nil
}

type stubClientRepo struct {
	clients []model.Client
}

func (r *stubClientRepo) Create(_ context.Context, c *model.Client) error {
	r.clients = append(r.clients, *c)
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	for i := range r.clients {
		if r.clients[i].ID == id {
			return &r.clients[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClientRepo) List(_ context.Context) ([]model.Client, error) { return r.clients, nil }
func (r *stubClientRepo) Update(_ context.Context, _ *model.Client) error {
	return nil
}
func (r *stubClientRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type stubPurchaseRepo struct {
	purchases []model.Purchase
}

func (r *stubPurchaseRepo) Create(_ context.Context, p *model.Purchase) error {
	r.purchases = append(r.purchases, *p)
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	for i := range r.purchases {
		if r.purchases[i].ID == id {
			return &r.purchases[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPurchaseRepo) List(_ context.Context) ([]model.Purchase, error) {
	return r.purchases, nil
}

func (r *stubPurchaseRepo) ListUnreceived(_ context.Context) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range r.purchases {
		if p.Status != model.PurchaseStatusReceived {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPurchaseRepo) Update(_ context.Context, _ *model.Purchase) error { return nil }

// ── tests ────────────────────────────────────────────────────────────────────

func tx(typ string, amount string, date time.Time) model.Transaction {
	return model.Transaction{
		ID:     uuid.New(),
		Type:   typ,
		Amount: dec(amount),
		Date:   date,
		Status: "completed",
	}
}

func TestSummaryBalanceSpansAllTime(t *testing.T) {
	now := time.Now()
	lastYear := now.AddDate(-1, 0, 0)
	txRepo := &stubTransactionRepo{txs: []model.Transaction{
		tx(model.TransactionIncome, "100000", lastYear),
		tx(model.TransactionExpense, "30000", lastYear),
		tx(model.TransactionIncome, "50000", now),
		tx(model.TransactionExpense, "20000", now),
	}}
	svc := service.NewFinanceService(txRepo, &stubClientRepo{}, &stubPurchaseRepo{})

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.True(t, sum.Balance.Equal(dec("100000")), "balance = %s", sum.Balance)
	assert.True(t, sum.MonthlyIncome.Equal(dec("50000")), "monthly income = %s", sum.MonthlyIncome)
	assert.True(t, sum.MonthlyExpense.Equal(dec("20000")), "monthly expense = %s", sum.MonthlyExpense)
}

func TestSummaryAggregatesDebts(t *testing.T) {
	clientRepo := &stubClientRepo{clients: []model.Client{
		{ID: uuid.New(), Name: "Benali", TotalDebt: dec("15000")},
		{ID: uuid.New(), Name: "Haddad", TotalDebt: dec("5000")},
	}}
	purchaseRepo := &stubPurchaseRepo{purchases: []model.Purchase{
		{ID: uuid.New(), Supplier: "Cement Co", Total: dec("8000"), Status: model.PurchaseStatusShipping},
		{ID: uuid.New(), Supplier: "Steel Co", Total: dec("12000"), Status: model.PurchaseStatusReceived},
		{ID: uuid.New(), Supplier: "Gravel Co", Total: dec("2000"), Status: model.PurchaseStatusOrdered},
	}}
	svc := service.NewFinanceService(&stubTransactionRepo{}, clientRepo, purchaseRepo)

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.True(t, sum.ClientDebt.Equal(dec("20000")), "client debt = %s", sum.ClientDebt)
	// Received purchases are settled; only ordered/shipping count
	assert.True(t, sum.SupplierDebt.Equal(dec("10000")), "supplier debt = %s", sum.SupplierDebt)
}

func TestSummaryEmptyLedgerIsAllZero(t *testing.T) {
	svc := service.NewFinanceService(&stubTransactionRepo{}, &stubClientRepo{}, &stubPurchaseRepo{})

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.True(t, sum.Balance.IsZero())
	assert.True(t, sum.MonthlyIncome.IsZero())
	assert.True(t, sum.MonthlyExpense.IsZero())
	assert.True(t, sum.ClientDebt.IsZero())
	assert.True(t, sum.SupplierDebt.IsZero())
}

func TestCreateTransactionRejectsBadDate(t *testing.T) {
	txRepo := &stubTransactionRepo{}
	svc := service.NewFinanceService(txRepo, &stubClientRepo{}, &stubPurchaseRepo{})

	_, err := svc.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Description: "fuel",
		Amount:      decimal.NewFromInt(500),
		Date:        "14/03/2026",
		Type:        model.TransactionExpense,
	})

	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, txRepo.created)
}

func TestCreateTransactionPersists(t *testing.T) {
	txRepo := &stubTransactionRepo{}
	svc := service.NewFinanceService(txRepo, &stubClientRepo{}, &stubPurchaseRepo{})

	resp, err := svc.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Description: "progress payment",
		Amount:      dec("25000"),
		Date:        "2026-03-14",
		Method:      "transfer",
		Type:        model.TransactionIncome,
	})
	require.NoError(t, err)
	require.Len(t, txRepo.created, 1)

	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "2026-03-14", resp.Date)
	assert.True(t, resp.Amount.Equal(dec("25000")))
}
