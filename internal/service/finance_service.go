package service

import (
	"context"
	"time"

	"banaapro/internal/apierror"
	"banaapro/internal/dto"
	"banaapro/internal/model"
	"banaapro/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FinanceService interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	ListTransactions(ctx context.Context) ([]dto.TransactionResponse, error)
	// Summary derives the dashboard headline figures: all-time balance,
	// current-month income and expense, and both debt aggregates.
	Summary(ctx context.Context) (*dto.FinanceSummary, error)
}

type financeService struct {
	txRepo       repository.TransactionRepository
	clientRepo   repository.ClientRepository
	purchaseRepo repository.PurchaseRepository
	now          func() time.Time
}

func NewFinanceService(txRepo repository.TransactionRepository, clientRepo repository.ClientRepository, purchaseRepo repository.PurchaseRepository) FinanceService {
	return &financeService{
		txRepo:       txRepo,
		clientRepo:   clientRepo,
		purchaseRepo: purchaseRepo,
		now:          time.Now,
	}
}

func (s *financeService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apierror.NewValidation(map[string]string{"date": "must be YYYY-MM-DD"})
	}
	t := &model.Transaction{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Method:      req.Method,
		Status:      "completed",
		Type:        req.Type,
		Category:    req.Category,
	}
	if req.ClientID != nil {
		cid, err := uuid.Parse(*req.ClientID)
		if err != nil {
			return nil, apierror.NewValidation(map[string]string{"client_id": "must be a valid UUID"})
		}
		t.ClientID = &cid
	}
	if err := s.txRepo.Create(ctx, t); err != nil {
		return nil, apierror.NewPersistence("finance: create transaction", err)
	}
	return transactionToResponse(t), nil
}

func (s *financeService) ListTransactions(ctx context.Context) ([]dto.TransactionResponse, error) {
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, apierror.NewFetch("finance: list transactions", err)
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, *transactionToResponse(&txs[i]))
	}
	return out, nil
}

func (s *financeService) Summary(ctx context.Context) (*dto.FinanceSummary, error) {
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, apierror.NewFetch("finance: list transactions", err)
	}

	now := s.now()
	year, month := now.Year(), now.Month()

	balance := decimal.Zero
	monthlyIncome := decimal.Zero
	monthlyExpense := decimal.Zero
	for _, t := range txs {
		inMonth := t.Date.Year() == year && t.Date.Month() == month
		switch t.Type {
		case model.TransactionIncome:
			balance = balance.Add(t.Amount)
			if inMonth {
				monthlyIncome = monthlyIncome.Add(t.Amount)
			}
		case model.TransactionExpense:
			balance = balance.Sub(t.Amount)
			if inMonth {
				monthlyExpense = monthlyExpense.Add(t.Amount)
			}
		}
	}

	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, apierror.NewFetch("finance: list clients", err)
	}
	clientDebt := decimal.Zero
	for _, c := range clients {
		clientDebt = clientDebt.Add(c.TotalDebt)
	}

	unreceived, err := s.purchaseRepo.ListUnreceived(ctx)
	if err != nil {
		return nil, apierror.NewFetch("finance: list unreceived purchases", err)
	}
	supplierDebt := decimal.Zero
	for _, p := range unreceived {
		supplierDebt = supplierDebt.Add(p.Total)
	}

	return &dto.FinanceSummary{
		Balance:        balance,
		MonthlyIncome:  monthlyIncome,
		MonthlyExpense: monthlyExpense,
		ClientDebt:     clientDebt,
		SupplierDebt:   supplierDebt,
	}, nil
}

func transactionToResponse(t *model.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          t.ID.String(),
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date.Format("2006-01-02"),
		Method:      t.Method,
		Status:      t.Status,
		Type:        t.Type,
		Category:    t.Category,
	}
}
