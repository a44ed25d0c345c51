package service

import (
	"context"
	"errors"
	"time"

	"banaapro/internal/apierror"
	"banaapro/internal/dto"
	"banaapro/internal/model"
	"banaapro/internal/repository"
	"banaapro/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceService interface {
	Create(ctx context.Context, draft *InvoiceDraft) (*dto.InvoiceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	List(ctx context.Context) ([]dto.InvoiceListItem, error)
	PromoteToFinal(ctx context.Context, id uuid.UUID, confirmed bool) (*dto.InvoiceResponse, error)
}

type invoiceService struct {
	repo       repository.InvoiceRepository
	dispatcher *worker.Dispatcher
	taxRate    decimal.Decimal
}

func NewInvoiceService(repo repository.InvoiceRepository, dispatcher *worker.Dispatcher, taxRate decimal.Decimal) InvoiceService {
	return &invoiceService{repo: repo, dispatcher: dispatcher, taxRate: taxRate}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Create ────────────────────────────────────────────────────────────────────
// Persists a draft as one header plus its line items:
//   1. Validate a client is selected (no writes otherwise)
//   2. Snapshot subTotal / tax / total from the draft with the active rate
//   3. Initial status follows the type: proforma → draft, final → pending
//   4. TX: insert header, then one row per draft item in order
//   5. (async) enqueue PDF generation, best-effort

func (s *invoiceService) Create(ctx context.Context, draft *InvoiceDraft) (*dto.InvoiceResponse, error) {
	if draft.ClientID == "" {
		return nil, apierror.NewValidation(map[string]string{"client_id": "required"})
	}
	clientID, err := uuid.Parse(draft.ClientID)
	if err != nil {
		return nil, apierror.NewValidation(map[string]string{"client_id": "invalid"})
	}

	subTotal, tax, total := draft.Totals(s.taxRate)

	status := model.InvoiceStatusPending
	if draft.Type == model.InvoiceTypeProforma {
		status = model.InvoiceStatusDraft
	}

	inv := model.Invoice{
		Type:        draft.Type,
		ClientID:    clientID,
		SubTotal:    subTotal,
		TaxAmount:   tax,
		TotalAmount: total,
		PaidAmount:  decimal.Zero,
		Status:      status,
		Date:        time.Now(),
		DueDate:     draft.DueDate,
		Notes:       draft.Notes,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateHeader(ctx, tx, &inv); err != nil {
			return apierror.NewPersistence("invoice: create header", err)
		}
		items := make([]model.InvoiceItem, 0, len(draft.Items))
		for i, di := range draft.Items {
			items = append(items, model.InvoiceItem{
				InvoiceID:   inv.ID,
				Position:    i,
				Description: di.Description,
				Unit:        di.Unit,
				Quantity:    di.Quantity,
				UnitPrice:   di.UnitPrice,
				Total:       di.Total,
			})
		}
		if err := s.repo.CreateItems(ctx, tx, items); err != nil {
			return apierror.NewPersistence("invoice: create items", err)
		}
		inv.Items = items
		return nil
	})
	if txErr != nil {
		if _, ok := txErr.(*apierror.PersistenceError); ok {
			return nil, txErr
		}
		return nil, apierror.NewPersistence("invoice: save", txErr)
	}

	// Async document job — fire & forget
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueDocument(ctx, worker.DocumentJobPayload{
			InvoiceID: inv.ID.String(),
		})
	}

	return invoiceToResponse(&inv), nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	inv, err := s.repo.FindByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("invoice", id.String())
		}
		return nil, apierror.NewFetch("invoice: find", err)
	}
	return invoiceToResponse(inv), nil
}

// List returns all invoices with the client name joined, newest first.
func (s *invoiceService) List(ctx context.Context) ([]dto.InvoiceListItem, error) {
	invs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.NewFetch("invoice: list", err)
	}
	items := make([]dto.InvoiceListItem, 0, len(invs))
	for _, inv := range invs {
		clientName := "unknown client"
		if inv.Client != nil {
			clientName = inv.Client.Name
		}
		items = append(items, dto.InvoiceListItem{
			ID:         inv.ID.String(),
			Reference:  shortRef(inv.ID),
			Type:       inv.Type,
			ClientName: clientName,
			Amount:     inv.TotalAmount,
			Date:       inv.Date.Format("2006-01-02"),
			Status:     inv.Status,
		})
	}
	return items, nil
}

// ── PromoteToFinal ────────────────────────────────────────────────────────────
// Converts a proforma into a binding final invoice: type=final, status=pending.
// Totals and line items are untouched. One-way: promoting an already-final
// invoice is refused. The confirmed flag is the caller's explicit yes/no gate
// and is checked before any read.

func (s *invoiceService) PromoteToFinal(ctx context.Context, id uuid.UUID, confirmed bool) (*dto.InvoiceResponse, error) {
	if !confirmed {
		return nil, apierror.NewValidationMsg("promotion requires explicit confirmation")
	}

	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("invoice", id.String())
		}
		return nil, apierror.NewFetch("invoice: find", err)
	}
	if inv.Type == model.InvoiceTypeFinal {
		return nil, apierror.NewValidationMsg("invoice is already final")
	}

	inv.Type = model.InvoiceTypeFinal
	inv.Status = model.InvoiceStatusPending
	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, apierror.NewPersistence("invoice: promote", err)
	}
	return invoiceToResponse(inv), nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

// shortRef is the human-readable invoice reference: the first 8 characters of
// the full identifier, as shown in listings and on the printed document.
func shortRef(id uuid.UUID) string {
	return id.String()[:8]
}

func invoiceToResponse(inv *model.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:          inv.ID.String(),
		Type:        inv.Type,
		ClientID:    inv.ClientID.String(),
		SubTotal:    inv.SubTotal,
		TaxAmount:   inv.TaxAmount,
		TotalAmount: inv.TotalAmount,
		PaidAmount:  inv.PaidAmount,
		Status:      inv.Status,
		Date:        inv.Date.Format(time.RFC3339),
		Notes:       inv.Notes,
	}
	if inv.Client != nil {
		resp.ClientName = inv.Client.Name
	}
	if inv.DueDate != nil {
		d := inv.DueDate.Format("2006-01-02")
		resp.DueDate = &d
	}
	if inv.PDFPath != nil && *inv.PDFPath != "" {
		u := "/v1/invoices/" + inv.ID.String() + "/pdf"
		resp.PDFUrl = &u
	}
	for _, item := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          item.ID.String(),
			Description: item.Description,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	return resp
}
