package worker

// document_worker.go
// Processes invoice document jobs from QueueDocument: generates the archival
// PDF for a saved invoice and optionally emails it to the client.

import (
	"context"
	"encoding/json"
	"fmt"

	"banaapro/internal/config"
	"banaapro/internal/infra"
	"banaapro/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DocumentJobPayload is the job envelope sent to QueueDocument.
type DocumentJobPayload struct {
	InvoiceID   string  `json:"invoice_id"`
	ClientEmail *string `json:"client_email,omitempty"`
}

// DocumentWorker generates the PDF for a saved invoice and stores its path
// on the invoice row. When the client has an email address, it enqueues an
// email job with the PDF attached.
type DocumentWorker struct {
	invoiceRepo repository.InvoiceRepository
	dispatcher  *Dispatcher
	cfg         *config.Config
}

func NewDocumentWorker(invoiceRepo repository.InvoiceRepository, dispatcher *Dispatcher, cfg *config.Config) *DocumentWorker {
	return &DocumentWorker{invoiceRepo: invoiceRepo, dispatcher: dispatcher, cfg: cfg}
}

// Process handles a single document job:
//  1. Parse DocumentJobPayload from the job envelope
//  2. Fetch the invoice with client and items
//  3. Generate the PDF and persist its path
//  4. Optionally enqueue an email job
func (w *DocumentWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload DocumentJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("document_worker: invalid payload")
		return
	}

	invoiceID, err := uuid.Parse(payload.InvoiceID)
	if err != nil {
		log.Error().Str("invoice_id", payload.InvoiceID).Msg("document_worker: invalid invoice_id")
		return
	}

	inv, err := w.invoiceRepo.FindByIDWithRelations(ctx, invoiceID)
	if err != nil {
		log.Error().Err(err).Str("invoice_id", payload.InvoiceID).Msg("document_worker: invoice not found")
		return
	}

	issuer := infra.IssuerIdentity{
		Name:         w.cfg.CompanyName,
		Address:      w.cfg.CompanyAddress,
		Phone:        w.cfg.CompanyPhone,
		Registration: w.cfg.CompanyRegistration,
	}
	pdfPath, err := infra.GenerateInvoicePDF(inv, issuer, w.cfg.Currency, infra.TaxLabel(w.cfg.TaxRate), w.cfg.PDFStoragePath)
	if err != nil {
		log.Error().Err(err).Str("invoice_id", payload.InvoiceID).Msg("document_worker: PDF generation failed")
		SendToDLQ(ctx, w.dispatcher.rdb, QueueDocument, "document", raw, err.Error(), 1)
		return
	}

	inv.PDFPath = &pdfPath
	if err := w.invoiceRepo.Update(ctx, inv); err != nil {
		log.Warn().Err(err).Str("invoice_id", payload.InvoiceID).Msg("document_worker: failed to store pdf path")
	} else {
		log.Info().Str("pdf", pdfPath).Str("invoice_id", payload.InvoiceID).Msg("document_worker: PDF generated")
	}

	email := payload.ClientEmail
	if email == nil && inv.Client != nil && inv.Client.Email != nil && *inv.Client.Email != "" {
		email = inv.Client.Email
	}
	if email != nil && *email != "" {
		emailJob := EmailJobPayload{
			ToEmail: *email,
			Subject: fmt.Sprintf("%s — Invoice %s", w.cfg.CompanyName, shortID(inv.ID)),
			Body: fmt.Sprintf("Please find your invoice attached.\nTotal: %s %s",
				inv.TotalAmount.StringFixed(2), w.cfg.Currency),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", *email).Msg("document_worker: failed to enqueue email")
		} else {
			log.Info().Str("email", *email).Msg("document_worker: email job enqueued")
		}
	}
}

func shortID(id uuid.UUID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
