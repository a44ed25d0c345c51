package service

import (
	"context"
	"errors"
	"html/template"
	"strings"

	"banaapro/internal/apierror"
	"banaapro/internal/config"
	"banaapro/internal/infra"
	"banaapro/internal/model"
	"banaapro/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrintSurface is the platform target a rendered invoice document is written
// to. The caller opens it before Render is invoked; Render first writes a
// loading placeholder, then either overwrites it with the final document or
// closes the surface if the fetch failed.
type PrintSurface interface {
	WriteHTML(html string) error
	Close() error
}

type DocumentService interface {
	// Render fetches the invoice with its client and ordered items in one
	// combined read and writes the print-ready document to the surface.
	// No caching: every call re-fetches.
	Render(ctx context.Context, id uuid.UUID, surface PrintSurface) error
	// GeneratePDF produces the A4 PDF for an invoice and returns its path.
	GeneratePDF(ctx context.Context, id uuid.UUID) (string, error)
}

type documentService struct {
	repo repository.InvoiceRepository
	cfg  *config.Config
}

func NewDocumentService(repo repository.InvoiceRepository, cfg *config.Config) DocumentService {
	return &documentService{repo: repo, cfg: cfg}
}

func (s *documentService) Render(ctx context.Context, id uuid.UUID, surface PrintSurface) error {
	// Placeholder goes in immediately so the already-open surface is never
	// blank while the read is in flight.
	if err := surface.WriteHTML(loadingHTML); err != nil {
		return err
	}

	inv, err := s.repo.FindByIDWithRelations(ctx, id)
	if err != nil {
		_ = surface.Close()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("invoice", id.String())
		}
		return apierror.NewFetch("invoice: render fetch", err)
	}

	doc, err := s.buildDocument(inv)
	if err != nil {
		_ = surface.Close()
		return apierror.NewFetch("invoice: render document", err)
	}
	return surface.WriteHTML(doc)
}

func (s *documentService) GeneratePDF(ctx context.Context, id uuid.UUID) (string, error) {
	inv, err := s.repo.FindByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apierror.NewNotFound("invoice", id.String())
		}
		return "", apierror.NewFetch("invoice: pdf fetch", err)
	}
	return infra.GenerateInvoicePDF(inv, infra.IssuerIdentity{
		Name:         s.cfg.CompanyName,
		Address:      s.cfg.CompanyAddress,
		Phone:        s.cfg.CompanyPhone,
		Registration: s.cfg.CompanyRegistration,
	}, s.cfg.Currency, infra.TaxLabel(s.cfg.TaxRate), s.cfg.PDFStoragePath)
}

// ── document assembly ────────────────────────────────────────────────────────

// documentData feeds the invoice HTML template. Totals come straight from the
// stored header fields — the printed figures must match what was persisted,
// never a live recomputation from items.
type documentData struct {
	Issuer   issuerView
	Invoice  invoiceView
	Client   clientView
	Items    []itemView
	Totals   totalsView
	Footer   string
	Currency string
}

type issuerView struct {
	Name         string
	Address      string
	Phone        string
	Registration string
}

type invoiceView struct {
	Title     string
	Reference string
	Date      string
	DueDate   string
	Status    string
}

type clientView struct {
	Name    string
	Address string
	Phone   string
}

type itemView struct {
	Description string
	Unit        string
	Quantity    string
	UnitPrice   string
	Total       string
}

type totalsView struct {
	SubTotal string
	TaxLabel string
	Tax      string
	Total    string
}

func (s *documentService) buildDocument(inv *model.Invoice) (string, error) {
	title := "Invoice"
	if inv.Type == model.InvoiceTypeProforma {
		title = "Proforma Invoice"
	}

	data := documentData{
		Issuer: issuerView{
			Name:         s.cfg.CompanyName,
			Address:      s.cfg.CompanyAddress,
			Phone:        s.cfg.CompanyPhone,
			Registration: s.cfg.CompanyRegistration,
		},
		Invoice: invoiceView{
			Title:     title,
			Reference: shortRef(inv.ID),
			Date:      inv.Date.Format("2006-01-02"),
			Status:    inv.Status,
		},
		Totals: totalsView{
			SubTotal: inv.SubTotal.StringFixed(2),
			TaxLabel: infra.TaxLabel(s.cfg.TaxRate),
			Tax:      inv.TaxAmount.StringFixed(2),
			Total:    inv.TotalAmount.StringFixed(2),
		},
		Footer:   documentFooter,
		Currency: s.cfg.Currency,
	}
	if inv.DueDate != nil {
		data.Invoice.DueDate = inv.DueDate.Format("2006-01-02")
	}
	if inv.Client != nil {
		data.Client = clientView{
			Name:    inv.Client.Name,
			Address: inv.Client.Address,
			Phone:   inv.Client.Phone,
		}
	}
	for _, item := range inv.Items {
		data.Items = append(data.Items, itemView{
			Description: item.Description,
			Unit:        item.Unit,
			Quantity:    item.Quantity.StringFixed(2),
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Total:       item.Total.StringFixed(2),
		})
	}

	var sb strings.Builder
	if err := documentTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

const documentFooter = "Thank you for your business. Payment is due by the date above. " +
	"This document was generated electronically and is valid without a signature."

const loadingHTML = `<!DOCTYPE html>
<html><head><title>Preparing document…</title></head>
<body><p>Preparing document…</p></body></html>`

// documentTmpl is the self-contained printable invoice page. No external
// assets: everything needed to print is inlined, and the embedded script
// triggers the platform print action once the page has loaded.
var documentTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Invoice.Title}} {{.Invoice.Reference}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 40px; color: #222; }
h1 { font-size: 22px; margin-bottom: 0; }
.issuer { border-bottom: 2px solid #222; padding-bottom: 12px; margin-bottom: 16px; }
.issuer p, .client p { margin: 2px 0; font-size: 12px; }
.meta { margin-bottom: 16px; font-size: 13px; }
.client { margin-bottom: 20px; }
table { width: 100%; border-collapse: collapse; font-size: 13px; }
th, td { border: 1px solid #999; padding: 6px 8px; text-align: left; }
th { background: #eee; }
td.num, th.num { text-align: right; }
.totals { margin-top: 16px; width: 40%; margin-left: auto; font-size: 13px; }
.totals td { border: none; padding: 4px 8px; }
.totals .grand td { border-top: 2px solid #222; font-weight: bold; }
.footer { margin-top: 40px; font-size: 11px; color: #555; }
</style>
</head>
<body>
<div class="issuer">
<h1>{{.Issuer.Name}}</h1>
<p>{{.Issuer.Address}}</p>
<p>{{.Issuer.Phone}}</p>
<p>{{.Issuer.Registration}}</p>
</div>
<div class="meta">
<h2>{{.Invoice.Title}} — {{.Invoice.Reference}}</h2>
<p>Date: {{.Invoice.Date}}{{if .Invoice.DueDate}} &nbsp;|&nbsp; Due: {{.Invoice.DueDate}}{{end}} &nbsp;|&nbsp; Status: {{.Invoice.Status}}</p>
</div>
<div class="client">
<strong>Billed to</strong>
<p>{{.Client.Name}}</p>
<p>{{.Client.Address}}</p>
<p>{{.Client.Phone}}</p>
</div>
<table>
<thead>
<tr><th>Description</th><th>Unit</th><th class="num">Qty</th><th class="num">Unit price</th><th class="num">Total</th></tr>
</thead>
<tbody>
{{range .Items}}<tr><td>{{.Description}}</td><td>{{.Unit}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.UnitPrice}}</td><td class="num">{{.Total}}</td></tr>
{{end}}</tbody>
</table>
<table class="totals">
<tr><td>Subtotal</td><td class="num">{{.Totals.SubTotal}} {{.Currency}}</td></tr>
<tr><td>{{.Totals.TaxLabel}}</td><td class="num">{{.Totals.Tax}} {{.Currency}}</td></tr>
<tr class="grand"><td>Total</td><td class="num">{{.Totals.Total}} {{.Currency}}</td></tr>
</table>
<p class="footer">{{.Footer}}</p>
<script>window.addEventListener('load', function () { setTimeout(function () { window.print(); }, 300); });</script>
</body>
</html>`))
