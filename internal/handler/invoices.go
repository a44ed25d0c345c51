package handler

import (
	"net/http"
	"time"

	"banaapro/internal/apierror"
	"banaapro/internal/dto"
	"banaapro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoicesHandler struct {
	svc    service.InvoiceService
	docSvc service.DocumentService
}

func NewInvoicesHandler(svc service.InvoiceService, docSvc service.DocumentService) *InvoicesHandler {
	return &InvoicesHandler{svc: svc, docSvc: docSvc}
}

// Create godoc
// @Summary      Save an invoice
// @Description  Persists a drafted invoice: one header row plus its line items in a single transaction, then dispatches async PDF generation.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateInvoiceRequest true "Invoice draft"
// @Success      201  {object} dto.InvoiceResponse
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/invoices [post]
func (h *InvoicesHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !bindAndValidate(c, &req) {
		return
	}

	draft := service.NewInvoiceDraft(req.Type)
	draft.ClientID = req.ClientID
	draft.Notes = req.Notes
	if req.DueDate != nil && *req.DueDate != "" {
		if d, err := time.Parse("2006-01-02", *req.DueDate); err == nil {
			draft.DueDate = &d
		}
	}
	if len(req.Items) > 0 {
		draft.Items = draft.Items[:0]
		for _, in := range req.Items {
			item := draft.AddItem()
			item.Description = in.Description
			if in.Unit != "" {
				item.Unit = in.Unit
			}
			item.Quantity = in.Quantity
			item.UnitPrice = in.UnitPrice
			item.Total = in.Quantity.Mul(in.UnitPrice)
		}
	}

	resp, err := h.svc.Create(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      List invoices
// @Description  Returns all invoices newest first with the client name joined.
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.InvoiceListItem
// @Router       /v1/invoices [get]
func (h *InvoicesHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetByID godoc
// @Summary      Get one invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id} [get]
func (h *InvoicesHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Promote godoc
// @Summary      Promote a proforma to a final invoice
// @Description  One-way conversion gated on an explicit confirm flag. Totals and items are untouched.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                    true "Invoice UUID"
// @Param        body body dto.PromoteInvoiceRequest true "Confirmation"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/invoices/{id}/promote [post]
func (h *InvoicesHandler) Promote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.PromoteInvoiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.PromoteToFinal(c.Request.Context(), id, req.Confirm)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Print godoc
// @Summary      Printable invoice document
// @Description  Renders the self-contained print-ready HTML for an invoice. The page triggers the browser print dialog on load.
// @Tags         invoices
// @Produce      html
// @Security     BearerAuth
// @Param        id path string true "Invoice UUID"
// @Success      200 {string} string "HTML document"
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id}/print [get]
func (h *InvoicesHandler) Print(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}

	// The renderer writes into a pre-opened surface. Over HTTP that surface
	// is a buffer: Close discards it so the client gets an error status
	// instead of a stale placeholder page.
	surface := &bufferSurface{}
	if err := h.docSvc.Render(c.Request.Context(), id, surface); err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(surface.html))
}

// DownloadPDF godoc
// @Summary      Invoice PDF
// @Description  Generates (or regenerates) the A4 PDF and streams the file.
// @Tags         invoices
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "Invoice UUID"
// @Success      200 {file} file
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id}/pdf [get]
func (h *InvoicesHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	path, err := h.docSvc.GeneratePDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "invoice.pdf")
}

// bufferSurface adapts an HTTP response to the renderer's surface contract.
// Each WriteHTML replaces the buffered document; only the last write is sent.
type bufferSurface struct {
	html   string
	closed bool
}

func (b *bufferSurface) WriteHTML(html string) error {
	if b.closed {
		return nil
	}
	b.html = html
	return nil
}

func (b *bufferSurface) Close() error {
	b.closed = true
	b.html = ""
	return nil
}
