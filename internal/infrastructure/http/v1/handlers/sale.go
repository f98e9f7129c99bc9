package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/session"
	"puntoventa/internal/domain/cart"
	"puntoventa/internal/domain/checkout"
	"puntoventa/internal/domain/documents/sale"
	"puntoventa/internal/infrastructure/http/v1/dto"
)

// SaleHandler serves sale documents and the sale checkout submission.
type SaleHandler struct {
	BaseHandler

	service   *sale.Service
	assembler *checkout.Service
	history   HistoryReader
}

// NewSaleHandler creates the sale document handler.
func NewSaleHandler(service *sale.Service, assembler *checkout.Service, history HistoryReader) *SaleHandler {
	return &SaleHandler{service: service, assembler: assembler, history: history}
}

// List handles GET "" with document filters.
func (h *SaleHandler) List(c *gin.Context) {
	var query dto.DocumentListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter := sale.ListFilter{ListFilter: query.ToBaseFilter()}

	var err error
	if filter.ClientID, err = dto.ParseID(query.ClientID, "clientId"); err != nil {
		h.Error(c, err)
		return
	}
	if filter.StoreID, err = dto.ParseID(query.StoreID, "storeId"); err != nil {
		h.Error(c, err)
		return
	}
	if filter.RegisterID, err = dto.ParseID(query.RegisterID, "registerId"); err != nil {
		h.Error(c, err)
		return
	}
	if filter.Status, err = dto.ParseStatus(query.Status); err != nil {
		h.Error(c, err)
		return
	}
	if filter.DateFrom, err = dto.ParseDate(query.DateFrom, "dateFrom"); err != nil {
		h.Error(c, err)
		return
	}
	if filter.DateTo, err = dto.ParseDate(query.DateTo, "dateTo"); err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, result)
}

// Create handles POST "": a pending sale saved directly.
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}

// GetByID handles GET ":id".
func (h *SaleHandler) GetByID(c *gin.Context) {
	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}

// GetByFolio handles GET /by-folio/:folio.
func (h *SaleHandler) GetByFolio(c *gin.Context) {
	doc, err := h.service.GetByFolio(c.Request.Context(), c.Param("folio"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}

// Update handles PUT ":id" for pending documents.
func (h *SaleHandler) Update(c *gin.Context) {
	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(doc)
	if err := h.service.Update(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}

// Delete handles DELETE ":id" (soft delete, pending documents only).
func (h *SaleHandler) Delete(c *gin.Context) {
	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// Issue handles POST ":id/issue": finalize a pending sale. The credit
// eligibility re-check and stock adjustment run inside this call.
func (h *SaleHandler) Issue(c *gin.Context) {
	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Issue(c.Request.Context(), docID, time.Now().UTC()); err != nil {
		h.Error(c, err)
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}

// RemovePayment handles DELETE ":id/payments/:index".
func (h *SaleHandler) RemovePayment(c *gin.Context) {
	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid payment index").
			WithDetail("value", c.Param("index")))
		return
	}

	if err := h.service.RemovePayment(c.Request.Context(), docID, index); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "payment removed")
}

// NextFolio handles GET /next-folio: preview of the next folio for the
// operator's register.
func (h *SaleHandler) NextFolio(c *gin.Context) {
	registerID, ok := h.registerFromQueryOrSession(c)
	if !ok {
		return
	}

	folio, err := h.service.NextFolio(c.Request.Context(), registerID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"folio": folio})
}

// Submit handles POST /submit: the checkout submission. Lines and
// payments are resolved against the catalogs, assembled into a payload
// and handed to the document service in one transaction.
func (h *SaleHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.fillScopeFromSession(c, &req)

	input := req.ToInput(cart.ModeSale)
	payload, err := h.assembler.Assemble(c.Request.Context(), input)
	if err != nil {
		h.Error(c, err)
		return
	}

	doc, err := h.service.Submit(c.Request.Context(), payload)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}

func (h *SaleHandler) fillScopeFromSession(c *gin.Context, req *dto.SubmitRequest) {
	sess := session.FromContext(c.Request.Context())
	if sess == nil {
		return
	}
	if id.IsNil(req.StoreID) && sess.StoreID != "" {
		if storeID, err := id.Parse(sess.StoreID); err == nil {
			req.StoreID = storeID
		}
	}
	if id.IsNil(req.RegisterID) && sess.RegisterID != "" {
		if registerID, err := id.Parse(sess.RegisterID); err == nil {
			req.RegisterID = registerID
		}
	}
}

func (h *SaleHandler) registerFromQueryOrSession(c *gin.Context) (id.ID, bool) {
	if raw := c.Query("registerId"); raw != "" {
		registerID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid register id").
				WithDetail("value", raw))
			return id.Nil(), false
		}
		return registerID, true
	}

	sess := session.FromContext(c.Request.Context())
	if sess != nil && sess.RegisterID != "" {
		if registerID, err := id.Parse(sess.RegisterID); err == nil {
			return registerID, true
		}
	}

	h.Error(c, apperror.NewValidation("register id is required"))
	return id.Nil(), false
}

// History handles GET /:id/history with the document audit trail.
func (h *SaleHandler) History(c *gin.Context) {
	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	limit := h.ParseIntQuery(c, "limit", 50)

	entries, err := h.history.GetEntityHistory(c.Request.Context(), "sale", docID, limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"items": entries})
}
