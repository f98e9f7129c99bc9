package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/session"
	"puntoventa/internal/domain/cart"
	"puntoventa/internal/domain/checkout"
	"puntoventa/internal/domain/documents/purchase"
	"puntoventa/internal/infrastructure/http/v1/dto"
)

// PurchaseHandler serves purchase documents and the purchase submission.
type PurchaseHandler struct {
	BaseHandler

	service   *purchase.Service
	assembler *checkout.Service
	history   HistoryReader
}

// NewPurchaseHandler creates the purchase document handler.
func NewPurchaseHandler(service *purchase.Service, assembler *checkout.Service, history HistoryReader) *PurchaseHandler {
	return &PurchaseHandler{service: service, assembler: assembler, history: history}
}

// List handles GET "" with document filters.
func (h *PurchaseHandler) List(c *gin.Context) {
	var query dto.DocumentListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter := purchase.ListFilter{ListFilter: query.ToBaseFilter()}

	var err error
	if filter.SupplierID, err = dto.ParseID(query.SupplierID, "supplierId"); err != nil {
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

// Create handles POST "": a pending purchase saved directly.
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req dto.CreatePurchaseRequest
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
func (h *PurchaseHandler) GetByID(c *gin.Context) {
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
func (h *PurchaseHandler) GetByFolio(c *gin.Context) {
	doc, err := h.service.GetByFolio(c.Request.Context(), c.Param("folio"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}

// Update handles PUT ":id" for pending documents.
func (h *PurchaseHandler) Update(c *gin.Context) {
	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePurchaseRequest
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
func (h *PurchaseHandler) Delete(c *gin.Context) {
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

// Issue handles POST ":id/issue": finalize a pending purchase and add
// the purchased quantities to stock.
func (h *PurchaseHandler) Issue(c *gin.Context) {
	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Issue(c.Request.Context(), docID); err != nil {
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
func (h *PurchaseHandler) RemovePayment(c *gin.Context) {
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

// NextFolio handles GET /next-folio for the operator's register.
func (h *PurchaseHandler) NextFolio(c *gin.Context) {
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

// Submit handles POST /submit: the purchase checkout submission.
func (h *PurchaseHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.fillScopeFromSession(c, &req)

	input := req.ToInput(cart.ModePurchase)
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

func (h *PurchaseHandler) fillScopeFromSession(c *gin.Context, req *dto.SubmitRequest) {
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

func (h *PurchaseHandler) registerFromQueryOrSession(c *gin.Context) (id.ID, bool) {
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
func (h *PurchaseHandler) History(c *gin.Context) {
	docID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	limit := h.ParseIntQuery(c, "limit", 50)

	entries, err := h.history.GetEntityHistory(c.Request.Context(), "purchase", docID, limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"items": entries})
}
