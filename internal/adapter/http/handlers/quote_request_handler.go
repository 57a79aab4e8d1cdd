package handlers

import (
	"net/http"
	"strings"

	request "b2b_sourcing/internal/adapter/http/dto/request"
	response "b2b_sourcing/internal/adapter/http/dto/response"
	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/domain/ranking"
	"b2b_sourcing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteRequestHandler serves the buyer, vendor and admin views of quote requests.
type QuoteRequestHandler struct {
	usecase usecase.IQuoteRequestUseCase
	logger  *zap.Logger
}

func NewQuoteRequestHandler(uc usecase.IQuoteRequestUseCase, logger *zap.Logger) *QuoteRequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteRequestHandler{usecase: uc, logger: logger.Named("http.requests")}
}

// CreateRequest godoc
// @Summary      Open a quote request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateQuoteRequestRequest true "line items"
// @Success      201 {object} response.QuoteRequestResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Router       /requests [post]
func (h *QuoteRequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateQuoteRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.CreateRequest(c.Request.Context(), actorFrom(c), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.logger.Info("quote request created", zap.String("request_id", created.ID), zap.String("buyer_id", created.BuyerID))
	c.JSON(http.StatusCreated, response.FromQuoteRequest(created))
}

// GetRequest godoc
// @Summary      Get a quote request
// @Tags         requests
// @Produce      json
// @Param        request_id path string true "request id"
// @Success      200 {object} response.QuoteRequestResponse
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /requests/{request_id} [get]
func (h *QuoteRequestHandler) GetRequest(c *gin.Context) {
	r, err := h.usecase.GetRequest(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	view, ok := visibleTo(actorFrom(c), r)
	if !ok {
		respondAppError(c, errForbidden)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(view))
}

// ListRequests godoc
// @Summary      List quote requests
// @Description  Admins see every request; buyers only their own.
// @Tags         requests
// @Produce      json
// @Param        status    query string false "PENDING, APPROVED, REJECTED, EXPIRED or COMPLETED"
// @Param        buyer_id  query string false "buyer filter"
// @Param        vendor_id query string false "requests quoted by this vendor"
// @Success      200 {array} response.QuoteRequestResponse
// @Router       /requests [get]
func (h *QuoteRequestHandler) ListRequests(c *gin.Context) {
	status, ok := parseRequestStatus(c.Query("status"))
	if !ok {
		respondAppError(c, errInvalidRequest)
		return
	}
	filter := entities.RequestFilter{
		Status:   status,
		BuyerID:  strings.TrimSpace(c.Query("buyer_id")),
		VendorID: strings.TrimSpace(c.Query("vendor_id")),
	}

	list, err := h.usecase.ListAllRequests(c.Request.Context(), actorFrom(c), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequests(list))
}

// ForceStatus godoc
// @Summary      Admin status override
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        request_id path string true "request id"
// @Param        payload body request.ForceStatusRequest true "target status"
// @Success      200 {object} response.QuoteRequestResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /requests/{request_id}/status [patch]
func (h *QuoteRequestHandler) ForceStatus(c *gin.Context) {
	var payload request.ForceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}

	actor := actorFrom(c)
	updated, err := h.usecase.ForceStatus(c.Request.Context(), actor, c.Param("request_id"), payload.ResolveStatus(), strings.TrimSpace(payload.Reason))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.logger.Info("request status forced",
		zap.String("request_id", updated.ID),
		zap.String("status", string(updated.Status)),
		zap.String("actor_id", actor.ID),
	)
	c.JSON(http.StatusOK, response.FromQuoteRequest(updated))
}

// ListQuotes godoc
// @Summary      Ranked quotes of a request
// @Tags         quotes
// @Produce      json
// @Param        request_id path string true "request id"
// @Param        mode query string false "default, price or rating"
// @Success      200 {array} response.RankedQuoteResponse
// @Router       /requests/{request_id}/quotes [get]
func (h *QuoteRequestHandler) ListQuotes(c *gin.Context) {
	mode, err := ranking.ParseMode(c.Query("mode"))
	if err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}
	if !h.ownsRequest(c) {
		return
	}

	views, err := h.usecase.ListQuotes(c.Request.Context(), c.Param("request_id"), mode)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteViews(views))
}

// SubmitQuote godoc
// @Summary      Submit or replace a vendor quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request_id path string true "request id"
// @Param        payload body request.SubmitQuoteRequest true "quote"
// @Success      201 {object} response.QuoteResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /requests/{request_id}/quotes [post]
func (h *QuoteRequestHandler) SubmitQuote(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}

	q, err := h.usecase.SubmitQuote(c.Request.Context(), actorFrom(c), c.Param("request_id"), payload.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.logger.Info("quote submitted",
		zap.String("request_id", q.RequestID),
		zap.String("vendor_id", q.VendorID),
		zap.String("status", string(q.Status)),
	)
	c.JSON(http.StatusCreated, response.FromVendorQuote(q))
}

// GenerateQuotes godoc
// @Summary      Simulated vendor quotes
// @Description  Without vendor_id one quote per eligible vendor is returned. Nothing is stored.
// @Tags         quotes
// @Produce      json
// @Param        request_id path string true "request id"
// @Param        vendor_id query string false "single vendor"
// @Success      200 {array} response.QuoteResponse
// @Router       /requests/{request_id}/quotes/generate [post]
func (h *QuoteRequestHandler) GenerateQuotes(c *gin.Context) {
	if !h.ownsRequest(c) {
		return
	}
	requestID := c.Param("request_id")

	if vendorID := strings.TrimSpace(c.Query("vendor_id")); vendorID != "" {
		q, err := h.usecase.GenerateQuote(c.Request.Context(), requestID, vendorID)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, []response.QuoteResponse{response.FromVendorQuote(q)})
		return
	}

	qs, err := h.usecase.GenerateQuotes(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVendorQuotes(qs))
}

// SelectQuote godoc
// @Summary      Accept a vendor quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request_id path string true "request id"
// @Param        payload body request.SelectQuoteRequest true "vendor"
// @Success      200 {object} response.QuoteRequestResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /requests/{request_id}/select [post]
func (h *QuoteRequestHandler) SelectQuote(c *gin.Context) {
	var payload request.SelectQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}

	updated, err := h.usecase.SelectQuote(c.Request.Context(), actorFrom(c), c.Param("request_id"), strings.TrimSpace(payload.VendorID))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.logger.Info("quote selected", zap.String("request_id", updated.ID), zap.String("vendor_id", payload.VendorID))
	c.JSON(http.StatusOK, response.FromQuoteRequest(updated))
}

// ListVendors godoc
// @Summary      Vendor directory
// @Tags         vendors
// @Produce      json
// @Success      200 {array} response.VendorResponse
// @Router       /vendors [get]
func (h *QuoteRequestHandler) ListVendors(c *gin.Context) {
	vs, err := h.usecase.ListVendors(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVendorProfiles(vs))
}

// ListVendorRequests godoc
// @Summary      Requests visible to a vendor
// @Tags         vendors
// @Produce      json
// @Param        vendor_id path string true "vendor id"
// @Param        status query string false "status filter"
// @Success      200 {array} response.QuoteRequestResponse
// @Router       /vendors/{vendor_id}/requests [get]
func (h *QuoteRequestHandler) ListVendorRequests(c *gin.Context) {
	vendorID := c.Param("vendor_id")
	actor := actorFrom(c)
	if actor.Role != entities.RoleAdmin && (actor.Role != entities.RoleVendor || actor.ID != vendorID) {
		respondAppError(c, errForbidden)
		return
	}
	status, ok := parseRequestStatus(c.Query("status"))
	if !ok {
		respondAppError(c, errInvalidRequest)
		return
	}

	list, err := h.usecase.ListRequestsForVendor(c.Request.Context(), vendorID, status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequests(list))
}

// ownsRequest allows the owning buyer and admins. It writes the error response
// itself and reports false when the caller must stop.
func (h *QuoteRequestHandler) ownsRequest(c *gin.Context) bool {
	actor := actorFrom(c)
	if actor.Role == entities.RoleAdmin {
		return true
	}
	if actor.Role != entities.RoleBuyer {
		respondAppError(c, errForbidden)
		return false
	}
	r, err := h.usecase.GetRequest(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return false
	}
	if r.BuyerID != actor.ID {
		respondAppError(c, errForbidden)
		return false
	}
	return true
}

// visibleTo trims a request to what actor may see. Vendors see open requests
// and the ones they quoted on, with rival quotes removed.
func visibleTo(actor entities.Actor, r entities.QuoteRequest) (entities.QuoteRequest, bool) {
	switch actor.Role {
	case entities.RoleAdmin:
		return r, true
	case entities.RoleBuyer:
		return r, r.BuyerID == actor.ID
	case entities.RoleVendor:
		if r.Status != entities.RequestStatusPending && !r.HasQuoteFrom(actor.ID) {
			return entities.QuoteRequest{}, false
		}
		out := r.Clone()
		out.Quotes = out.Quotes[:0]
		for _, q := range r.Quotes {
			if q.VendorID == actor.ID {
				out.Quotes = append(out.Quotes, q)
			}
		}
		return out, true
	default:
		return entities.QuoteRequest{}, false
	}
}

func parseRequestStatus(raw string) (entities.RequestStatus, bool) {
	s := entities.RequestStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if s == "" {
		return "", true
	}
	return s, entities.ValidRequestStatus(s)
}
