package handlers

import (
	"net/http"
	"strings"

	request "b2b_sourcing/internal/adapter/http/dto/request"
	response "b2b_sourcing/internal/adapter/http/dto/response"
	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler handles payment confirmation and the shipping pipeline.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
	logger  *zap.Logger
}

func NewOrderHandler(uc usecase.IOrderUseCase, logger *zap.Logger) *OrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderHandler{usecase: uc, logger: logger.Named("http.orders")}
}

// ConfirmPayment godoc
// @Summary      Pay the accepted quote and create its order
// @Description  Idempotent: once an order exists it is returned without charging again.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request_id path string true "request id"
// @Param        payload body request.ConfirmPaymentRequest true "shipping and provider payload"
// @Success      200 {object} response.OrderResponse
// @Failure      402 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /requests/{request_id}/payment [post]
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	requestID := c.Param("request_id")
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Debug("invalid payment payload", zap.String("request_id", requestID), zap.Error(err))
		respondAppError(c, errInvalidRequest)
		return
	}

	order, err := h.usecase.ConfirmPayment(c.Request.Context(), actorFrom(c), requestID, payload.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.logger.Info("payment confirmed",
		zap.String("request_id", requestID),
		zap.String("order_id", order.ID),
		zap.String("payment_id", order.PaymentID),
	)
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetOrderByRequest godoc
// @Summary      Order created from a request
// @Tags         orders
// @Produce      json
// @Param        request_id path string true "request id"
// @Success      200 {object} response.OrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /requests/{request_id}/order [get]
func (h *OrderHandler) GetOrderByRequest(c *gin.Context) {
	order, err := h.usecase.GetByRequestID(c.Request.Context(), c.Param("request_id"))
	h.respondOrder(c, order, err)
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        order_id path string true "order id"
// @Success      200 {object} response.OrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("order_id"))
	h.respondOrder(c, order, err)
}

// ListOrders godoc
// @Summary      Orders of a buyer
// @Description  Buyers always get their own orders; admins pass buyer_id.
// @Tags         orders
// @Produce      json
// @Param        buyer_id query string false "buyer id"
// @Success      200 {array} response.OrderResponse
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	actor := actorFrom(c)
	buyerID := strings.TrimSpace(c.Query("buyer_id"))
	switch actor.Role {
	case entities.RoleBuyer:
		if buyerID != "" && buyerID != actor.ID {
			respondAppError(c, errForbidden)
			return
		}
		buyerID = actor.ID
	case entities.RoleAdmin:
	default:
		respondAppError(c, errForbidden)
		return
	}

	orders, err := h.usecase.ListByBuyerID(c.Request.Context(), buyerID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// AdvanceShipping godoc
// @Summary      Move an order forward in the shipping pipeline
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id path string true "order id"
// @Param        payload body request.AdvanceShippingRequest true "next status"
// @Success      200 {object} response.OrderResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /orders/{order_id}/shipping [patch]
func (h *OrderHandler) AdvanceShipping(c *gin.Context) {
	var payload request.AdvanceShippingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}

	order, err := h.usecase.AdvanceShipping(c.Request.Context(), actorFrom(c), c.Param("order_id"), payload.ResolveStatus(), strings.TrimSpace(payload.Description))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.logger.Info("shipping advanced", zap.String("order_id", order.ID), zap.String("status", string(order.Status)))
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) respondOrder(c *gin.Context, order entities.Order, err error) {
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !canViewOrder(actorFrom(c), order) {
		respondAppError(c, errForbidden)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func canViewOrder(actor entities.Actor, o entities.Order) bool {
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleBuyer:
		return actor.ID == o.BuyerID
	case entities.RoleVendor:
		return actor.ID == o.VendorID
	default:
		return false
	}
}
