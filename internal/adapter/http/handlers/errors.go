package handlers

import (
	"errors"
	"net/http"

	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/domain/ranking"
	"b2b_sourcing/internal/usecase"
	"b2b_sourcing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Actor not allowed", http.StatusForbidden)
)

func isInvalidInput(err error) bool {
	for _, target := range []error{
		usecase.ErrInvalidRequestID, usecase.ErrInvalidVendorID, usecase.ErrInvalidBuyerID,
		usecase.ErrInvalidLineItems, usecase.ErrInvalidQuotePrice, usecase.ErrInvalidDeliveryDays,
		usecase.ErrInvalidRequestStatus, usecase.ErrInvalidExpiryWindow,
		usecase.ErrInvalidOrderID, usecase.ErrInvalidOrderStatus, usecase.ErrInvalidShipping,
		usecase.ErrInvalidPaymentPayload, usecase.ErrPaymentGatewayBadRequest,
		ranking.ErrInvalidMode,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func mapError(err error) *pkg.AppError {
	switch {
	case isInvalidInput(err):
		return errInvalidRequest
	case errors.Is(err, entities.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrVendorNotFound):
		return pkg.NewDomainErrorSimple("VENDOR_NOT_FOUND", "Vendor not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Vendor quote not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrForbidden):
		return errForbidden
	case errors.Is(err, usecase.ErrRequestNotApproved):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_APPROVED", "Quote request has no accepted quote", http.StatusConflict)
	case errors.Is(err, entities.ErrDuplicateSelection):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_SELECTED", "A quote is already selected for this request", http.StatusConflict)
	case errors.Is(err, entities.ErrRequestClosed):
		return pkg.NewDomainErrorSimple("REQUEST_CLOSED", "Quote request is closed", http.StatusConflict)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "The resource was modified concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invalid status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment declined", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentPending):
		return pkg.NewDomainErrorSimple("PAYMENT_PENDING", "Payment not yet approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentInProgress):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_PROGRESS", "A payment for this request is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotSet):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, logger *zap.Logger, err error) {
	appErr := mapError(err)
	fields := []zap.Field{
		zap.String("path", c.FullPath()),
		zap.String("code", appErr.Code),
		zap.Error(err),
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed", fields...)
	} else {
		logger.Debug("request rejected", fields...)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
