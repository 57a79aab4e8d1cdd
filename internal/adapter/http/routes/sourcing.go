package routes

import (
	"b2b_sourcing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests = "/requests"
	PathVendors  = "/vendors"
	PathOrders   = "/orders"
)

func addSourcingRoutes(rg *gin.RouterGroup, requestHandler *handlers.QuoteRequestHandler, orderHandler *handlers.OrderHandler) {
	requests := rg.Group(PathRequests, handlers.RequireActor())
	{
		requests.POST("", requestHandler.CreateRequest)
		requests.GET("", requestHandler.ListRequests)
		requests.GET("/:request_id", requestHandler.GetRequest)
		requests.PATCH("/:request_id/status", requestHandler.ForceStatus)

		requests.GET("/:request_id/quotes", requestHandler.ListQuotes)
		requests.POST("/:request_id/quotes", requestHandler.SubmitQuote)
		requests.POST("/:request_id/quotes/generate", requestHandler.GenerateQuotes)
		requests.POST("/:request_id/select", requestHandler.SelectQuote)

		requests.POST("/:request_id/payment", orderHandler.ConfirmPayment)
		requests.GET("/:request_id/order", orderHandler.GetOrderByRequest)
	}

	vendors := rg.Group(PathVendors)
	{
		// Directory is public.
		vendors.GET("", requestHandler.ListVendors)
		vendors.GET("/:vendor_id/requests", handlers.RequireActor(), requestHandler.ListVendorRequests)
	}

	orders := rg.Group(PathOrders, handlers.RequireActor())
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id/shipping", orderHandler.AdvanceShipping)
	}
}
