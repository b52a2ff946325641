package routes

import (
	"descomplaca/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathProposals = "/proposals"
	PathCheckout  = "/checkout"
	PathPayments  = "/payments"
	PathChat      = "/chat"
	PathReviews   = "/reviews"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	proposalHandler *handlers.ProposalHandler,
	checkoutHandler *handlers.CheckoutHandler,
	chatHandler *handlers.ChatHandler,
	reviewHandler *handlers.ReviewHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOpenOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.POST("/:order_id/advance", orderHandler.AdvanceExecution)
		orders.POST("/:order_id/cancel", orderHandler.CancelOrder)
	}

	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.SubmitProposal)
		proposals.GET("/order/:order_id", proposalHandler.ListProposalsByOrder)
		proposals.POST("/:proposal_id/withdraw", proposalHandler.WithdrawProposal)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/:proposal_id", checkoutHandler.CreateCheckout)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/webhook/asaas", checkoutHandler.AsaasWebhook)
	}

	chat := rg.Group(PathChat)
	{
		chat.POST("", chatHandler.SendMessage)
		chat.GET("/:order_id", chatHandler.GetHistory)
	}

	reviews := rg.Group(PathReviews)
	{
		reviews.POST("", reviewHandler.SubmitReview)
		reviews.GET("/order/:order_id", reviewHandler.GetReviewByOrder)
	}
}
