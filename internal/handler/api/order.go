package api

import (
	"context"
	"net/http"

	"github.com/ffytmanager-droid/otp-bot/internal/engine"
	reqdto "github.com/ffytmanager-droid/otp-bot/internal/handler/dto/request"
	resdto "github.com/ffytmanager-droid/otp-bot/internal/handler/dto/response"
	"github.com/ffytmanager-droid/otp-bot/internal/handler/middleware"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// OrderEngine is the slice of the lifecycle engine the HTTP layer drives.
type OrderEngine interface {
	Purchase(ctx context.Context, req engine.PurchaseRequest) (engine.OrderView, error)
	CheckNow(ctx context.Context, userID int64, orderID string) (engine.PollResult, error)
	Cancel(ctx context.Context, userID int64, orderID string) error
	RequestNewNumber(ctx context.Context, userID int64, orderID string) (engine.OrderView, error)
}

type OrderHandler struct {
	engine      OrderEngine
	userQueries queries.UserQueries
}

func NewOrderHandler(eng OrderEngine, userQueries queries.UserQueries) *OrderHandler {
	return &OrderHandler{engine: eng, userQueries: userQueries}
}

// @Summary Purchase a number
// @Description Debit the balance, rent a number and start the OTP session
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseRequest true "Purchase request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 402 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Purchase(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profile, err := h.userQueries.Profile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not registered"})
		return
	}
	if !profile.ChannelJoined || !profile.TermsAccepted {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access not verified"})
		return
	}

	view, err := h.engine.Purchase(c.Request.Context(), engine.PurchaseRequest{
		UserID:      userID,
		ChatID:      req.ChatID,
		ServiceID:   req.ServiceID,
		ServerIndex: req.ServerIndex,
	})
	if err != nil {
		switch {
		case errs.Is(err, engine.ErrServiceUnavailable):
			c.JSON(http.StatusNotFound, gin.H{"error": "Service or server not found"})
		case errs.Is(err, engine.ErrInsufficientBalance):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient balance"})
		case errs.Is(err, engine.ErrVendorNoNumbers):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No numbers available, refund issued"})
		case errs.Is(err, engine.ErrVendorNoBalance), errs.Is(err, engine.ErrVendorUnavailable),
			errs.Is(err, engine.ErrVendorRejected):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Vendor unavailable, refund issued"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.NewOrderResponse(view))
}

// @Summary Check for OTP now
// @Description Run one on-demand vendor poll for the order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.CheckResponse
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/check [post]
func (h *OrderHandler) Check(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	res, err := h.engine.CheckNow(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errs.Is(err, engine.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found or already finished"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.CheckResponse{Status: string(res.Status), Code: res.Code})
}

// @Summary Cancel an order
// @Description Cancel and refund an order after the lock window, before any OTP
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	err := h.engine.Cancel(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errs.Is(err, engine.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found or already finished"})
		case errs.Is(err, engine.ErrCancelLocked):
			c.JSON(http.StatusConflict, gin.H{"error": "Cancel is locked for this order"})
		case errs.Is(err, engine.ErrOTPAlreadyReceived):
			c.JSON(http.StatusConflict, gin.H{"error": "OTP already received"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled and refunded"})
}

// @Summary Request a new number
// @Description Swap the order to a fresh number of the same service without a new charge
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /orders/{id}/new-number [post]
func (h *OrderHandler) NewNumber(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.engine.RequestNewNumber(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errs.Is(err, engine.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found or already finished"})
		case errs.Is(err, engine.ErrNewNumberRefused):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Vendor refused a new number"})
		case errs.Is(err, engine.ErrVendorNoNumbers), errs.Is(err, engine.ErrVendorNoBalance),
			errs.Is(err, engine.ErrVendorUnavailable), errs.Is(err, engine.ErrVendorRejected):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Vendor unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewOrderResponse(view))
}

// @Summary Order history
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderHistoryItem
// @Router /orders [get]
func (h *OrderHandler) History(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	orders, err := h.userQueries.OrderHistory(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.NewOrderHistory(orders))
}

// @Summary Active orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ActiveOrderItem
// @Router /orders/active [get]
func (h *OrderHandler) Active(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	records, err := h.userQueries.ActiveOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.NewActiveOrders(records))
}
