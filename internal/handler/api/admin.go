package api

import (
	"net/http"
	"strconv"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	reqdto "github.com/ffytmanager-droid/otp-bot/internal/handler/dto/request"
	resdto "github.com/ffytmanager-droid/otp-bot/internal/handler/dto/response"
	"github.com/ffytmanager-droid/otp-bot/internal/handler/middleware"
	"github.com/ffytmanager-droid/otp-bot/internal/infra"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/commands"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	depositCommands  commands.DepositCommands
	giftCodeCommands commands.GiftCodeCommands
	adminQueries     queries.AdminQueries
}

func NewAdminHandler(
	depositCommands commands.DepositCommands,
	giftCodeCommands commands.GiftCodeCommands,
	adminQueries queries.AdminQueries,
) *AdminHandler {
	return &AdminHandler{
		depositCommands:  depositCommands,
		giftCodeCommands: giftCodeCommands,
		adminQueries:     adminQueries,
	}
}

// @Summary Pending deposits
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DepositItem
// @Router /admin/deposits [get]
func (h *AdminHandler) PendingDeposits(c *gin.Context) {
	rows, err := h.adminQueries.PendingDeposits(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.NewDepositItems(rows))
}

// @Summary Approve a deposit
// @Description Credit the deposit, update monthly totals and pay referral commission
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deposit request ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/deposits/{id}/approve [post]
func (h *AdminHandler) ApproveDeposit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deposit id"})
		return
	}

	if err := h.depositCommands.Approve(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, commands.ErrDepositNotOpen):
			c.JSON(http.StatusConflict, gin.H{"error": "Deposit request is not pending"})
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Deposit request not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

// @Summary Reject a deposit
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deposit request ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/deposits/{id}/reject [post]
func (h *AdminHandler) RejectDeposit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deposit id"})
		return
	}

	if err := h.depositCommands.Reject(c.Request.Context(), id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deposit request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}

// @Summary Create a gift code
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGiftCodeRequest true "Gift code parameters"
// @Success 201 {object} resdto.GiftCodeResponse
// @Router /admin/giftcodes [post]
func (h *AdminHandler) CreateGiftCode(c *gin.Context) {
	adminID, _ := middleware.UserID(c)

	var req reqdto.CreateGiftCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	code, err := h.giftCodeCommands.Create(c.Request.Context(), commands.CreateGiftCodeInput{
		Amount:     wallet.FromPaise(req.AmountPaise),
		MaxUses:    req.MaxUses,
		ExpiresAt:  req.ExpiresAt,
		MinDeposit: wallet.FromPaise(req.MinDepositPaise),
		CreatedBy:  adminID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, resdto.GiftCodeResponse{Code: code})
}

// @Summary All active orders
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ActiveOrderItem
// @Router /admin/orders/active [get]
func (h *AdminHandler) ActiveOrders(c *gin.Context) {
	records, err := h.adminQueries.AllActiveOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.NewActiveOrders(records))
}
