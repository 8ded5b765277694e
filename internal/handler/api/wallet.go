package api

import (
	"net/http"

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

type WalletHandler struct {
	userCommands     commands.UserCommands
	depositCommands  commands.DepositCommands
	giftCodeCommands commands.GiftCodeCommands
	transferCommands commands.TransferCommands
	userQueries      queries.UserQueries
}

func NewWalletHandler(
	userCommands commands.UserCommands,
	depositCommands commands.DepositCommands,
	giftCodeCommands commands.GiftCodeCommands,
	transferCommands commands.TransferCommands,
	userQueries queries.UserQueries,
) *WalletHandler {
	return &WalletHandler{
		userCommands:     userCommands,
		depositCommands:  depositCommands,
		giftCodeCommands: giftCodeCommands,
		transferCommands: transferCommands,
		userQueries:      userQueries,
	}
}

// @Summary Register user
// @Description Record first contact with a user, optionally with a referral code
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} map[string]string
// @Router /users/register [post]
func (h *WalletHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.userCommands.Register(c.Request.Context(), commands.RegisterInput{
		UserID:       req.UserID,
		FirstName:    req.FirstName,
		Username:     req.Username,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "registered"})
}

// @Summary Update access flags
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetAccessRequest true "Access flags"
// @Success 200 {object} map[string]string
// @Router /users/access [put]
func (h *WalletHandler) SetAccess(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SetAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.userCommands.SetAccess(c.Request.Context(), userID, req.ChannelJoined, req.TermsAccepted); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// @Summary Profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 404 {object} map[string]string
// @Router /users/me [get]
func (h *WalletHandler) Profile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	profile, err := h.userQueries.Profile(c.Request.Context(), userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.NewProfileResponse(profile))
}

// @Summary Submit a deposit claim
// @Description File a UPI top-up with its UTR reference and get the payment link
// @Tags deposits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitDepositRequest true "Deposit request"
// @Success 201 {object} resdto.DepositResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /deposits [post]
func (h *WalletHandler) SubmitDeposit(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SubmitDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.depositCommands.Submit(c.Request.Context(), userID, wallet.FromPaise(req.AmountPaise), req.UTR)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrDepositTooSmall):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Deposit below the minimum amount"})
		case errs.Is(err, commands.ErrInvalidUTR):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid UTR reference"})
		case errs.Is(err, commands.ErrDuplicateUTR):
			c.JSON(http.StatusConflict, gin.H{"error": "UTR already submitted"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.DepositResponse{RequestID: result.RequestID, UPILink: result.UPILink})
}

// @Summary Deposit history
// @Tags deposits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DepositItem
// @Router /deposits [get]
func (h *WalletHandler) DepositHistory(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rows, err := h.userQueries.DepositHistory(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.NewDepositItems(rows))
}

// @Summary Redeem gift code
// @Tags giftcodes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemGiftCodeRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /giftcodes/redeem [post]
func (h *WalletHandler) RedeemGiftCode(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.RedeemGiftCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	amount, err := h.giftCodeCommands.Redeem(c.Request.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrGiftCodeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Gift code not found"})
		case errs.Is(err, commands.ErrGiftCodeExpired):
			c.JSON(http.StatusConflict, gin.H{"error": "Gift code expired"})
		case errs.Is(err, commands.ErrGiftCodeExhausted):
			c.JSON(http.StatusConflict, gin.H{"error": "Gift code fully used"})
		case errs.Is(err, commands.ErrGiftCodeUsed):
			c.JSON(http.StatusConflict, gin.H{"error": "Gift code already redeemed"})
		case errs.Is(err, commands.ErrGiftCodeMinDeposit):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Monthly deposit below gift code requirement"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.RedeemResponse{Credited: amount.String()})
}

// @Summary Transfer balance
// @Tags transfers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.TransferRequest true "Transfer request"
// @Success 201 {object} resdto.TransferResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transfers [post]
func (h *WalletHandler) Transfer(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.transferCommands.Transfer(c.Request.Context(), userID, req.ToUserID, wallet.FromPaise(req.AmountPaise), req.Note)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrSelfTransfer):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot transfer to yourself"})
		case errs.Is(err, commands.ErrTransferTooSmall):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Transfer amount must be positive"})
		case errs.Is(err, commands.ErrRecipientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
		case errs.Is(err, commands.ErrInsufficientBalance):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient balance"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.TransferResponse{TransferID: id})
}
