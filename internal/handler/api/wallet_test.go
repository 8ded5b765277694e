//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/handler/api"
	resdto "github.com/ffytmanager-droid/otp-bot/internal/handler/dto/response"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/commands"
	"github.com/ffytmanager-droid/otp-bot/tests/common/httptest"
	"github.com/ffytmanager-droid/otp-bot/tests/common/testutil"
	commandsmock "github.com/ffytmanager-droid/otp-bot/tests/mock/commands"
	queriesmock "github.com/ffytmanager-droid/otp-bot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WalletHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockUsers     *commandsmock.MockUserCommands
	mockDeposits  *commandsmock.MockDepositCommands
	mockGiftCodes *commandsmock.MockGiftCodeCommands
	mockTransfers *commandsmock.MockTransferCommands
	mockQueries   *queriesmock.MockUserQueries
	handler       *api.WalletHandler
}

func (s *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockDeposits = commandsmock.NewMockDepositCommands(s.mockCtrl)
	s.mockGiftCodes = commandsmock.NewMockGiftCodeCommands(s.mockCtrl)
	s.mockTransfers = commandsmock.NewMockTransferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewWalletHandler(s.mockUsers, s.mockDeposits, s.mockGiftCodes, s.mockTransfers, s.mockQueries)

	s.router.POST("/users/register", s.handler.Register)

	authed := s.router.Group("")
	authed.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
	})
	authed.PUT("/users/access", s.handler.SetAccess)
	authed.GET("/users/me", s.handler.Profile)
	authed.POST("/deposits", s.handler.SubmitDeposit)
	authed.GET("/deposits", s.handler.DepositHistory)
	authed.POST("/giftcodes/redeem", s.handler.RedeemGiftCode)
	authed.POST("/transfers", s.handler.Transfer)
}

func (s *WalletHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

func (s *WalletHandlerTestSuite) TestRegister() {
	url := "/users/register"
	validBody := map[string]any{"user_id": 9002, "first_name": "Asha", "referral_code": "REF5K"}

	s.Run("success: 201 Created", func() {
		s.mockUsers.EXPECT().Register(gomock.Any(), commands.RegisterInput{
			UserID:       9002,
			FirstName:    "Asha",
			ReferralCode: "REF5K",
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 on missing user_id", func() {
		body := testutil.DtoMap(s.T(), validBody, testutil.Field("user_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *WalletHandlerTestSuite) TestSubmitDeposit() {
	url := "/deposits"
	validBody := map[string]any{"amount_paise": 50000, "utr": "UTR1234567890"}

	s.Run("success: 201 with the UPI link", func() {
		s.mockDeposits.EXPECT().Submit(gomock.Any(), testUserID, wallet.FromPaise(50000), "UTR1234567890").
			Return(&commands.SubmitDepositResult{RequestID: 42, UPILink: "upi://pay?pa=shop@upi"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response resdto.DepositResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(42), response.RequestID)
		s.Contains(response.UPILink, "upi://pay")
	})

	s.Run("error: 400 when the deposit is below the minimum", func() {
		s.mockDeposits.EXPECT().Submit(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDepositTooSmall).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "minimum")
	})

	s.Run("error: 409 on a duplicate UTR", func() {
		s.mockDeposits.EXPECT().Submit(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDuplicateUTR).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "UTR")
	})
}

func (s *WalletHandlerTestSuite) TestRedeemGiftCode() {
	url := "/giftcodes/redeem"
	validBody := map[string]any{"code": "FIREWXYZ"}

	s.Run("success: 200 with the credited amount", func() {
		s.mockGiftCodes.EXPECT().Redeem(gomock.Any(), testUserID, "FIREWXYZ").
			Return(wallet.FromPaise(10000), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotEmpty(response.Credited)
	})

	s.Run("error: 409 when already redeemed by this user", func() {
		s.mockGiftCodes.EXPECT().Redeem(gomock.Any(), testUserID, "FIREWXYZ").
			Return(wallet.Money(0), commands.ErrGiftCodeUsed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already redeemed")
	})

	s.Run("error: 422 below the monthly deposit requirement", func() {
		s.mockGiftCodes.EXPECT().Redeem(gomock.Any(), testUserID, "FIREWXYZ").
			Return(wallet.Money(0), commands.ErrGiftCodeMinDeposit).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *WalletHandlerTestSuite) TestTransfer() {
	url := "/transfers"
	validBody := map[string]any{"to_user_id": 9005, "amount_paise": 20000, "note": "thanks"}

	s.Run("success: 201 with the transfer id", func() {
		s.mockTransfers.EXPECT().Transfer(gomock.Any(), testUserID, int64(9005), wallet.FromPaise(20000), "thanks").
			Return(int64(7), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response resdto.TransferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(7), response.TransferID)
	})

	s.Run("error: 400 on a self transfer", func() {
		s.mockTransfers.EXPECT().Transfer(gomock.Any(), testUserID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), commands.ErrSelfTransfer).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "yourself")
	})

	s.Run("error: 402 on insufficient balance", func() {
		s.mockTransfers.EXPECT().Transfer(gomock.Any(), testUserID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), commands.ErrInsufficientBalance).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "Insufficient")
	})

	s.Run("error: 404 when the recipient is unknown", func() {
		s.mockTransfers.EXPECT().Transfer(gomock.Any(), testUserID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), commands.ErrRecipientNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Recipient")
	})
}
