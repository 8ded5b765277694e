//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/engine"
	"github.com/ffytmanager-droid/otp-bot/internal/handler/api"
	resdto "github.com/ffytmanager-droid/otp-bot/internal/handler/dto/response"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/queries"
	"github.com/ffytmanager-droid/otp-bot/tests/common/httptest"
	"github.com/ffytmanager-droid/otp-bot/tests/common/testutil"
	apimock "github.com/ffytmanager-droid/otp-bot/tests/mock/api"
	queriesmock "github.com/ffytmanager-droid/otp-bot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUserID int64 = 7001

type OrderHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockEngine  *apimock.MockOrderEngine
	mockQueries *queriesmock.MockUserQueries
	handler     *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockEngine = apimock.NewMockOrderEngine(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockEngine, s.mockQueries)

	// stand-in for the auth middleware
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
	})
	s.router.POST("/orders", s.handler.Purchase)
	s.router.GET("/orders", s.handler.History)
	s.router.GET("/orders/active", s.handler.Active)
	s.router.POST("/orders/:id/check", s.handler.Check)
	s.router.POST("/orders/:id/cancel", s.handler.Cancel)
	s.router.POST("/orders/:id/new-number", s.handler.NewNumber)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) verifiedProfile() *queries.ProfileView {
	return &queries.ProfileView{
		UserID:        testUserID,
		Balance:       wallet.FromPaise(100000),
		ChannelJoined: true,
		TermsAccepted: true,
	}
}

func (s *OrderHandlerTestSuite) TestPurchase() {
	url := "/orders"
	validBody := map[string]any{"service_id": "tg", "server_index": 0, "chat_id": 555}

	s.Run("success: returns 201 Created with the order view", func() {
		s.mockQueries.EXPECT().Profile(gomock.Any(), testUserID).
			Return(s.verifiedProfile(), nil).Times(1)
		s.mockEngine.EXPECT().Purchase(gomock.Any(), engine.PurchaseRequest{
			UserID:      testUserID,
			ChatID:      555,
			ServiceID:   "tg",
			ServerIndex: 0,
		}).Return(engine.OrderView{
			OrderID: "200124120000555",
			UserID:  testUserID,
			Phone:   "919876543210",
			Service: "Telegram",
			Price:   wallet.FromPaise(2500),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("200124120000555", response.OrderID)
		s.Equal("919876543210", response.Phone)
	})

	s.Run("error: 403 Forbidden when access is not verified", func() {
		profile := s.verifiedProfile()
		profile.ChannelJoined = false
		s.mockQueries.EXPECT().Profile(gomock.Any(), testUserID).
			Return(profile, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not verified")
	})

	s.Run("error: 402 Payment Required on insufficient balance", func() {
		// The engine attaches this sentinel as a mark over the raw
		// ledger error; classification must still see it.
		err := errs.Mark(errs.New("balance guard tripped"), engine.ErrInsufficientBalance)
		s.mockQueries.EXPECT().Profile(gomock.Any(), testUserID).
			Return(s.verifiedProfile(), nil).Times(1)
		s.mockEngine.EXPECT().Purchase(gomock.Any(), gomock.Any()).
			Return(engine.OrderView{}, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "Insufficient balance")
	})

	s.Run("error: 503 Service Unavailable when the vendor has no numbers", func() {
		s.mockQueries.EXPECT().Profile(gomock.Any(), testUserID).
			Return(s.verifiedProfile(), nil).Times(1)
		s.mockEngine.EXPECT().Purchase(gomock.Any(), gomock.Any()).
			Return(engine.OrderView{}, engine.ErrVendorNoNumbers).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "refund issued")
	})

	s.Run("error: 404 Not Found on unknown service", func() {
		err := errs.Mark(errs.New("service not found"), engine.ErrServiceUnavailable)
		s.mockQueries.EXPECT().Profile(gomock.Any(), testUserID).
			Return(s.verifiedProfile(), nil).Times(1)
		s.mockEngine.EXPECT().Purchase(gomock.Any(), gomock.Any()).
			Return(engine.OrderView{}, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing service_id", mutate: testutil.Field("service_id", nil)},
			{name: "missing chat_id", mutate: testutil.Field("chat_id", nil)},
			{name: "negative server_index", mutate: testutil.Field("server_index", -1)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), validBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func (s *OrderHandlerTestSuite) TestCheck() {
	s.Run("success: returns the poll status", func() {
		s.mockEngine.EXPECT().CheckNow(gomock.Any(), testUserID, "order-1").
			Return(engine.PollResult{Status: engine.PollDelivered, Code: "482913"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/order-1/check", nil, "")

		var response resdto.CheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("delivered", response.Status)
		s.Equal("482913", response.Code)
	})

	s.Run("error: 404 for a finished order", func() {
		s.mockEngine.EXPECT().CheckNow(gomock.Any(), testUserID, "gone").
			Return(engine.PollResult{}, engine.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/gone/check", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *OrderHandlerTestSuite) TestCancel() {
	s.Run("success: 200 on cancel and refund", func() {
		s.mockEngine.EXPECT().Cancel(gomock.Any(), testUserID, "order-1").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/order-1/cancel", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 409 while cancel is locked", func() {
		s.mockEngine.EXPECT().Cancel(gomock.Any(), testUserID, "order-1").
			Return(engine.ErrCancelLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/order-1/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "locked")
	})

	s.Run("error: 409 after an OTP arrived", func() {
		s.mockEngine.EXPECT().Cancel(gomock.Any(), testUserID, "order-1").
			Return(engine.ErrOTPAlreadyReceived).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/order-1/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "OTP already received")
	})
}

func (s *OrderHandlerTestSuite) TestNewNumber() {
	s.Run("success: returns the swapped order view", func() {
		s.mockEngine.EXPECT().RequestNewNumber(gomock.Any(), testUserID, "order-1").
			Return(engine.OrderView{
				OrderID: "order-1",
				Phone:   "917700112233",
				Service: "Telegram",
				Price:   wallet.FromPaise(2500),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/order-1/new-number", nil, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("917700112233", response.Phone)
	})

	s.Run("error: 503 when the vendor refuses", func() {
		s.mockEngine.EXPECT().RequestNewNumber(gomock.Any(), testUserID, "order-1").
			Return(engine.OrderView{}, engine.ErrNewNumberRefused).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/order-1/new-number", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "refused")
	})
}
