//go:build e2e

package order_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	resdto "github.com/ffytmanager-droid/otp-bot/internal/handler/dto/response"
	"github.com/ffytmanager-droid/otp-bot/tests/common/dbtest"
	commonhttp "github.com/ffytmanager-droid/otp-bot/tests/common/httptest"
	"github.com/ffytmanager-droid/otp-bot/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const ordersURL = "/api/orders"

// stubVendor mimics the SMS vendor's colon protocol. Responses are
// swappable per scenario.
type stubVendor struct {
	server     *httptest.Server
	rentReply  atomic.Value // string
	pollReply  atomic.Value // string
	lastAction atomic.Value // string
}

func newStubVendor() *stubVendor {
	v := &stubVendor{}
	v.rentReply.Store("ACCESS_NUMBER:777111:919876543210")
	v.pollReply.Store("STATUS_WAIT_CODE")

	v.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		action := r.URL.Query().Get("action")
		v.lastAction.Store(action)
		switch action {
		case "getNumber":
			_, _ = w.Write([]byte(v.rentReply.Load().(string)))
		case "getStatus":
			_, _ = w.Write([]byte(v.pollReply.Load().(string)))
		case "setStatus":
			if r.URL.Query().Get("status") == "3" {
				_, _ = w.Write([]byte("ACCESS_RETRY_GET"))
				return
			}
			_, _ = w.Write([]byte("ACCESS_CANCEL"))
		default:
			_, _ = w.Write([]byte("BAD_ACTION"))
		}
	}))
	return v
}

type orderSuite struct {
	e2e.SharedSuite
	vendor    *stubVendor
	presenter *httptest.Server
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()

	s := new(orderSuite)
	s.vendor = newStubVendor()
	t.Cleanup(s.vendor.server.Close)
	s.presenter = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(s.presenter.Close)

	s.VendorURL = s.vendor.server.URL
	s.PresenterURL = s.presenter.URL
	suite.Run(t, s)
}

func (s *orderSuite) TestPurchaseLifecycle() {
	s.Run("purchase debits the balance and records the order", func() {
		const userID int64 = 21001
		dbtest.CreateTestUser(s.T(), s.Env.Pool, userID, 10000)
		s.vendor.rentReply.Store("ACCESS_NUMBER:777111:919876543210")

		token := s.Env.UserToken(s.T(), userID)
		rec := commonhttp.PerformRequest(s.T(), s.Env.Router, http.MethodPost, ordersURL,
			map[string]any{"service_id": "tg", "server_index": 0, "chat_id": 1}, token)

		var order resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &order)
		s.Equal("9876543210", order.Phone)
		s.Equal(int64(7500), dbtest.Balance(s.T(), s.Env.Pool, userID))
		s.Equal("active", dbtest.OrderStatus(s.T(), s.Env.Pool, order.OrderID))
		s.Equal(1, dbtest.CountRows(s.T(), s.Env.Pool, "active_orders"))

		// OTP lands on the next on-demand check
		s.vendor.pollReply.Store("STATUS_OK:482913")
		rec = commonhttp.PerformRequest(s.T(), s.Env.Router, http.MethodPost,
			ordersURL+"/"+order.OrderID+"/check", nil, token)

		var check resdto.CheckResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &check)
		s.Equal("delivered", check.Status)
		s.Equal("482913", check.Code)
		s.Equal("completed", dbtest.OrderStatus(s.T(), s.Env.Pool, order.OrderID))
		// delivery is not a refund
		s.Equal(int64(7500), dbtest.Balance(s.T(), s.Env.Pool, userID))

		s.vendor.pollReply.Store("STATUS_WAIT_CODE")
	})

	s.Run("cancel is refused during the lock window", func() {
		const userID int64 = 21002
		dbtest.CreateTestUser(s.T(), s.Env.Pool, userID, 10000)
		s.vendor.rentReply.Store("ACCESS_NUMBER:777222:917700112233")

		token := s.Env.UserToken(s.T(), userID)
		rec := commonhttp.PerformRequest(s.T(), s.Env.Router, http.MethodPost, ordersURL,
			map[string]any{"service_id": "tg", "server_index": 0, "chat_id": 1}, token)

		var order resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &order)

		rec = commonhttp.PerformRequest(s.T(), s.Env.Router, http.MethodPost,
			ordersURL+"/"+order.OrderID+"/cancel", nil, token)
		s.Equal(http.StatusConflict, rec.Code)
		// still debited
		s.Equal(int64(7500), dbtest.Balance(s.T(), s.Env.Pool, userID))
	})

	s.Run("vendor without numbers means no charge", func() {
		const userID int64 = 21003
		dbtest.CreateTestUser(s.T(), s.Env.Pool, userID, 10000)
		s.vendor.rentReply.Store("NO_NUMBERS")

		token := s.Env.UserToken(s.T(), userID)
		rec := commonhttp.PerformRequest(s.T(), s.Env.Router, http.MethodPost, ordersURL,
			map[string]any{"service_id": "tg", "server_index": 0, "chat_id": 1}, token)

		s.Equal(http.StatusServiceUnavailable, rec.Code)
		s.Equal(int64(10000), dbtest.Balance(s.T(), s.Env.Pool, userID))
		s.Equal(0, dbtest.CountRows(s.T(), s.Env.Pool, "orders"))
	})

	s.Run("purchase beyond the balance is rejected", func() {
		const userID int64 = 21004
		dbtest.CreateTestUser(s.T(), s.Env.Pool, userID, 1000)
		s.vendor.rentReply.Store("ACCESS_NUMBER:777333:918800990011")

		token := s.Env.UserToken(s.T(), userID)
		rec := commonhttp.PerformRequest(s.T(), s.Env.Router, http.MethodPost, ordersURL,
			map[string]any{"service_id": "tg", "server_index": 0, "chat_id": 1}, token)

		s.Equal(http.StatusPaymentRequired, rec.Code)
		s.Equal(int64(1000), dbtest.Balance(s.T(), s.Env.Pool, userID))
	})

	s.Run("new number swaps the rental without a second debit", func() {
		const userID int64 = 21005
		dbtest.CreateTestUser(s.T(), s.Env.Pool, userID, 10000)
		s.vendor.rentReply.Store("ACCESS_NUMBER:777444:916600550044")

		token := s.Env.UserToken(s.T(), userID)
		rec := commonhttp.PerformRequest(s.T(), s.Env.Router, http.MethodPost, ordersURL,
			map[string]any{"service_id": "tg", "server_index": 0, "chat_id": 1}, token)

		var order resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &order)

		s.vendor.rentReply.Store("ACCESS_NUMBER:777555:915500660077")
		rec = commonhttp.PerformRequest(s.T(), s.Env.Router, http.MethodPost,
			ordersURL+"/"+order.OrderID+"/new-number", nil, token)

		var swapped resdto.OrderResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &swapped)
		s.Equal(order.OrderID, swapped.OrderID)
		s.Equal("5500660077", swapped.Phone)
		s.Equal(int64(7500), dbtest.Balance(s.T(), s.Env.Pool, userID))
	})
}
