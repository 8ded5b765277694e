//go:build e2e

package wallet_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/payment"
	resdto "github.com/ffytmanager-droid/otp-bot/internal/handler/dto/response"
	"github.com/ffytmanager-droid/otp-bot/tests/common/dbtest"
	"github.com/ffytmanager-droid/otp-bot/tests/common/httptest"
	"github.com/ffytmanager-droid/otp-bot/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL  = "/api/users/register"
	profileURL   = "/api/users/me"
	accessURL    = "/api/users/access"
	depositsURL  = "/api/deposits"
	redeemURL    = "/api/giftcodes/redeem"
	transfersURL = "/api/transfers"
)

type walletSuite struct {
	e2e.SharedSuite
}

func TestWalletSuite(t *testing.T) {
	t.Parallel()
	s := new(walletSuite)
	// wallet flows never reach the vendor or the renderer
	s.VendorURL = "http://127.0.0.1:1"
	s.PresenterURL = "http://127.0.0.1:1"
	suite.Run(t, s)
}

func (s *walletSuite) TestRegisterAndProfile() {
	s.Run("register, verify access, read profile", func() {
		const userID int64 = 11001
		token := s.Env.UserToken(s.T(), userID)

		rec := httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, registerURL,
			map[string]any{"user_id": userID, "first_name": "Asha", "username": "asha"}, "")
		s.Equal(http.StatusCreated, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPut, accessURL,
			map[string]any{"channel_joined": true, "terms_accepted": true}, token)
		s.Equal(http.StatusOK, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Env.Router, http.MethodGet, profileURL, nil, token)
		var profile resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &profile)

		expected := &resdto.ProfileResponse{
			UserID:         userID,
			Balance:        "₹0",
			ChannelJoined:  true,
			TermsAccepted:  true,
			MonthlyDeposit: "₹0",
			ReferralCode:   payment.ReferralCode(userID),
			ReferralEarned: "₹0",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.ProfileResponse{}, "JoinedDate"),
		}
		if diff := cmp.Diff(expected, &profile, opts...); diff != "" {
			s.T().Errorf("Profile response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("profile of an unregistered user is 404", func() {
		token := s.Env.UserToken(s.T(), 999999)
		rec := httptest.PerformRequest(s.T(), s.Env.Router, http.MethodGet, profileURL, nil, token)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *walletSuite) TestDepositApproval() {
	s.Run("approved deposit credits the balance and pays referral commission", func() {
		const referrerID int64 = 12001
		const userID int64 = 12002

		rec := httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, registerURL,
			map[string]any{"user_id": referrerID}, "")
		s.Equal(http.StatusCreated, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, registerURL,
			map[string]any{"user_id": userID, "referral_code": payment.ReferralCode(referrerID)}, "")
		s.Equal(http.StatusCreated, rec.Code)

		token := s.Env.UserToken(s.T(), userID)
		rec = httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, depositsURL,
			map[string]any{"amount_paise": 50000, "utr": "228765432109"}, token)
		var deposit resdto.DepositResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &deposit)
		s.Contains(deposit.UPILink, "upi://pay")

		adminToken := s.Env.AdminToken(s.T())
		approveURL := fmt.Sprintf("/api/admin/deposits/%d/approve", deposit.RequestID)
		rec = httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, approveURL, nil, adminToken)
		s.Equal(http.StatusOK, rec.Code)

		s.Equal(int64(50000), dbtest.Balance(s.T(), s.Env.Pool, userID))
		// 5 percent commission
		s.Equal(int64(2500), dbtest.Balance(s.T(), s.Env.Pool, referrerID))
		s.Equal(1, dbtest.CountRows(s.T(), s.Env.Pool, "referral_earnings"))

		// a second approve of the same request is rejected
		rec = httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, approveURL, nil, adminToken)
		s.Equal(http.StatusConflict, rec.Code)
		s.Equal(int64(50000), dbtest.Balance(s.T(), s.Env.Pool, userID))
	})

	s.Run("duplicate UTR is rejected", func() {
		const userID int64 = 12003
		rec := httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, registerURL,
			map[string]any{"user_id": userID}, "")
		s.Equal(http.StatusCreated, rec.Code)

		token := s.Env.UserToken(s.T(), userID)
		body := map[string]any{"amount_paise": 20000, "utr": "334455667788"}
		rec = httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, depositsURL, body, token)
		s.Equal(http.StatusCreated, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, depositsURL, body, token)
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *walletSuite) TestGiftCodes() {
	s.Run("create and redeem a gift code once per user", func() {
		const userID int64 = 13001
		dbtest.CreateTestUser(s.T(), s.Env.Pool, userID, 0)

		adminToken := s.Env.AdminToken(s.T())
		rec := httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, "/api/admin/giftcodes",
			map[string]any{"amount_paise": 15000, "max_uses": 2}, adminToken)
		var created resdto.GiftCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.NotEmpty(created.Code)

		token := s.Env.UserToken(s.T(), userID)
		rec = httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, redeemURL,
			map[string]any{"code": created.Code}, token)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(int64(15000), dbtest.Balance(s.T(), s.Env.Pool, userID))

		rec = httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, redeemURL,
			map[string]any{"code": created.Code}, token)
		s.Equal(http.StatusConflict, rec.Code)
		s.Equal(int64(15000), dbtest.Balance(s.T(), s.Env.Pool, userID))
	})

	s.Run("unknown code is 404", func() {
		const userID int64 = 13002
		dbtest.CreateTestUser(s.T(), s.Env.Pool, userID, 0)

		token := s.Env.UserToken(s.T(), userID)
		rec := httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, redeemURL,
			map[string]any{"code": "FIRENOPE"}, token)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *walletSuite) TestTransfers() {
	s.Run("transfer moves money between accounts", func() {
		const fromID, toID int64 = 14001, 14002
		dbtest.CreateTestUser(s.T(), s.Env.Pool, fromID, 50000)
		dbtest.CreateTestUser(s.T(), s.Env.Pool, toID, 0)

		token := s.Env.UserToken(s.T(), fromID)
		rec := httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, transfersURL,
			map[string]any{"to_user_id": toID, "amount_paise": 30000}, token)
		s.Equal(http.StatusCreated, rec.Code)

		s.Equal(int64(20000), dbtest.Balance(s.T(), s.Env.Pool, fromID))
		s.Equal(int64(30000), dbtest.Balance(s.T(), s.Env.Pool, toID))
	})

	s.Run("transfer above the balance is rejected without moving money", func() {
		const fromID, toID int64 = 14003, 14004
		dbtest.CreateTestUser(s.T(), s.Env.Pool, fromID, 10000)
		dbtest.CreateTestUser(s.T(), s.Env.Pool, toID, 0)

		token := s.Env.UserToken(s.T(), fromID)
		rec := httptest.PerformRequest(s.T(), s.Env.Router, http.MethodPost, transfersURL,
			map[string]any{"to_user_id": toID, "amount_paise": 90000}, token)
		s.Equal(http.StatusPaymentRequired, rec.Code)

		s.Equal(int64(10000), dbtest.Balance(s.T(), s.Env.Pool, fromID))
		s.Equal(int64(0), dbtest.Balance(s.T(), s.Env.Pool, toID))
	})
}
