//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ffytmanager-droid/otp-bot/internal/handler/api"
	resdto "github.com/ffytmanager-droid/otp-bot/internal/handler/dto/response"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/commands"
	"github.com/ffytmanager-droid/otp-bot/tests/common/httptest"
	"github.com/ffytmanager-droid/otp-bot/tests/common/testutil"
	commandsmock "github.com/ffytmanager-droid/otp-bot/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/auth/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	validBody := map[string]any{"password": "admin-password"}

	s.Run("success: returns 200 OK with an access token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "admin-password").
			Return(&commands.LoginResult{AccessToken: "test-jwt-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
	})

	s.Run("error: 401 Unauthorized on wrong password", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "admin-password").
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "empty password", mutate: testutil.Field("password", "")},
			{name: "password shorter than 8 chars", mutate: testutil.Field("password", strings.Repeat("a", 7))},
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
