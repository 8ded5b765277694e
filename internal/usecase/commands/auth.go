package commands

import (
	"context"

	"github.com/ffytmanager-droid/otp-bot/internal/pkg/config"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/jwt"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/password"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

type LoginResult struct {
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, pass string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	admin config.AdminConfig
	jwt   *jwt.Service
}

func NewAuthCommands(admin config.AdminConfig, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{admin: admin, jwt: jwtService}
}

// Login authenticates the operator account. There is exactly one admin,
// configured by password hash; regular users authenticate implicitly
// through the messaging frontend's signed requests.
func (u *authUseCaseImpl) Login(_ context.Context, pass string) (*LoginResult, error) {
	if err := password.ComparePassword(u.admin.PasswordHash, pass); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateToken(0, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}
	return &LoginResult{AccessToken: token}, nil
}
