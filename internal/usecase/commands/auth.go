package commands

import (
	"context"
	"strings"

	"cleanpro-api/internal/pkg/config"
	"cleanpro-api/internal/pkg/errs"
	"cleanpro-api/internal/pkg/jwt"
	"cleanpro-api/internal/pkg/password"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

const adminRole = "admin"

type LoginResult struct {
	Token string
	Email string
	Role  string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

// authCommandsImpl authenticates the single staff account configured for the
// admin panel; there is no user table behind it.
type authCommandsImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthCommands(cfg config.Config, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{admin: cfg.Admin, jwtService: jwtService}
}

func (c *authCommandsImpl) Login(_ context.Context, email, plainPassword string) (*LoginResult, error) {
	if !strings.EqualFold(email, c.admin.Email) {
		return nil, ErrInvalidCredentials
	}
	if err := password.Compare(c.admin.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := c.jwtService.GenerateToken(c.admin.Email, adminRole)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{Token: token, Email: c.admin.Email, Role: adminRole}, nil
}
