package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type PasswordVerifier interface {
	Verify(password, hash string) error
}

type TokenIssuer interface {
	Generate(userID uint, username string, role authorization.Role) (string, int64, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordVerifier
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordVerifier,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute verifies credentials and issues an access token. Unknown usernames
// and wrong passwords produce the same error so the endpoint never confirms
// which accounts exist.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Warnw("login failed, unknown username", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed, wrong password", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, expiresAt, err := uc.tokens.Generate(u.ID(), u.Username(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "username", u.Username())

	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      u.ID(),
		Username:    u.Username(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
	}, nil
}
