package usecase

import (
	"errors"
	"fmt"
	"time"

	"vibe-coding-tools/internal/entity"
	"vibe-coding-tools/internal/repo/persistent"
	"vibe-coding-tools/pkg/logger"
	"vibe-coding-tools/pkg/session"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type SessionUseCase interface {
	// Resolve returns the user behind a session token, creating a fresh
	// anonymous identity when the token is absent, invalid, or orphaned.
	// The returned token is non-empty only when a new one was issued.
	Resolve(token string) (*entity.User, string, error)
}

type sessionUseCase struct {
	userRepo       persistent.UserRepository
	sessionService *session.Service
	logger         *logger.Logger
}

func NewSessionUseCase(
	userRepo persistent.UserRepository,
	sessionService *session.Service,
	logger *logger.Logger,
) SessionUseCase {
	return &sessionUseCase{
		userRepo:       userRepo,
		sessionService: sessionService,
		logger:         logger,
	}
}

func (uc *sessionUseCase) Resolve(token string) (*entity.User, string, error) {
	if token != "" {
		claims, err := uc.sessionService.ValidateToken(token)
		if err == nil {
			user, err := uc.userRepo.GetByID(claims.UserID)
			if err == nil {
				return user, "", nil
			}
			if !errors.Is(err, entity.ErrNotFound) {
				return nil, "", err
			}
			// Token points at a user that no longer exists (e.g. after a
			// database reset); fall through and mint a new identity.
		}
	}

	user, err := uc.createAnonymousUser()
	if err != nil {
		return nil, "", err
	}

	newToken, err := uc.sessionService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate session token: %v", err)
		return nil, "", fmt.Errorf("failed to issue session token: %v", err)
	}

	return user, newToken, nil
}

func (uc *sessionUseCase) createAnonymousUser() (*entity.User, error) {
	// Placeholder credential: anonymous accounts never log in, but the
	// column is non-null and should not hold a guessable constant.
	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create placeholder password: %v", err)
	}

	user := &entity.User{
		Username: fmt.Sprintf("guest_%d_%s", time.Now().UnixMilli(), uuid.New().String()[:8]),
		Password: string(hashed),
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create anonymous user: %v", err)
		return nil, err
	}

	user.Password = ""
	return user, nil
}
