package service

import (
	"context"
	"log"
	"time"

	"github.com/darshakkanani/Honeypot-Setup-sub001/config"
	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/auth/domain"
	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/auth/dto"
	autherror "github.com/darshakkanani/Honeypot-Setup-sub001/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo            domain.UserRepository
	tokenService    TokenGenerator
	maxAttempts     int
	lockoutDuration time.Duration
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, cfg *config.Config) *UserService {
	return &UserService{
		repo:            repo,
		tokenService:    tokenService,
		maxAttempts:     cfg.LockoutMaxAttempts,
		lockoutDuration: time.Duration(cfg.LockoutDurationMin) * time.Minute,
	}
}

// Login authenticates a console operator. The lockout window is checked
// before the password so a locked account never reveals whether the
// submitted password was even compared.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	user, err := s.repo.GetActiveByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Unknown username and wrong password are indistinguishable.
		return nil, autherror.ErrInvalidCredentials
	}

	now := time.Now()
	if user.AccountLockedUntil != nil {
		if user.Locked(now) {
			return nil, autherror.ErrAccountLocked
		}
		// The window has passed: clear the stale counter too, otherwise a
		// single wrong password would re-lock for the full duration.
		if err := s.repo.ClearExpiredLock(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		attempts, err := s.repo.IncrementFailedAttempts(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if s.maxAttempts > 0 && attempts >= s.maxAttempts {
			until := time.Now().Add(s.lockoutDuration)
			if err := s.repo.LockAccount(ctx, user.ID, until); err != nil {
				return nil, err
			}
			log.Printf("account %s locked until %s after %d failed attempts", user.Username, until.Format(time.RFC3339), attempts)
		}
		return nil, autherror.ErrInvalidCredentials
	}

	if err := s.repo.ResetLoginState(ctx, user.ID, now); err != nil {
		return nil, err
	}

	token, _, err := s.tokenService.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserOutput{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	}, nil
}

// VerifyToken validates a bearer token and re-reads the live user record.
// A structurally valid token whose subject has been removed or deactivated
// is rejected: current account state governs, not the claims.
func (s *UserService) VerifyToken(ctx context.Context, tokenString string) (*dto.UserOutput, error) {
	claims, err := s.tokenService.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, autherror.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, autherror.ErrUserNotFound
	}

	return &dto.UserOutput{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}
