package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gcertilab/certilab-api/config"
	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/model"
	"github.com/gcertilab/certilab-api/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	userRepo       repository.UserRepository
	enrollmentRepo repository.EnrollmentRepository
	clock          Clock
	secret         []byte
	tokenLifetime  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, enrollmentRepo repository.EnrollmentRepository, clock Clock, cfg *config.Config) AuthService {
	return &authService{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		clock:          clock,
		secret:         []byte(cfg.Auth.JWTSecret),
		tokenLifetime:  time.Duration(cfg.Auth.TokenLifetime) * time.Second,
	}
}

func (s *authService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading user %q: %w", req.Username, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, ErrInactiveAccount
	}

	// Workers can only sign in while enrolled in a class of an active
	// period; admin and company accounts are not period-bound.
	if user.Role == model.RoleWorker {
		if user.WorkerID == nil {
			return nil, ErrNoActivePeriod
		}
		active, err := s.enrollmentRepo.HasActiveEnrollment(*user.WorkerID)
		if err != nil {
			return nil, fmt.Errorf("checking active enrollments for worker %d: %w", *user.WorkerID, err)
		}
		if !active {
			return nil, ErrNoActivePeriod
		}
	}

	now := s.clock.Now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenLifetime).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("signing token for %q: %w", user.Username, err)
	}

	resp := dto.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.tokenLifetime.Seconds()),
		TokenType: "Bearer",
		WorkerID:  user.WorkerID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}
	if user.Worker != nil {
		company := user.Worker.Company
		if company.ID != 0 {
			resp.CompanyID = &company.ID
			resp.CompanyName = &company.Name
			resp.CompanyRUC = &company.RUC
			resp.CompanyLogo = &company.LogoURL
		}
	}

	log.Info().Str("username", user.Username).Str("role", user.Role).Msg("User signed in")
	return &resp, nil
}
