package service

import (
	"errors"
	"fmt"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/model"
	"github.com/gcertilab/certilab-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Create(req dto.UserRequest) (*model.User, error)
	Get(id uint) (*model.User, error)
	Update(id uint, req dto.UserRequest) (*model.User, error)
	ChangePassword(id uint, req dto.PasswordChangeRequest) error
	Delete(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(req dto.UserRequest) (*model.User, error) {
	var user model.User
	if err := copier.Copy(&user, &req); err != nil {
		return nil, fmt.Errorf("mapping user request: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password for %s: %w", req.Username, err)
	}
	user.PasswordHash = string(hash)
	user.Active = req.Active

	if err := s.userRepo.Create(&user); err != nil {
		return nil, fmt.Errorf("creating user %s: %w", req.Username, err)
	}
	log.Info().Uint("userID", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("User created")
	return &user, nil
}

func (s *userService) Get(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading user %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) Update(id uint, req dto.UserRequest) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	user.WorkerID = req.WorkerID
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Username = req.Username
	user.Role = req.Role
	// copier is skipped here so a false active flag can deactivate the account.
	user.Active = req.Active

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password for %s: %w", req.Username, err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("updating user %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) ChangePassword(id uint, req dto.PasswordChangeRequest) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing new password for user %d: %w", id, err)
	}
	user.PasswordHash = string(hash)

	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("updating password for user %d: %w", id, err)
	}
	log.Info().Uint("userID", id).Msg("Password changed")
	return nil
}

func (s *userService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting user %d: %w", id, err)
	}
	return nil
}
