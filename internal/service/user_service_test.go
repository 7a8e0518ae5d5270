package service_test

import (
	"errors"
	"testing"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/model"
	"github.com/gcertilab/certilab-api/internal/service"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserHashesPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := service.NewUserService(users)

	user, err := svc.Create(dto.UserRequest{
		FirstName: "Carla",
		LastName:  "Mendoza",
		Username:  "cmendoza",
		Password:  "s3cret-pass",
		Role:      model.RoleCompany,
		Active:    true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.Role != model.RoleCompany || !user.Active {
		t.Errorf("user = %+v, want active company account", user)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}
}

func TestUpdateUserCanDeactivate(t *testing.T) {
	users := newFakeUserRepo()
	svc := service.NewUserService(users)

	user, err := svc.Create(dto.UserRequest{
		FirstName: "Carla", LastName: "Mendoza", Username: "cmendoza",
		Password: "s3cret-pass", Role: model.RoleCompany, Active: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(user.ID, dto.UserRequest{
		FirstName: "Carla", LastName: "Mendoza", Username: "cmendoza",
		Role: model.RoleCompany, Active: false,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Active {
		t.Error("account still active after deactivation")
	}
	// An empty password in the update must keep the existing hash.
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Errorf("password hash changed on a password-less update: %v", err)
	}
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	users := newFakeUserRepo()
	svc := service.NewUserService(users)

	user, err := svc.Create(dto.UserRequest{
		FirstName: "Carla", LastName: "Mendoza", Username: "cmendoza",
		Password: "s3cret-pass", Role: model.RoleAdmin, Active: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.ChangePassword(user.ID, dto.PasswordChangeRequest{
		CurrentPassword: "wrong", NewPassword: "new-pass-1",
	})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}

	if err := svc.ChangePassword(user.ID, dto.PasswordChangeRequest{
		CurrentPassword: "s3cret-pass", NewPassword: "new-pass-1",
	}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	stored, _ := users.FindByID(user.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-pass-1")); err != nil {
		t.Errorf("new password not stored: %v", err)
	}
}
