package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopstack/billing-api/pkg/apperror"
	"github.com/shopstack/billing-api/pkg/utils"
)

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(userRepo, jwtManager), userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterInput{
		ShopName:     "Sharma General Store",
		MobileNumber: "9876543210",
		Password:     "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registered.Token == "" {
		t.Error("expected a token on registration")
	}
	if registered.User.PreferredLanguage != "en" {
		t.Errorf("preferred language = %q, want en default", registered.User.PreferredLanguage)
	}
	if registered.User.Password == "secret123" {
		t.Error("password stored in plaintext")
	}

	logged, err := svc.Login(ctx, &LoginInput{MobileNumber: "9876543210", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.User.ID != registered.User.ID {
		t.Error("login resolved a different account")
	}
	if logged.Token == "" {
		t.Error("expected a token on login")
	}
}

func TestRegisterDuplicateMobile(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	input := &RegisterInput{ShopName: "Shop A", MobileNumber: "9876543210", Password: "secret123"}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Register(ctx, &RegisterInput{ShopName: "Shop B", MobileNumber: "9876543210", Password: "other456"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if code := apperror.GetAppError(err).Code; code != 400 {
		t.Errorf("error code = %d, want 400", code)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, &RegisterInput{
		ShopName:     "Sharma General Store",
		MobileNumber: "9876543210",
		Password:     "secret123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name     string
		input    *LoginInput
		wantCode int
	}{
		{
			name:     "unknown mobile number",
			input:    &LoginInput{MobileNumber: "9000000000", Password: "secret123"},
			wantCode: 404,
		},
		{
			name:     "wrong password",
			input:    &LoginInput{MobileNumber: "9876543210", Password: "wrong"},
			wantCode: 401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			if code := apperror.GetAppError(err).Code; code != tt.wantCode {
				t.Errorf("error code = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterInput{
		ShopName:     "Sharma General Store",
		MobileNumber: "9876543210",
		Password:     "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	err = svc.ChangePassword(ctx, &ChangePasswordInput{
		UserID:          registered.User.ID,
		CurrentPassword: "wrong",
		NewPassword:     "newpass456",
	})
	if apperror.GetAppError(err).Code != 401 {
		t.Errorf("wrong current password error = %v, want 401", err)
	}

	err = svc.ChangePassword(ctx, &ChangePasswordInput{
		UserID:          registered.User.ID,
		CurrentPassword: "secret123",
		NewPassword:     "newpass456",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := svc.Login(ctx, &LoginInput{MobileNumber: "9876543210", Password: "secret123"}); err == nil {
		t.Error("old password still accepted")
	}
	if _, err := svc.Login(ctx, &LoginInput{MobileNumber: "9876543210", Password: "newpass456"}); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}

func TestGetCurrentUserNotFound(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.GetCurrentUser(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected an error")
	}
	if code := apperror.GetAppError(err).Code; code != 404 {
		t.Errorf("error code = %d, want 404", code)
	}
}
