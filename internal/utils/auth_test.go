package utils

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type fakeEmailChecker struct {
	exists  bool
	err     error
	gotTx   *gorm.DB
	gotMail string
}

func (f *fakeEmailChecker) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	f.gotTx = tx
	f.gotMail = email
	return f.exists, f.err
}

func TestValidateRegistration(t *testing.T) {
	valid := func() *types.User {
		return &types.User{
			Email:     "trader@desk.example",
			Password:  "secret",
			FirstName: "anna",
			LastName:  "lind",
		}
	}

	cases := []struct {
		name    string
		user    *types.User
		checker fakeEmailChecker
		wantErr bool
	}{
		{name: "valid user", user: valid()},
		{name: "nil user", user: nil, wantErr: true},
		{name: "missing email", user: &types.User{Password: "p", FirstName: "a", LastName: "b"}, wantErr: true},
		{name: "email taken", user: valid(), checker: fakeEmailChecker{exists: true}, wantErr: true},
		{name: "lookup failure", user: valid(), checker: fakeEmailChecker{err: fmt.Errorf("db down")}, wantErr: true},
		{name: "missing password", user: &types.User{Email: "e@d.example", FirstName: "a", LastName: "b"}, wantErr: true},
		{name: "missing first name", user: &types.User{Email: "e@d.example", Password: "p", LastName: "b"}, wantErr: true},
		{name: "missing last name", user: &types.User{Email: "e@d.example", Password: "p", FirstName: "a"}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegistration(context.Background(), &tc.checker, nil, tc.user)
			if tc.wantErr && err == nil {
				t.Fatalf("expected an error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateRegistrationChecksEmail(t *testing.T) {
	checker := &fakeEmailChecker{}
	user := &types.User{Email: "trader@desk.example", Password: "p", FirstName: "a", LastName: "b"}
	if err := ValidateRegistration(context.Background(), checker, nil, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if checker.gotMail != user.Email {
		t.Fatalf("checked email %q, want %q", checker.gotMail, user.Email)
	}
	// Validation runs outside any transaction.
	if checker.gotTx != nil {
		t.Fatalf("expected nil tx, got %v", checker.gotTx)
	}
}
