package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
)

func TestParseToken_RoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "unit-test-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 42,
		"email":   "jane@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("unit-test-secret"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	id, email, err := svc.ParseToken(signed)
	if err != nil {
		t.Fatalf("expected token to parse, got %v", err)
	}
	if id != 42 || email != "jane@example.com" {
		t.Fatalf("unexpected claims: id=%d email=%q", id, email)
	}
}

func TestParseToken_RejectsTampered(t *testing.T) {
	svc := NewAuthService(nil, "unit-test-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, _ := token.SignedString([]byte("a-different-secret"))

	if _, _, err := svc.ParseToken(signed); err == nil {
		t.Fatal("token signed with the wrong secret must be rejected")
	}
}

func TestParseToken_RejectsExpired(t *testing.T) {
	svc := NewAuthService(nil, "unit-test-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	signed, _ := token.SignedString([]byte("unit-test-secret"))

	if _, _, err := svc.ParseToken(signed); err == nil {
		t.Fatal("expired token must be rejected")
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewAuthService(nil, "unit-test-secret")

	cases := []struct {
		name             string
		fullName, email  string
		password         string
	}{
		{"missing name", "", "jane@example.com", "longenough"},
		{"bad email", "Jane Doe", "nope", "longenough"},
		{"short password", "Jane Doe", "jane@example.com", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(tc.fullName, tc.email, tc.password); err == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
		})
	}
}

func TestRegister_CreatesUser(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAuthService(gdb, "unit-test-secret")

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user, err := svc.Register("Jane Doe", "Jane@Example.com", "longenough")
	if err != nil {
		t.Fatalf("expected registration to succeed, got %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Fatalf("email must be normalized, got %q", user.Email)
	}
	if user.Password == "longenough" {
		t.Fatal("password must be stored hashed")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
