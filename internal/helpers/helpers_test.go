package helpers

import (
	"strings"
	"testing"
	"time"
)

func TestIsPasswordStrong(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Str0ng!pass", true},
		{"Al1@xyzq", true},
		{"short1!A", true},
		{"Sh0rt!a", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoNumbers!", false},
		{"NoSpecial123", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsPasswordStrong(tc.password); got != tc.want {
			t.Errorf("IsPasswordStrong(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "Str0ng!pass" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPassword(hash, "Str0ng!pass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := IssueToken(secret, "user-1", "amit", "villager", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Subject != "user-1" || claims.Username != "amit" || claims.Role != "villager" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseTokenRejectsBadInput(t *testing.T) {
	secret := []byte("test-secret")
	token, err := IssueToken(secret, "user-1", "amit", "villager", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := ParseToken([]byte("other-secret"), token); err == nil {
		t.Error("token accepted with the wrong secret")
	}

	tampered := token[:len(token)-2] + strings.Repeat("x", 2)
	if _, err := ParseToken(secret, tampered); err == nil {
		t.Error("tampered token accepted")
	}

	expired, err := IssueToken(secret, "user-1", "amit", "villager", -time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := ParseToken(secret, expired); err == nil {
		t.Error("expired token accepted")
	}
}
