package security

import (
	"strings"
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, time.Hour)

	token, err := m.Issue(TypeCompany, "rec-0001", "a@b.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "rec-0001" || claims.Email != "a@b.com" || claims.Type != TypeCompany {
		t.Fatalf("claims: %+v", claims)
	}
}

func TestIssueRejectsUnknownType(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, time.Hour)
	if _, err := m.Issue("superuser", "rec-0001", "a@b.com"); err == nil {
		t.Fatal("unknown subject type accepted")
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	issuer := NewJWTManager("key-one", time.Hour, time.Hour)
	verifier := NewJWTManager("key-two", time.Hour, time.Hour)

	token, err := issuer.Issue(TypeAdmin, "adm-1", "admin@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("token verified with the wrong key")
	}
}

func TestParseRejectsTampered(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, time.Hour)
	token, err := m.Issue(TypeCompany, "rec-0001", "a@b.com")
	if err != nil {
		t.Fatal(err)
	}
	parts := strings.Split(token, ".")
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	if _, err := m.Parse(strings.Join(parts, ".")); err == nil {
		t.Fatal("tampered payload accepted")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, -time.Minute)
	token, err := m.Issue(TypeCompany, "rec-0001", "a@b.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("expired token accepted")
	}
}
