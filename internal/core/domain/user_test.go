package domain

import "testing"

func TestClampRole(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"admin", RoleAdmin},
		{"user", RoleUser},
		{"", RoleUser},
		{"superuser", RoleUser},
		{"ADMIN", RoleUser},
	}
	for _, tc := range cases {
		if got := ClampRole(tc.in); got != tc.want {
			t.Errorf("ClampRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Fatalf("NormalizeEmail = %q", got)
	}
}

func TestValidStatus(t *testing.T) {
	if !ValidStatus(StatusActive) || !ValidStatus(StatusInactive) {
		t.Fatalf("expected active and inactive to be valid")
	}
	for _, s := range []string{"", "deleted", "Active"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestIsValidID(t *testing.T) {
	if !IsValidID("507f1f77bcf86cd799439011") {
		t.Fatalf("expected 24-hex id to be valid")
	}
	for _, id := range []string{"", "short", "507f1f77bcf86cd79943901g", "507f1f77bcf86cd7994390111"} {
		if IsValidID(id) {
			t.Errorf("IsValidID(%q) = true, want false", id)
		}
	}
}
