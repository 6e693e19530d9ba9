package domain

import "testing"

func TestNormalizeDomainName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"example.com", "example.com"},
		{"  Example.COM  ", "example.com"},
		{"http://example.com", "example.com"},
		{"https://example.com", "example.com"},
		{"HTTPS://Example.com/", "example.com"},
		{"example.com///", "example.com"},
		{"https://sub.example.co.uk/", "sub.example.co.uk"},
	}
	for _, tc := range cases {
		if got := NormalizeDomainName(tc.in); got != tc.want {
			t.Errorf("NormalizeDomainName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDomainName_Idempotent(t *testing.T) {
	once := NormalizeDomainName("HTTP://Example.com/")
	twice := NormalizeDomainName(once)
	if once != twice {
		t.Fatalf("normalization not idempotent: %q != %q", once, twice)
	}
}

func TestValidDomainName(t *testing.T) {
	valid := []string{
		"example.com",
		"sub.example.com",
		"a.co",
		"my-site.example.co.uk",
		"123.example.com",
	}
	for _, name := range valid {
		if !ValidDomainName(name) {
			t.Errorf("ValidDomainName(%q) = false, want true", name)
		}
	}

	invalid := []string{
		"",
		"localhost",
		"-bad.com",
		"example",
		"example.",
		".example.com",
		"exa mple.com",
		"example.c0m",
	}
	for _, name := range invalid {
		if ValidDomainName(name) {
			t.Errorf("ValidDomainName(%q) = true, want false", name)
		}
	}
}
