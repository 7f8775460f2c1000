package browser

import "testing"

func TestOpenRejectsNonHTTP(t *testing.T) {
	tests := []string{
		"file:///etc/passwd",
		"javascript:alert(1)",
		"ftp://example.com",
		"",
	}

	for _, url := range tests {
		if err := Open(url); err == nil {
			t.Errorf("Open(%q): expected error, got nil", url)
		}
	}
}

func TestOpenAcceptsHTTP(t *testing.T) {
	// The launch itself may fail on headless machines; only scheme
	// validation errors matter here.
	for _, url := range []string{"https://example.com", "http://example.com"} {
		if err := Open(url); err != nil {
			t.Logf("Open(%q): launch failed (ok in test env): %v", url, err)
		}
	}
}
