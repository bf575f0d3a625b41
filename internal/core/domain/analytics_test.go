package domain

import "testing"

func TestParseEventType(t *testing.T) {
	valid := []string{
		"PAGE_VIEW", "BLOG_READ", "CONTACT_SUBMIT",
		"NEWSLETTER_SUBSCRIBE", "TALENT_APPLY", "SIGN_IN",
	}
	for _, s := range valid {
		got, err := ParseEventType(s)
		if err != nil {
			t.Errorf("ParseEventType(%q) returned error: %v", s, err)
			continue
		}
		if got.String() != s {
			t.Errorf("ParseEventType(%q) = %q", s, got)
		}
	}

	for _, s := range []string{"page_view", "CLICK", ""} {
		if _, err := ParseEventType(s); err != ErrInvalidEventType {
			t.Errorf("ParseEventType(%q): expected ErrInvalidEventType, got %v", s, err)
		}
	}
}
