package container

import "testing"

func TestCaptureString(t *testing.T) {
	set, result := captureString("fallback")
	if *result != "fallback" {
		t.Fatalf("expected seeded fallback, got %q", *result)
	}

	set("value")
	if *result != "value" {
		t.Fatalf("expected captured value, got %q", *result)
	}

	// Calling again overwrites; the at-most-once contract is the callback's
	// obligation, the bridge keeps the last write.
	set("again")
	if *result != "again" {
		t.Fatalf("expected last write, got %q", *result)
	}
}

func TestCaptureLanguage(t *testing.T) {
	set, language, culture := captureLanguage()
	if *language != "" || *culture != "" {
		t.Fatal("expected empty seeds")
	}

	set("de", "DE")
	if *language != "de" || *culture != "DE" {
		t.Fatalf("unexpected pair %q %q", *language, *culture)
	}
}
