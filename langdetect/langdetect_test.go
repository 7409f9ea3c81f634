package langdetect

import "testing"

func TestDetect(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "hello world, how are you doing today", "English"},
		{"french", "bonjour tout le monde, comment allez-vous aujourd'hui", "French"},
		{"spanish", "hola a todos, ¿cómo están ustedes hoy?", "Spanish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.Detect(tt.text)
			if !ok {
				t.Fatal("no language detected")
			}
			if got != tt.want {
				t.Fatalf("Detect = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectEmptyText(t *testing.T) {
	d := New()
	if _, ok := d.Detect("   "); ok {
		t.Fatal("detected a language in whitespace")
	}
}

func TestCanonicalTarget(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "English"},
		{"fr", "French"},
		{"french", "French"},
		{"English", "English"},
		{"", ""},
		{"klingon", "Klingon"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CanonicalTarget(tt.in); got != tt.want {
				t.Fatalf("CanonicalTarget(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
