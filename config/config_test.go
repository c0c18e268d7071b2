package config_test

import (
	"os"
	"testing"

	"github.com/mypebble/lanthanum/config"
)

func TestLoad_Default(t *testing.T) {
	// register cleanup, then unset so the default applies
	t.Setenv("LANTHANUM_MEDIA_URL", "")
	os.Unsetenv("LANTHANUM_MEDIA_URL")
	s, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.MediaURL != "/media/" {
		t.Fatalf("expected default media URL, got %q", s.MediaURL)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LANTHANUM_MEDIA_URL", "https://cdn.example.com/media/")
	s, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.MediaURL != "https://cdn.example.com/media/" {
		t.Fatalf("unexpected media URL: %q", s.MediaURL)
	}
}
