package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DISABLE_MAX", "0")
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.OSC.OutPort != OSCOutgoingPort || s.OSC.InPort != OSCIncomingPort || s.OSC.Host != OSCHost {
		t.Errorf("Expected default OSC settings, got %+v", s.OSC)
	}
	if s.EasyMode || s.PlayerInvincible || s.Audio.Disabled {
		t.Errorf("Expected all toggles off, got %+v", s)
	}
}

func TestLoadSettingsFromYAML(t *testing.T) {
	t.Setenv("DISABLE_MAX", "1")
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "easy_mode: true\nseed: 99\nosc:\n  out_port: 9001\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !s.EasyMode || s.Seed != 99 {
		t.Errorf("Expected easy mode and seed 99, got %+v", s)
	}
	if s.OSC.OutPort != 9001 || s.OSC.InPort != OSCIncomingPort {
		t.Errorf("Expected out port override only, got %+v", s.OSC)
	}
	if !s.Audio.Disabled {
		t.Errorf("Expected DISABLE_MAX=1 to disable the audio app")
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("easy_mode: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Errorf("Expected an error for malformed YAML")
	}
}

func TestSettingsSaveRoundTrip(t *testing.T) {
	t.Setenv("DISABLE_MAX", "0")
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := DefaultSettings()
	s.PlayerInvincible = true
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded.PlayerInvincible {
		t.Errorf("Expected player_invincible to persist")
	}
}
