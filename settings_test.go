package stockpile

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSettings_Defaults(t *testing.T) {
	s := DefaultSettings()
	if s.PaydayTime != 300 || s.PaydayCredits != 120 {
		t.Errorf("payday defaults = %d/%d, want 300/120", s.PaydayTime, s.PaydayCredits)
	}
	if s.SlotMin != 5 || s.SlotMax != 100 || s.SlotTime != 0 {
		t.Errorf("slot defaults = %d/%d/%d, want 5/100/0", s.SlotMin, s.SlotMax, s.SlotTime)
	}
	if s.RegisterCredits != 0 {
		t.Errorf("REGISTER_CREDITS default = %d, want 0", s.RegisterCredits)
	}
}

func TestSettings_Apply(t *testing.T) {
	s := DefaultSettings()
	if err := s.Apply("SLOT_MAX", 250); err != nil {
		t.Fatalf("Apply(SLOT_MAX) returned an unexpected error: %v", err)
	}
	if s.SlotMax != 250 {
		t.Errorf("SlotMax = %d, want 250", s.SlotMax)
	}
	if err := s.Apply("SLOT_MACHINE", 1); err == nil {
		t.Error("Apply() of an unknown key should fail")
	}
}

func TestSettingsDoc_For(t *testing.T) {
	doc := SettingsDoc{"guild1": {PaydayTime: 60}}

	if got := doc.For("guild1").PaydayTime; got != 60 {
		t.Errorf("stored PAYDAY_TIME = %d, want 60", got)
	}
	// An unknown namespace falls back to defaults without being stored.
	if got := doc.For("guild2"); got != DefaultSettings() {
		t.Errorf("For(guild2) = %+v, want defaults", got)
	}
	if _, ok := doc["guild2"]; ok {
		t.Error("For() must not store the defaults")
	}
}

func TestDecodeSettings(t *testing.T) {
	in := `{"guild1": {"PAYDAY_TIME": 60, "PAYDAY_CREDITS": 500, "SLOT_MIN": 1, "SLOT_MAX": 10, "SLOT_TIME": 30, "REGISTER_CREDITS": 100}}`
	doc, err := DecodeSettings(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeSettings() returned an unexpected error: %v", err)
	}
	got := doc.For("guild1")
	if got.PaydayCredits != 500 || got.RegisterCredits != 100 {
		t.Errorf("decoded settings = %+v", got)
	}

	if _, err := DecodeSettings(strings.NewReader(`{"guild1": {"SLOT_JACKPOT": 1}}`)); err == nil {
		t.Error("DecodeSettings() should reject unknown keys")
	}

	empty, err := DecodeSettings(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeSettings(empty) returned an unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("empty input decoded to %d namespaces, want 0", len(empty))
	}
}

func TestSettings_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.json")

	// A missing file loads as an empty document.
	doc, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() of a missing file returned an unexpected error: %v", err)
	}

	s := doc.For("guild1")
	if err := s.Apply("REGISTER_CREDITS", 50); err != nil {
		t.Fatalf("Apply() returned an unexpected error: %v", err)
	}
	doc["guild1"] = s
	if err := SaveSettings(path, doc); err != nil {
		t.Fatalf("SaveSettings() returned an unexpected error: %v", err)
	}

	reloaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() returned an unexpected error: %v", err)
	}
	if got := reloaded.For("guild1").RegisterCredits; got != 50 {
		t.Errorf("reloaded REGISTER_CREDITS = %d, want 50", got)
	}
}
