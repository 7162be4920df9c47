package stockpile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Settings holds the per-namespace configuration recognized by the command
// layer. None of these options influence the core ledger operations; they
// are stored, displayed and kept for the gameplay layers built on top.
//
// The JSON keys are fixed by the historical settings document format.
type Settings struct {
	// PaydayTime is the number of seconds between two payday claims.
	PaydayTime int64 `json:"PAYDAY_TIME"`
	// PaydayCredits is the amount granted per payday claim.
	PaydayCredits int64 `json:"PAYDAY_CREDITS"`
	// SlotMin and SlotMax bound a slot-machine bet.
	SlotMin int64 `json:"SLOT_MIN"`
	SlotMax int64 `json:"SLOT_MAX"`
	// SlotTime is the cooldown in seconds between two slot plays.
	SlotTime int64 `json:"SLOT_TIME"`
	// RegisterCredits is the starting grant of a fresh account.
	RegisterCredits int64 `json:"REGISTER_CREDITS"`
}

// DefaultSettings returns the settings a namespace starts with.
func DefaultSettings() Settings {
	return Settings{
		PaydayTime:    300,
		PaydayCredits: 120,
		SlotMin:       5,
		SlotMax:       100,
	}
}

// Apply sets the option named by key (its JSON key) to value.
func (s *Settings) Apply(key string, value int64) error {
	switch key {
	case "PAYDAY_TIME":
		s.PaydayTime = value
	case "PAYDAY_CREDITS":
		s.PaydayCredits = value
	case "SLOT_MIN":
		s.SlotMin = value
	case "SLOT_MAX":
		s.SlotMax = value
	case "SLOT_TIME":
		s.SlotTime = value
	case "REGISTER_CREDITS":
		s.RegisterCredits = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// SettingsDoc maps a namespace id to its settings. A namespace absent from
// the document reads as DefaultSettings; defaults are never written back
// implicitly.
type SettingsDoc map[string]Settings

// For returns the settings of a namespace, falling back to defaults.
func (d SettingsDoc) For(namespace string) Settings {
	if s, ok := d[namespace]; ok {
		return s
	}
	return DefaultSettings()
}

// EncodeSettings writes the settings document as canonical indented JSON.
func EncodeSettings(w io.Writer, d SettingsDoc) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("could not encode settings: %w", err)
	}
	return nil
}

// DecodeSettings reads a settings document. Empty input decodes to an empty
// document.
func DecodeSettings(r io.Reader) (SettingsDoc, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var d SettingsDoc
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return SettingsDoc{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	if d == nil {
		d = SettingsDoc{}
	}
	return d, nil
}

// LoadSettings reads the settings document at path. A missing file loads as
// an empty document.
func LoadSettings(path string) (SettingsDoc, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return SettingsDoc{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open settings file %q: %w", path, err)
	}
	defer f.Close()

	d, err := DecodeSettings(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode settings file %q: %w", path, err)
	}
	return d, nil
}

// SaveSettings writes the settings document to path, creating parent
// directories as needed.
func SaveSettings(path string, d SettingsDoc) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for settings file %q: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open settings file %q for writing: %w", path, err)
	}
	if err := EncodeSettings(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
