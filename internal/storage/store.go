// Package storage persists the resume snapshot and the theme
// preference in two independent key-value slots. Writes always
// overwrite the whole blob; reads default-fill whatever an older
// snapshot is missing.
package storage

import (
	"context"
	"encoding/json"
	"errors"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// Slot keys, carried over from the persisted layout this snapshot
// format originated with.
const (
	ResumeKey = "ai-resume-builder-data"
	ThemeKey  = "ai-resume-builder-theme"
)

// ErrNotFound reports an empty slot. A corrupt slot is reported the
// same way after logging: stored garbage must never block a fresh start.
var ErrNotFound = errors.New("storage: not found")

type Store interface {
	LoadResume(ctx context.Context) (domain.Resume, error)
	SaveResume(ctx context.Context, rec domain.Resume) error
	// ClearResume removes the resume slot only; the theme slot
	// survives so the preference outlives a cleared record.
	ClearResume(ctx context.Context) error
	LoadTheme(ctx context.Context) (domain.ThemeSettings, error)
	SaveTheme(ctx context.Context, t domain.ThemeSettings) error
}

// decodeResume is the strict-then-default-fill read path: shape
// validation first, then decode, then documented defaults for anything
// the snapshot predates.
func decodeResume(b []byte) (domain.Resume, error) {
	if err := model.ValidateSnapshot(b); err != nil {
		return domain.Resume{}, err
	}
	var rec domain.Resume
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.Resume{}, err
	}
	return fillDefaults(rec), nil
}

func fillDefaults(rec domain.Resume) domain.Resume {
	if rec.ThemeSettings == (domain.ThemeSettings{}) {
		rec.ThemeSettings = domain.DefaultTheme()
	}
	rec.SelectedTemplate = domain.ParseTemplate(string(rec.SelectedTemplate))
	if rec.Experience == nil {
		rec.Experience = []domain.Experience{}
	}
	for i := range rec.Experience {
		if rec.Experience[i].Achievements == nil {
			rec.Experience[i].Achievements = []string{}
		}
	}
	if rec.Education == nil {
		rec.Education = []domain.Education{}
	}
	for i := range rec.Education {
		if rec.Education[i].Achievements == nil {
			rec.Education[i].Achievements = []string{}
		}
	}
	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	return rec
}

func decodeTheme(b []byte) (domain.ThemeSettings, error) {
	var t domain.ThemeSettings
	if err := json.Unmarshal(b, &t); err != nil {
		return domain.ThemeSettings{}, err
	}
	if t == (domain.ThemeSettings{}) {
		t = domain.DefaultTheme()
	}
	return t, nil
}
