package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

// AnswerStore persists answer sheets.
type AnswerStore interface {
	SaveAnswers(ctx context.Context, path m.Path, sheet m.AnswerSheet) error
	LoadAnswers(ctx context.Context, path m.Path) (m.AnswerSheet, error)
}

// YAMLAnswerStore keeps answer sheets as YAML files.
type YAMLAnswerStore struct{}

// NewYAMLAnswerStore constructs a YAMLAnswerStore.
func NewYAMLAnswerStore() *YAMLAnswerStore {
	return &YAMLAnswerStore{}
}

// SaveAnswers writes sheet to path, creating parent directories.
func (s *YAMLAnswerStore) SaveAnswers(ctx context.Context, path m.Path, sheet m.AnswerSheet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(sheet)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create answers directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write answers: %w", err)
	}

	return nil
}

// LoadAnswers reads an answer sheet from path.
func (s *YAMLAnswerStore) LoadAnswers(ctx context.Context, path m.Path) (m.AnswerSheet, error) {
	if err := ctx.Err(); err != nil {
		return m.AnswerSheet{}, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.AnswerSheet{}, fmt.Errorf("read answers: %w", err)
	}

	var sheet m.AnswerSheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return m.AnswerSheet{}, fmt.Errorf("decode answers %s: %w", path, err)
	}

	return sheet, nil
}
