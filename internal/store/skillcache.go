package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katahira/mekiki/internal/models"
	"github.com/klauspost/compress/zstd"
)

// SaveSkills writes crawled skills to path as zstd-compressed JSON. Skill
// bodies are markdown and compress very well.
func SaveSkills(path string, skills []models.SkillRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.Marshal(skills)
	if err != nil {
		return fmt.Errorf("marshaling skills: %w", err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating skills cache: %w", err)
	}

	enc, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("creating zstd writer: %w", err)
	}

	if _, err := enc.Write(data); err != nil {
		enc.Close()
		f.Close()
		return fmt.Errorf("writing skills cache: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finishing skills cache: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing skills cache: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing skills cache: %w", err)
	}
	return nil
}

// LoadSkills reads a zstd-compressed skills cache.
func LoadSkills(path string) ([]models.SkillRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening skills cache: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("creating zstd reader: %w", err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading skills cache: %w", err)
	}

	var skills []models.SkillRecord
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("parsing skills cache %s: %w", path, err)
	}
	return skills, nil
}
