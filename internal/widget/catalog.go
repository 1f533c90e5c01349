package widget

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

type catalogFile struct {
	Primary  *catalogTable `toml:"primary"`
	Fallback *catalogTable `toml:"fallback"`
}

// Pointers distinguish a missing array (keep the built-in pool) from an
// explicitly empty one.
type catalogTable struct {
	Language     string    `toml:"language"`
	Before       *[]string `toml:"before"`
	BeforeStreak *[]string `toml:"before_streak"`
	After        *[]string `toml:"after"`
}

// LoadCatalogs reads message overrides from a TOML file. An empty path or a
// missing file yields the built-in catalogs.
func LoadCatalogs(path string) (Catalogs, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalogs(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultCatalogs(), nil
		}
		return Catalogs{}, fmt.Errorf("read messages: %w", err)
	}
	return ParseCatalogs(data)
}

// ParseCatalogs decodes and validates a messages TOML document.
func ParseCatalogs(data []byte) (Catalogs, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Catalogs{}, fmt.Errorf("parse messages: %w", err)
	}
	out := DefaultCatalogs()
	var err error
	if out.Primary, err = f.Primary.apply(out.Primary); err != nil {
		return Catalogs{}, fmt.Errorf("primary: %w", err)
	}
	if out.Fallback, err = f.Fallback.apply(out.Fallback); err != nil {
		return Catalogs{}, fmt.Errorf("fallback: %w", err)
	}
	return out, nil
}

func (t *catalogTable) apply(base Catalog) (Catalog, error) {
	if t == nil {
		return base, nil
	}
	if t.Language != "" {
		tag, err := language.Parse(t.Language)
		if err != nil {
			return Catalog{}, fmt.Errorf("language %q: %w", t.Language, err)
		}
		base.Tag = tag
	}
	if t.Before != nil {
		if err := validatePool(TierBefore, *t.Before); err != nil {
			return Catalog{}, err
		}
		base.Before = append([]string(nil), (*t.Before)...)
	}
	if t.BeforeStreak != nil {
		if err := validatePool(TierBeforeStreak, *t.BeforeStreak); err != nil {
			return Catalog{}, err
		}
		base.BeforeStreak = append([]string(nil), (*t.BeforeStreak)...)
	}
	if t.After != nil {
		if err := validatePool(TierAfter, *t.After); err != nil {
			return Catalog{}, err
		}
		base.After = append([]string(nil), (*t.After)...)
	}
	return base, nil
}

func validatePool(tier Tier, pool []string) error {
	for i, tmpl := range pool {
		if strings.TrimSpace(tmpl) == "" {
			return fmt.Errorf("%s[%d]: empty template", tier, i)
		}
		if tier != TierBeforeStreak {
			// Before and after templates are never formatted.
			if strings.Contains(tmpl, "%") {
				return fmt.Errorf("%s[%d]: %% not allowed in %q", tier, i, tmpl)
			}
			continue
		}
		verbs := strings.ReplaceAll(tmpl, "%%", "")
		if strings.Count(verbs, "%") != 1 || strings.Count(verbs, "%d") != 1 {
			return fmt.Errorf("%s[%d]: want exactly one %%d in %q", tier, i, tmpl)
		}
	}
	return nil
}
