// Package knowledge holds the static reference tables the analyzers
// consume: curated skills per category, extraction keyword lists,
// buzzwords, expected section headers and the career ladder. The
// tables ship with built-in defaults and can be overridden from a
// versioned YAML file, optionally hot-reloaded when that file changes.
package knowledge

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"resumebench/internal/errors"
)

// Tables is one immutable snapshot of every reference table. Callers
// must not mutate a snapshot after obtaining it.
type Tables struct {
	CuratedSkills      map[string][]string `mapstructure:"curated_skills"`
	SkillKeywords      []string            `mapstructure:"skill_keywords"`
	EducationKeywords  []string            `mapstructure:"education_keywords"`
	ExperienceKeywords []string            `mapstructure:"experience_keywords"`
	Buzzwords          []string            `mapstructure:"buzzwords"`
	SectionHeaders     []string            `mapstructure:"section_headers"`
	CategoryRoles      map[string]string   `mapstructure:"category_roles"`
	RoleLadder         map[string][]string `mapstructure:"role_ladder"`
	GapThresholdMonths int                 `mapstructure:"gap_threshold_months"`
}

// Defaults returns a snapshot populated with the built-in tables.
func Defaults() *Tables {
	return &Tables{
		CuratedSkills:      defaultCuratedSkills(),
		SkillKeywords:      defaultSkillKeywords(),
		EducationKeywords:  defaultEducationKeywords(),
		ExperienceKeywords: defaultExperienceKeywords(),
		Buzzwords:          defaultBuzzwords(),
		SectionHeaders:     defaultSectionHeaders(),
		CategoryRoles:      defaultCategoryRoles(),
		RoleLadder:         defaultRoleLadder(),
		GapThresholdMonths: defaultGapThresholdMonths,
	}
}

// Base is the process-wide holder of the current Tables snapshot.
// Snapshots are swapped atomically under the mutex; readers always see
// a complete table set.
type Base struct {
	mu      sync.RWMutex
	current *Tables
	logger  *errors.Logger
}

// NewBase creates a Base seeded with the built-in defaults.
func NewBase(logger *errors.Logger) *Base {
	return &Base{
		current: Defaults(),
		logger:  logger,
	}
}

// Snapshot returns the current immutable table set.
func (b *Base) Snapshot() *Tables {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

// LoadFile merges a YAML override file on top of the built-in defaults
// and swaps in the resulting snapshot. Tables absent from the file keep
// their default values.
func (b *Base) LoadFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("failed to read knowledge tables from %s", path), err)
	}

	tables := Defaults()
	if err := v.Unmarshal(tables); err != nil {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("failed to parse knowledge tables from %s", path), err)
	}

	if err := tables.validate(); err != nil {
		return err
	}

	b.mu.Lock()
	b.current = tables
	b.mu.Unlock()

	if b.logger != nil {
		b.logger.Info("Knowledge tables loaded",
			"path", path,
			"categories", len(tables.CuratedSkills),
			"roles", len(tables.RoleLadder))
	}

	return nil
}

func (t *Tables) validate() error {
	if len(t.CuratedSkills) == 0 {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"curated skill table must not be empty", nil)
	}
	if t.GapThresholdMonths < 0 {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"gap threshold must not be negative", nil)
	}
	return nil
}

// CuratedSkills returns the curated skill terms for a category, or nil
// when the category has no curated entry.
func (t *Tables) CuratedSkillsFor(category string) []string {
	return t.CuratedSkills[category]
}

// RoleFor resolves a category to its canonical role. Categories without
// a mapping pass through unchanged.
func (t *Tables) RoleFor(category string) string {
	if role, ok := t.CategoryRoles[category]; ok {
		return role
	}
	return category
}

// NextRolesFor returns the career ladder entry for a role, or nil when
// the role has no ladder entry.
func (t *Tables) NextRolesFor(role string) []string {
	return t.RoleLadder[role]
}

// CategoryNames returns the curated category names in sorted order.
func (t *Tables) CategoryNames() []string {
	names := make([]string, 0, len(t.CuratedSkills))
	for name := range t.CuratedSkills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoriesContaining returns curated categories whose name contains
// the given term, case-insensitively. Used by the advisor's
// best-effort role-to-skills join.
func (t *Tables) CategoriesContaining(term string) []string {
	needle := strings.ToLower(term)
	var out []string
	for _, name := range t.CategoryNames() {
		if strings.Contains(strings.ToLower(name), needle) {
			out = append(out, name)
		}
	}
	return out
}
