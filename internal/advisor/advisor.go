// Package advisor turns a scored category and its skill gaps into
// career-path suggestions: plausible next roles from a static ladder
// and a deduplicated upskilling list.
package advisor

import (
	"strings"

	"resumebench/internal/knowledge"
	"resumebench/internal/types"
)

// Suggest maps a category to its canonical role, looks up the role's
// next rungs and assembles an upskilling list. The list starts with
// the caller-supplied missing skills; if a next role exists, curated
// skills from any category whose name contains that role name are
// appended. That join is approximate by nature: it is a best-effort
// substring match over category names, not a guaranteed mapping.
func Suggest(category string, missingSkills []string, tables *knowledge.Tables) types.Advice {
	role := tables.RoleFor(category)
	nextRoles := tables.NextRolesFor(role)
	if nextRoles == nil {
		nextRoles = []string{}
	}

	upskilling := make([]string, 0, len(missingSkills))
	seen := make(map[string]bool)
	add := func(skill string) {
		key := strings.ToLower(strings.TrimSpace(skill))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		upskilling = append(upskilling, skill)
	}

	for _, skill := range missingSkills {
		add(skill)
	}

	if len(nextRoles) > 0 {
		for _, category := range tables.CategoriesContaining(nextRoles[0]) {
			for _, skill := range tables.CuratedSkillsFor(category) {
				add(skill)
			}
		}
	}

	return types.Advice{
		Role:       role,
		NextRoles:  nextRoles,
		Upskilling: upskilling,
	}
}
