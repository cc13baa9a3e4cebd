/* teams.go
 * Contains the fuzzy roster lookup used by admin tooling so loosely spelled
 * team names ("jmu", "ohio state") resolve to their canonical roster form
 */

package logic

import (
	"fmt"
	"strings"

	"cfp-bracket/api/bracket"
	"cfp-bracket/api/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ResolveTeamName matches an input string against the static roster and
// returns the canonical team name. An exact (case insensitive) match wins
// over fuzzy candidates; with several fuzzy candidates the best ranked one
// is taken
// Postconditions: returns the canonical name, or a validation error when the
// input matches no roster entry
func ResolveTeamName(input string) (string, error) {
	lowerInput := strings.ToLower(strings.TrimSpace(input))

	lookup := make(map[string]string)
	var rosterLower []string
	for _, team := range bracket.Teams() {
		lower := strings.ToLower(team.Name)
		lookup[lower] = team.Name
		rosterLower = append(rosterLower, lower)
	}

	matches := fuzzy.RankFind(lowerInput, rosterLower)
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: unknown team name %q", shared.ErrValidation, input)
	}

	// Prefer an exact match when the fuzzy search returns several candidates
	for _, match := range matches {
		if match.Target == lowerInput {
			return lookup[match.Target], nil
		}
	}
	return lookup[matches[0].Target], nil
}
