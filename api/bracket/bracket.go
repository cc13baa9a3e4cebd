/* bracket.go
 * Contains the in-memory model of the 12 team single elimination playoff
 * bracket. Winners advance round to round through a fixed slot mapping and
 * eliminated teams are retracted from every downstream slot they had been
 * speculatively advanced into
 */

package bracket

import (
	"fmt"
	"strings"

	"cfp-bracket/api/shared"
)

// Matchup is a single game slot with two (possibly not yet known)
// participants and an optional winner
type Matchup struct {
	Id     string
	Team1  *shared.Team
	Team2  *shared.Team
	Winner *shared.Team
}

// Bracket holds the four rounds of matchups. firstRound and quarterfinals
// have four slots each, semifinals two, and a single championship game
type Bracket struct {
	FirstRound    []*Matchup
	Quarterfinals []*Matchup
	Semifinals    []*Matchup
	Championship  *Matchup

	byId map[string]*Matchup
}

// teams is the static playoff field, indexed by seed-1. The roster is fixed
// for the season and never mutated
var teams = []shared.Team{
	{Id: "1", Name: "Indiana", Seed: 1},
	{Id: "2", Name: "Ohio State", Seed: 2},
	{Id: "3", Name: "Georgia", Seed: 3},
	{Id: "4", Name: "Texas Tech", Seed: 4},
	{Id: "5", Name: "Oregon", Seed: 5},
	{Id: "6", Name: "Ole Miss", Seed: 6},
	{Id: "7", Name: "Texas A&M", Seed: 7},
	{Id: "8", Name: "Oklahoma", Seed: 8},
	{Id: "9", Name: "Alabama", Seed: 9},
	{Id: "10", Name: "Miami", Seed: 10},
	{Id: "11", Name: "Tulane", Seed: 11},
	{Id: "12", Name: "JMU", Seed: 12},
}

// feed describes where a matchup's winner advances to: the downstream matchup
// id and which participant slot it fills
type feed struct {
	next string
	slot int
}

// feeds is the fixed structural mapping between rounds. Seeds 1-4 bye
// directly into the quarterfinal team1 slots, so every first round winner
// lands in a quarterfinal team2 slot. The championship feeds nowhere
var feeds = map[string]feed{
	"fr1": {next: "qf1", slot: 2},
	"fr2": {next: "qf2", slot: 2},
	"fr3": {next: "qf3", slot: 2},
	"fr4": {next: "qf4", slot: 2},
	"qf1": {next: "sf1", slot: 1},
	"qf2": {next: "sf1", slot: 2},
	"qf3": {next: "sf2", slot: 1},
	"qf4": {next: "sf2", slot: 2},
	"sf1": {next: "final", slot: 1},
	"sf2": {next: "final", slot: 2},
}

// depth orders matchups by round so retraction can scrub every matchup
// strictly downstream of the one being decided
var depth = map[string]int{
	"fr1": 0, "fr2": 0, "fr3": 0, "fr4": 0,
	"qf1": 1, "qf2": 1, "qf3": 1, "qf4": 1,
	"sf1": 2, "sf2": 2,
	"final": 3,
}

// Teams returns the static 12 team roster in seed order
func Teams() []shared.Team {
	out := make([]shared.Team, len(teams))
	copy(out, teams)
	return out
}

// TeamBySeed returns a pointer to a copy of the roster entry for a seed
func TeamBySeed(seed int) *shared.Team {
	t := teams[seed-1]
	return &t
}

// New creates a bracket in its initial pre-seeded state: first round games
// 8v9, 5v12, 6v11 and 7v10, bye teams pre-placed in the quarterfinals, and
// all dependent slots empty
func New() *Bracket {
	b := &Bracket{}
	b.seed()
	return b
}

func (b *Bracket) seed() {
	b.FirstRound = []*Matchup{
		{Id: "fr1", Team1: TeamBySeed(8), Team2: TeamBySeed(9)},
		{Id: "fr2", Team1: TeamBySeed(5), Team2: TeamBySeed(12)},
		{Id: "fr3", Team1: TeamBySeed(6), Team2: TeamBySeed(11)},
		{Id: "fr4", Team1: TeamBySeed(7), Team2: TeamBySeed(10)},
	}
	b.Quarterfinals = []*Matchup{
		{Id: "qf1", Team1: TeamBySeed(1)},
		{Id: "qf2", Team1: TeamBySeed(4)},
		{Id: "qf3", Team1: TeamBySeed(3)},
		{Id: "qf4", Team1: TeamBySeed(2)},
	}
	b.Semifinals = []*Matchup{
		{Id: "sf1"},
		{Id: "sf2"},
	}
	b.Championship = &Matchup{Id: "final"}

	b.byId = make(map[string]*Matchup)
	for _, m := range b.all() {
		b.byId[m.Id] = m
	}
}

// all returns every matchup in round order
func (b *Bracket) all() []*Matchup {
	out := make([]*Matchup, 0, 11)
	out = append(out, b.FirstRound...)
	out = append(out, b.Quarterfinals...)
	out = append(out, b.Semifinals...)
	out = append(out, b.Championship)
	return out
}

// Matchup looks up a matchup by id
// Preconditions: receives a matchup id string such as "fr1" or "final"
// Postconditions: returns the matchup, or ErrInvalidMatchup for unknown ids
func (b *Bracket) Matchup(id string) (*Matchup, error) {
	m, ok := b.byId[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", shared.ErrInvalidMatchup, id)
	}
	return m, nil
}

// SelectWinner records a winner for a matchup, advances them into the
// downstream slot fed by this matchup, and retracts the eliminated team from
// every downstream matchup it had been advanced into. Re-selecting a decided
// matchup replaces the winner and re-triggers propagation and retraction.
// The back-propagation invariant holds after every call: a team eliminated
// in round N appears nowhere in any round after N
func (b *Bracket) SelectWinner(matchupId string, teamName string) error {
	m, err := b.Matchup(matchupId)
	if err != nil {
		return err
	}
	if m.Team1 == nil || m.Team2 == nil {
		return fmt.Errorf("%w: matchup %s does not have both participants yet", shared.ErrValidation, matchupId)
	}

	teamName = strings.TrimSpace(teamName)
	var winner, eliminated *shared.Team
	switch teamName {
	case m.Team1.Name:
		winner, eliminated = m.Team1, m.Team2
	case m.Team2.Name:
		winner, eliminated = m.Team2, m.Team1
	default:
		return fmt.Errorf("%w: %q is not a participant in matchup %s", shared.ErrValidation, teamName, matchupId)
	}

	m.Winner = winner

	// The eliminated team may have been advanced (and even picked as a
	// winner) further downstream by an earlier selection; the propagated
	// value is always the team itself, so clearing it from every downstream
	// slot undoes the whole chain in one pass. When a decided matchup is
	// flipped the eliminated team is the previous winner, which retracts the
	// old propagation the same way
	b.scrubDownstream(matchupId, eliminated)

	if f, ok := feeds[matchupId]; ok {
		next := b.byId[f.next]
		w := *winner
		if f.slot == 1 {
			next.Team1 = &w
		} else {
			next.Team2 = &w
		}
	}
	return nil
}

// scrubDownstream removes a team from team1, team2 and winner of every
// matchup strictly after the given one
func (b *Bracket) scrubDownstream(matchupId string, team *shared.Team) {
	after := depth[matchupId]
	for _, m := range b.all() {
		if depth[m.Id] <= after {
			continue
		}
		if m.Team1 != nil && m.Team1.Id == team.Id {
			m.Team1 = nil
		}
		if m.Team2 != nil && m.Team2.Id == team.Id {
			m.Team2 = nil
		}
		if m.Winner != nil && m.Winner.Id == team.Id {
			m.Winner = nil
		}
	}
}

// Reset restores the initial pre-seeded state exactly
func (b *Bracket) Reset() {
	b.seed()
}

// IsComplete reports whether the championship matchup has a winner, which by
// the propagation rules implies every earlier matchup is decided too
func (b *Bracket) IsComplete() bool {
	return b.Championship.Winner != nil
}
