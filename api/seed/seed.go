/* seed.go
 * Loads fixture game results from a plain text file so a development or test
 * database can be populated without hitting the live provider. One game per
 * line:
 *
 *   <round> "<team1>" "<team2>" <team1Score|-> <team2Score|-> <completed>
 *
 * e.g.  firstRound "Oklahoma" "Alabama" 24 17 true
 *       championship "Ohio State" "Indiana" - - false
 *
 * Team names are quoted because they contain spaces, and are resolved
 * against the roster with fuzzy matching so shorthand like "jmu" works
 */

package seed

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"cfp-bracket/api/logic"
	"cfp-bracket/api/shared"
	"cfp-bracket/api/store"

	"github.com/go-andiamo/splitter"
)

var rounds = map[string]shared.Round{
	"firstRound":    shared.RoundFirstRound,
	"quarterfinals": shared.RoundQuarterfinals,
	"semifinals":    shared.RoundSemifinals,
	"championship":  shared.RoundChampionship,
}

// ParseLine parses one fixture line into a canonical GameResult. The winner
// is derived the same way the normalizer does it: completed with both scores
// present, higher score wins, team1 on the (impossible in practice) tie
func ParseLine(line string) (store.GameResult, error) {
	// we use splitter here instead of strings.Fields because team names
	// contain spaces and arrive quoted
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return store.GameResult{}, err
	}
	fields, err := spaceSplitter.Split(line)
	if err != nil {
		return store.GameResult{}, fmt.Errorf("%w: unbalanced quotes in seed line: %v", shared.ErrValidation, err)
	}
	for i := range fields {
		fields[i] = strings.ReplaceAll(fields[i], "\"", "")
		fields[i] = strings.ReplaceAll(fields[i], "“", "")
		fields[i] = strings.ReplaceAll(fields[i], "”", "")
	}
	if len(fields) != 6 {
		return store.GameResult{}, fmt.Errorf("%w: seed line needs 6 fields, got %d", shared.ErrValidation, len(fields))
	}

	round, ok := rounds[fields[0]]
	if !ok {
		return store.GameResult{}, fmt.Errorf("%w: unknown round %q", shared.ErrValidation, fields[0])
	}

	team1, err := logic.ResolveTeamName(fields[1])
	if err != nil {
		return store.GameResult{}, err
	}
	team2, err := logic.ResolveTeamName(fields[2])
	if err != nil {
		return store.GameResult{}, err
	}

	team1Score, err := parseScore(fields[3])
	if err != nil {
		return store.GameResult{}, err
	}
	team2Score, err := parseScore(fields[4])
	if err != nil {
		return store.GameResult{}, err
	}

	completed, err := strconv.ParseBool(fields[5])
	if err != nil {
		return store.GameResult{}, fmt.Errorf("%w: completed flag must be true or false, got %q", shared.ErrValidation, fields[5])
	}

	var winner string
	if completed && team1Score != nil && team2Score != nil {
		if *team2Score > *team1Score {
			winner = team2
		} else {
			winner = team1
		}
	}

	return store.GameResult{
		GameId:      seedGameId(round, team1, team2),
		Round:       round,
		Team1:       team1,
		Team2:       team2,
		Team1Score:  team1Score,
		Team2Score:  team2Score,
		Winner:      winner,
		Completed:   completed,
		GameDate:    time.Now(),
		LastUpdated: time.Now(),
	}, nil
}

// LoadFile parses a whole fixture file, skipping blank lines and # comments
func LoadFile(path string) ([]store.GameResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	var results []store.GameResult
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("seed file line %d: %w", lineNo, err)
		}
		results = append(results, result)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	return results, nil
}

// Apply upserts each fixture result. Seed ids are deterministic so applying
// the same file twice leaves the collection unchanged
func Apply(s store.Interface, results []store.GameResult) (int, error) {
	var applied int
	for _, result := range results {
		if err := s.UpsertGameResult(result); err != nil {
			return applied, err
		}
		applied++
	}
	return applied, nil
}

func parseScore(field string) (*int, error) {
	if field == "-" {
		return nil, nil
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return nil, fmt.Errorf("%w: score must be an integer or -, got %q", shared.ErrValidation, field)
	}
	return &n, nil
}

func seedGameId(round shared.Round, team1 string, team2 string) string {
	slug := func(name string) string {
		return strings.ReplaceAll(strings.ToLower(name), " ", "-")
	}
	return fmt.Sprintf("seed-%s-%s-%s", round, slug(team1), slug(team2))
}
