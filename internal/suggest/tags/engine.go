// Package tags scores free text against the keyword lexicon and a set of
// pattern detectors to propose tag candidates for the current memo.
package tags

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jotdown-app/jotdown/internal/lexicon/domain"
)

const (
	keywordWeight    = 10
	presetNameWeight = 10
	questionWeight   = 8
	foodWeight       = 8
	taskCueWeight    = 8
	shoppingWeight   = 8
	ideaWeight       = 7

	fallbackTopTagWeight  = 2
	fallbackGenericWeight = 1
	fallbackTopTagMinLen  = 5
	fallbackGenericMinLen = 10

	genericFallbackName = "メモ"

	// MaxCandidates caps the returned candidate list.
	MaxCandidates = 5
)

// Input is the snapshot a single evaluation scores against. Ranked is the
// user lexicon in priority order; Adopted and Dismissed are the names
// already on the memo and the session's dismissed set.
type Input struct {
	Text      string
	Ranked    []domain.Tag
	Presets   []domain.Tag
	Adopted   map[string]bool
	Dismissed map[string]bool
	Policy    Policy
}

// Engine computes ranked tag candidates. It is pure: no side effects
// beyond producing the list, so evaluations are safely cancellable.
type Engine struct{}

// NewEngine returns a tag scoring engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Score returns up to MaxCandidates tags ordered by match score plus the
// priority score of the matching lexicon entry. Empty text or a policy of
// off short-circuits before any scoring.
func (e *Engine) Score(input Input) []domain.Tag {
	if input.Policy == PolicyOff {
		return nil
	}
	trimmed := strings.TrimSpace(input.Text)
	if trimmed == "" {
		return nil
	}

	lower := strings.ToLower(trimmed)
	scores := make(map[string]int)

	for _, entry := range staticLexicon {
		if strings.Contains(lower, strings.ToLower(entry.keyword)) {
			scores[entry.tag] += keywordWeight
		}
	}

	for _, preset := range input.Presets {
		if strings.Contains(lower, strings.ToLower(preset.Name)) {
			scores[preset.Name] += presetNameWeight
		}
	}

	// Each detector fires at most once regardless of how many cues match.
	for _, det := range detectors {
		for _, cue := range det.cues {
			if strings.Contains(lower, strings.ToLower(cue)) {
				scores[det.tag] += det.weight
				break
			}
		}
	}

	length := utf8.RuneCountInString(trimmed)
	if len(scores) == 0 && length >= fallbackTopTagMinLen && len(input.Ranked) > 0 {
		scores[input.Ranked[0].Name] += fallbackTopTagWeight
	}
	if length >= fallbackGenericMinLen && len(scores) < 2 {
		scores[genericFallbackName] += fallbackGenericWeight
	}

	for name := range scores {
		if input.Adopted[name] || input.Dismissed[name] {
			delete(scores, name)
		}
	}

	priority := make(map[string]int, len(input.Ranked))
	for _, tag := range input.Ranked {
		priority[tag.Name] = tag.PriorityScore()
	}

	type candidate struct {
		name string
		rank int
	}
	candidates := make([]candidate, 0, len(scores))
	for name, score := range scores {
		candidates = append(candidates, candidate{name: name, rank: score + priority[name]})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].rank != candidates[j].rank {
			return candidates[i].rank > candidates[j].rank
		}
		return candidates[i].name < candidates[j].name
	})
	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}

	state := domain.TagStateSuggested
	if input.Policy == PolicyAutoAdopt {
		state = domain.TagStateAdopted
	}

	result := make([]domain.Tag, 0, len(candidates))
	for _, c := range candidates {
		tag := e.resolveTag(c.name, input)
		tag.State = state
		result = append(result, tag)
	}
	return result
}

// resolveTag reuses the identity of an existing user or preset tag so
// adoption hits the same record; otherwise a fresh tag is minted.
func (e *Engine) resolveTag(name string, input Input) domain.Tag {
	for _, tag := range input.Ranked {
		if tag.Name == name {
			return tag
		}
	}
	for _, tag := range input.Presets {
		if tag.Name == name {
			return tag
		}
	}
	return domain.Tag{ID: uuid.New(), Name: name}
}
