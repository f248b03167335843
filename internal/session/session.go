// Package session runs the debounced evaluation pipeline for one memo
// draft: it receives text-change events, schedules the two scoring
// engines, and tracks the suggested/adopted/dismissed lifecycle of tags
// together with the current template suggestion.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jotdown-app/jotdown/internal/eventbus"
	"github.com/jotdown-app/jotdown/internal/lexicon"
	"github.com/jotdown-app/jotdown/internal/lexicon/domain"
	"github.com/jotdown-app/jotdown/internal/linguistic"
	"github.com/jotdown-app/jotdown/internal/suggest/tags"
	"github.com/jotdown-app/jotdown/internal/suggest/template"
)

// Config holds the per-session policies and settle windows.
type Config struct {
	TagPolicy      tags.Policy
	TemplatePolicy template.Policy
	TagSettle      time.Duration
	TemplateSettle time.Duration
	Destinations   template.Destinations
}

// DefaultConfig returns the documented defaults: suggest-only policies,
// 200ms tag settle, 300ms template settle.
func DefaultConfig() Config {
	return Config{
		TagPolicy:      tags.PolicySuggestOnly,
		TemplatePolicy: template.PolicySuggestOnly,
		TagSettle:      200 * time.Millisecond,
		TemplateSettle: 300 * time.Millisecond,
		Destinations:   template.Destinations{Task: "tasks", Note: "notes"},
	}
}

// Session is the per-memo-draft evaluation state. One instance per active
// draft; it is safe for concurrent use.
type Session struct {
	cfg            Config
	store          *lexicon.Store
	tagEngine      *tags.Engine
	templateEngine *template.Engine
	bus            eventbus.Publisher
	logger         *slog.Logger
	ctx            context.Context

	tagSched      *Scheduler
	templateSched *Scheduler

	mu          sync.Mutex
	text        string
	adopted     []domain.Tag
	dismissed   map[string]bool
	suggestions []domain.Tag
	suggestion  template.Suggestion
	destination string
}

// New creates a session. The analyzer may be nil; scoring then runs with
// zero linguistic signal.
func New(ctx context.Context, cfg Config, store *lexicon.Store, analyzer linguistic.Analyzer, bus eventbus.Publisher, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		cfg:            cfg,
		store:          store,
		tagEngine:      tags.NewEngine(),
		templateEngine: template.NewEngine(analyzer, cfg.Destinations),
		bus:            bus,
		logger:         logger,
		ctx:            ctx,
		dismissed:      make(map[string]bool),
		suggestion:     template.Empty(),
		destination:    cfg.Destinations.Note,
	}
	s.tagSched = NewScheduler(cfg.TagSettle, s.evaluateTags)
	s.templateSched = NewScheduler(cfg.TemplateSettle, s.evaluateTemplate)
	return s
}

// OnTextChanged is the sole entry point driving scheduling. Empty text
// resets the session without starting a timer; a wholesale replacement
// clears the dismissed set before re-evaluating.
func (s *Session) OnTextChanged(text string) {
	trimmed := strings.TrimSpace(text)

	s.mu.Lock()
	prev := s.text
	s.text = text

	if trimmed == "" {
		s.mu.Unlock()
		s.Reset()
		return
	}

	if isWholesaleReplace(prev, text) {
		s.dismissed = make(map[string]bool)
	}
	s.mu.Unlock()

	if s.cfg.TagPolicy != tags.PolicyOff {
		s.tagSched.Trigger(text)
	}
	if s.cfg.TemplatePolicy != template.PolicyOff {
		s.templateSched.Trigger(text)
	}
}

// evaluateTags runs after the tag settle window. The generation token is
// checked before scoring and again before the commit so a superseded
// evaluation produces no observable change.
func (s *Session) evaluateTags(text string, generation uint64) {
	if !s.tagSched.Current(generation) {
		return
	}

	s.mu.Lock()
	adopted := make(map[string]bool, len(s.adopted))
	for _, tag := range s.adopted {
		adopted[tag.Name] = true
	}
	dismissed := make(map[string]bool, len(s.dismissed))
	for name := range s.dismissed {
		dismissed[name] = true
	}
	s.mu.Unlock()

	result := s.tagEngine.Score(tags.Input{
		Text:      text,
		Ranked:    s.store.Rank(s.ctx),
		Presets:   s.store.PresetTags(),
		Adopted:   adopted,
		Dismissed: dismissed,
		Policy:    s.cfg.TagPolicy,
	})

	s.mu.Lock()
	if !s.tagSched.Current(generation) {
		s.mu.Unlock()
		return
	}

	if s.cfg.TagPolicy == tags.PolicyAutoAdopt {
		// Re-check against the live adopted set: a manual Adopt may have
		// landed while scoring ran outside the lock.
		current := make(map[string]bool, len(s.adopted))
		for _, tag := range s.adopted {
			current[tag.Name] = true
		}
		newly := make([]domain.Tag, 0, len(result))
		for _, tag := range result {
			if !current[tag.Name] {
				newly = append(newly, tag)
			}
		}
		s.adopted = append(s.adopted, newly...)
		s.suggestions = nil
		s.mu.Unlock()

		for _, tag := range newly {
			if err := s.store.RecordAdoption(s.ctx, tag.Name); err != nil {
				s.logger.Warn("auto-adopt usage record failed", "tag", tag.Name, "error", err)
			}
			s.publish(eventbus.EventTagAdopted, tag.Name)
		}
		s.publish(eventbus.EventTagSuggestionsUpdated, names(nil))
		return
	}

	s.suggestions = result
	s.mu.Unlock()
	s.publish(eventbus.EventTagSuggestionsUpdated, names(result))
}

// evaluateTemplate runs after the template settle window.
func (s *Session) evaluateTemplate(text string, generation uint64) {
	if !s.templateSched.Current(generation) {
		return
	}

	result := s.templateEngine.Classify(s.ctx, text)

	s.mu.Lock()
	if !s.templateSched.Current(generation) {
		s.mu.Unlock()
		return
	}
	s.suggestion = result
	if s.cfg.TemplatePolicy == template.PolicyAutoSwitch && !result.IsEmpty() && result.IsConfident() {
		s.destination = result.Destination
	}
	s.mu.Unlock()

	s.publish(eventbus.EventTemplateUpdated, result)
}

// Adopt moves a tag from suggested to adopted: it joins the memo's tag
// set, its usage count is recorded, and it leaves the suggestion list.
// A persistence failure is returned but the in-session state stands.
func (s *Session) Adopt(name string) error {
	s.mu.Lock()
	tag, found := s.takeSuggestionLocked(name)
	if !found {
		tag = s.resolveTagLocked(name)
	}
	tag.State = domain.TagStateAdopted
	delete(s.dismissed, name)

	already := false
	for _, existing := range s.adopted {
		if existing.Name == name {
			already = true
			break
		}
	}
	if !already {
		s.adopted = append(s.adopted, tag)
	}
	s.mu.Unlock()

	err := s.store.RecordAdoption(s.ctx, name)
	s.publish(eventbus.EventTagAdopted, name)
	return err
}

// Dismiss removes a tag from the memo (if adopted) or the suggestion
// list, and suppresses it for the rest of the session. Usage counts are
// never decremented.
func (s *Session) Dismiss(name string) {
	s.mu.Lock()
	s.takeSuggestionLocked(name)
	for i, tag := range s.adopted {
		if tag.Name == name {
			s.adopted = append(s.adopted[:i], s.adopted[i+1:]...)
			break
		}
	}
	s.dismissed[name] = true
	suggestions := names(s.suggestions)
	s.mu.Unlock()

	s.publish(eventbus.EventTagDismissed, name)
	s.publish(eventbus.EventTagSuggestionsUpdated, suggestions)
}

// AcceptTemplateSuggestion applies the current suggestion and returns the
// destination the memo should be forwarded to. The second return is false
// when there is nothing to accept.
func (s *Session) AcceptTemplateSuggestion() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.suggestion.IsEmpty() {
		return "", false
	}
	s.destination = s.suggestion.Destination
	return s.destination, true
}

// TagSuggestions returns the current ordered suggestion list.
func (s *Session) TagSuggestions() []domain.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Tag, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

// TemplateSuggestion returns the current template suggestion.
func (s *Session) TemplateSuggestion() template.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggestion
}

// AdoptedTags returns the memo's adopted tag set.
func (s *Session) AdoptedTags() []domain.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Tag, len(s.adopted))
	copy(out, s.adopted)
	return out
}

// Destination returns the memo's current destination.
func (s *Session) Destination() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destination
}

// Reset clears the draft's suggestion state and dismissed set and cancels
// any pending evaluation. The adopted tag set survives; it belongs to the
// memo, not the draft text.
func (s *Session) Reset() {
	s.mu.Lock()
	s.dismissed = make(map[string]bool)
	s.suggestions = nil
	s.suggestion = template.Empty()
	s.mu.Unlock()

	s.tagSched.Cancel()
	s.templateSched.Cancel()
	s.publish(eventbus.EventTagSuggestionsUpdated, []string{})
	s.publish(eventbus.EventTemplateUpdated, template.Empty())
}

// Close cancels any pending evaluation.
func (s *Session) Close() {
	s.tagSched.Cancel()
	s.templateSched.Cancel()
}

func (s *Session) takeSuggestionLocked(name string) (domain.Tag, bool) {
	for i, tag := range s.suggestions {
		if tag.Name == name {
			s.suggestions = append(s.suggestions[:i], s.suggestions[i+1:]...)
			return tag, true
		}
	}
	return domain.Tag{}, false
}

func (s *Session) resolveTagLocked(name string) domain.Tag {
	if existing, err := s.store.Find(s.ctx, name); err == nil {
		return existing
	}
	for _, preset := range s.store.PresetTags() {
		if preset.Name == name {
			return preset
		}
	}
	return domain.NewTag(name)
}

func (s *Session) publish(name string, payload any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(s.ctx, eventbus.NewEvent(name, payload)); err != nil {
		s.logger.Warn("event publish failed", "event", name, "error", err)
	}
}

func names(tags []domain.Tag) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.Name)
	}
	return out
}

// isWholesaleReplace reports whether next replaces prev outright rather
// than continuing it. Sharing no leading rune is treated as a wholesale
// replacement; incremental edits keep their prefix.
func isWholesaleReplace(prev, next string) bool {
	prev = strings.TrimSpace(prev)
	next = strings.TrimSpace(next)
	if prev == "" || next == "" {
		return false
	}
	prevRunes := []rune(prev)
	nextRunes := []rune(next)
	return prevRunes[0] != nextRunes[0]
}
