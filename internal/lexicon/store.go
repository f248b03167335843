// Package lexicon holds the keyword lexicon's mutable half: the
// user-specific, usage-ranked tag set, backed by a TagRepository.
package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jotdown-app/jotdown/internal/lexicon/domain"
)

// presetNames is the fixed, language-local seed tag set, in display order.
var presetNames = []string{"仕事", "買い物", "アイデア", "食事", "健康", "勉強", "旅行", "メモ"}

// Store owns the persisted user tags and exposes the preset seed set.
// Scoring paths only read; the adoption path is the single writer and is
// serialized so usage counts stay atomic under parallel hosts.
type Store struct {
	repo    domain.TagRepository
	logger  *slog.Logger
	now     func() time.Time
	breaker *gobreaker.CircuitBreaker[struct{}]
	presets []domain.Tag

	mu     sync.Mutex
	tags   map[string]*domain.Tag
	loaded bool
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithClock overrides the store's time source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store over the given repository.
func NewStore(repo domain.TagRepository, logger *slog.Logger, opts ...StoreOption) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	presets := make([]domain.Tag, 0, len(presetNames))
	for _, name := range presetNames {
		tag := domain.NewTag(name)
		presets = append(presets, tag)
	}
	s := &Store{
		repo:    repo,
		logger:  logger,
		now:     time.Now,
		presets: presets,
		tags:    make(map[string]*domain.Tag),
		breaker: gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name: "lexicon-save",
		}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PresetTags returns the fixed seed tags in display order.
func (s *Store) PresetTags() []domain.Tag {
	out := make([]domain.Tag, len(s.presets))
	copy(out, s.presets)
	return out
}

// UserTags returns the persisted user tag set. On a read failure the
// preset tags are returned so evaluation can continue.
func (s *Store) UserTags(ctx context.Context) []domain.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		s.logger.Warn("lexicon load failed, falling back to presets", "error", err)
		return s.PresetTags()
	}
	return s.snapshotLocked()
}

// RecordAdoption increments the usage count for the named tag, creating it
// on first adoption, and persists the updated set. On a write failure the
// in-memory state stays authoritative for the session and the error is
// returned so the caller knows the snapshot on disk is stale. If the
// persisted set cannot be loaded the adoption is kept in memory and the
// load error is returned; Save never runs over a baseline that was never
// read, so a transient read failure cannot replace the stored lexicon.
func (s *Store) RecordAdoption(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loadErr := s.ensureLoadedLocked(ctx)
	if loadErr != nil {
		s.logger.Warn("lexicon load failed before adoption, deferring save", "tag", name, "error", loadErr)
	}

	now := s.now()
	tag, ok := s.tags[name]
	if !ok {
		created := domain.NewTag(name)
		tag = &created
		s.tags[name] = tag
	}
	tag.State = domain.TagStateAdopted
	tag.UsageCount++
	tag.LastUsedAt = &now

	if loadErr != nil {
		return fmt.Errorf("load lexicon before adoption: %w", loadErr)
	}

	snapshot := s.snapshotLocked()
	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, s.repo.Save(ctx, snapshot)
	})
	if err != nil {
		s.logger.Warn("lexicon save failed, in-memory state kept", "tag", name, "error", err)
		return fmt.Errorf("persist lexicon: %w", err)
	}
	return nil
}

// Rank returns the user tags ordered by priority score descending, ties
// broken by most recent use, then by name. Stable across calls for
// unchanged input.
func (s *Store) Rank(ctx context.Context) []domain.Tag {
	ranked := s.UserTags(ctx)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.PriorityScore() != b.PriorityScore() {
			return a.PriorityScore() > b.PriorityScore()
		}
		switch {
		case a.LastUsedAt != nil && b.LastUsedAt != nil && !a.LastUsedAt.Equal(*b.LastUsedAt):
			return a.LastUsedAt.After(*b.LastUsedAt)
		case a.LastUsedAt != nil && b.LastUsedAt == nil:
			return true
		case a.LastUsedAt == nil && b.LastUsedAt != nil:
			return false
		}
		return a.Name < b.Name
	})
	return ranked
}

// Find returns the persisted tag with the given name.
func (s *Store) Find(ctx context.Context, name string) (domain.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return domain.Tag{}, fmt.Errorf("load lexicon: %w", err)
	}
	tag, ok := s.tags[name]
	if !ok {
		return domain.Tag{}, domain.ErrTagNotFound
	}
	return *tag, nil
}

func (s *Store) ensureLoadedLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	tags, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	// Adoptions recorded while the baseline was unavailable start from
	// zero, so their counts are deltas to fold into the loaded set.
	pending := s.tags
	s.tags = make(map[string]*domain.Tag, len(tags))
	for i := range tags {
		tag := tags[i]
		s.tags[tag.Name] = &tag
	}
	for name, delta := range pending {
		existing, ok := s.tags[name]
		if !ok {
			s.tags[name] = delta
			continue
		}
		existing.UsageCount += delta.UsageCount
		existing.State = domain.TagStateAdopted
		if delta.LastUsedAt != nil {
			existing.LastUsedAt = delta.LastUsedAt
		}
	}
	s.loaded = true
	return nil
}

func (s *Store) snapshotLocked() []domain.Tag {
	out := make([]domain.Tag, 0, len(s.tags))
	for _, tag := range s.tags {
		out = append(out, *tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
