// Package store holds the single source of truth for editable site content,
// synchronizing every accepted mutation to durable key-value storage.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/modernscene/sitekeeper/internal/kvstore"
	"github.com/modernscene/sitekeeper/internal/models"
)

var (
	// ErrItemType is returned when an item does not match the domain of the
	// addressed category.
	ErrItemType = errors.New("item type does not match category domain")
	// ErrPatchType is returned when a patch does not match the domain of the
	// addressed category.
	ErrPatchType = errors.New("patch type does not match category domain")
	// ErrSpanTag is returned when a showcase tile carries an unknown layout
	// span tag.
	ErrSpanTag = errors.New("unknown layout span tag")
)

// normalizeSpan defaults an empty tile span and rejects unknown ones.
func normalizeSpan(img models.AmazingWorkImage) (models.AmazingWorkImage, error) {
	if img.ClassName == "" {
		img.ClassName = models.SpanRow1
		return img, nil
	}
	if !models.ValidSpan(img.ClassName) {
		return img, fmt.Errorf("%w: %q", ErrSpanTag, img.ClassName)
	}
	return img, nil
}

// ContentStore owns the in-memory content snapshot. All mutations run to
// completion under one lock and persist the full snapshot before returning,
// so callers never observe a half-applied edit.
type ContentStore struct {
	kv  kvstore.Store
	log *zap.Logger

	mu   sync.Mutex
	snap models.Snapshot

	// newID yields item identifiers; replaced in tests for determinism.
	newID func() string
}

// New constructs a ContentStore over the given storage backend. The store
// starts on the built-in default content; call Hydrate to load persisted
// state.
func New(kv kvstore.Store, log *zap.Logger) *ContentStore {
	return &ContentStore{
		kv:    kv,
		log:   log,
		snap:  models.DefaultSnapshot(),
		newID: uuid.NewString,
	}
}

// Hydrate loads the persisted snapshot. An absent or malformed value falls
// back to the built-in default for that key only; hydration never fails the
// caller.
func (s *ContentStore) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok, err := s.kv.Get(ctx, kvstore.KeySnapshot)
	if err != nil {
		s.log.Error("failed to read persisted content, using defaults", zap.Error(err))
		s.snap = models.DefaultSnapshot()
		return
	}
	if !ok {
		s.snap = models.DefaultSnapshot()
		return
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		s.log.Error("malformed persisted content, using defaults", zap.Error(err))
		s.snap = models.DefaultSnapshot()
		return
	}
	snap.FillDefaults()
	s.snap = snap
}

// Snapshot returns a deep copy of the current content snapshot.
func (s *ContentStore) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// ReplaceCategory replaces the entire ordered sequence addressed by ref and
// persists the resulting snapshot. Every item must match the domain's record
// type.
func (s *ContentStore) ReplaceCategory(ctx context.Context, ref models.CategoryRef, items []models.Item) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	switch ref.Domain {
	case models.DomainHero:
		seq := make([]models.HeroImage, 0, len(items))
		for _, it := range items {
			img, ok := it.(models.HeroImage)
			if !ok {
				return ErrItemType
			}
			seq = append(seq, img)
		}
		next.HeroImages = seq
	case models.DomainPortfolio:
		seq := make([]models.PortfolioImage, 0, len(items))
		for _, it := range items {
			img, ok := it.(models.PortfolioImage)
			if !ok {
				return ErrItemType
			}
			seq = append(seq, img)
		}
		next.PortfolioImages[ref.Portfolio] = seq
	case models.DomainAmazingWork:
		seq := make([]models.AmazingWorkImage, 0, len(items))
		for _, it := range items {
			img, ok := it.(models.AmazingWorkImage)
			if !ok {
				return ErrItemType
			}
			img, err := normalizeSpan(img)
			if err != nil {
				return err
			}
			seq = append(seq, img)
		}
		next.AmazingWorkImages[ref.Style] = seq
	case models.DomainTestimonials:
		seq := make([]models.Testimonial, 0, len(items))
		for _, it := range items {
			tst, ok := it.(models.Testimonial)
			if !ok {
				return ErrItemType
			}
			seq = append(seq, tst)
		}
		next.Testimonials = seq
	}

	return s.commit(ctx, next)
}

// AddItem assigns a fresh unique id to item, appends it to the sequence
// addressed by ref and persists. It returns the stored item.
func (s *ContentStore) AddItem(ctx context.Context, ref models.CategoryRef, item models.Item) (models.Item, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	next := s.snap.Clone()
	var stored models.Item

	switch ref.Domain {
	case models.DomainHero:
		img, ok := item.(models.HeroImage)
		if !ok {
			return nil, ErrItemType
		}
		img.ID = id
		next.HeroImages = append(next.HeroImages, img)
		stored = img
	case models.DomainPortfolio:
		img, ok := item.(models.PortfolioImage)
		if !ok {
			return nil, ErrItemType
		}
		img.ID = id
		next.PortfolioImages[ref.Portfolio] = append(next.PortfolioImages[ref.Portfolio], img)
		stored = img
	case models.DomainAmazingWork:
		img, ok := item.(models.AmazingWorkImage)
		if !ok {
			return nil, ErrItemType
		}
		img, err := normalizeSpan(img)
		if err != nil {
			return nil, err
		}
		img.ID = id
		next.AmazingWorkImages[ref.Style] = append(next.AmazingWorkImages[ref.Style], img)
		stored = img
	case models.DomainTestimonials:
		tst, ok := item.(models.Testimonial)
		if !ok {
			return nil, ErrItemType
		}
		tst.ID = id
		next.Testimonials = append(next.Testimonials, tst)
		stored = tst
	}

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return stored, nil
}

// UpdateItem merges patch into the record with the given id. A missing id is
// a benign no-op: found is false and nothing is persisted.
func (s *ContentStore) UpdateItem(ctx context.Context, ref models.CategoryRef, id string, patch models.Patch) (found bool, err error) {
	if err := ref.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	switch ref.Domain {
	case models.DomainHero:
		p, ok := patch.(models.HeroImagePatch)
		if !ok {
			return false, ErrPatchType
		}
		for i, img := range next.HeroImages {
			if img.ID == id {
				next.HeroImages[i] = p.Apply(img)
				found = true
				break
			}
		}
	case models.DomainPortfolio:
		p, ok := patch.(models.PortfolioImagePatch)
		if !ok {
			return false, ErrPatchType
		}
		seq := next.PortfolioImages[ref.Portfolio]
		for i, img := range seq {
			if img.ID == id {
				seq[i] = p.Apply(img)
				found = true
				break
			}
		}
	case models.DomainAmazingWork:
		p, ok := patch.(models.AmazingWorkImagePatch)
		if !ok {
			return false, ErrPatchType
		}
		if p.ClassName != nil && !models.ValidSpan(*p.ClassName) {
			return false, fmt.Errorf("%w: %q", ErrSpanTag, *p.ClassName)
		}
		seq := next.AmazingWorkImages[ref.Style]
		for i, img := range seq {
			if img.ID == id {
				seq[i] = p.Apply(img)
				found = true
				break
			}
		}
	case models.DomainTestimonials:
		p, ok := patch.(models.TestimonialPatch)
		if !ok {
			return false, ErrPatchType
		}
		for i, tst := range next.Testimonials {
			if tst.ID == id {
				next.Testimonials[i] = p.Apply(tst)
				found = true
				break
			}
		}
	}

	if !found {
		return false, nil
	}
	if err := s.commit(ctx, next); err != nil {
		return true, err
	}
	return true, nil
}

// RemoveItem filters the record with the given id out of the sequence
// addressed by ref. Removal is idempotent: a missing id still persists and
// succeeds.
func (s *ContentStore) RemoveItem(ctx context.Context, ref models.CategoryRef, id string) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	switch ref.Domain {
	case models.DomainHero:
		seq := next.HeroImages[:0]
		for _, img := range next.HeroImages {
			if img.ID != id {
				seq = append(seq, img)
			}
		}
		next.HeroImages = seq
	case models.DomainPortfolio:
		full := next.PortfolioImages[ref.Portfolio]
		seq := full[:0]
		for _, img := range full {
			if img.ID != id {
				seq = append(seq, img)
			}
		}
		next.PortfolioImages[ref.Portfolio] = seq
	case models.DomainAmazingWork:
		full := next.AmazingWorkImages[ref.Style]
		seq := full[:0]
		for _, img := range full {
			if img.ID != id {
				seq = append(seq, img)
			}
		}
		next.AmazingWorkImages[ref.Style] = seq
	case models.DomainTestimonials:
		seq := next.Testimonials[:0]
		for _, tst := range next.Testimonials {
			if tst.ID != id {
				seq = append(seq, tst)
			}
		}
		next.Testimonials = seq
	}

	return s.commit(ctx, next)
}

// commit persists next and swaps it in as the current snapshot. The in-memory
// state only advances when the write succeeds. Callers must hold mu.
func (s *ContentStore) commit(ctx context.Context, next models.Snapshot) error {
	buf, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.kv.Set(ctx, kvstore.KeySnapshot, string(buf)); err != nil {
		s.log.Error("failed to persist snapshot", zap.Error(err))
		return fmt.Errorf("persist snapshot: %w", err)
	}
	s.snap = next
	return nil
}
