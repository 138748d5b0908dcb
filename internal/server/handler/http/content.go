package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/modernscene/sitekeeper/internal/models"
	"github.com/modernscene/sitekeeper/internal/store"
)

// ContentService defines the content store operations required by the HTTP
// handlers.
type ContentService interface {
	// Snapshot returns a copy of the current content snapshot.
	Snapshot() models.Snapshot
	// ReplaceCategory replaces one ordered sequence wholesale.
	ReplaceCategory(ctx context.Context, ref models.CategoryRef, items []models.Item) error
	// AddItem appends an item with a fresh id and returns the stored record.
	AddItem(ctx context.Context, ref models.CategoryRef, item models.Item) (models.Item, error)
	// UpdateItem merges a patch into the record with the given id.
	UpdateItem(ctx context.Context, ref models.CategoryRef, id string, patch models.Patch) (bool, error)
	// RemoveItem filters out the record with the given id.
	RemoveItem(ctx context.Context, ref models.CategoryRef, id string) error
}

// ContentHandler handles HTTP requests for reading and mutating site content.
type ContentHandler struct {
	// Content performs the underlying store operations.
	Content ContentService
}

// GetSnapshot handles GET /api/content, returning the full content snapshot.
func (h *ContentHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Content.Snapshot())
}

// categoryRef resolves the domain and category path segments of the request.
func categoryRef(r *http.Request) (models.CategoryRef, error) {
	return models.ParseCategoryRef(chi.URLParam(r, "domain"), chi.URLParam(r, "category"))
}

// decodeItems parses a JSON array of records matching the domain of ref.
func decodeItems(ref models.CategoryRef, body io.Reader) ([]models.Item, error) {
	switch ref.Domain {
	case models.DomainHero:
		var seq []models.HeroImage
		if err := json.NewDecoder(body).Decode(&seq); err != nil {
			return nil, err
		}
		items := make([]models.Item, len(seq))
		for i, v := range seq {
			items[i] = v
		}
		return items, nil
	case models.DomainPortfolio:
		var seq []models.PortfolioImage
		if err := json.NewDecoder(body).Decode(&seq); err != nil {
			return nil, err
		}
		items := make([]models.Item, len(seq))
		for i, v := range seq {
			items[i] = v
		}
		return items, nil
	case models.DomainAmazingWork:
		var seq []models.AmazingWorkImage
		if err := json.NewDecoder(body).Decode(&seq); err != nil {
			return nil, err
		}
		items := make([]models.Item, len(seq))
		for i, v := range seq {
			items[i] = v
		}
		return items, nil
	case models.DomainTestimonials:
		var seq []models.Testimonial
		if err := json.NewDecoder(body).Decode(&seq); err != nil {
			return nil, err
		}
		items := make([]models.Item, len(seq))
		for i, v := range seq {
			items[i] = v
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unknown domain %q", ref.Domain)
	}
}

// decodeItem parses a single JSON record matching the domain of ref.
func decodeItem(ref models.CategoryRef, body io.Reader) (models.Item, error) {
	switch ref.Domain {
	case models.DomainHero:
		var v models.HeroImage
		err := json.NewDecoder(body).Decode(&v)
		return v, err
	case models.DomainPortfolio:
		var v models.PortfolioImage
		err := json.NewDecoder(body).Decode(&v)
		return v, err
	case models.DomainAmazingWork:
		var v models.AmazingWorkImage
		err := json.NewDecoder(body).Decode(&v)
		return v, err
	case models.DomainTestimonials:
		var v models.Testimonial
		err := json.NewDecoder(body).Decode(&v)
		return v, err
	default:
		return nil, fmt.Errorf("unknown domain %q", ref.Domain)
	}
}

// decodePatch parses a JSON patch matching the domain of ref.
func decodePatch(ref models.CategoryRef, body io.Reader) (models.Patch, error) {
	switch ref.Domain {
	case models.DomainHero:
		var p models.HeroImagePatch
		err := json.NewDecoder(body).Decode(&p)
		return p, err
	case models.DomainPortfolio:
		var p models.PortfolioImagePatch
		err := json.NewDecoder(body).Decode(&p)
		return p, err
	case models.DomainAmazingWork:
		var p models.AmazingWorkImagePatch
		err := json.NewDecoder(body).Decode(&p)
		return p, err
	case models.DomainTestimonials:
		var p models.TestimonialPatch
		err := json.NewDecoder(body).Decode(&p)
		return p, err
	default:
		return nil, fmt.Errorf("unknown domain %q", ref.Domain)
	}
}

// ReplaceCategory handles PUT /api/content/{domain}/{category}, replacing the
// addressed sequence wholesale.
func (h *ContentHandler) ReplaceCategory(w http.ResponseWriter, r *http.Request) {
	ref, err := categoryRef(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	items, err := decodeItems(ref, r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Content.ReplaceCategory(r.Context(), ref, items); err != nil {
		writeStoreError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// AddItem handles POST /api/content/{domain}/{category}/items. The id field
// of the submitted record is ignored; the store assigns a fresh one.
func (h *ContentHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ref, err := categoryRef(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	item, err := decodeItem(ref, r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	stored, err := h.Content.AddItem(r.Context(), ref, item)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(stored)
}

// UpdateItem handles PATCH /api/content/{domain}/{category}/items/{id}.
// A missing id is reported as updated=false, not as an error.
func (h *ContentHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ref, err := categoryRef(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	patch, err := decodePatch(ref, r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	found, err := h.Content.UpdateItem(r.Context(), ref, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"updated": found})
}

// RemoveItem handles DELETE /api/content/{domain}/{category}/items/{id}.
// Removal is idempotent and always succeeds for a well-formed reference.
func (h *ContentHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ref, err := categoryRef(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err := h.Content.RemoveItem(r.Context(), ref, chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeStoreError maps store failures to status codes: type mismatches and
// bad span tags are client errors, anything else is a persistence failure.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrItemType) || errors.Is(err, store.ErrPatchType) || errors.Is(err, store.ErrSpanTag) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "failed to persist content", http.StatusInternalServerError)
}
