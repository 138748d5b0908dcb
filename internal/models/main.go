// Package models defines the core data structures for the site content
// snapshot and the admin identity.
package models

import "slices"

// AdminUser holds the single operator identity used to gate the admin surface.
// Credentials are stored in plaintext; this is an operator convenience toggle,
// not a security boundary.
type AdminUser struct {
	// Username is the login name of the site administrator.
	Username string `json:"username"`
	// Password is the plaintext password of the site administrator.
	Password string `json:"password"`
	// DisplayName is an optional name shown in the admin panel.
	DisplayName string `json:"displayName,omitempty"`
	// Avatar is an optional data URI shown in the admin panel.
	Avatar string `json:"avatar,omitempty"`
}

// HeroImage is one slide of the landing-page carousel.
// Slides render in storage order.
type HeroImage struct {
	// ID is the unique identifier for the slide.
	ID string `json:"id"`
	// Src is the image source, either a URL or a data URI.
	Src string `json:"src"`
	// Alt is the alternative text for the image.
	Alt string `json:"alt"`
	// Title is the headline shown over the slide.
	Title string `json:"title"`
	// Subtitle is the secondary line shown under the title.
	Subtitle string `json:"subtitle"`
}

// ItemID returns the unique identifier of the slide.
func (i HeroImage) ItemID() string { return i.ID }

// PortfolioImage is one entry of a portfolio category gallery.
type PortfolioImage struct {
	// ID is the unique identifier for the entry.
	ID string `json:"id"`
	// Src is the image source, either a URL or a data URI.
	Src string `json:"src"`
	// Alt is the alternative text for the image.
	Alt string `json:"alt"`
	// Title names the shoot, typically the couple.
	Title string `json:"title"`
	// Location is the display label of the shoot.
	Location string `json:"location"`
	// Description is a short free-form caption.
	Description string `json:"description"`
}

// ItemID returns the unique identifier of the entry.
func (i PortfolioImage) ItemID() string { return i.ID }

// AmazingWorkImage is one tile of the showcase mosaic.
type AmazingWorkImage struct {
	// ID is the unique identifier for the tile.
	ID string `json:"id"`
	// Src is the image source, either a URL or a data URI.
	Src string `json:"src"`
	// Alt is the alternative text for the image.
	Alt string `json:"alt"`
	// ClassName is the layout span tag of the tile, one of the Span constants.
	ClassName string `json:"className"`
}

// ItemID returns the unique identifier of the tile.
func (i AmazingWorkImage) ItemID() string { return i.ID }

// Layout span tags accepted for AmazingWorkImage.ClassName. SpanRow1 is the
// default for new tiles.
const (
	SpanRow1     = "row-span-1"
	SpanRow2     = "row-span-2"
	SpanCol2     = "col-span-2"
	SpanCol2Row2 = "col-span-2 row-span-2"
)

// ValidSpan reports whether className is one of the accepted span tags.
func ValidSpan(className string) bool {
	switch className {
	case SpanRow1, SpanRow2, SpanCol2, SpanCol2Row2:
		return true
	}
	return false
}

// Testimonial is one client review. Presentation renders the sequence
// newest-first; storage keeps insertion order.
type Testimonial struct {
	// ID is the unique identifier for the review.
	ID string `json:"id"`
	// Name is the display name of the reviewer.
	Name string `json:"name"`
	// Location is an optional place label.
	Location string `json:"location,omitempty"`
	// Text is the review body.
	Text string `json:"text"`
	// Rating is the star rating, 1 through 5.
	Rating int `json:"rating"`
}

// ItemID returns the unique identifier of the review.
func (t Testimonial) ItemID() string { return t.ID }

// Item is the union of record types held by the content store:
// HeroImage, PortfolioImage, AmazingWorkImage and Testimonial.
type Item interface {
	// ItemID returns the unique identifier of the record.
	ItemID() string
}

// Snapshot is the full aggregate of editable site content. It is the unit of
// persistence: every accepted mutation serializes a complete Snapshot.
type Snapshot struct {
	// HeroImages is the ordered carousel sequence.
	HeroImages []HeroImage `json:"heroImages"`
	// PortfolioImages partitions gallery entries by fixed category.
	PortfolioImages map[PortfolioCategory][]PortfolioImage `json:"portfolioImages"`
	// AmazingWorkImages partitions showcase tiles by fixed style.
	AmazingWorkImages map[WorkStyle][]AmazingWorkImage `json:"amazingWorkImages"`
	// Testimonials is the ordered review sequence.
	Testimonials []Testimonial `json:"testimonials"`
}

// Clone returns a deep copy of the snapshot. Callers may mutate the copy
// freely without affecting the original.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		HeroImages:        slices.Clone(s.HeroImages),
		PortfolioImages:   make(map[PortfolioCategory][]PortfolioImage, len(s.PortfolioImages)),
		AmazingWorkImages: make(map[WorkStyle][]AmazingWorkImage, len(s.AmazingWorkImages)),
		Testimonials:      slices.Clone(s.Testimonials),
	}
	for c, imgs := range s.PortfolioImages {
		out.PortfolioImages[c] = slices.Clone(imgs)
	}
	for st, imgs := range s.AmazingWorkImages {
		out.AmazingWorkImages[st] = slices.Clone(imgs)
	}
	return out
}

// FillDefaults ensures every fixed category key is present, so a snapshot
// loaded from an older persisted layout gains newly introduced categories as
// empty sequences.
func (s *Snapshot) FillDefaults() {
	if s.HeroImages == nil {
		s.HeroImages = []HeroImage{}
	}
	if s.PortfolioImages == nil {
		s.PortfolioImages = make(map[PortfolioCategory][]PortfolioImage, len(AllPortfolioCategories()))
	}
	for _, c := range AllPortfolioCategories() {
		if s.PortfolioImages[c] == nil {
			s.PortfolioImages[c] = []PortfolioImage{}
		}
	}
	if s.AmazingWorkImages == nil {
		s.AmazingWorkImages = make(map[WorkStyle][]AmazingWorkImage, len(AllWorkStyles()))
	}
	for _, st := range AllWorkStyles() {
		if s.AmazingWorkImages[st] == nil {
			s.AmazingWorkImages[st] = []AmazingWorkImage{}
		}
	}
	if s.Testimonials == nil {
		s.Testimonials = []Testimonial{}
	}
}
