package models

import "fmt"

// Domain identifies one of the four content areas of the site.
type Domain string

const (
	// DomainHero is the landing-page carousel.
	DomainHero Domain = "hero"
	// DomainPortfolio is the categorized portfolio gallery.
	DomainPortfolio Domain = "portfolio"
	// DomainAmazingWork is the styled showcase mosaic.
	DomainAmazingWork Domain = "amazingWork"
	// DomainTestimonials is the client review list.
	DomainTestimonials Domain = "testimonials"
)

// PortfolioCategory is one of the fixed portfolio partitions.
// The set is closed; renames and user-defined categories are not supported.
type PortfolioCategory string

const (
	CategoryWeddings       PortfolioCategory = "weddings"
	CategoryHomecoming     PortfolioCategory = "homecoming"
	CategoryCasualShoots   PortfolioCategory = "casualShoots"
	CategoryEngagements    PortfolioCategory = "engagements"
	CategoryCinematography PortfolioCategory = "cinematography"
	CategoryThanksCards    PortfolioCategory = "thanksCards"
)

// AllPortfolioCategories returns every portfolio category in display order.
func AllPortfolioCategories() []PortfolioCategory {
	return []PortfolioCategory{
		CategoryWeddings,
		CategoryHomecoming,
		CategoryCasualShoots,
		CategoryEngagements,
		CategoryCinematography,
		CategoryThanksCards,
	}
}

// Valid reports whether c is a member of the fixed category set.
func (c PortfolioCategory) Valid() bool {
	switch c {
	case CategoryWeddings, CategoryHomecoming, CategoryCasualShoots,
		CategoryEngagements, CategoryCinematography, CategoryThanksCards:
		return true
	}
	return false
}

// WorkStyle is one of the fixed showcase partitions.
type WorkStyle string

const (
	StyleFineArt  WorkStyle = "fineArt"
	StyleArtistic WorkStyle = "artistic"
	StyleVintage  WorkStyle = "vintage"
)

// AllWorkStyles returns every showcase style in display order.
func AllWorkStyles() []WorkStyle {
	return []WorkStyle{StyleFineArt, StyleArtistic, StyleVintage}
}

// Valid reports whether s is a member of the fixed style set.
func (s WorkStyle) Valid() bool {
	switch s {
	case StyleFineArt, StyleArtistic, StyleVintage:
		return true
	}
	return false
}

// CategoryRef addresses exactly one ordered sequence within the snapshot.
// The hero and testimonial domains have a single implicit sequence; the
// portfolio and showcase domains additionally carry their partition key.
type CategoryRef struct {
	// Domain selects the content area.
	Domain Domain
	// Portfolio selects the partition when Domain is DomainPortfolio.
	Portfolio PortfolioCategory
	// Style selects the partition when Domain is DomainAmazingWork.
	Style WorkStyle
}

// HeroRef addresses the carousel sequence.
func HeroRef() CategoryRef { return CategoryRef{Domain: DomainHero} }

// PortfolioRef addresses one portfolio category.
func PortfolioRef(c PortfolioCategory) CategoryRef {
	return CategoryRef{Domain: DomainPortfolio, Portfolio: c}
}

// WorkRef addresses one showcase style.
func WorkRef(s WorkStyle) CategoryRef {
	return CategoryRef{Domain: DomainAmazingWork, Style: s}
}

// TestimonialsRef addresses the review sequence.
func TestimonialsRef() CategoryRef { return CategoryRef{Domain: DomainTestimonials} }

// Validate returns an error unless the reference addresses a known sequence.
func (r CategoryRef) Validate() error {
	switch r.Domain {
	case DomainHero, DomainTestimonials:
		return nil
	case DomainPortfolio:
		if !r.Portfolio.Valid() {
			return fmt.Errorf("unknown portfolio category %q", r.Portfolio)
		}
		return nil
	case DomainAmazingWork:
		if !r.Style.Valid() {
			return fmt.Errorf("unknown work style %q", r.Style)
		}
		return nil
	default:
		return fmt.Errorf("unknown domain %q", r.Domain)
	}
}

// ParseCategoryRef resolves the domain and category path segments of the
// admin API into a CategoryRef. The category segment is ignored for the
// hero and testimonial domains, which hold a single sequence.
func ParseCategoryRef(domain, category string) (CategoryRef, error) {
	switch Domain(domain) {
	case DomainHero:
		return HeroRef(), nil
	case DomainTestimonials:
		return TestimonialsRef(), nil
	case DomainPortfolio:
		ref := PortfolioRef(PortfolioCategory(category))
		return ref, ref.Validate()
	case DomainAmazingWork:
		ref := WorkRef(WorkStyle(category))
		return ref, ref.Validate()
	default:
		return CategoryRef{}, fmt.Errorf("unknown domain %q", domain)
	}
}
