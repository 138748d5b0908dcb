package models

// Patch is a partial update of one record type. Nil fields keep the stored
// value; set fields replace it.
type Patch interface {
	// isPatch keeps the union closed to the types defined in this package.
	isPatch()
}

// HeroImagePatch is a partial update of a HeroImage.
type HeroImagePatch struct {
	Src      *string `json:"src,omitempty"`
	Alt      *string `json:"alt,omitempty"`
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
}

func (HeroImagePatch) isPatch() {}

// Apply merges the patch into img and returns the updated copy.
func (p HeroImagePatch) Apply(img HeroImage) HeroImage {
	if p.Src != nil {
		img.Src = *p.Src
	}
	if p.Alt != nil {
		img.Alt = *p.Alt
	}
	if p.Title != nil {
		img.Title = *p.Title
	}
	if p.Subtitle != nil {
		img.Subtitle = *p.Subtitle
	}
	return img
}

// PortfolioImagePatch is a partial update of a PortfolioImage.
type PortfolioImagePatch struct {
	Src         *string `json:"src,omitempty"`
	Alt         *string `json:"alt,omitempty"`
	Title       *string `json:"title,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (PortfolioImagePatch) isPatch() {}

// Apply merges the patch into img and returns the updated copy.
func (p PortfolioImagePatch) Apply(img PortfolioImage) PortfolioImage {
	if p.Src != nil {
		img.Src = *p.Src
	}
	if p.Alt != nil {
		img.Alt = *p.Alt
	}
	if p.Title != nil {
		img.Title = *p.Title
	}
	if p.Location != nil {
		img.Location = *p.Location
	}
	if p.Description != nil {
		img.Description = *p.Description
	}
	return img
}

// AmazingWorkImagePatch is a partial update of an AmazingWorkImage.
type AmazingWorkImagePatch struct {
	Src       *string `json:"src,omitempty"`
	Alt       *string `json:"alt,omitempty"`
	ClassName *string `json:"className,omitempty"`
}

func (AmazingWorkImagePatch) isPatch() {}

// Apply merges the patch into img and returns the updated copy.
func (p AmazingWorkImagePatch) Apply(img AmazingWorkImage) AmazingWorkImage {
	if p.Src != nil {
		img.Src = *p.Src
	}
	if p.Alt != nil {
		img.Alt = *p.Alt
	}
	if p.ClassName != nil {
		img.ClassName = *p.ClassName
	}
	return img
}

// TestimonialPatch is a partial update of a Testimonial.
type TestimonialPatch struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Text     *string `json:"text,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
}

func (TestimonialPatch) isPatch() {}

// Apply merges the patch into t and returns the updated copy.
func (p TestimonialPatch) Apply(t Testimonial) Testimonial {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Rating != nil {
		t.Rating = *p.Rating
	}
	return t
}
