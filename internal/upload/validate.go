package upload

import (
	"errors"
	"fmt"
)

// Size ceilings, boundary inclusive: a file of exactly the ceiling passes.
const (
	// MaxImageSize is the ceiling for general content images.
	MaxImageSize = 5 * 1024 * 1024
	// MaxAvatarSize is the ceiling for avatar images.
	MaxAvatarSize = 2 * 1024 * 1024
)

var (
	// ErrUnsupportedType rejects a file whose MIME type is outside the
	// accepted set.
	ErrUnsupportedType = errors.New("unsupported image type")
	// ErrTooLarge rejects a file whose declared size exceeds the ceiling.
	ErrTooLarge = errors.New("image file too large")
)

// Limits is the validation gate applied to a file before it is read.
type Limits struct {
	// MaxSize is the inclusive byte ceiling.
	MaxSize int64
	// Types is the accepted MIME type set.
	Types map[string]bool
}

// ContentLimits returns the gate for general content images:
// JPEG, PNG, WebP or GIF up to 5 MB.
func ContentLimits() Limits {
	return Limits{
		MaxSize: MaxImageSize,
		Types: map[string]bool{
			"image/jpeg": true,
			"image/jpg":  true,
			"image/png":  true,
			"image/webp": true,
			"image/gif":  true,
		},
	}
}

// AvatarLimits returns the gate for avatar images:
// JPEG, PNG or WebP up to 2 MB. GIF is excluded.
func AvatarLimits() Limits {
	return Limits{
		MaxSize: MaxAvatarSize,
		Types: map[string]bool{
			"image/jpeg": true,
			"image/jpg":  true,
			"image/png":  true,
			"image/webp": true,
		},
	}
}

// Validate checks f against the gate. Type is checked before size so the
// caller can report the more specific failure.
func (l Limits) Validate(f File) error {
	if !l.Types[f.ContentType()] {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, f.ContentType())
	}
	if f.Size() > l.MaxSize {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrTooLarge, f.Size(), l.MaxSize)
	}
	return nil
}
