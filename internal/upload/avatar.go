package upload

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/nfnt/resize"
)

// maxAvatarEdge bounds the longer edge of a stored avatar.
const maxAvatarEdge = 512

// ProcessAvatar validates f against the avatar gate and returns a data URI
// for it. Decodable images are downscaled to fit maxAvatarEdge and re-encoded
// as JPEG; formats the decoder does not know (such as WebP) are stored as
// uploaded.
func ProcessAvatar(f File) (string, error) {
	if err := AvatarLimits().Validate(f); err != nil {
		return "", err
	}

	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open %q: %w", f.Name(), err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", f.Name(), err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return EncodeDataURI(f.ContentType(), bytes.NewReader(raw))
	}

	thumb := resize.Thumbnail(maxAvatarEdge, maxAvatarEdge, img, resize.Lanczos3)

	var b strings.Builder
	b.WriteString("data:image/jpeg;base64,")
	enc := base64.NewEncoder(base64.StdEncoding, &b)
	if err := jpeg.Encode(enc, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode avatar: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode avatar: %w", err)
	}
	return b.String(), nil
}
