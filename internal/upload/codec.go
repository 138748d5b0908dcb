// Package upload converts operator-supplied image files into self-contained
// data URIs, validating type and size before any bytes are read and bounding
// how many files are in flight at once.
package upload

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// File is the minimal view of an uploaded file the pipeline needs. The
// declared content type and size are checked before Open is ever called.
type File interface {
	// Name is the original file name, used in per-file reporting.
	Name() string
	// ContentType is the declared MIME type.
	ContentType() string
	// Size is the declared byte count.
	Size() int64
	// Open returns a reader over the file bytes.
	Open() (io.ReadCloser, error)
}

// EncodeDataURI streams r into a data URI carrying the given MIME type and
// the base64-encoded payload.
func EncodeDataURI(contentType string, r io.Reader) (string, error) {
	var b strings.Builder
	b.WriteString("data:")
	b.WriteString(contentType)
	b.WriteString(";base64,")

	enc := base64.NewEncoder(base64.StdEncoding, &b)
	if _, err := io.Copy(enc, r); err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode file: %w", err)
	}
	return b.String(), nil
}

// EncodeFile opens f and encodes its full contents as a data URI.
func EncodeFile(f File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open %q: %w", f.Name(), err)
	}
	defer rc.Close()
	return EncodeDataURI(f.ContentType(), rc)
}
