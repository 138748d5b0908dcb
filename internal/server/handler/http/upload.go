package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"github.com/modernscene/sitekeeper/internal/models"
	"github.com/modernscene/sitekeeper/internal/upload"
)

// maxUploadMemory bounds how much of a multipart body is buffered in memory.
const maxUploadMemory = 8 << 20

// UploadHandler handles multipart image uploads for content categories and
// the admin avatar.
type UploadHandler struct {
	// Content receives encoded content images.
	Content ContentService
	// Gate receives the encoded avatar.
	Gate AuthGate
	// Log records per-request outcomes.
	Log *zap.Logger
}

// multipartFile adapts a multipart.FileHeader to the pipeline's File.
type multipartFile struct {
	header *multipart.FileHeader
}

func (f multipartFile) Name() string        { return f.header.Filename }
func (f multipartFile) ContentType() string { return f.header.Header.Get("Content-Type") }
func (f multipartFile) Size() int64         { return f.header.Size }
func (f multipartFile) Open() (io.ReadCloser, error) {
	return f.header.Open()
}

// uploadResult is the per-file JSON reported back to the admin panel.
type uploadResult struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Images handles POST /api/upload/{domain}/{category}. Each accepted file is
// encoded and appended to the addressed category; failures are reported per
// file without affecting siblings.
func (h *UploadHandler) Images(w http.ResponseWriter, r *http.Request) {
	ref, err := categoryRef(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if ref.Domain == models.DomainTestimonials {
		http.Error(w, "testimonials do not accept image uploads", http.StatusBadRequest)
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "invalid multipart request", http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		http.Error(w, "no files submitted", http.StatusBadRequest)
		return
	}
	files := make([]upload.File, len(headers))
	for i, hdr := range headers {
		files[i] = multipartFile{header: hdr}
	}

	pipe := upload.NewPipeline(upload.ContentLimits(), func(ctx context.Context, name, dataURI string) error {
		_, err := h.Content.AddItem(ctx, ref, newUploadItem(ref, name, dataURI))
		return err
	}, h.Log)

	results := pipe.Process(r.Context(), files)
	out := make([]uploadResult, len(results))
	for i, res := range results {
		out[i] = uploadResult{Name: res.Name, OK: res.Err == nil}
		if res.Err != nil {
			out[i].Error = res.Err.Error()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// newUploadItem builds the domain record for a freshly encoded image. The
// operator fills titles and captions afterwards through the update operation.
func newUploadItem(ref models.CategoryRef, name, dataURI string) models.Item {
	switch ref.Domain {
	case models.DomainHero:
		return models.HeroImage{Src: dataURI, Alt: name}
	case models.DomainPortfolio:
		return models.PortfolioImage{Src: dataURI, Alt: name}
	case models.DomainAmazingWork:
		return models.AmazingWorkImage{Src: dataURI, Alt: name, ClassName: models.SpanRow1}
	default:
		// Testimonials carry no images; the router never maps uploads here.
		return models.Testimonial{}
	}
}

// Avatar handles POST /api/upload/avatar. A single file is accepted under the
// stricter avatar gate and stored on the admin identity.
func (h *UploadHandler) Avatar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "invalid multipart request", http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["avatar"]
	if len(headers) == 0 {
		http.Error(w, "no file submitted", http.StatusBadRequest)
		return
	}

	// Only the first file counts for an avatar.
	file := multipartFile{header: headers[0]}
	dataURI, err := upload.ProcessAvatar(file)
	switch {
	case errors.Is(err, upload.ErrUnsupportedType), errors.Is(err, upload.ErrTooLarge):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.Log.Warn("failed to process avatar", zap.String("file", file.Name()), zap.Error(err))
		http.Error(w, "failed to process avatar", http.StatusInternalServerError)
		return
	}

	if err := h.Gate.UpdateAvatar(r.Context(), dataURI); err != nil {
		http.Error(w, "failed to store avatar", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
