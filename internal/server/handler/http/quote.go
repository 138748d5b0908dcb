package http

import (
	"encoding/json"
	"net/http"

	"github.com/modernscene/sitekeeper/internal/quote"
)

// QuoteHandler builds WhatsApp deep links for quote-request submissions.
type QuoteHandler struct {
	// Number is the studio WhatsApp number; empty falls back to the default.
	Number string
}

// Link handles POST /api/quote/link. The response carries the wa.me URL the
// site opens in a new tab; nothing about the hand-off is stored.
func (h *QuoteHandler) Link(w http.ResponseWriter, r *http.Request) {
	var req quote.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"url": req.WhatsAppLink(h.Number),
	})
}
