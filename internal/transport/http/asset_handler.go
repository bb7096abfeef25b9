package http

import (
	"log"
	"net/http"
	"os"
	"sync"
	"time"
)

// placeholderSVG stands in for the DIN 8580 overview diagram when the
// configured image is missing. The diagram is cosmetic; serving it can
// never become a hard failure.
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="600">
  <rect width="800" height="600" fill="#ffffff"/>
  <text x="400" y="300" text-anchor="middle" font-family="sans-serif" font-size="28" fill="#64748b">DIN 8580 Übersichtsdiagramm</text>
</svg>
`

// AssetHandler serves the reference diagram. If the file cannot be read it
// serves the placeholder and re-probes the path once after retryDelay, so
// a diagram dropped in later is picked up without a restart.
type AssetHandler struct {
	path       string
	retryDelay time.Duration

	mu       sync.RWMutex
	cached   []byte
	retrying bool
}

func NewAssetHandler(path string, retryDelay time.Duration) *AssetHandler {
	return &AssetHandler{path: path, retryDelay: retryDelay}
}

// ServeDiagram writes the overview image, or the placeholder on any read
// failure.
func (h *AssetHandler) ServeDiagram(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	cached := h.cached
	h.mu.RUnlock()

	if cached == nil {
		data, err := os.ReadFile(h.path)
		if err != nil {
			h.scheduleRetry()
			w.Header().Set("Content-Type", "image/svg+xml")
			w.Write([]byte(placeholderSVG))
			return
		}
		h.mu.Lock()
		h.cached = data
		h.mu.Unlock()
		cached = data
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(cached)
}

func (h *AssetHandler) scheduleRetry() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.retrying {
		return
	}
	h.retrying = true
	time.AfterFunc(h.retryDelay, func() {
		data, err := os.ReadFile(h.path)
		h.mu.Lock()
		defer h.mu.Unlock()
		h.retrying = false
		if err != nil {
			log.Printf("diagram still unavailable at %s: %v", h.path, err)
			return
		}
		h.cached = data
	})
}
