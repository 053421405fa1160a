package http

import (
	_ "embed"
	"net/http"
)

//go:embed web/index.html
var indexPage []byte

// index serves the embedded single-page login client. The page is compiled
// into the binary so the server has no runtime file dependencies.
func (h *Handler) index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexPage)
}
