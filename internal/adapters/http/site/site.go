// Package site serves the embedded dashboard assets (styles, chart script,
// logo).
package site

import (
	"context"
	"net/http"
)

// Prefix is the URL path the assets are mounted on.
const Prefix = "/static/"

// Register attaches the asset routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle(Prefix, http.StripPrefix(Prefix, http.FileServer(FS())))
}
