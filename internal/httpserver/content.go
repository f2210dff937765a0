package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guidedbycompassion/website/internal/content"
)

const contentSourceHeader = "X-Content-Source"

// handleContent serves one content slice, falling back to the bundled
// document when the remote store cannot produce one.
func handleContent(resolver *content.Resolver, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "slice")

		slice, err := content.LookupSlice(name)
		if err != nil {
			writeError(w, http.StatusNotFound, "unknown content slice")
			return
		}

		doc, err := resolver.Resolve(r.Context(), slice.Table, slice.RecordKey)
		if err == nil {
			w.Header().Set(contentSourceHeader, "remote")
			writeJSON(w, http.StatusOK, doc)
			return
		}

		if !errors.Is(err, content.ErrNotFound) && !errors.Is(err, content.ErrFetch) {
			log.ErrorContext(r.Context(), "content resolve failed", "slice", name, "error", err)
		}

		fallback, ferr := content.FallbackDocument(name)
		if ferr != nil {
			log.ErrorContext(r.Context(), "content fallback missing", "slice", name, "error", ferr)
			writeError(w, http.StatusInternalServerError, "content unavailable")
			return
		}

		w.Header().Set(contentSourceHeader, "fallback")
		writeJSON(w, http.StatusOK, fallback)
	}
}

// handleBlogList serves the bulk view listing, newest first. There is no
// bundled fallback for the listing, so a terminal remote failure surfaces
// as an error instead of stale copy.
func handleBlogList(resolver *content.Resolver, table, view string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := resolver.ListView(r.Context(), table, view)
		if err != nil {
			writeError(w, http.StatusBadGateway, "blog listing unavailable")
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}
