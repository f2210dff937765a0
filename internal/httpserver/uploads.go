package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/guidedbycompassion/website/pkg/storage"
)

// Documents (resumes, CVs) top out well under this.
const maxUploadSize = 10 << 20

type uploadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// handleUpload stores a multipart document and returns its public URL. The
// URL, never the file, later travels inside application notifications.
func handleUpload(store storage.Storage, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			writeError(w, http.StatusServiceUnavailable, "uploads not configured")
			return
		}

		if r.ContentLength > maxUploadSize {
			writeError(w, http.StatusRequestEntityTooLarge, storage.ErrFileTooLarge.Error())
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, http.StatusRequestEntityTooLarge, storage.ErrFileTooLarge.Error())
				return
			}
			writeError(w, http.StatusBadRequest, "malformed multipart body")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file field")
			return
		}
		defer file.Close()

		if header.Size > maxUploadSize {
			writeError(w, http.StatusRequestEntityTooLarge, storage.ErrFileTooLarge.Error())
			return
		}

		opts := []storage.Option{}
		if folder := r.FormValue("folder"); folder != "" {
			opts = append(opts, storage.WithFolder(folder))
		}
		if ct := header.Header.Get("Content-Type"); ct != "" {
			opts = append(opts, storage.WithContentType(ct))
		}

		info, err := store.Put(r.Context(), file, header.Size, opts...)
		if err != nil {
			log.ErrorContext(r.Context(), "upload failed", "filename", header.Filename, "error", err)
			writeError(w, http.StatusBadGateway, "upload failed")
			return
		}

		log.InfoContext(r.Context(), "document uploaded", "key", info.Key, "size", info.Size)
		writeJSON(w, http.StatusCreated, uploadResponse{URL: info.URL, Key: info.Key})
	}
}
