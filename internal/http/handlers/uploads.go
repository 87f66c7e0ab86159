package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	multipartOverhead     = 1 << 20
	defaultMaxUploadBytes = 5 << 20
)

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// UploadImage stores the multipart "image" field and responds with the URL to
// put in an issue's image field.
func (a *App) UploadImage(w http.ResponseWriter, r *http.Request) {
	if _, err := a.currentIdentity(r); err != nil {
		a.fail(w, r, err)
		return
	}
	if a.Images == nil {
		a.error(w, http.StatusServiceUnavailable, "uploads_disabled", "image uploads are not configured")
		return
	}

	limit := a.MaxUploadBytes
	if limit <= 0 {
		limit = defaultMaxUploadBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.error(w, http.StatusRequestEntityTooLarge, "too_large", "image is too large")
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("image")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "image field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "failed to read image")
		return
	}
	if int64(len(data)) > limit {
		a.error(w, http.StatusRequestEntityTooLarge, "too_large", "image is too large")
		return
	}
	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[strings.SplitN(contentType, ";", 2)[0]]
	if !ok {
		a.error(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "file is not a supported image")
		return
	}

	url, err := a.Images.Put(r.Context(), "issues/"+uuid.NewString()+ext, contentType, data)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"url": url})
}
