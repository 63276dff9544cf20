package httpadapter

import (
	"errors"
	"mime/multipart"
	"net/http"
)

// formFile reads the "file" part of a multipart request, bounded by
// Options.MaxUploadBytes.
func (h *Handler) formFile(w http.ResponseWriter, r *http.Request) (multipart.File, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.opts.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "file too large")
			return nil, "", false
		}
		writeMessage(w, http.StatusBadRequest, "expected multipart form with a file field")
		return nil, "", false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "missing file field")
		return nil, "", false
	}
	return file, header.Filename, true
}

type uploadResp struct {
	URL string `json:"url"`
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, name, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()
	url, err := h.svc.Reports.UploadFile(r.Context(), name, file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResp{URL: url})
}
