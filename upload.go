package main

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrNoPhoto      = errors.New("no photo file provided")
	ErrNoFilename   = errors.New("no file selected")
	ErrBadExtension = errors.New("invalid file type")
	ErrTooLarge     = errors.New("photo too large")
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// allowedFile reports whether the text after the last dot is an image extension
func allowedFile(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[i+1:])]
}

// checkPhoto reads the "photo" part of a multipart request. The file itself is
// never stored.
func (a *api) checkPhoto(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(a.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return ErrTooLarge
		case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary):
			return ErrNoPhoto
		}
		return err
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["photo"]
	if len(files) == 0 {
		// a part sent with an empty filename is parsed as a plain value
		if _, ok := r.MultipartForm.Value["photo"]; ok {
			return ErrNoFilename
		}
		return ErrNoPhoto
	}
	if files[0].Filename == "" {
		return ErrNoFilename
	}
	if !allowedFile(files[0].Filename) {
		return ErrBadExtension
	}
	return nil
}

func (a *api) uploadPhotoHandler(w http.ResponseWriter, r *http.Request) {
	err := a.checkPhoto(w, r)
	switch {
	case errors.Is(err, ErrNoPhoto):
		a.writeError(w, r, http.StatusBadRequest, "No photo file provided", nil)
		return
	case errors.Is(err, ErrNoFilename):
		a.writeError(w, r, http.StatusBadRequest, "No file selected", nil)
		return
	case errors.Is(err, ErrBadExtension):
		a.writeError(w, r, http.StatusBadRequest, "Invalid file type. Please upload an image.", nil)
		return
	case errors.Is(err, ErrTooLarge):
		a.writeError(w, r, http.StatusRequestEntityTooLarge, "Photo too large", err)
		return
	case err != nil:
		a.writeError(w, r, http.StatusInternalServerError, "Failed to upload photo", err)
		return
	}

	a.writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"message": "Photo uploaded successfully",
	})
}
