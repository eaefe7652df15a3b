package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// writeJSON encodes v as the response body with the given status
func (a *api) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Error("encode response",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err),
		)
	}
}

// writeError logs err and answers with {"error": msg}
func (a *api) writeError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	if err != nil {
		a.log.Error(msg,
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err),
		)
	}
	a.writeJSON(w, r, status, map[string]string{"error": msg})
}

func (a *api) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *api) listDatesHandler(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, r, http.StatusOK, a.dates.List())
}

func (a *api) createDateHandler(w http.ResponseWriter, r *http.Request) {
	var in DateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "Failed to add date", err)
		return
	}

	d, err := a.dates.Add(in)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "Failed to add date", err)
		return
	}

	a.writeJSON(w, r, http.StatusOK, map[string]any{"success": true, "date": d})
}

func (a *api) updateDateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := a.dateID(w, r)
	if !ok {
		return
	}

	// On a bad body the zero input still lets the store report an unknown id first.
	var in DateInput
	decodeErr := json.NewDecoder(r.Body).Decode(&in)
	if decodeErr != nil {
		in = DateInput{}
	}

	d, err := a.dates.Update(id, in)
	switch {
	case errors.Is(err, ErrNotFound):
		a.writeError(w, r, http.StatusNotFound, "Date not found", nil)
		return
	case decodeErr != nil:
		a.writeError(w, r, http.StatusInternalServerError, "Failed to update date", decodeErr)
		return
	case err != nil:
		a.writeError(w, r, http.StatusInternalServerError, "Failed to update date", err)
		return
	}

	a.writeJSON(w, r, http.StatusOK, map[string]any{"success": true, "date": d})
}

func (a *api) deleteDateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := a.dateID(w, r)
	if !ok {
		return
	}

	err := a.dates.Delete(id)
	switch {
	case errors.Is(err, ErrNotFound):
		a.writeError(w, r, http.StatusNotFound, "Date not found", nil)
		return
	case errors.Is(err, ErrForbidden):
		a.writeError(w, r, http.StatusBadRequest, "Cannot delete default dates", nil)
		return
	case err != nil:
		a.writeError(w, r, http.StatusInternalServerError, "Failed to delete date", err)
		return
	}

	a.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

// dateID parses the {id} path value. Anything that is not an integer is an
// unknown route.
func (a *api) dateID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}
