package main

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

// DateRecord represents a special date shown on the dashboard
type DateRecord struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Month    int    `json:"month"`
	Day      int    `json:"day"`
	Year     int    `json:"year"`
	IsCustom bool   `json:"is_custom"`
}

// DateInput is the request body for creating or updating a special date.
// Pointer fields let us tell a missing key apart from a zero value.
type DateInput struct {
	Name  *string `json:"name"`
	Month *int    `json:"month"`
	Day   *int    `json:"day"`
	Year  *int    `json:"year"`
}

// api represents the API server with its store and dependencies
type api struct {
	addr   string
	cfg    Config
	dates  *dateStore
	log    *zap.Logger
	index  *template.Template
	static http.Handler
}

// ctxKey is used for context keys to avoid collisions
type ctxKey string

// statusRecorder wraps http.ResponseWriter to capture status codes for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}
