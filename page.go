package main

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"os"
	"strings"
)

//go:embed templates/index.html
var templateFiles embed.FS

func parseIndexTemplate() (*template.Template, error) {
	return template.ParseFS(templateFiles, "templates/index.html")
}

// indexData is what the landing page template sees
type indexData struct {
	WeatherAPIKey string
}

// indexHandler renders the dashboard page with the weather key injected
func (a *api) indexHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := a.index.Execute(&buf, indexData{WeatherAPIKey: a.cfg.WeatherAPIKey})
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "Failed to render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// filesOnly hides directories so the file server never lists or redirects them
type filesOnly struct {
	http.FileSystem
}

func (fs filesOnly) Open(name string) (http.File, error) {
	f, err := fs.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}

// staticHandler serves files from dir under /static/
func staticHandler(dir string) http.Handler {
	fs := http.FileServer(filesOnly{http.Dir(dir)})
	return http.StripPrefix("/static", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	}))
}
