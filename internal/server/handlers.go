package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/wristscale/pkg/errors"
	wio "github.com/matzehuels/wristscale/pkg/io"
	"github.com/matzehuels/wristscale/pkg/layout"
	"github.com/matzehuels/wristscale/pkg/pipeline"
	"github.com/matzehuels/wristscale/pkg/prefs"
	"github.com/matzehuels/wristscale/pkg/render/styles"
)

// Response headers describing the dataset a response was built from.
const (
	HeaderGeneration    = "X-Dataset-Generation"
	HeaderAssetFailures = "X-Asset-Failures"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ThemeBody is the request and response body of the theme endpoints.
type ThemeBody struct {
	Theme string `json:"theme"`
}

// AttemptSummary reports one source attempt of a reload.
type AttemptSummary struct {
	Source   string  `json:"source"`
	Valid    int     `json:"valid"`
	Dropped  int     `json:"dropped"`
	Duration float64 `json:"duration_ms"`
	Error    string  `json:"error,omitempty"`
}

// ReloadResponse is the body returned by POST /api/reload.
type ReloadResponse struct {
	Generation   string           `json:"generation"`
	Source       string           `json:"source"`
	Records      int              `json:"records"`
	UsedFallback bool             `json:"used_fallback"`
	Attempts     []AttemptSummary `json:"attempts"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	ds := s.runner.Set.Load()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(HeaderGeneration, ds.ID.String())
	if err := wio.WriteJSON(ds, w); err != nil {
		s.logger.Error("write items", "err", err)
	}
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts.Formats = []string{pipeline.FormatJSON}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(HeaderGeneration, result.DatasetID.String())
	_, _ = w.Write(result.Artifacts[pipeline.FormatJSON])
}

func (s *Server) handleRender(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := s.options(r)
		if err != nil {
			s.writeError(w, err)
			return
		}
		opts.Formats = []string{format}

		result, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			s.writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set(HeaderGeneration, result.DatasetID.String())
		if n := len(result.AssetFailures); n > 0 {
			w.Header().Set(HeaderAssetFailures, strconv.Itoa(n))
		}
		_, _ = w.Write(result.Artifacts[format])
	}
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	res := s.Reload(r.Context())

	resp := ReloadResponse{
		Generation:   res.Dataset.ID.String(),
		Source:       res.Dataset.Source,
		Records:      res.Dataset.Len(),
		UsedFallback: res.UsedFallback,
		Attempts:     make([]AttemptSummary, 0, len(res.Attempts)),
	}
	for _, a := range res.Attempts {
		sum := AttemptSummary{
			Source:   a.Source,
			Valid:    a.Valid,
			Dropped:  a.Dropped,
			Duration: float64(a.Duration.Microseconds()) / 1000,
		}
		if a.Err != nil {
			sum.Error = a.Err.Error()
		}
		resp.Attempts = append(resp.Attempts, sum)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ThemeBody{Theme: s.Theme()})
}

func (s *Server) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	var body ThemeBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10)).Decode(&body); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode theme body"))
		return
	}
	name, err := prefs.SetTheme(r.Context(), s.prefs, body.Theme)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.setTheme(name)
	s.logger.Info("theme updated", "theme", name)
	writeJSON(w, http.StatusOK, ThemeBody{Theme: name})
}

func (s *Server) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("theme")
	if name == "" {
		name = s.Theme()
	}
	t, err := styles.Lookup(name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = io.WriteString(w, t.CSS())
}

// options builds pipeline options from the server defaults and the query.
// The render theme falls back to the server's active theme.
func (s *Server) options(r *http.Request) (pipeline.Options, error) {
	d := s.defaults
	opts := pipeline.Options{
		Mode:       d.Mode,
		Width:      d.Width,
		Height:     d.Height,
		ViewportMm: d.ViewportMm,
		EmbedFont:  d.EmbedFont,
		Scale:      d.Scale,
		Logger:     d.Logger,
	}
	q := r.URL.Query()

	opts.Left = q.Get("left")
	opts.Right = q.Get("right")
	opts.Swap = parseBool(q.Get("swap"))

	if v := q.Get("mode"); v != "" {
		mode, err := layout.ParseMode(v)
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}

	for _, p := range []struct {
		key string
		dst *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"viewport", &opts.ViewportMm},
	} {
		v := q.Get(p.key)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || !(f > 0) {
			return opts, errors.New(errors.ErrCodeInvalidCanvas, "%s must be a positive number, got %q", p.key, v)
		}
		*p.dst = f
	}

	opts.Theme = q.Get("theme")
	if opts.Theme == "" {
		opts.Theme = s.Theme()
	}
	return opts, nil
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// writeError maps error codes to HTTP status codes. Internal errors are
// masked.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: string(errors.GetCode(err)), Message: errors.UserMessage(err)})
	case errors.Is(err, errors.ErrCodeNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Code: string(errors.ErrCodeNotFound), Message: errors.UserMessage(err)})
	default:
		s.logger.Error("request failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Code: string(errors.ErrCodeInternal), Message: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}
