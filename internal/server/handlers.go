package server

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/goliatone/go-dynaform/pkg/form"
	"github.com/goliatone/go-dynaform/pkg/render"
	"github.com/goliatone/go-dynaform/pkg/schema"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.form.Snapshot()

	switch snap.Status {
	case form.StatusLoading:
		s.writeLoadingPage(w)
	case form.StatusFailed:
		s.writeFailedPage(w, snap.Err)
	default:
		s.renderForm(w, r, http.StatusOK)
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	snap := s.form.Snapshot()
	if snap.Status != form.StatusReady {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	// Only posted fields are applied so hidden fields keep their stored
	// values. Visible checkboxes are the exception: browsers omit unchecked
	// boxes from the body, so absence means false.
	for _, field := range s.form.VisibleFields() {
		raw, posted := r.PostForm[field.ID]
		if !posted || len(raw) == 0 {
			if field.Type == schema.FieldTypeCheckbox {
				if err := s.form.ApplyInput(field.ID, "false"); err != nil {
					s.log.Warn().Err(err).Str("field", field.ID).Msg("apply input failed")
				}
			}
			continue
		}
		if err := s.form.ApplyInput(field.ID, raw[0]); err != nil {
			s.log.Warn().Err(err).Str("field", field.ID).Msg("apply input failed")
		}
	}

	errs, err := s.form.Submit(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("submit failed")
		http.Error(w, "submit failed", http.StatusInternalServerError)
		return
	}

	if !errs.Valid() {
		s.renderForm(w, r, http.StatusUnprocessableEntity)
		return
	}
	s.writeAckPage(w)
}

func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	if err := s.form.Retry(r.Context()); err != nil {
		s.log.Warn().Err(err).Msg("retry failed")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	snap := s.form.Snapshot()
	if snap.Status != form.StatusReady {
		http.Error(w, "schema not loaded", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(snap.Schema); err != nil {
		s.log.Warn().Err(err).Msg("encode schema")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	snap := s.form.Snapshot()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if snap.Status == form.StatusFailed {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"status": snap.Status.String()})
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, status int) {
	snap := s.form.Snapshot()
	view := render.View{
		Title:        snap.Schema.Title,
		Fields:       s.form.VisibleFields(),
		Values:       snap.Values,
		Errors:       snap.Errors,
		SubmitButton: snap.Schema.SubmitButton,
	}

	out, err := s.renderer.Render(r.Context(), view)
	if err != nil {
		s.log.Error().Err(err).Msg("render failed")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

func (s *Server) writeLoadingPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = fmt.Fprint(w, `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><meta http-equiv="refresh" content="1"><title>Loading</title></head>
<body><main class="df-page"><p class="df-loading">Loading form&hellip;</p></main></body></html>
`)
}

func (s *Server) writeFailedPage(w http.ResponseWriter, err error) {
	reason := "the form description could not be loaded"
	if err != nil {
		reason = err.Error()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusBadGateway)
	_, _ = fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Unavailable</title></head>
<body><main class="df-page">
<p class="df-failed">%s</p>
<form method="post" action="/retry"><button type="submit">Retry</button></form>
</main></body></html>
`, html.EscapeString(reason))
}

func (s *Server) writeAckPage(w http.ResponseWriter) {
	snap := s.form.Snapshot()

	var rows strings.Builder
	for _, field := range snap.Schema.Fields {
		rows.WriteString("<tr><th>")
		rows.WriteString(html.EscapeString(field.Label))
		rows.WriteString("</th><td>")
		rows.WriteString(html.EscapeString(snap.Values[field.ID].Display()))
		rows.WriteString("</td></tr>\n")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Submitted</title></head>
<body><main class="df-page">
<h1>Thank you</h1>
<table class="df-summary">
%s</table>
<p><a href="/">Back to the form</a></p>
</main></body></html>
`, rows.String())
}
