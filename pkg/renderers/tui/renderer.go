// Package tui drives a form through terminal prompts. Each visible field
// becomes one prompt; answers feed back into the form so dependent fields
// appear as soon as their condition holds.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-dynaform/pkg/form"
	"github.com/goliatone/go-dynaform/pkg/schema"
	"github.com/goliatone/go-dynaform/pkg/value"
)

// ErrTooManyAttempts signals the user exhausted the validation retry budget.
var ErrTooManyAttempts = errors.New("tui: too many failed submit attempts")

// Session runs an interactive fill over one form.
type Session struct {
	driver      PromptDriver
	maxAttempts int
}

// Option customizes a Session.
type Option func(*Session)

// WithDriver swaps the prompt driver, mainly for tests.
func WithDriver(d PromptDriver) Option {
	return func(s *Session) {
		if d != nil {
			s.driver = d
		}
	}
}

// WithMaxAttempts bounds how often a failing submit is retried.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// New constructs a Session with the survey driver and three attempts.
func New(opts ...Option) *Session {
	s := &Session{
		driver:      newSurveyDriver(),
		maxAttempts: 3,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fill prompts for every visible field, submits, and on validation failure
// re-prompts the failing fields until the form is accepted or the attempt
// budget runs out.
func (s *Session) Fill(ctx context.Context, f *form.Form) error {
	snap := f.Snapshot()
	if snap.Status != form.StatusReady {
		return fmt.Errorf("tui: form not ready (status %s)", snap.Status)
	}

	if snap.Schema.Title != "" {
		if err := s.driver.Info(ctx, snap.Schema.Title); err != nil {
			return err
		}
	}

	asked := make(map[string]struct{})
	for attempt := 1; ; attempt++ {
		if err := s.promptPending(ctx, f, asked); err != nil {
			return err
		}

		errs, err := f.Submit(ctx)
		if err != nil {
			return err
		}
		if errs.Valid() {
			return s.driver.Info(ctx, "Form submitted.")
		}

		// Report every message in schema order, then re-ask the offenders.
		for _, field := range f.Snapshot().Schema.Fields {
			msg, failed := errs[field.ID]
			if !failed {
				continue
			}
			if err := s.driver.Info(ctx, fmt.Sprintf("%s: %s", field.Label, msg)); err != nil {
				return err
			}
			delete(asked, field.ID)
		}

		if attempt >= s.maxAttempts {
			return ErrTooManyAttempts
		}
	}
}

// promptPending asks the first unanswered visible field and repeats until the
// visible set is exhausted. Re-fetching the set after every answer lets a
// dependent field surface mid-session.
func (s *Session) promptPending(ctx context.Context, f *form.Form, asked map[string]struct{}) error {
	for {
		var next *schema.Field
		for _, field := range f.VisibleFields() {
			if _, done := asked[field.ID]; !done {
				next = &field
				break
			}
		}
		if next == nil {
			return nil
		}

		if err := s.promptField(ctx, f, *next); err != nil {
			return err
		}
		asked[next.ID] = struct{}{}
	}
}

func (s *Session) promptField(ctx context.Context, f *form.Form, field schema.Field) error {
	current := f.Snapshot().Values[field.ID]

	switch field.Type {
	case schema.FieldTypeCheckbox:
		def, _ := current.AsBool()
		answer, err := s.driver.Confirm(ctx, ConfirmConfig{Message: field.Label, Default: def})
		if err != nil {
			return err
		}
		return f.SetValue(field.ID, value.Bool(answer))

	case schema.FieldTypeSelect:
		labels := make([]string, len(field.Options))
		defIdx := -1
		for i, opt := range field.Options {
			labels[i] = opt.Label
			if opt.Value == current.Display() && opt.Value != "" {
				defIdx = i
			}
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      field.Label,
			Options:      labels,
			DefaultIndex: defIdx,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Options) {
			return f.SetValue(field.ID, value.String(""))
		}
		return f.SetValue(field.ID, value.String(field.Options[idx].Value))

	case schema.FieldTypeText, schema.FieldTypeDate, schema.FieldTypeNumber:
		answer, err := s.driver.Input(ctx, InputConfig{
			Message: field.Label,
			Default: current.Display(),
			Help:    field.Placeholder,
		})
		if err != nil {
			return err
		}
		return f.ApplyInput(field.ID, answer)

	default:
		// Unrecognized field types are skipped, same as the HTML renderer.
		return nil
	}
}
