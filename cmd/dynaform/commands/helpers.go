package commands

import (
	"github.com/rs/zerolog/log"

	"github.com/goliatone/go-dynaform/internal/schema/loader"
	"github.com/goliatone/go-dynaform/pkg/form"
	"github.com/goliatone/go-dynaform/pkg/schema"
)

// buildForm assembles the loader and form from the resolved configuration.
// The form is returned unloaded; callers decide when to fetch.
func buildForm() (*form.Form, error) {
	src, err := resolveSource()
	if err != nil {
		return nil, err
	}

	l := loader.New(schema.LoaderOptions{
		AllowHTTPFallback: true,
		RequestTimeout:    cfg.Schema.RequestTimeout,
	})

	return form.New(l, src, form.WithLogger(log.Logger)), nil
}
