// Package dynaform renders forms described by remote schema documents. A
// description is fetched once per form lifetime, parsed (JSON or YAML),
// rendered field by field, filtered by dependency conditions, validated on
// submit, and the accepted values are logged and handed to a callback.
//
// The root package offers convenience constructors; the pieces live in
// pkg/schema, pkg/form, pkg/render, and the renderer packages.
package dynaform

import (
	"net/http"
	"time"

	"github.com/goliatone/go-dynaform/internal/schema/loader"
	"github.com/goliatone/go-dynaform/pkg/form"
	"github.com/goliatone/go-dynaform/pkg/schema"
)

// NewLoader builds the standard document loader. HTTP sources are enabled;
// pass a zero timeout to disable the per-request bound.
func NewLoader(timeout time.Duration) schema.Loader {
	return loader.New(schema.LoaderOptions{
		AllowHTTPFallback: true,
		RequestTimeout:    timeout,
	})
}

// NewLoaderWithClient builds a loader around a caller-supplied HTTP client,
// e.g. one with custom transport or auth.
func NewLoaderWithClient(client *http.Client, timeout time.Duration) schema.Loader {
	return loader.New(schema.LoaderOptions{
		HTTPClient:     client,
		RequestTimeout: timeout,
	})
}

// NewFormFromURL wires a form that fetches its description from url.
func NewFormFromURL(url string, timeout time.Duration, opts ...form.Option) *form.Form {
	return form.New(NewLoader(timeout), schema.SourceFromURL(url), opts...)
}

// NewFormFromFile wires a form backed by an on-disk description.
func NewFormFromFile(path string, opts ...form.Option) *form.Form {
	return form.New(NewLoader(0), schema.SourceFromFile(path), opts...)
}
