package schema

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches a form description document from a Source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions carries pre-resolved loader configuration. The concrete
// implementation lives in internal/schema/loader.
type LoaderOptions struct {
	// FileSystem backs fs.FS sources.
	FileSystem fs.FS
	// HTTPClient is used for URL sources. When nil and AllowHTTPFallback is
	// set, a default client is created with RequestTimeout applied.
	HTTPClient *http.Client
	// AllowHTTPFallback enables URL sources without an explicit client.
	AllowHTTPFallback bool
	// RequestTimeout bounds each outbound fetch. Zero means no timeout.
	RequestTimeout time.Duration
}
