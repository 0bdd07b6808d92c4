package vanilla

import "github.com/microcosm-cc/bluemonday"

// textPolicy strips every tag from author-supplied text (titles, labels,
// option labels, error messages) before it reaches the page.
var textPolicy = bluemonday.StrictPolicy()

func sanitizeText(s string) string {
	return textPolicy.Sanitize(s)
}
