// Package sanitizer strips markup from user-entered text. Form submissions
// end up inside operator emails, so everything user-supplied passes through
// the strict policy before composition.
package sanitizer

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicy() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// StripHTML removes all HTML elements and attributes, returning plain text.
func StripHTML(s string) string {
	initPolicy()
	return strictPolicy.Sanitize(s)
}

// CleanText strips HTML and trims surrounding whitespace. Use for every
// free-text form field before it reaches an email template.
func CleanText(s string) string {
	return strings.TrimSpace(StripHTML(s))
}
