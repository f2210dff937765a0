package content

import "errors"

var (
	// ErrNotFound means the row store answered but holds no record under the
	// requested key. The miss is cached for the regular window.
	ErrNotFound = errors.New("content: record not found")

	// ErrFetch wraps transport and protocol failures. Never cached, so the
	// next request retries the remote.
	ErrFetch = errors.New("content: fetch failed")

	// ErrUnknownSlice means the requested slice name is not registered.
	ErrUnknownSlice = errors.New("content: unknown slice")
)
