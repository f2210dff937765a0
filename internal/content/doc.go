// Package content resolves the marketing site's copy documents from a hosted
// row store, caching each slice for a short window and falling back to
// bundled documents when the remote is unavailable.
package content
