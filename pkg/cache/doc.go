// Package cache provides a generic TTL cache with in-memory and Redis
// backends. The site backend uses it to memoize resolved content documents
// for a bounded freshness window.
package cache
