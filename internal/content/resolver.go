package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/guidedbycompassion/website/pkg/cache"
)

// Resolver serves content documents through a short-lived cache. A remote
// miss (ErrNotFound) is cached as a sentinel so repeated requests for an
// absent record stay cheap; transport failures are never cached so the next
// request retries the remote.
type Resolver struct {
	client *Client
	cache  cache.Cache[Document]
	ttl    time.Duration
	log    *slog.Logger
	sf     singleflight.Group
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithTTL overrides the cache window.
func WithTTL(ttl time.Duration) ResolverOption {
	return func(r *Resolver) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// NewResolver builds a resolver over the given client and cache backend.
// The default cache window is five minutes.
func NewResolver(client *Client, c cache.Cache[Document], log *slog.Logger, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		client: client,
		cache:  c,
		ttl:    5 * time.Minute,
		log:    log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the document stored in table under recordKey. Within the
// cache window the remote is not consulted; concurrent misses for the same
// key collapse into a single remote lookup.
func (r *Resolver) Resolve(ctx context.Context, table, recordKey string) (Document, error) {
	key := cacheKey(table, recordKey)

	if doc, err := r.cache.Get(ctx, key); err == nil {
		if doc == nil {
			return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, recordKey, table)
		}
		return doc, nil
	} else if !errors.Is(err, cache.ErrNotFound) {
		r.log.WarnContext(ctx, "content cache read failed", "key", key, "error", err)
	}

	v, err, _ := r.sf.Do(key, func() (any, error) {
		fields, err := r.client.FetchRecord(ctx, table, recordKey)
		if errors.Is(err, ErrNotFound) {
			r.log.WarnContext(ctx, "content record not found", "table", table, "record", recordKey)
			// The miss itself is cached, so the absent record does not
			// trigger a remote call on every request.
			if serr := r.cache.Set(ctx, key, nil, r.ttl); serr != nil {
				r.log.WarnContext(ctx, "content cache write failed", "key", key, "error", serr)
			}
			return nil, err
		}
		if err != nil {
			r.log.ErrorContext(ctx, "content fetch failed", "table", table, "record", recordKey, "error", err)
			return nil, err
		}

		doc := Unflatten(fields)
		if serr := r.cache.Set(ctx, key, doc, r.ttl); serr != nil {
			r.log.WarnContext(ctx, "content cache write failed", "key", key, "error", serr)
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Document), nil
}

// ListView returns every record of the named view, newest first. Records
// missing a usable name are skipped rather than failing the whole listing.
func (r *Resolver) ListView(ctx context.Context, table, view string) ([]Record, error) {
	raw, err := r.client.ListRecords(ctx, table, view)
	if err != nil {
		r.log.ErrorContext(ctx, "content view listing failed", "table", table, "view", view, "error", err)
		return nil, err
	}

	records := make([]Record, 0, len(raw))
	for _, rec := range raw {
		name, _ := rec.Fields["Name"].(string)
		if name == "" {
			r.log.WarnContext(ctx, "skipping unnamed view record", "table", table, "record", rec.ID)
			continue
		}
		records = append(records, Record{
			ID:        rec.ID,
			Name:      name,
			Data:      recordData(rec.Fields),
			CreatedAt: rec.CreatedTime,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// WarmFromView seeds the cache from a bulk view listing so the first page
// loads after startup never wait on per-record lookups. Records without a
// key field are skipped. The records themselves are returned for callers
// that also want the listing.
func (r *Resolver) WarmFromView(ctx context.Context, table, view string) ([]Record, error) {
	raw, err := r.client.ListRecords(ctx, table, view)
	if err != nil {
		r.log.ErrorContext(ctx, "content warm listing failed", "table", table, "view", view, "error", err)
		return nil, err
	}

	var warmed int
	records := make([]Record, 0, len(raw))
	for _, rec := range raw {
		recordKey, _ := rec.Fields["id"].(string)
		if recordKey == "" {
			recordKey, _ = rec.Fields["Name"].(string)
		}
		if recordKey == "" {
			r.log.WarnContext(ctx, "skipping unkeyed record during warm", "table", table, "record", rec.ID)
			continue
		}

		doc := Unflatten(rec.Fields)
		if err := r.cache.Set(ctx, cacheKey(table, recordKey), doc, r.ttl); err != nil {
			r.log.WarnContext(ctx, "content cache write failed", "table", table, "record", recordKey, "error", err)
			continue
		}
		warmed++
		records = append(records, Record{
			ID:        rec.ID,
			Name:      recordKey,
			Data:      doc,
			CreatedAt: rec.CreatedTime,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	r.log.InfoContext(ctx, "content cache warmed", "table", table, "view", view, "records", warmed)
	return records, nil
}

func recordData(fields map[string]any) Document {
	switch data := fields["Data"].(type) {
	case map[string]any:
		return data
	case string:
		if parsed, ok := reviveLeaf(data).(map[string]any); ok {
			return parsed
		}
	}
	return Document{}
}

func cacheKey(table, recordKey string) string {
	return table + "_" + recordKey
}
