package content

import "time"

// Document is a resolved content slice: nested maps and arrays reconstructed
// from the row store's flattened field layout.
type Document = map[string]any

// Record is one row of a bulk view listing.
type Record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Data      Document  `json:"data"`
	CreatedAt time.Time `json:"createdAt"`
}
