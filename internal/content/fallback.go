package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed static/*.json
var staticFS embed.FS

// Slice maps a public slice name to its row store location.
type Slice struct {
	Table     string
	RecordKey string
}

// Registered content slices. The fallback document for each lives in
// static/<name>.json with the same structure the row store serves.
var slices = map[string]Slice{
	"home":       {Table: "Copy_Home", RecordKey: "home"},
	"about":      {Table: "Copy_About", RecordKey: "about"},
	"services":   {Table: "Copy_Services", RecordKey: "services"},
	"scheduling": {Table: "Copy_Scheduling", RecordKey: "scheduling"},
	"contact":    {Table: "Copy_Contact", RecordKey: "contact"},
	"referUs":    {Table: "Copy_ReferUs", RecordKey: "referUs"},
	"blogs":      {Table: "Copy_Blogs", RecordKey: "blogs"},
	"careers":    {Table: "Copy_Careers", RecordKey: "careers"},
}

// LookupSlice resolves a slice name to its table and record key.
func LookupSlice(name string) (Slice, error) {
	s, ok := slices[name]
	if !ok {
		return Slice{}, fmt.Errorf("%w: %s", ErrUnknownSlice, name)
	}
	return s, nil
}

// SliceNames returns every registered slice name, sorted.
func SliceNames() []string {
	names := make([]string, 0, len(slices))
	for name := range slices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FallbackDocument returns the bundled document for a slice. Used when the
// remote store is unreachable or holds no record for the slice.
func FallbackDocument(name string) (Document, error) {
	if _, ok := slices[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSlice, name)
	}

	data, err := staticFS.ReadFile("static/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: no fallback for %s: %v", ErrUnknownSlice, name, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("content: malformed fallback %s: %w", name, err)
	}
	return doc, nil
}
