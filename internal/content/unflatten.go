package content

import (
	"encoding/json"
	"strings"
)

// Unflatten rebuilds a nested document from flattened row fields. Keys split
// on dots into nested maps, string values that look like JSON arrays or
// objects are parsed back (kept as the raw string if parsing fails), and the
// store's own id and lastUpdated metadata fields are dropped.
func Unflatten(fields map[string]any) Document {
	doc := Document{}

	for key, value := range fields {
		if key == "id" || key == "lastUpdated" {
			continue
		}

		parts := strings.Split(key, ".")
		current := doc
		for _, part := range parts[:len(parts)-1] {
			next, ok := current[part].(Document)
			if !ok {
				// A scalar already occupies this path; the deeper key wins,
				// matching last-write semantics of the flattened layout.
				next = Document{}
				current[part] = next
			}
			current = next
		}

		current[parts[len(parts)-1]] = reviveLeaf(value)
	}

	return doc
}

func reviveLeaf(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	if !strings.HasPrefix(s, "[") && !strings.HasPrefix(s, "{") {
		return s
	}

	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return s
	}
	return parsed
}
