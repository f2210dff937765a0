package forms

var urgencyLabels = map[string]string{
	"immediate": "IMMEDIATE (Within 24 hours)",
	"urgent":    "URGENT (Within 3 days)",
	"soon":      "SOON (Within a week)",
	"planning":  "PLANNING AHEAD",
}

var urgencyColors = map[string]string{
	"immediate": "#dc3545",
	"urgent":    "#dc3545",
	"soon":      "#fd7e14",
	"planning":  "#28a745",
}

var serviceLabels = map[string]string{
	"personal-care":    "Personal Care Services",
	"companion-care":   "Companion Care",
	"respite-care":     "Respite Care",
	"specialized-care": "Specialized Care",
	"inclusive-care":   "Inclusive Care for All Abilities",
	"in-facility-care": "In-Facility Care",
	"consultation":     "Free Consultation",
	"assessment":       "Care Assessment",
	"not-sure":         "Need Consultation",
	"other":            "Other",
}

var relationshipLabels = map[string]string{
	"family":              "Family Member",
	"friend":              "Friend",
	"neighbor":            "Neighbor",
	"healthcare-provider": "Healthcare Provider",
	"social-worker":       "Social Worker",
	"current-client":      "Current Client",
	"former-client":       "Former Client",
	"self":                "Self",
	"spouse":              "Spouse/Partner",
	"child":               "Adult Child",
	"parent":              "Parent",
	"sibling":             "Sibling",
	"other":               "Other",
}

var careLevelLabels = map[string]string{
	"minimal":   "Minimal Assistance",
	"moderate":  "Moderate Care",
	"extensive": "Extensive Care",
	"intensive": "Intensive Care",
}

var frequencyLabels = map[string]string{
	"daily":          "Daily",
	"few-times-week": "Few times per week",
	"weekly":         "Weekly",
	"bi-weekly":      "Bi-weekly",
	"monthly":        "Monthly",
	"as-needed":      "As needed",
}

var durationLabels = map[string]string{
	"2-4-hours":   "2-4 hours",
	"4-8-hours":   "4-8 hours",
	"8-12-hours":  "8-12 hours",
	"12-24-hours": "12-24 hours",
	"overnight":   "Overnight",
	"live-in":     "Live-in",
}

var preferredTimeLabels = map[string]string{
	"morning":   "Morning (6 AM - 12 PM)",
	"afternoon": "Afternoon (12 PM - 6 PM)",
	"evening":   "Evening (6 PM - 10 PM)",
	"overnight": "Overnight (10 PM - 6 AM)",
	"flexible":  "Flexible",
}

// UrgencyLabel maps an urgency value to its display label. Unknown or empty
// values collapse to "Not specified" rather than passing through.
func UrgencyLabel(urgency string) string {
	if label, ok := urgencyLabels[urgency]; ok {
		return label
	}
	return "Not specified"
}

// UrgencyColor maps an urgency value to its badge accent color.
func UrgencyColor(urgency string) string {
	if color, ok := urgencyColors[urgency]; ok {
		return color
	}
	return "#28a745"
}

// ServiceLabel maps a service slug to its display name. Unknown values pass
// through unchanged so free-text entries survive.
func ServiceLabel(service string) string {
	return lookup(serviceLabels, service)
}

// RelationshipLabel maps a relationship slug to its display name.
func RelationshipLabel(relationship string) string {
	return lookup(relationshipLabels, relationship)
}

// CareLevelLabel maps a care-level slug to its display name.
func CareLevelLabel(level string) string {
	return lookup(careLevelLabels, level)
}

// FrequencyLabel maps a frequency slug to its display name.
func FrequencyLabel(frequency string) string {
	return lookup(frequencyLabels, frequency)
}

// DurationLabel maps a shift-duration slug to its display name.
func DurationLabel(duration string) string {
	return lookup(durationLabels, duration)
}

// PreferredTimeLabel maps a time-of-day slug to its display name.
func PreferredTimeLabel(time string) string {
	return lookup(preferredTimeLabels, time)
}

func lookup(table map[string]string, key string) string {
	if label, ok := table[key]; ok {
		return label
	}
	return key
}
