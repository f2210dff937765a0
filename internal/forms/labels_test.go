package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guidedbycompassion/website/internal/forms"
)

func TestUrgencyLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "IMMEDIATE (Within 24 hours)", forms.UrgencyLabel("immediate"))
	assert.Equal(t, "URGENT (Within 3 days)", forms.UrgencyLabel("urgent"))
	assert.Equal(t, "SOON (Within a week)", forms.UrgencyLabel("soon"))
	assert.Equal(t, "PLANNING AHEAD", forms.UrgencyLabel("planning"))

	// Unknown and empty values never leak through raw.
	assert.Equal(t, "Not specified", forms.UrgencyLabel(""))
	assert.Equal(t, "Not specified", forms.UrgencyLabel("someday"))
}

func TestUrgencyColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#dc3545", forms.UrgencyColor("immediate"))
	assert.Equal(t, "#dc3545", forms.UrgencyColor("urgent"))
	assert.Equal(t, "#fd7e14", forms.UrgencyColor("soon"))
	assert.Equal(t, "#28a745", forms.UrgencyColor("planning"))
	assert.Equal(t, "#28a745", forms.UrgencyColor(""))
}

func TestServiceLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Personal Care Services", forms.ServiceLabel("personal-care"))
	assert.Equal(t, "Inclusive Care for All Abilities", forms.ServiceLabel("inclusive-care"))
	assert.Equal(t, "Need Consultation", forms.ServiceLabel("not-sure"))

	// Free-text values pass through unchanged.
	assert.Equal(t, "pet sitting", forms.ServiceLabel("pet sitting"))
	assert.Equal(t, "", forms.ServiceLabel(""))
}

func TestRelationshipLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Family Member", forms.RelationshipLabel("family"))
	assert.Equal(t, "Spouse/Partner", forms.RelationshipLabel("spouse"))
	assert.Equal(t, "Adult Child", forms.RelationshipLabel("child"))
	assert.Equal(t, "cousin", forms.RelationshipLabel("cousin"))
}

func TestScheduleLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Moderate Care", forms.CareLevelLabel("moderate"))
	assert.Equal(t, "Few times per week", forms.FrequencyLabel("few-times-week"))
	assert.Equal(t, "12-24 hours", forms.DurationLabel("12-24-hours"))
	assert.Equal(t, "Overnight (10 PM - 6 AM)", forms.PreferredTimeLabel("overnight"))
	assert.Equal(t, "Overnight", forms.DurationLabel("overnight"))
}

func TestApplicantName(t *testing.T) {
	t.Parallel()

	t.Run("with middle name", func(t *testing.T) {
		t.Parallel()
		f := forms.ApplicationForm{FirstName: "Ada", MiddleName: "Byron", LastName: "Lovelace"}
		assert.Equal(t, "Ada Byron Lovelace", f.ApplicantName())
	})

	t.Run("middle name suppressed", func(t *testing.T) {
		t.Parallel()
		f := forms.ApplicationForm{FirstName: "Ada", MiddleName: "Byron", LastName: "Lovelace", NoMiddleName: true}
		assert.Equal(t, "Ada Lovelace", f.ApplicantName())
	})

	t.Run("empty form", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Unknown Applicant", forms.ApplicationForm{}.ApplicantName())
	})
}

func TestEmployerFullAddress(t *testing.T) {
	t.Parallel()

	e := forms.Employer{Address1: "1 Main St", City: "Houston", State: "TX", PostalCode: "77001"}
	assert.Equal(t, "1 Main St, Houston, TX 77001", e.FullAddress())

	assert.Equal(t, "", forms.Employer{}.FullAddress())
}
