package notification

import (
	"time"

	"github.com/guidedbycompassion/website/internal/forms"
	"github.com/guidedbycompassion/website/pkg/sanitizer"
)

// baseView carries the fields every email template and the shared layout
// expect: operator identity, the urgency accent color, and the submission
// timestamp.
type baseView struct {
	OperatorName  string
	OperatorEmail string
	OperatorPhone string
	AccentColor   string
	SubmittedAt   string
}

func (c *Composer) baseView(urgency string, now time.Time) baseView {
	return baseView{
		OperatorName:  c.cfg.OperatorName,
		OperatorEmail: c.cfg.OperatorEmail,
		OperatorPhone: c.cfg.OperatorPhone,
		AccentColor:   forms.UrgencyColor(urgency),
		SubmittedAt:   now.Format("January 2, 2006 at 3:04 PM MST"),
	}
}

type contactView struct {
	baseView

	UrgencyLabel string

	Name    string
	Email   string
	Phone   string
	Service string
	Message string

	// Confirmation-only variants of the same fields.
	Salutation      string
	ServiceInterest string
}

func (c *Composer) newContactView(f forms.ContactForm, now time.Time) contactView {
	name := sanitizer.CleanText(f.Name)
	return contactView{
		baseView:        c.baseView(f.Urgency, now),
		UrgencyLabel:    forms.UrgencyLabel(f.Urgency),
		Name:            orDefault(name, "Not provided"),
		Email:           orDefault(f.Email, "Not provided"),
		Phone:           orDefault(f.Phone, "Not provided"),
		Service:         label(forms.ServiceLabel, f.Service, "Not specified"),
		Message:         orDefault(sanitizer.CleanText(f.Message), "No message provided"),
		Salutation:      orDefault(name, "Valued Customer"),
		ServiceInterest: label(forms.ServiceLabel, f.Service, "General Inquiry"),
	}
}

type consultationView struct {
	baseView

	UrgencyLabel string

	FullName     string
	Email        string
	Phone        string
	Relationship string

	RecipientName       string
	RecipientAge        string
	RecipientGender     string
	RecipientConditions string

	Services      []string
	CareLevel     string
	Frequency     string
	Duration      string
	StartDate     string
	PreferredTime string

	Address         string
	City            string
	ZipCode         string
	SpecialRequests string
	AdditionalInfo  string
}

func (c *Composer) newConsultationView(f forms.ConsultationForm, now time.Time) consultationView {
	services := make([]string, 0, len(f.Services))
	for _, s := range f.Services {
		services = append(services, forms.ServiceLabel(s))
	}

	return consultationView{
		baseView:     c.baseView(f.Urgency, now),
		UrgencyLabel: forms.UrgencyLabel(f.Urgency),

		FullName:     orDefault(sanitizer.CleanText(f.FullName()), "Not provided"),
		Email:        orDefault(f.Email, "Not provided"),
		Phone:        orDefault(f.Phone, "Not provided"),
		Relationship: label(forms.RelationshipLabel, f.Relationship, "Not specified"),

		RecipientName:       orDefault(sanitizer.CleanText(f.RecipientName), "Not provided"),
		RecipientAge:        orDefault(f.RecipientAge, "Not provided"),
		RecipientGender:     orDefault(f.RecipientGender, "Not specified"),
		RecipientConditions: orDefault(sanitizer.CleanText(f.RecipientConditions), "None specified"),

		Services:      services,
		CareLevel:     label(forms.CareLevelLabel, f.CareLevel, "Not specified"),
		Frequency:     label(forms.FrequencyLabel, f.Frequency, "Not specified"),
		Duration:      label(forms.DurationLabel, f.Duration, "Not specified"),
		StartDate:     formatDate(f.StartDate),
		PreferredTime: label(forms.PreferredTimeLabel, f.PreferredTime, "Not specified"),

		Address:         orDefault(sanitizer.CleanText(f.Address), "Not provided"),
		City:            orDefault(f.City, "Not provided"),
		ZipCode:         orDefault(f.ZipCode, "Not provided"),
		SpecialRequests: orDefault(sanitizer.CleanText(f.SpecialRequests), "None"),
		AdditionalInfo:  orDefault(sanitizer.CleanText(f.AdditionalInfo), "None provided"),
	}
}

type referralView struct {
	baseView

	UrgencyLabel string

	ReferrerName     string
	ReferrerEmail    string
	ReferrerPhone    string
	ReferrerRelation string

	ClientName    string
	ClientPhone   string
	ClientEmail   string
	ClientAddress string

	CareNeeds      string
	Timeline       string
	AdditionalInfo string
	TermsAgreed    string

	// Summary and salutation keep the original defaults for the headline
	// sentence and the confirmation greeting.
	SummaryReferrer string
	SummaryClient   string
	Salutation      string
}

func (c *Composer) newReferralView(f forms.ReferralForm, now time.Time) referralView {
	referrer := sanitizer.CleanText(f.ReferrerName)
	client := sanitizer.CleanText(f.ClientName)

	terms := "No"
	if f.AgreeToTerms {
		terms = "Yes"
	}

	return referralView{
		baseView:     c.baseView(f.Urgency, now),
		UrgencyLabel: forms.UrgencyLabel(f.Urgency),

		ReferrerName:     orDefault(referrer, "Not provided"),
		ReferrerEmail:    orDefault(f.ReferrerEmail, "Not provided"),
		ReferrerPhone:    orDefault(f.ReferrerPhone, "Not provided"),
		ReferrerRelation: label(forms.RelationshipLabel, f.ReferrerRelation, "Not specified"),

		ClientName:    orDefault(client, "Not provided"),
		ClientPhone:   orDefault(f.ClientPhone, "Not provided"),
		ClientEmail:   orDefault(f.ClientEmail, "Not provided"),
		ClientAddress: orDefault(sanitizer.CleanText(f.ClientAddress), "Not provided"),

		CareNeeds:      label(forms.ServiceLabel, f.CareNeeds, "Not specified"),
		Timeline:       forms.UrgencyLabel(f.Urgency),
		AdditionalInfo: orDefault(sanitizer.CleanText(f.AdditionalInfo), "None provided"),
		TermsAgreed:    terms,

		SummaryReferrer: orDefault(referrer, "Anonymous"),
		SummaryClient:   orDefault(client, "a potential client"),
		Salutation:      orDefault(referrer, "Valued Advocate"),
	}
}

type employerView struct {
	Index      int
	Name       string
	Supervisor string
	Phone      string
	Address    string
	Dates      string
}

type referenceView struct {
	Index int
	Name  string
	Phone string
}

type applicationView struct {
	baseView

	ApplicantName string
	PreferredName string

	Email       string
	MobilePhone string
	HomePhone   string
	DateOfBirth string
	Location    string
	HoursWeekly string

	Address         string
	CityStatePostal string

	HighSchool string
	College    string
	School     string
	Degree     string

	Employers  []employerView
	References []referenceView

	Availability          string
	HowDidYouHear         string
	FelonyConviction      string
	EligibleForEmployment string

	ResumeURL string
	CVURL     string
}

func (c *Composer) newApplicationView(f forms.ApplicationForm, now time.Time) applicationView {
	employers := make([]employerView, 0, len(f.Employers))
	for i, e := range f.Employers {
		employers = append(employers, employerView{
			Index:      i + 1,
			Name:       orDefault(sanitizer.CleanText(e.Employer), "N/A"),
			Supervisor: orDefault(sanitizer.CleanText(e.Supervisor), "N/A"),
			Phone:      orDefault(e.PhoneNumber, "N/A"),
			Address:    orDefault(sanitizer.CleanText(e.FullAddress()), "N/A"),
			Dates:      orDefault(e.DateFrom, "N/A") + " to " + orDefault(e.DateTo, "Present"),
		})
	}

	references := make([]referenceView, 0, len(f.References))
	for i, r := range f.References {
		references = append(references, referenceView{
			Index: i + 1,
			Name:  orDefault(sanitizer.CleanText(r.Name), "N/A"),
			Phone: orDefault(r.PhoneNumber, "N/A"),
		})
	}

	return applicationView{
		// Applications have no urgency; the layout accent stays neutral.
		baseView: c.baseView("", now),

		ApplicantName: sanitizer.CleanText(f.ApplicantName()),
		PreferredName: sanitizer.CleanText(f.PreferredName),

		Email:       orDefault(f.Email, "N/A"),
		MobilePhone: orDefault(f.MobilePhone, "N/A"),
		HomePhone:   orDefault(f.HomePhone, "N/A"),
		DateOfBirth: orDefault(f.DateOfBirth, "N/A"),
		Location:    orDefault(sanitizer.CleanText(f.Location), "N/A"),
		HoursWeekly: orDefault(f.HoursWantedWeekly, "N/A"),

		Address: orDefault(sanitizer.CleanText(f.FullAddress()), "N/A"),
		CityStatePostal: orDefault(f.City, "N/A") + ", " + orDefault(f.State, "N/A") +
			" " + f.PostalCode,

		HighSchool: yesNo(f.EducationHighSchool),
		College:    yesNo(f.EducationCollege),
		School:     orDefault(sanitizer.CleanText(f.School), "N/A"),
		Degree:     orDefault(sanitizer.CleanText(f.DegreeReceived), "N/A"),

		Employers:  employers,
		References: references,

		Availability:          orDefault(sanitizer.CleanText(f.Availability), "N/A"),
		HowDidYouHear:         orDefault(sanitizer.CleanText(f.HowDidYouHear), "N/A"),
		FelonyConviction:      orDefault(sanitizer.CleanText(f.FelonyConviction), "N/A"),
		EligibleForEmployment: orDefault(sanitizer.CleanText(f.EligibleForEmployment), "N/A"),

		ResumeURL: f.ResumeURL,
		CVURL:     f.CVURL,
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// label maps an enum value through fn, collapsing empty input to fallback.
func label(fn func(string) string, value, fallback string) string {
	if value == "" {
		return fallback
	}
	return fn(value)
}

// formatDate renders an ISO date as a readable one, keeping the raw value
// when it does not parse.
func formatDate(s string) string {
	if s == "" {
		return "Not specified"
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("January 2, 2006")
}
