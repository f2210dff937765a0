package forms

import "strings"

// ContactForm is a general inquiry from the contact page.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Urgency string `json:"urgency"`
	Message string `json:"message"`
}

// ConsultationForm requests a care consultation on behalf of a recipient.
type ConsultationForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	// Relationship of the requester to the care recipient.
	Relationship string `json:"relationship"`

	RecipientName       string `json:"recipientName"`
	RecipientAge        string `json:"recipientAge"`
	RecipientGender     string `json:"recipientGender"`
	RecipientConditions string `json:"recipientConditions"`

	Services      []string `json:"services"`
	CareLevel     string   `json:"careLevel"`
	Frequency     string   `json:"frequency"`
	Duration      string   `json:"duration"`
	StartDate     string   `json:"startDate"`
	PreferredTime string   `json:"preferredTime"`
	Urgency       string   `json:"urgency"`

	Address         string `json:"address"`
	City            string `json:"city"`
	ZipCode         string `json:"zipCode"`
	SpecialRequests string `json:"specialRequests"`
	AdditionalInfo  string `json:"additionalInfo"`
}

// FullName joins the requester's first and last names, dropping blanks.
func (f ConsultationForm) FullName() string {
	return joinNonEmpty(" ", f.FirstName, f.LastName)
}

// ReferralForm refers a third party for care services.
type ReferralForm struct {
	ReferrerName     string `json:"referrerName"`
	ReferrerEmail    string `json:"referrerEmail"`
	ReferrerPhone    string `json:"referrerPhone"`
	ReferrerRelation string `json:"referrerRelation"`

	ClientName    string `json:"clientName"`
	ClientPhone   string `json:"clientPhone"`
	ClientEmail   string `json:"clientEmail"`
	ClientAddress string `json:"clientAddress"`

	CareNeeds      string `json:"careNeeds"`
	Urgency        string `json:"urgency"`
	AdditionalInfo string `json:"additionalInfo"`
	AgreeToTerms   bool   `json:"agreeToTerms"`
}

// Employer is one entry in an application's employment history.
type Employer struct {
	Employer    string `json:"employer"`
	Supervisor  string `json:"supervisor"`
	PhoneNumber string `json:"phoneNumber"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	DateFrom    string `json:"dateFrom"`
	DateTo      string `json:"dateTo"`
}

// Reference is one professional reference on an application.
type Reference struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// ApplicationForm is an employment application. Uploaded documents arrive as
// public URLs produced by the upload endpoint, never as raw file content.
type ApplicationForm struct {
	FirstName     string `json:"firstName"`
	MiddleName    string `json:"middleName"`
	NoMiddleName  bool   `json:"noMiddleName"`
	LastName      string `json:"lastName"`
	PreferredName string `json:"preferredName"`

	Email             string `json:"email"`
	MobilePhone       string `json:"mobilePhone"`
	HomePhone         string `json:"homePhone"`
	DateOfBirth       string `json:"dateOfBirth"`
	Location          string `json:"location"`
	HoursWantedWeekly string `json:"hoursWantedWeekly"`

	Address      string `json:"address"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`

	EducationHighSchool bool   `json:"educationHighSchool"`
	EducationCollege    bool   `json:"educationCollege"`
	School              string `json:"school"`
	DegreeReceived      string `json:"degreeReceived"`

	Employers  []Employer  `json:"employers"`
	References []Reference `json:"references"`

	Availability          string `json:"availability"`
	HowDidYouHear         string `json:"howDidYouHear"`
	FelonyConviction      string `json:"felonyConviction"`
	EligibleForEmployment string `json:"eligibleForEmployment"`

	ResumeURL string `json:"resumeUrl"`
	CVURL     string `json:"cvUrl"`
}

// ApplicantName builds the applicant's full name, honoring the no-middle-name
// flag. Falls back to "Unknown Applicant" when every part is blank.
func (f ApplicationForm) ApplicantName() string {
	middle := f.MiddleName
	if f.NoMiddleName {
		middle = ""
	}
	name := joinNonEmpty(" ", f.FirstName, middle, f.LastName)
	if name == "" {
		return "Unknown Applicant"
	}
	return name
}

// FullAddress joins the street address lines with a comma.
func (f ApplicationForm) FullAddress() string {
	return joinNonEmpty(", ", f.Address, f.AddressLine2)
}

// FullAddress renders an employer's address as a single comma-separated line
// with the postal code appended.
func (e Employer) FullAddress() string {
	line := joinNonEmpty(", ", e.Address1, e.Address2, e.City, e.State)
	return strings.TrimSpace(joinNonEmpty(" ", line, e.PostalCode))
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
