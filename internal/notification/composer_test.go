package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guidedbycompassion/website/internal/forms"
	"github.com/guidedbycompassion/website/internal/notification"
	"github.com/guidedbycompassion/website/pkg/logger"
	"github.com/guidedbycompassion/website/pkg/mailer"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, email *mailer.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func testConfig() notification.Config {
	return notification.Config{
		OperatorName:  "Guided by Compassion",
		OperatorEmail: "care@guidedbycompassion.com",
		OperatorPhone: "346-870-2912",
	}
}

func newComposer(t *testing.T, cfg notification.Config, configured bool) (*notification.Composer, *mockSender) {
	t.Helper()

	sender := new(mockSender)
	c := notification.NewComposer(
		sender,
		mailer.Config{FallbackSubject: "Notification", DefaultLayout: "base.html"},
		cfg,
		configured,
		logger.NewNope(),
		notification.WithClock(func() time.Time {
			return time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
		}),
	)
	return c, sender
}

func capture(sender *mockSender, sent *[]*mailer.Email) {
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			*sent = append(*sent, args.Get(1).(*mailer.Email))
		}).
		Return(nil)
}

func TestDispatchContact(t *testing.T) {
	t.Parallel()

	t.Run("notification and confirmation", func(t *testing.T) {
		t.Parallel()

		c, sender := newComposer(t, testConfig(), true)
		var sent []*mailer.Email
		capture(sender, &sent)

		res := c.DispatchContact(context.Background(), forms.ContactForm{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Phone:   "713-555-0101",
			Service: "personal-care",
			Urgency: "immediate",
			Message: "My mother needs help with daily activities.",
		})

		require.True(t, res.Success)
		require.Empty(t, res.Error)
		require.Len(t, sent, 2)

		notif, conf := sent[0], sent[1]

		assert.Equal(t, "New Contact Form Submission - IMMEDIATE (Within 24 hours)", notif.Subject)
		assert.Equal(t, []string{"Guided by Compassion <care@guidedbycompassion.com>"}, notif.To)
		assert.Equal(t, "Jane Doe <jane@example.com>", notif.ReplyTo)

		// Labels, not raw enum values, in both renderings.
		for _, body := range []string{notif.HTML, notif.Text} {
			assert.Contains(t, body, "IMMEDIATE (Within 24 hours)")
			assert.Contains(t, body, "Personal Care Services")
			assert.Contains(t, body, "Jane Doe")
			assert.Contains(t, body, "My mother needs help with daily activities.")
		}
		assert.NotContains(t, notif.Text, "personal-care")

		assert.Equal(t, "Thank You for Contacting Guided by Compassion", conf.Subject)
		assert.Equal(t, []string{"Jane Doe <jane@example.com>"}, conf.To)
		// Confirmation recap shares the notification's label tables.
		assert.Contains(t, conf.Text, "IMMEDIATE (Within 24 hours)")
		assert.Contains(t, conf.Text, "Personal Care Services")

		sender.AssertExpectations(t)
	})

	t.Run("urgent subject carries the full label", func(t *testing.T) {
		t.Parallel()

		c, sender := newComposer(t, testConfig(), true)
		var sent []*mailer.Email
		capture(sender, &sent)

		res := c.DispatchContact(context.Background(), forms.ContactForm{
			Name:    "Jane Doe",
			Urgency: "urgent",
		})
		require.True(t, res.Success)
		require.Len(t, sent, 1)

		assert.Equal(t, "New Contact Form Submission - URGENT (Within 3 days)", sent[0].Subject)
	})

	t.Run("placeholders for omitted fields", func(t *testing.T) {
		t.Parallel()

		c, sender := newComposer(t, testConfig(), true)
		var sent []*mailer.Email
		capture(sender, &sent)

		res := c.DispatchContact(context.Background(), forms.ContactForm{})
		require.True(t, res.Success)
		// No submitter email means no confirmation.
		require.Len(t, sent, 1)

		notif := sent[0]
		assert.Equal(t, "New Contact Form Submission - Not specified", notif.Subject)
		assert.Empty(t, notif.ReplyTo)
		assert.Contains(t, notif.Text, "Not provided")
		assert.Contains(t, notif.Text, "Not specified")
		assert.Contains(t, notif.Text, "No message provided")
	})

	t.Run("html stripped from user text", func(t *testing.T) {
		t.Parallel()

		c, sender := newComposer(t, testConfig(), true)
		var sent []*mailer.Email
		capture(sender, &sent)

		res := c.DispatchContact(context.Background(), forms.ContactForm{
			Name:    "<script>alert(1)</script>Jane",
			Message: "Hello <b>there</b>",
		})
		require.True(t, res.Success)

		notif := sent[0]
		assert.NotContains(t, notif.HTML, "<script>")
		assert.NotContains(t, notif.Text, "<b>")
		assert.Contains(t, notif.Text, "Jane")
	})
}

func TestDispatchConsultation(t *testing.T) {
	t.Parallel()

	c, sender := newComposer(t, testConfig(), true)
	var sent []*mailer.Email
	capture(sender, &sent)

	res := c.DispatchConsultation(context.Background(), forms.ConsultationForm{
		FirstName:     "John",
		LastName:      "Smith",
		Email:         "john@example.com",
		Relationship:  "child",
		RecipientName: "Mary Smith",
		Services:      []string{"companion-care", "respite-care"},
		CareLevel:     "moderate",
		Frequency:     "few-times-week",
		Duration:      "4-8-hours",
		PreferredTime: "morning",
		StartDate:     "2025-04-01",
		Urgency:       "soon",
	})

	require.True(t, res.Success)
	require.Len(t, sent, 2)

	notif := sent[0]
	assert.Equal(t, "New Consultation Request - SOON (Within a week)", notif.Subject)
	assert.Contains(t, notif.Text, "SOON (Within a week)")
	assert.Contains(t, notif.Text, "Adult Child")
	assert.Contains(t, notif.Text, "Companion Care")
	assert.Contains(t, notif.Text, "Respite Care")
	assert.Contains(t, notif.Text, "Moderate Care")
	assert.Contains(t, notif.Text, "Few times per week")
	assert.Contains(t, notif.Text, "4-8 hours")
	assert.Contains(t, notif.Text, "Morning (6 AM - 12 PM)")
	assert.Contains(t, notif.Text, "April 1, 2025")
	// Unset fields fall back to placeholders, never empty slots.
	assert.Contains(t, notif.Text, "Not provided")

	conf := sent[1]
	assert.Equal(t, "Consultation Request Received - Guided by Compassion", conf.Subject)
	assert.Contains(t, conf.Text, "SOON (Within a week)")
	assert.Contains(t, conf.Text, "Mary Smith")
}

func TestDispatchReferral(t *testing.T) {
	t.Parallel()

	c, sender := newComposer(t, testConfig(), true)
	var sent []*mailer.Email
	capture(sender, &sent)

	res := c.DispatchReferral(context.Background(), forms.ReferralForm{
		ReferrerName:     "Pat Jones",
		ReferrerEmail:    "pat@example.com",
		ReferrerRelation: "healthcare-provider",
		ClientName:       "Sam Green",
		CareNeeds:        "specialized-care",
		Urgency:          "planning",
		AgreeToTerms:     true,
	})

	require.True(t, res.Success)
	require.Len(t, sent, 2)

	notif := sent[0]
	assert.Equal(t, "New Referral Submission - PLANNING AHEAD", notif.Subject)
	assert.Contains(t, notif.Text, "Pat Jones has referred Sam Green")
	assert.Contains(t, notif.Text, "Healthcare Provider")
	assert.Contains(t, notif.Text, "Specialized Care")
	assert.Contains(t, notif.Text, "PLANNING AHEAD")
	assert.Contains(t, notif.Text, "Terms Agreed:** Yes")

	conf := sent[1]
	assert.Equal(t, "Thank You for Your Referral - Guided by Compassion", conf.Subject)
	assert.Equal(t, []string{"Pat Jones <pat@example.com>"}, conf.To)
	assert.Contains(t, conf.Text, "Sam Green")
}

func TestDispatchApplication(t *testing.T) {
	t.Parallel()

	t.Run("copies applications inbox, no confirmation", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.ApplicationsEmail = "jobs@guidedbycompassion.com"
		c, sender := newComposer(t, cfg, true)
		var sent []*mailer.Email
		capture(sender, &sent)

		res := c.DispatchApplication(context.Background(), forms.ApplicationForm{
			FirstName:  "Maria",
			MiddleName: "Luz",
			LastName:   "Garcia",
			Email:      "maria@example.com",
			Employers: []forms.Employer{
				{Employer: "Sunrise Care", Supervisor: "D. Lee", DateFrom: "2021-01", DateTo: "2023-06"},
				{Employer: "Harbor Home Health"},
			},
			References: []forms.Reference{
				{Name: "Alex Kim", PhoneNumber: "713-555-0155"},
			},
			ResumeURL: "https://files.example.com/resume.pdf",
		})

		require.True(t, res.Success)
		// Applicants get no confirmation email.
		require.Len(t, sent, 1)

		notif := sent[0]
		assert.Equal(t, "New Employment Application - Maria Luz Garcia", notif.Subject)
		assert.Equal(t, []string{
			"Guided by Compassion <care@guidedbycompassion.com>",
			"Applications <jobs@guidedbycompassion.com>",
		}, notif.To)

		assert.Contains(t, notif.Text, "Employer 1")
		assert.Contains(t, notif.Text, "Employer 2")
		assert.Contains(t, notif.Text, "Sunrise Care")
		assert.Contains(t, notif.Text, "2021-01 to 2023-06")
		assert.Contains(t, notif.Text, "Reference 1:** Alex Kim")

		// Resume travels as a link, in both renderings.
		assert.Contains(t, notif.Text, "https://files.example.com/resume.pdf")
		assert.Contains(t, notif.HTML, `href="https://files.example.com/resume.pdf"`)
	})

	t.Run("applications inbox deduplicated case-insensitively", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.ApplicationsEmail = "CARE@guidedbycompassion.com"
		c, sender := newComposer(t, cfg, true)
		var sent []*mailer.Email
		capture(sender, &sent)

		res := c.DispatchApplication(context.Background(), forms.ApplicationForm{FirstName: "Maria", LastName: "Garcia"})
		require.True(t, res.Success)
		require.Len(t, sent, 1)
		assert.Equal(t, []string{"Guided by Compassion <care@guidedbycompassion.com>"}, sent[0].To)
	})

	t.Run("applications inbox never copied on other forms", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.ApplicationsEmail = "jobs@guidedbycompassion.com"
		c, sender := newComposer(t, cfg, true)
		var sent []*mailer.Email
		capture(sender, &sent)

		res := c.DispatchContact(context.Background(), forms.ContactForm{Name: "Jane"})
		require.True(t, res.Success)
		require.Len(t, sent, 1)
		assert.Equal(t, []string{"Guided by Compassion <care@guidedbycompassion.com>"}, sent[0].To)
	})
}

func TestDispatch_Unconfigured(t *testing.T) {
	t.Parallel()

	c, sender := newComposer(t, testConfig(), false)

	res := c.DispatchContact(context.Background(), forms.ContactForm{Name: "Jane", Email: "jane@example.com"})
	assert.False(t, res.Success)
	assert.Equal(t, "email service not configured", res.Error)

	// Short-circuit before any transport call.
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatch_ProviderFailure(t *testing.T) {
	t.Parallel()

	c, sender := newComposer(t, testConfig(), true)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("rate limited"))

	res := c.DispatchContact(context.Background(), forms.ContactForm{Name: "Jane"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "rate limited")
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestDispatch_ConfirmationFailureDoesNotFail(t *testing.T) {
	t.Parallel()

	c, sender := newComposer(t, testConfig(), true)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("mailbox full")).Once()

	res := c.DispatchContact(context.Background(), forms.ContactForm{Name: "Jane", Email: "jane@example.com"})
	assert.True(t, res.Success, "a failed confirmation must not fail the dispatch")
	sender.AssertNumberOfCalls(t, "Send", 2)
}
