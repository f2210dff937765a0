package notification

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/guidedbycompassion/website/internal/forms"
	"github.com/guidedbycompassion/website/pkg/mailer"
)

//go:embed templates
var templatesFS embed.FS

// DispatchResult reports the outcome of a form dispatch. It maps directly
// onto the JSON body the form endpoints return.
type DispatchResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Composer turns form submissions into operator notifications and submitter
// confirmations and hands them to the email provider. One attempt per email,
// no retries.
type Composer struct {
	mailer     *mailer.Mailer
	cfg        Config
	configured bool
	log        *slog.Logger
	now        func() time.Time
}

// Option configures a Composer.
type Option func(*Composer)

// WithClock overrides the submission timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) { c.now = now }
}

// NewComposer builds a Composer over the embedded email templates.
// configured reports whether the email provider holds a send credential;
// when false every dispatch short-circuits without a transport call.
func NewComposer(sender mailer.Sender, mailerCfg mailer.Config, cfg Config, configured bool, log *slog.Logger, opts ...Option) *Composer {
	templates, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The embedded tree always contains templates/.
		panic(err)
	}

	c := &Composer{
		mailer:     mailer.New(sender, mailer.NewRenderer(templates), mailerCfg),
		cfg:        cfg,
		configured: configured,
		log:        log,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DispatchContact sends the contact notification to the operator and a
// confirmation to the submitter.
func (c *Composer) DispatchContact(ctx context.Context, form forms.ContactForm) DispatchResult {
	view := c.newContactView(form, c.now())

	notification := mailer.ComposeParams{
		To:       c.operatorRecipients(false),
		Template: "contact_notification.md",
		Data:     view,
		ReplyTo:  replyTo(view.Name, form.Email),
	}

	var confirmation *mailer.ComposeParams
	if form.Email != "" {
		confirmation = &mailer.ComposeParams{
			To:       []string{mailer.Recipient(view.Salutation, form.Email)},
			Template: "contact_confirmation.md",
			Data:     view,
		}
	}

	return c.dispatch(ctx, "contact", notification, confirmation)
}

// DispatchConsultation sends the consultation notification and confirmation.
func (c *Composer) DispatchConsultation(ctx context.Context, form forms.ConsultationForm) DispatchResult {
	view := c.newConsultationView(form, c.now())

	notification := mailer.ComposeParams{
		To:       c.operatorRecipients(false),
		Template: "consultation_notification.md",
		Data:     view,
		ReplyTo:  replyTo(view.FullName, form.Email),
	}

	var confirmation *mailer.ComposeParams
	if form.Email != "" {
		confirmation = &mailer.ComposeParams{
			To:       []string{mailer.Recipient(view.FullName, form.Email)},
			Template: "consultation_confirmation.md",
			Data:     view,
		}
	}

	return c.dispatch(ctx, "consultation", notification, confirmation)
}

// DispatchReferral sends the referral notification and confirms with the
// referrer, not the referred client.
func (c *Composer) DispatchReferral(ctx context.Context, form forms.ReferralForm) DispatchResult {
	view := c.newReferralView(form, c.now())

	notification := mailer.ComposeParams{
		To:       c.operatorRecipients(false),
		Template: "referral_notification.md",
		Data:     view,
		ReplyTo:  replyTo(view.SummaryReferrer, form.ReferrerEmail),
	}

	var confirmation *mailer.ComposeParams
	if form.ReferrerEmail != "" {
		confirmation = &mailer.ComposeParams{
			To:       []string{mailer.Recipient(view.Salutation, form.ReferrerEmail)},
			Template: "referral_confirmation.md",
			Data:     view,
		}
	}

	return c.dispatch(ctx, "referral", notification, confirmation)
}

// DispatchApplication sends the employment application notification. The
// applications inbox is copied when configured, and applicants receive no
// confirmation email.
func (c *Composer) DispatchApplication(ctx context.Context, form forms.ApplicationForm) DispatchResult {
	view := c.newApplicationView(form, c.now())

	notification := mailer.ComposeParams{
		To:       c.operatorRecipients(true),
		Template: "application_notification.md",
		Data:     view,
		ReplyTo:  replyTo(view.ApplicantName, form.Email),
	}

	return c.dispatch(ctx, "application", notification, nil)
}

func (c *Composer) dispatch(ctx context.Context, kind string, notification mailer.ComposeParams, confirmation *mailer.ComposeParams) DispatchResult {
	if !c.configured {
		c.log.WarnContext(ctx, "email dispatch skipped, provider not configured", "form", kind)
		return DispatchResult{Success: false, Error: "email service not configured"}
	}

	if err := c.mailer.Send(ctx, notification); err != nil {
		c.log.ErrorContext(ctx, "operator notification failed", "form", kind, "error", err)
		return DispatchResult{Success: false, Error: err.Error()}
	}

	// The operator already holds the submission, so a failed confirmation
	// is logged but does not fail the dispatch.
	if confirmation != nil {
		if err := c.mailer.Send(ctx, *confirmation); err != nil {
			c.log.ErrorContext(ctx, "confirmation email failed", "form", kind, "error", err)
		}
	}

	c.log.InfoContext(ctx, "form dispatched", "form", kind)
	return DispatchResult{Success: true}
}

// operatorRecipients returns the operator address, plus the applications
// inbox for employment applications when it is set and not just the
// operator address again.
func (c *Composer) operatorRecipients(includeApplications bool) []string {
	to := []string{mailer.Recipient(c.cfg.OperatorName, c.cfg.OperatorEmail)}
	if includeApplications && c.cfg.ApplicationsEmail != "" &&
		!strings.EqualFold(c.cfg.ApplicationsEmail, c.cfg.OperatorEmail) {
		to = append(to, mailer.Recipient("Applications", c.cfg.ApplicationsEmail))
	}
	return to
}

func replyTo(name, email string) string {
	if email == "" {
		return ""
	}
	return mailer.Recipient(name, email)
}
