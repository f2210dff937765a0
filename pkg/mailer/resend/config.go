package resend

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME"`
}

// Configured reports whether a send credential is present. Without one,
// dispatch short-circuits instead of attempting a network call.
func (c Config) Configured() bool {
	return c.APIKey != ""
}
