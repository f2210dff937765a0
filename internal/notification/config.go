package notification

// Config identifies the operator who receives form notifications.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	OperatorName  string `env:"OPERATOR_NAME" envDefault:"Guided by Compassion"`
	OperatorEmail string `env:"OPERATOR_EMAIL"`
	OperatorPhone string `env:"OPERATOR_PHONE" envDefault:"346-870-2912"`

	// ApplicationsEmail, when set and different from the operator address,
	// also receives employment application notifications.
	ApplicationsEmail string `env:"APPLICATIONS_EMAIL"`
}
