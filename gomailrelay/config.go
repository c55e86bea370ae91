package gomailrelay

// Config holds SMTP relay connection settings for the gomail provider.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host       string `env:"SMTP_RELAY_HOST"`
	Port       int    `env:"SMTP_RELAY_PORT" envDefault:"587"`
	Sender     string `env:"SMTP_RELAY_SENDER"`
	Password   string `env:"SMTP_RELAY_PASSWORD"`
	SenderName string `env:"SMTP_RELAY_SENDER_NAME"`
}
