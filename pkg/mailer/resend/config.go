package resend

// Config holds Resend provider configuration.
type Config struct {
	APIKey string `env:"RESEND_API_KEY"`
	// BaseURL overrides the Resend API endpoint. Empty means the public API.
	BaseURL string `env:"RESEND_BASE_URL"`
	// SenderEmail and SenderName are used only when a message has no From.
	SenderEmail string `env:"MAIL_SENDER_EMAIL"`
	SenderName  string `env:"MAIL_SENDER_NAME"`
}
