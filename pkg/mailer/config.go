package mailer

// Config holds mailer configuration.
type Config struct {
	// From is the default sender address, e.g. "CutLine App <noreply@cutline.app>".
	From            string
	FallbackSubject string `env:"MAILER_FALLBACK_SUBJECT" envDefault:"Notification"`
	DefaultLayout   string `env:"MAILER_DEFAULT_LAYOUT" envDefault:"base.html"`
}
