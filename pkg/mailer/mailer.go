package mailer

import (
	"bytes"
	"context"
	"errors"
	"maps"
	texttemplate "text/template"

	"github.com/google/uuid"
)

// Mailer provides high-level email sending with template rendering.
// It is stateless apart from the renderer cache and safe for concurrent use.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	newRefID func() string
	config   Config
}

// New creates a new Mailer with the given sender and renderer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
		newRefID: uuid.NewString,
	}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	Headers  map[string]string // Extra headers
	Tags     Tags              // Provider tags
	Data     any               // Template data
	To       string            // Single recipient, not validated
	Template string            // Template filename (e.g., "verification_code.md")

	// Optional overrides
	Subject string // Override template subject
	Layout  string // Override default layout
	From    string // Override default sender
	ReplyTo string // Reply-to address
}

// Send renders a template and hands the message to the sender exactly once.
// Subject resolution: params.Subject > template metadata > config fallback.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		if fromMeta, ok := result.Metadata["Subject"].(string); ok {
			subject = fromMeta
		} else {
			subject = m.config.FallbackSubject
		}
	}

	processedSubject, err := m.processSubject(subject, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	from := params.From
	if from == "" {
		from = m.config.From
	}

	headers := make(map[string]string, len(params.Headers)+1)
	maps.Copy(headers, params.Headers)
	headers[HeaderEntityRefID] = m.newRefID()

	email := &Email{
		To:      []string{params.To},
		Subject: processedSubject,
		HTML:    result.HTML,
		Text:    result.Text,
		From:    from,
		ReplyTo: params.ReplyTo,
		Headers: headers,
		Tags:    params.Tags,
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}

func (m *Mailer) processSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
