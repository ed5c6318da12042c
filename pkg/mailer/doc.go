// Package mailer composes transactional emails and hands them to a delivery provider.
//
// The package separates delivery (Sender, implemented by provider packages such as
// mailer/resend and mailer/smtp) from message composition (Renderer), so the provider
// can be swapped through configuration while the message stays the same.
//
// # Components
//
//   - Sender: the delivery capability a provider implements
//   - Renderer: turns markdown templates with YAML frontmatter into plain text and HTML
//   - Mailer: renders a template, fills in defaults and calls the Sender once
//
// # Usage
//
//	sender, err := resend.New(resend.Config{APIKey: os.Getenv("RESEND_API_KEY")})
//	if err != nil {
//		return err
//	}
//	renderer := mailer.NewRenderer(templates.FS)
//
//	m := mailer.New(sender, renderer, mailer.Config{
//		From:          mailer.Recipient("CutLine App", "noreply@cutline.app"),
//		DefaultLayout: "base.html",
//	})
//
//	err = m.Send(ctx, mailer.SendParams{
//		To:       "user@example.com",
//		Template: "verification_code.md",
//		Data:     map[string]string{"Code": "483921"},
//	})
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter:
//
//	---
//	Subject: Your verification code
//	---
//	Your code is: {{.Code}}
//
// The executed template (before HTML conversion) becomes the plain text part, verbatim.
// Values that must appear character for character in both parts, such as codes,
// go through the literal func: {{literal .Code}}. It leaves the plain text as is
// and escapes the markdown so the HTML shows the same characters.
// Subject values support Go template syntax.
//
// # Recipients
//
// Mailer does not validate recipient addresses. An empty or malformed address is
// passed to the provider, which is the authority on what it accepts.
//
// # Errors
//
//   - ErrTemplateNotFound: Template file not found
//   - ErrLayoutNotFound: Layout file not found
//   - ErrRenderFailed: Template rendering failed
//   - ErrSendFailed: The provider rejected or failed to deliver the message
//   - ErrInvalidFrontmatter: Invalid YAML frontmatter
package mailer
