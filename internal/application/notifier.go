package application

import (
	"context"

	"github.com/oksasatya/go-blog-platform/pkg/helpers"
	"github.com/oksasatya/go-blog-platform/pkg/mailer"
)

// Notifier delivers outbound auth emails. Delivery is best-effort: the auth
// workflow logs failures but never surfaces them to the caller.
type Notifier interface {
	SendActivation(ctx context.Context, email, name, token string) error
	SendPasswordReset(ctx context.Context, email, name, token string) error
}

// QueueNotifier publishes email jobs to RabbitMQ; the email worker consumes
// them and sends through Mailgun.
type QueueNotifier struct {
	Pub *helpers.RabbitPublisher
	// ConfirmURLBase is the API confirm endpoint; the token is appended as a
	// path segment.
	ConfirmURLBase string
	// ResetURLBase is the front-end reset page; the token is appended as a
	// query parameter.
	ResetURLBase string
	Enabled      bool
}

func (n *QueueNotifier) SendActivation(ctx context.Context, email, name, token string) error {
	if !n.Enabled || n.Pub == nil {
		return nil
	}
	job := mailer.EmailJob{
		To:       email,
		Template: mailer.TemplateActivation,
		Data: map[string]any{
			"Name":       name,
			"ConfirmURL": n.ConfirmURLBase + "/" + token,
		},
	}
	return n.Pub.PublishJSON(ctx, job)
}

func (n *QueueNotifier) SendPasswordReset(ctx context.Context, email, name, token string) error {
	if !n.Enabled || n.Pub == nil {
		return nil
	}
	job := mailer.EmailJob{
		To:       email,
		Template: mailer.TemplatePasswordReset,
		Data: map[string]any{
			"Name":     name,
			"ResetURL": n.ResetURLBase + "?token=" + token,
		},
	}
	return n.Pub.PublishJSON(ctx, job)
}

var _ Notifier = (*QueueNotifier)(nil)
