// Package mailer delivers queued notifications over SMTP. It sweeps the
// unsent backlog on a fixed interval so the in-app inbox stays the
// source of truth and mail is purely best-effort delivery.
package mailer

import (
	"context"
	"log/slog"
	"time"

	"secret-santa/internal/domain/notification"
	"secret-santa/internal/pkg/clock"
	"secret-santa/internal/pkg/config"
	"secret-santa/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

// Sender abstracts the SMTP client so tests can capture outgoing mail.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type smtpSender struct {
	cfg config.MailConfig
}

func NewSMTPSender(cfg config.MailConfig) Sender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{
		mail.WithPort(s.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.SMTPUser),
		mail.WithPassword(s.cfg.SMTPPassword),
	}
	if !s.cfg.UseTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	client, err := mail.NewClient(s.cfg.SMTPHost, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// Sweeper periodically drains the unsent notification backlog in small
// batches. A notification is marked sent only after the SMTP handoff
// succeeded; failures stay queued for the next sweep.
type Sweeper struct {
	notifications shared.NotificationRepository
	participants  shared.ParticipantRepository
	sender        Sender
	template      *Template
	clk           clock.Clock
	cfg           config.MailConfig
	logger        *slog.Logger
}

func NewSweeper(
	notifications shared.NotificationRepository,
	participants shared.ParticipantRepository,
	sender Sender,
	template *Template,
	clk clock.Clock,
	cfg config.MailConfig,
	logger *slog.Logger,
) *Sweeper {
	return &Sweeper{
		notifications: notifications,
		participants:  participants,
		sender:        sender,
		template:      template,
		clk:           clk,
		cfg:           cfg,
		logger:        logger,
	}
}

// Run blocks until the context is cancelled. A zero check interval
// disables mail delivery entirely.
func (s *Sweeper) Run(ctx context.Context) {
	if s.cfg.CheckInterval <= 0 {
		s.logger.Info("mail delivery disabled")
		return
	}
	s.logger.Info("mail sweeper started", "interval", s.cfg.CheckInterval.String())
	ticker := time.NewTicker(s.cfg.CheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if err := s.SweepOnce(ctx); err != nil {
			s.logger.Error("mail sweep failed", "error", err.Error())
		}
	}
}

// SweepOnce sends one batch of unsent notifications.
func (s *Sweeper) SweepOnce(ctx context.Context) error {
	batch, err := s.notifications.ListUnsent(ctx, s.cfg.BatchSize)
	if err != nil {
		return err
	}
	var sent []uuid.UUID
	for _, n := range batch {
		if err := s.deliver(ctx, n); err != nil {
			s.logger.Error("failed to deliver mail",
				"notification_id", n.ID.String(),
				"participant_id", n.ParticipantID.String(),
				"error", err.Error())
			continue
		}
		sent = append(sent, n.ID)
	}
	if len(sent) == 0 {
		return nil
	}
	return s.notifications.MarkSent(ctx, sent)
}

func (s *Sweeper) deliver(ctx context.Context, n *notification.Notification) error {
	p, err := s.participants.FindByID(ctx, n.ParticipantID)
	if err != nil {
		return err
	}
	body := s.template.Render(n.Title, n.Message, p.Name(), s.clk.Now())
	return s.sender.Send(ctx, p.Email(), n.Title, body)
}
