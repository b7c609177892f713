package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/member-directory/internal/config"
	"github.com/spec-kit/member-directory/internal/events"
	"github.com/spec-kit/member-directory/internal/mail"
)

// NotificationService sends best-effort lifecycle emails. Failures are logged
// and never propagate to the operation that triggered them.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     mail.Mailer
	logger     *zap.Logger
	cfg        config.MailConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer mail.Mailer, logger *zap.Logger, cfg config.MailConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to membership events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventMemberRegistered, n.handleMemberRegistered)
	n.dispatcher.Subscribe(events.EventMemberApproved, n.handleMemberApproved)
	n.dispatcher.Subscribe(events.EventMemberRejected, n.handleMemberRejected)
}

func (n *NotificationService) handleMemberRegistered(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.MemberRegisteredPayload)
	if !ok {
		return nil
	}

	if html, err := mail.SignupConfirmation(payload.Name); err == nil {
		n.send(ctx, payload.Email, mail.SubjectSignupConfirmation, html)
	}

	if n.cfg.AdminNotification == "" {
		return nil
	}
	html, err := mail.AdminNewMemberNotification(payload.Name, payload.Email, payload.Department, payload.Languages)
	if err != nil {
		return nil
	}
	n.send(ctx, n.cfg.AdminNotification, mail.SubjectAdminNewMember, html)
	return nil
}

func (n *NotificationService) handleMemberApproved(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.MemberApprovedPayload)
	if !ok {
		return nil
	}
	html, err := mail.ApprovalConfirmation(payload.Name)
	if err != nil {
		return nil
	}
	n.send(ctx, payload.Email, mail.SubjectApproval, html)
	return nil
}

func (n *NotificationService) handleMemberRejected(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.MemberRejectedPayload)
	if !ok {
		return nil
	}
	html, err := mail.RejectionNotification(payload.Name)
	if err != nil {
		return nil
	}
	n.send(ctx, payload.Email, mail.SubjectRejection, html)
	return nil
}

func (n *NotificationService) send(ctx context.Context, to, subject, html string) {
	if err := n.mailer.Send(ctx, mail.Message{To: to, Subject: subject, HTML: html}); err != nil {
		n.logger.Error("email sending failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
	}
}
