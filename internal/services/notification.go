package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ravepayments/internal/domain"
)

type notificationService struct {
	logger      *slog.Logger
	mailer      domain.Mailer
	renderer    domain.EmailTemplateRenderer
	sms         domain.SMSSender
	staffEmails []string
	staffPhones []string
}

// NewNotificationService returns a NotificationService that emails through the
// given Mailer and template renderer and texts through the given SMSSender.
// Staff contact lists come from configuration and are fixed for the process.
func NewNotificationService(
	logger *slog.Logger,
	mailer domain.Mailer,
	renderer domain.EmailTemplateRenderer,
	sms domain.SMSSender,
	staffEmails, staffPhones []string,
) domain.NotificationService {
	return &notificationService{
		logger:      logger,
		mailer:      mailer,
		renderer:    renderer,
		sms:         sms,
		staffEmails: staffEmails,
		staffPhones: staffPhones,
	}
}

// kindLabel renders the purchase for message bodies, e.g. "Ticket" or
// "Table Gold".
func kindLabel(r *domain.Record) string {
	if strings.EqualFold(r.Kind, "ticket") {
		return "Ticket"
	}
	return strings.TrimSpace(r.Kind + " " + r.TierLabel)
}

// NotifyBuyer sends the payment confirmation on the channel implied by the
// contact shape: email-shaped contacts get the confirmation email, phone-shaped
// ones the confirmation SMS.
func (s *notificationService) NotifyBuyer(ctx context.Context, record *domain.Record) error {
	if IsEmail(record.BuyerContact) {
		data := &domain.PaymentConfirmationData{
			BuyerName:  record.BuyerName,
			KindLabel:  kindLabel(record),
			Amount:     FormatAmount(record.AmountPaid),
			MemberName: record.MemberName,
			Notes:      record.Notes,
		}
		subject, htmlBody, textBody, err := s.renderer.Render("payment_confirmation", data)
		if err != nil {
			return fmt.Errorf("render payment_confirmation template: %w", err)
		}
		if err := s.mailer.Send(record.BuyerContact, subject, htmlBody, textBody); err != nil {
			return fmt.Errorf("send confirmation email: %w", err)
		}
		return nil
	}

	msg := fmt.Sprintf(
		"Thank you for your payment! %s, %s RMB. Ticket number: %s. Member: %s. Summer Chase 2.0 Awaits!!! Happy Raving!!!",
		kindLabel(record), FormatAmount(record.AmountPaid), record.TicketNumber, record.MemberName,
	)
	if err := s.sms.Send(ctx, record.BuyerContact, msg); err != nil {
		return fmt.Errorf("send confirmation sms: %w", err)
	}
	return nil
}

// NotifyStaff fans the sale summary out to every configured staff email and
// phone. Each delivery is independently best-effort: a failure is logged and
// the remaining contacts are still attempted. The returned error is always
// nil; it exists so callers treat staff notification like any other send.
func (s *notificationService) NotifyStaff(ctx context.Context, record *domain.Record, totals domain.Totals) error {
	data := &domain.SaleSummaryData{
		BuyerName:     record.BuyerName,
		KindLabel:     kindLabel(record),
		Amount:        FormatAmount(record.AmountPaid),
		MemberName:    record.MemberName,
		Notes:         record.Notes,
		TicketCount:   totals.TicketCount,
		TicketRevenue: FormatAmount(totals.TicketRevenue),
		TableRevenue:  FormatAmount(totals.TableRevenue),
	}
	subject, htmlBody, textBody, err := s.renderer.Render("sale_summary", data)
	if err != nil {
		s.logger.ErrorContext(ctx, "render sale_summary template", "err", err)
		return nil
	}
	for _, email := range s.staffEmails {
		if err := s.mailer.Send(email, subject, htmlBody, textBody); err != nil {
			s.logger.ErrorContext(ctx, "staff email notification failed", "to", email, "err", err)
		}
	}

	smsSummary := fmt.Sprintf(
		"New sale! %s, %s RMB. By %s. Tickets: %d (¥%s), Tables: ¥%s.",
		kindLabel(record), FormatAmount(record.AmountPaid), record.MemberName,
		totals.TicketCount, FormatAmount(totals.TicketRevenue), FormatAmount(totals.TableRevenue),
	)
	for _, phone := range s.staffPhones {
		if err := s.sms.Send(ctx, phone, smsSummary); err != nil {
			s.logger.ErrorContext(ctx, "staff sms notification failed", "to", phone, "err", err)
		}
	}
	return nil
}
