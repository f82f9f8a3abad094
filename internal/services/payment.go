package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ravepayments/internal/domain"
)

// maxCodeAttempts bounds the regenerate-on-collision pass when issuing a
// ticket/table code. Uniqueness stays probabilistic: two concurrent
// submissions can still race past the check.
const maxCodeAttempts = 3

type paymentService struct {
	logger     *slog.Logger
	validator  *Validator
	recordRepo domain.RecordRepository
	sales      domain.SalesService
	notifier   domain.NotificationService
	now        func() time.Time
}

// NewPaymentService wires the submission pipeline: validate against the
// catalog, persist the record, recompute totals, and fan out notifications.
func NewPaymentService(
	logger *slog.Logger,
	validator *Validator,
	recordRepo domain.RecordRepository,
	sales domain.SalesService,
	notifier domain.NotificationService,
) domain.PaymentService {
	return &paymentService{
		logger:     logger,
		validator:  validator,
		recordRepo: recordRepo,
		sales:      sales,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Submit runs the full intake flow for one raw submission. A rejection is
// returned as *domain.ValidationError before anything is persisted or sent.
// Persistence failure wraps domain.ErrPersistence and nothing is recorded.
// Notification failures after a successful append are logged and never
// surfaced: the record is already durable, so they are non-fatal.
func (s *paymentService) Submit(ctx context.Context, raw domain.RawSubmission) (*domain.Record, error) {
	sub, err := s.validator.Validate(raw)
	if err != nil {
		return nil, err
	}

	// One enumeration serves both the collision check and the post-append
	// totals recompute.
	existing, err := s.recordRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	code, err := s.issueCode(sub.Kind, existing)
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}

	record := domain.NewRecord(sub, s.now(), code)
	if err := s.recordRepo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	totals := s.sales.Recompute(append(existing, record))

	if err := s.notifier.NotifyBuyer(ctx, record); err != nil {
		s.logger.ErrorContext(ctx, "buyer notification failed", "contact", record.BuyerContact, "err", err)
	}
	if err := s.notifier.NotifyStaff(ctx, record, totals); err != nil {
		s.logger.ErrorContext(ctx, "staff notification failed", "err", err)
	}

	return record, nil
}

// issueCode generates a code for the purchase kind, regenerating up to
// maxCodeAttempts times when the code already appears among existing records.
func (s *paymentService) issueCode(kind domain.Kind, existing []*domain.Record) (string, error) {
	taken := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		taken[r.TicketNumber] = struct{}{}
	}

	generate := GenerateTicketCode
	if kind == domain.KindTable {
		generate = GenerateTableCode
	}

	var code string
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		c, err := generate()
		if err != nil {
			return "", err
		}
		code = c
		if _, dup := taken[code]; !dup {
			return code, nil
		}
	}
	s.logger.Warn("issuing ticket code that collides with an existing record", "code", code)
	return code, nil
}
