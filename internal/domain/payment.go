package domain

import (
	"context"
	"errors"
	"time"
)

// Kind is the top-level purchase category.
type Kind string

const (
	KindTicket Kind = "Ticket"
	KindTable  Kind = "Table"
)

// ContactChannel is the notification channel implied by the shape of the
// buyer contact: an email-shaped contact is notified by email, a phone-shaped
// one by SMS. A contact value can never be both.
type ContactChannel string

const (
	ChannelEmail ContactChannel = "email"
	ChannelSMS   ContactChannel = "sms"
)

// RejectReason classifies a client-input rejection.
type RejectReason string

const (
	ReasonMissingFields  RejectReason = "missing_fields"
	ReasonInvalidContact RejectReason = "invalid_contact"
	ReasonInvalidKind    RejectReason = "invalid_kind"
	ReasonInvalidTier    RejectReason = "invalid_tier"
	ReasonPriceMismatch  RejectReason = "price_mismatch"
)

// ValidationError is a structured submission rejection. Message is user-facing.
type ValidationError struct {
	Reason  RejectReason
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Sentinel errors for payment operations.
var (
	ErrPersistence = errors.New("persistence failure")
)

// RawSubmission carries the untyped form fields of a payment submission as
// received from the request, before validation.
type RawSubmission struct {
	BuyerName     string
	BuyerContact  string
	TicketOrTable string
	TableType     string
	AmountPaid    string
	MemberName    string
	Notes         string
	ProofBase64   string
}

// Submission is a validated, normalized payment submission: kind and tier are
// resolved, the amount is verified against the catalog, and the notification
// channel is fixed by the contact shape.
type Submission struct {
	BuyerName    string
	BuyerContact string
	Channel      ContactChannel
	Kind         Kind
	TierLabel    string
	Amount       float64
	MemberName   string
	Notes        string
	ProofBase64  string
}

// Record is one persisted payment entry. Records are append-only and never
// mutated or deleted. The JSON keys mirror the external store's column names
// and must not change: they are a compatibility contract.
type Record struct {
	Timestamp    string  `json:"Timestamp"`
	BuyerName    string  `json:"Buyer Name"`
	TicketNumber string  `json:"Ticket Number"`
	BuyerContact string  `json:"Buyer Contact"`
	TierLabel    string  `json:"Ticket/Table Type"`
	Kind         string  `json:"Ticket or Table"`
	AmountPaid   float64 `json:"Amount Paid"`
	MemberName   string  `json:"Member Name"`
	Notes        string  `json:"Notes"`
	ProofBase64  string  `json:"Proof of Payment"`
}

// NewRecord assembles a Record from a validated submission, a creation time,
// and a generated ticket/table code. The amount equals the catalog price for
// the record's kind/tier; that is guaranteed by validation, never fixed later.
func NewRecord(sub *Submission, createdAt time.Time, code string) *Record {
	return &Record{
		Timestamp:    createdAt.Format(time.RFC3339),
		BuyerName:    sub.BuyerName,
		TicketNumber: code,
		BuyerContact: sub.BuyerContact,
		TierLabel:    sub.TierLabel,
		Kind:         string(sub.Kind),
		AmountPaid:   sub.Amount,
		MemberName:   sub.MemberName,
		Notes:        sub.Notes,
		ProofBase64:  sub.ProofBase64,
	}
}

// MemberTotal is one leaderboard entry.
type MemberTotal struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// Totals are derived sales figures, recomputed from all records on demand and
// never stored.
type Totals struct {
	TicketCount   int           `json:"ticket_count"`
	TicketRevenue float64       `json:"ticket_revenue"`
	TableRevenue  float64       `json:"table_revenue"`
	Leaderboard   []MemberTotal `json:"leaderboard"`
}

// RecordRepository is the persistence gateway: append-only storage of payment
// records plus a full enumeration for aggregation.
type RecordRepository interface {
	Append(ctx context.Context, record *Record) error
	ListAll(ctx context.Context) ([]*Record, error)
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SMSSender delivers a short text message to a phone number.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// PaymentConfirmationData holds data for the buyer confirmation email.
type PaymentConfirmationData struct {
	BuyerName  string
	KindLabel  string
	Amount     string
	MemberName string
	Notes      string
}

// SaleSummaryData holds data for the staff sale notification email.
type SaleSummaryData struct {
	BuyerName     string
	KindLabel     string
	Amount        string
	MemberName    string
	Notes         string
	TicketCount   int
	TicketRevenue string
	TableRevenue  string
}

// NotificationService fans out payment notifications. Delivery is synchronous
// and best-effort: implementations log failures and never retry.
type NotificationService interface {
	NotifyBuyer(ctx context.Context, record *Record) error
	NotifyStaff(ctx context.Context, record *Record, totals Totals) error
}

// PaymentService is the submission pipeline: validate, build a record, persist
// it, recompute totals, and notify buyer and staff.
type PaymentService interface {
	Submit(ctx context.Context, raw RawSubmission) (*Record, error)
}

// SalesService recomputes derived sales figures from persisted records.
type SalesService interface {
	Recompute(records []*Record) Totals
	CurrentTotals(ctx context.Context) (Totals, []*Record, error)
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated admin.
type TokenIssuer interface {
	Issue(username string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated admin username.
type TokenVerifier interface {
	Verify(token string) (username string, err error)
}
