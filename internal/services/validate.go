package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ravepayments/internal/domain"
)

var (
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegexp = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// IsEmail reports whether the contact value is email-shaped.
func IsEmail(contact string) bool { return emailRegexp.MatchString(contact) }

// IsPhone reports whether the contact value is phone-shaped: an optional
// leading + followed by 7 to 15 digits.
func IsPhone(contact string) bool { return phoneRegexp.MatchString(contact) }

// Validator checks raw submission fields against the price catalog and
// produces a normalized Submission or a structured rejection. It is the only
// gate before persistence: an accepted submission always carries an amount
// equal to the catalog price for its resolved kind/tier.
type Validator struct {
	catalog *domain.Catalog
}

// NewValidator creates a Validator over the given catalog.
func NewValidator(catalog *domain.Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// Validate normalizes and checks raw. On rejection the returned error is a
// *domain.ValidationError with a user-facing message.
func (v *Validator) Validate(raw domain.RawSubmission) (*domain.Submission, error) {
	buyerName := strings.TrimSpace(raw.BuyerName)
	buyerContact := strings.TrimSpace(raw.BuyerContact)
	kindField := strings.TrimSpace(raw.TicketOrTable)
	tableType := strings.TrimSpace(raw.TableType)
	amountField := strings.TrimSpace(raw.AmountPaid)
	memberName := strings.TrimSpace(raw.MemberName)

	if buyerName == "" || buyerContact == "" || kindField == "" || amountField == "" || memberName == "" {
		return nil, &domain.ValidationError{
			Reason:  domain.ReasonMissingFields,
			Message: "Missing required fields.",
		}
	}

	var channel domain.ContactChannel
	switch {
	case IsEmail(buyerContact):
		channel = domain.ChannelEmail
	case IsPhone(buyerContact):
		channel = domain.ChannelSMS
	default:
		return nil, &domain.ValidationError{
			Reason:  domain.ReasonInvalidContact,
			Message: "Buyer contact must be a valid email or phone number.",
		}
	}

	amount, err := strconv.ParseFloat(amountField, 64)
	if err != nil {
		return nil, &domain.ValidationError{
			Reason:  domain.ReasonPriceMismatch,
			Message: "Amount paid must be a number.",
		}
	}

	var kind domain.Kind
	var tierLabel string
	switch strings.ToLower(kindField) {
	case "ticket":
		kind = domain.KindTicket
		// Any supplied table type is ignored for tickets.
		tierLabel = "Ticket"
		price, _ := v.catalog.PriceFor(domain.KindTicket, "")
		if amount != price {
			return nil, &domain.ValidationError{
				Reason:  domain.ReasonPriceMismatch,
				Message: fmt.Sprintf("Ticket price must be %s RMB.", FormatAmount(price)),
			}
		}
	case "table":
		kind = domain.KindTable
		price, ok := v.catalog.PriceFor(domain.KindTable, tableType)
		if !ok {
			return nil, &domain.ValidationError{
				Reason:  domain.ReasonInvalidTier,
				Message: "Invalid table type.",
			}
		}
		tierLabel = tableType
		if amount != price {
			return nil, &domain.ValidationError{
				Reason:  domain.ReasonPriceMismatch,
				Message: fmt.Sprintf("%s table price must be %s RMB.", tableType, FormatAmount(price)),
			}
		}
	default:
		return nil, &domain.ValidationError{
			Reason:  domain.ReasonInvalidKind,
			Message: "Ticket or Table must be specified.",
		}
	}

	return &domain.Submission{
		BuyerName:    buyerName,
		BuyerContact: buyerContact,
		Channel:      channel,
		Kind:         kind,
		TierLabel:    tierLabel,
		Amount:       amount,
		MemberName:   memberName,
		Notes:        strings.TrimSpace(raw.Notes),
		ProofBase64:  raw.ProofBase64,
	}, nil
}

// FormatAmount renders a price without a trailing ".00" for whole amounts,
// matching how prices appear on the form and in messages (e.g. "2396").
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
