package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ravepayments/internal/domain"
)

func TestTemplateRenderer_PaymentConfirmation(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("payment_confirmation", &domain.PaymentConfirmationData{
		BuyerName:  "Li Wei",
		KindLabel:  "Table Gold",
		Amount:     "2396",
		MemberName: "Jay",
		Notes:      "front row",
	})
	require.NoError(t, err)
	assert.Equal(t, "Payment Confirmation", subject)
	assert.Contains(t, html, "Table Gold")
	assert.Contains(t, html, "2396")
	assert.Contains(t, html, "front row")
	assert.Contains(t, text, "Jay")
}

func TestTemplateRenderer_SaleSummary(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("sale_summary", &domain.SaleSummaryData{
		BuyerName:     "Li Wei",
		KindLabel:     "Ticket",
		Amount:        "100",
		MemberName:    "Cass",
		TicketCount:   3,
		TicketRevenue: "300",
		TableRevenue:  "2396",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rave Sale Notification", subject)
	assert.Contains(t, html, "Li Wei")
	assert.Contains(t, html, "300")
	assert.Contains(t, text, "Table sales:")
}

func TestTemplateRenderer_OmitsEmptyNotes(t *testing.T) {
	r := NewTemplateRenderer()

	_, html, _, err := r.Render("payment_confirmation", &domain.PaymentConfirmationData{
		BuyerName: "Li Wei",
		KindLabel: "Ticket",
		Amount:    "100",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "Notes:")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, _, err := r.Render("does_not_exist", nil)
	require.Error(t, err)
}
