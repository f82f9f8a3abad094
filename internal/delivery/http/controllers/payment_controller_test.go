package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ravepayments/internal/adapters/email"
	"ravepayments/internal/delivery/http/helpers"
	"ravepayments/internal/delivery/http/web"
	"ravepayments/internal/domain"
	"ravepayments/internal/services"
)

type memRepo struct {
	records []*domain.Record
}

func (m *memRepo) Append(ctx context.Context, record *domain.Record) error {
	m.records = append(m.records, record)
	return nil
}

func (m *memRepo) ListAll(ctx context.Context) ([]*domain.Record, error) {
	return append([]*domain.Record{}, m.records...), nil
}

type countingMailer struct {
	recipients []string
}

func (m *countingMailer) Send(to, subject, html, text string) error {
	m.recipients = append(m.recipients, to)
	return nil
}

type countingSMS struct {
	recipients []string
}

func (s *countingSMS) Send(ctx context.Context, phone, message string) error {
	s.recipients = append(s.recipients, phone)
	return nil
}

type paymentFixture struct {
	controller *PaymentController
	repo       *memRepo
	mailer     *countingMailer
	sms        *countingSMS
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	repo := &memRepo{}
	mailer := &countingMailer{}
	smsSender := &countingSMS{}

	catalog := domain.DefaultCatalog()
	notifier := services.NewNotificationService(
		logger, mailer, email.NewTemplateRenderer(), smsSender,
		[]string{"staff1@example.com", "staff2@example.com"},
		[]string{"+8613900000000"},
	)
	svc := services.NewPaymentService(
		logger,
		services.NewValidator(catalog),
		repo,
		services.NewSalesService(repo),
		notifier,
	)

	pages, err := web.NewRenderer()
	require.NoError(t, err)

	return &paymentFixture{
		controller: NewPaymentController(logger, svc, pages, catalog, []string{"Jay", "Cass"}),
		repo:       repo,
		mailer:     mailer,
		sms:        smsSender,
	}
}

func postSubmit(t *testing.T, f *paymentFixture, body string) (*httptest.ResponseRecorder, helpers.SubmitResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.controller.Submit(w, req)

	var resp helpers.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestPaymentController_Submit_TicketSuccess(t *testing.T) {
	f := newPaymentFixture(t)

	w, resp := postSubmit(t, f, `{
		"buyerName": "Li Wei",
		"buyerContact": "x@y.com",
		"ticketOrTable": "Ticket",
		"ticketType": "",
		"amountPaid": "100",
		"memberName": "Jay",
		"notes": ""
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	require.Len(t, f.repo.records, 1)
	assert.Equal(t, "Ticket", f.repo.records[0].Kind)

	// One buyer confirmation plus two staff summaries by email, one staff
	// summary by SMS.
	require.Len(t, f.mailer.recipients, 3)
	assert.Equal(t, "x@y.com", f.mailer.recipients[0])
	assert.Equal(t, []string{"+8613900000000"}, f.sms.recipients)
}

func TestPaymentController_Submit_PhoneBuyerGetsSMS(t *testing.T) {
	f := newPaymentFixture(t)

	w, resp := postSubmit(t, f, `{
		"buyerName": "Li Wei",
		"buyerContact": "+8613800000000",
		"ticketOrTable": "Table",
		"ticketType": "Silver",
		"amountPaid": 1490,
		"memberName": "Cass"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	// Buyer SMS first, then the staff SMS.
	require.Len(t, f.sms.recipients, 2)
	assert.Equal(t, "+8613800000000", f.sms.recipients[0])
	// Only the two staff emails; the buyer has no email channel.
	assert.Len(t, f.mailer.recipients, 2)
}

func TestPaymentController_Submit_WrongTablePrice(t *testing.T) {
	f := newPaymentFixture(t)

	w, resp := postSubmit(t, f, `{
		"buyerName": "Li Wei",
		"buyerContact": "x@y.com",
		"ticketOrTable": "Table",
		"ticketType": "Gold",
		"amountPaid": "2000",
		"memberName": "Jay"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "2396")
	assert.Empty(t, f.repo.records)
	assert.Empty(t, f.mailer.recipients)
	assert.Empty(t, f.sms.recipients)
}

func TestPaymentController_Submit_MissingFields(t *testing.T) {
	f := newPaymentFixture(t)

	w, resp := postSubmit(t, f, `{"buyerName": "Li Wei"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Empty(t, f.repo.records)
}

func TestPaymentController_Submit_BadJSON(t *testing.T) {
	f := newPaymentFixture(t)

	w, resp := postSubmit(t, f, `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestPaymentController_Form(t *testing.T) {
	f := newPaymentFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	f.controller.Form(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Record Payment")
	assert.Contains(t, body, "Gold")
	assert.Contains(t, body, "Jay")
}
