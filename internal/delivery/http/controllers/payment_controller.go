package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"ravepayments/internal/delivery/http/helpers"
	"ravepayments/internal/delivery/http/web"
	"ravepayments/internal/domain"
)

// PaymentController serves the public payment form and the submission endpoint.
type PaymentController struct {
	Logger  *slog.Logger
	Service domain.PaymentService
	Pages   *web.Renderer
	Catalog *domain.Catalog
	Members []string
}

func NewPaymentController(logger *slog.Logger, svc domain.PaymentService, pages *web.Renderer, catalog *domain.Catalog, members []string) *PaymentController {
	return &PaymentController{
		Logger:  logger,
		Service: svc,
		Pages:   pages,
		Catalog: catalog,
		Members: members,
	}
}

type formPageData struct {
	Members     []string
	Tiers       []string
	TablePrices map[string]float64
	TicketPrice float64
}

// Form renders the payment submission form.
func (c *PaymentController) Form(w http.ResponseWriter, r *http.Request) {
	data := formPageData{
		Members:     c.Members,
		Tiers:       c.Catalog.Tiers(),
		TablePrices: c.Catalog.TablePrices(),
		TicketPrice: c.Catalog.TicketPrice(),
	}
	if err := c.Pages.Render(w, "index.html", data); err != nil {
		c.Logger.ErrorContext(r.Context(), "render form page", "err", err)
	}
}

// SubmitRequest is the request body for POST /submit. AmountPaid accepts a
// JSON string or number: the form sends the raw input value.
// swagger:model SubmitRequest
type SubmitRequest struct {
	BuyerName     string          `json:"buyerName"`
	BuyerContact  string          `json:"buyerContact"`
	TicketOrTable string          `json:"ticketOrTable"`
	TicketType    string          `json:"ticketType"`
	AmountPaid    json.RawMessage `json:"amountPaid"`
	MemberName    string          `json:"memberName"`
	Notes         string          `json:"notes"`
	ProofBase64   string          `json:"proofBase64"`
}

// amountString normalizes the amountPaid field to its textual form.
func (s *SubmitRequest) amountString() string {
	raw := string(s.AmountPaid)
	if raw == "" || raw == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(s.AmountPaid, &str); err == nil {
		return str
	}
	var num float64
	if err := json.Unmarshal(s.AmountPaid, &num); err == nil {
		return strconv.FormatFloat(num, 'f', -1, 64)
	}
	return raw
}

// Submit godoc
// @Summary Record a payment
// @Description Validates the submission against the price catalog, persists the record, and sends buyer and staff notifications. Responds with the flat {success, message} shape the form client expects.
// @Tags payments
// @Accept json
// @Produce json
// @Param body body SubmitRequest true "Payment submission"
// @Success 200 {object} helpers.SubmitResponse
// @Failure 400 {object} helpers.SubmitResponse "validation rejection"
// @Failure 500 {object} helpers.SubmitResponse "persistence failure"
// @Router /submit [post]
func (c *PaymentController) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.WriteSubmitResult(w, http.StatusBadRequest, false, "Invalid request body.")
		return
	}

	raw := domain.RawSubmission{
		BuyerName:     req.BuyerName,
		BuyerContact:  req.BuyerContact,
		TicketOrTable: req.TicketOrTable,
		TableType:     req.TicketType,
		AmountPaid:    req.amountString(),
		MemberName:    req.MemberName,
		Notes:         req.Notes,
		ProofBase64:   req.ProofBase64,
	}

	record, err := c.Service.Submit(r.Context(), raw)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			helpers.WriteSubmitResult(w, http.StatusBadRequest, false, verr.Message)
			return
		}
		c.Logger.ErrorContext(r.Context(), "submission failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteSubmitResult(w, http.StatusInternalServerError, false, "Error saving the payment record.")
		return
	}

	helpers.WriteSubmitResult(w, http.StatusOK, true,
		"Payment recorded and notifications sent. Your code: "+record.TicketNumber)
}

// Healthz godoc
// @Summary Liveness probe
// @Tags ops
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /healthz [get]
func (c *PaymentController) Healthz(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
