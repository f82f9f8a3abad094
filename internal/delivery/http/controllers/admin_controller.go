package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"ravepayments/config"
	"ravepayments/internal/delivery/http/helpers"
	"ravepayments/internal/delivery/http/middleware"
	"ravepayments/internal/delivery/http/web"
	"ravepayments/internal/domain"
	"ravepayments/internal/services"
)

// sessionTTL is how long an admin session cookie stays valid.
const sessionTTL = 12 * time.Hour

// AdminController serves the staff login flow and the dashboard pages.
type AdminController struct {
	Logger *slog.Logger
	Sales  domain.SalesService
	Pages  *web.Renderer
	Hasher domain.PasswordHasher
	Issuer domain.TokenIssuer
	Users  map[string]config.AdminCredential
	Secure bool
}

func NewAdminController(
	logger *slog.Logger,
	sales domain.SalesService,
	pages *web.Renderer,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	users map[string]config.AdminCredential,
	secureCookies bool,
) *AdminController {
	return &AdminController{
		Logger: logger,
		Sales:  sales,
		Pages:  pages,
		Hasher: hasher,
		Issuer: issuer,
		Users:  users,
		Secure: secureCookies,
	}
}

type loginPageData struct {
	Error string
}

// LoginForm renders the staff login page.
func (c *AdminController) LoginForm(w http.ResponseWriter, r *http.Request) {
	data := loginPageData{}
	if r.URL.Query().Get("failed") != "" {
		data.Error = "Invalid username or password."
	}
	if err := c.Pages.Render(w, "login.html", data); err != nil {
		c.Logger.ErrorContext(r.Context(), "render login page", "err", err)
	}
}

// Login verifies the posted credentials against the configured admin users
// and, on success, sets the session cookie and redirects to the dashboard.
// Failures redirect back to the login form; which part of the credential was
// wrong is never disclosed.
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/login?failed=1", http.StatusSeeOther)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	cred, ok := c.Users[username]
	if !ok || c.Hasher.Compare(cred.Hash, cred.Salt, password) != nil {
		c.Logger.WarnContext(r.Context(), "admin login rejected", "username", username)
		http.Redirect(w, r, "/admin/login?failed=1", http.StatusSeeOther)
		return
	}

	token, err := c.Issuer.Issue(username, sessionTTL)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "issue session token", "err", err)
		http.Redirect(w, r, "/admin/login?failed=1", http.StatusSeeOther)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/admin",
		MaxAge:   int(sessionTTL / time.Second),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// Logout clears the session cookie and returns to the login page.
func (c *AdminController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/admin",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

type dashboardPageData struct {
	AdminUser     string
	Totals        domain.Totals
	TicketRevenue string
	TableRevenue  string
	Records       []*domain.Record
}

// Dashboard renders all submissions with totals and the member leaderboard.
// Totals are recomputed from a full scan on every render.
func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	adminUser, _ := middleware.AdminUserFromContext(r.Context())

	totals, records, err := c.Sales.CurrentTotals(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "load dashboard", "err", err)
		http.Error(w, "failed to load records", http.StatusInternalServerError)
		return
	}

	// Newest first for the dashboard listing.
	reversed := make([]*domain.Record, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		reversed = append(reversed, records[i])
	}

	data := dashboardPageData{
		AdminUser:     adminUser,
		Totals:        totals,
		TicketRevenue: services.FormatAmount(totals.TicketRevenue),
		TableRevenue:  services.FormatAmount(totals.TableRevenue),
		Records:       reversed,
	}
	if err := c.Pages.Render(w, "dashboard.html", data); err != nil {
		c.Logger.ErrorContext(r.Context(), "render dashboard", "err", err)
	}
}

type memberPageData struct {
	MemberName string
	Count      int
	Revenue    string
	Records    []*domain.Record
}

// MemberView renders one member's submissions and per-member totals.
func (c *AdminController) MemberView(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}

	totals, records, err := c.Sales.CurrentTotals(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "load member view", "member", name, "err", err)
		http.Error(w, "failed to load records", http.StatusInternalServerError)
		return
	}

	data := memberPageData{MemberName: name, Revenue: services.FormatAmount(0)}
	for _, m := range totals.Leaderboard {
		if m.Name == name {
			data.Count = m.Count
			data.Revenue = services.FormatAmount(m.Revenue)
			break
		}
	}
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].MemberName == name {
			data.Records = append(data.Records, records[i])
		}
	}

	if err := c.Pages.Render(w, "member.html", data); err != nil {
		c.Logger.ErrorContext(r.Context(), "render member view", "member", name, "err", err)
	}
}

// TotalsSuccessResponse is the success response envelope for GET /admin/api/totals (200).
type TotalsSuccessResponse struct {
	Data  *domain.Totals    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Totals godoc
// @Summary Current sales totals
// @Description Returns ticket count/revenue, table revenue, and the member leaderboard, recomputed from all records.
// @Tags admin
// @Produce json
// @Success 200 {object} controllers.TotalsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/api/totals [get]
func (c *AdminController) Totals(w http.ResponseWriter, r *http.Request) {
	totals, _, err := c.Sales.CurrentTotals(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, totals)
}
