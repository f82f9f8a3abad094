package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"ravepayments/internal/delivery/http/controllers"
	"ravepayments/internal/delivery/http/middleware"
	"ravepayments/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	paymentController *controllers.PaymentController,
	adminController *controllers.AdminController,
	verifier domain.TokenVerifier,
	staticDir string,
) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(verifier)

	// Public
	mux.HandleFunc("GET /{$}", paymentController.Form)
	mux.HandleFunc("POST /submit", paymentController.Submit)
	mux.HandleFunc("GET /healthz", paymentController.Healthz)

	// Staff
	mux.HandleFunc("GET /admin/login", adminController.LoginForm)
	mux.HandleFunc("POST /admin/login", adminController.Login)
	mux.HandleFunc("GET /admin/logout", adminController.Logout)
	mux.HandleFunc("GET /admin/dashboard", admin(adminController.Dashboard))
	mux.HandleFunc("GET /admin/member/{name}", admin(adminController.MemberView))
	mux.HandleFunc("GET /admin/api/totals", admin(adminController.Totals))

	// Payment QR images and other assets
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
