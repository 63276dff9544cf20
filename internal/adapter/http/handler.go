package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Auth      port.AuthUseCase
	Tokens    port.TokenService
	Campaigns port.CampaignUseCase
	Ledger    port.LedgerUseCase
	Visits    port.VisitUseCase
	Reports   port.ReportUseCase
}

// Options tunes the router.
type Options struct {
	AllowedOrigins []string
	MaxUploadBytes int64
	// UploadsDir, when set, is served read-only under /uploads.
	UploadsDir string
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: every route decodes its input, calls one use case method and maps
// domain errors to status codes.
type Handler struct {
	svc    Services
	opts   Options
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, opts Options, logger *slog.Logger) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	h := &Handler{svc: svc, opts: opts, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if opts.UploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadsDir))))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", h.handleHealth)
		r.Post("/auth/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Use(middleware.Timeout(60 * time.Second))

			r.Get("/me", h.handleMe)

			r.Group(func(r chi.Router) {
				r.Use(requireRole(domain.RoleAdmin))
				r.Post("/users", h.handleCreateUser)
				r.Get("/retailers", h.handleListRetailers)
				r.Get("/employees", h.handleListEmployees)
				r.Get("/clients", h.handleListClients)
			})

			r.Route("/campaigns", h.campaignRoutes)
			r.Route("/budgets", h.budgetRoutes)
			r.Route("/visits", h.visitRoutes)

			r.Route("/reports", h.reportRoutes)
			r.With(requireRole(domain.RoleAdmin, domain.RoleEmployee, domain.RoleRetailer)).
				Post("/uploads", h.handleUpload)
		})
	})
	h.router = r
	return h
}

func (h *Handler) campaignRoutes(r chi.Router) {
	admin := requireRole(domain.RoleAdmin)

	r.Get("/", h.handleListCampaigns)
	r.With(admin).Post("/", h.handleCreateCampaign)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.handleGetCampaign)
		r.With(admin).Put("/", h.handleUpdateCampaign)
		r.With(admin).Delete("/", h.handleDeleteCampaign)
		r.With(requireRole(domain.RoleAdmin, domain.RoleClient)).Get("/overview", h.handleCampaignOverview)
		r.With(requireRole(domain.RoleEmployee, domain.RoleRetailer)).Put("/response", h.handleRespond)

		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/employees", h.handleAssignEmployees)
			r.Delete("/employees/{employeeID}", h.handleUnassignEmployee)
			r.Post("/employees/{employeeID}/retailers", h.handleLinkRetailers)
			r.Post("/retailers", h.handleAssignRetailers)
			r.Delete("/retailers/{retailerID}", h.handleUnassignRetailer)
		})
	})
}

func (h *Handler) budgetRoutes(r chi.Router) {
	r.With(requireRole(domain.RoleAdmin, domain.RoleClient)).Get("/", h.handleListBudgets)
	r.With(requireRole(domain.RoleRetailer)).Get("/me", h.handleMyBudget)
	r.Get("/{retailerID}", h.handleGetBudget)

	r.Group(func(r chi.Router) {
		r.Use(requireRole(domain.RoleAdmin))
		r.Get("/export", h.handleExportLedger)
		r.Get("/templates/{kind}", h.handleImportTemplate)
		r.Post("/import/allocations", h.handleImportAllocations)
		r.Post("/import/installments", h.handleImportInstallments)

		r.Route("/{retailerID}/campaigns/{campaignID}", func(r chi.Router) {
			r.Put("/allocation", h.handleSetAllocation)
			r.Delete("/", h.handleRemoveCampaignBudget)
			r.Post("/installments", h.handleAddInstallment)
			r.Patch("/installments/{installmentID}", h.handleUpdateInstallment)
			r.Delete("/installments/{installmentID}", h.handleRemoveInstallment)
		})
	})
}

func (h *Handler) visitRoutes(r chi.Router) {
	r.Use(requireRole(domain.RoleAdmin, domain.RoleEmployee))
	r.Get("/", h.handleListVisits)
	r.Post("/", h.handleScheduleVisit)
	r.Patch("/{id}/status", h.handleUpdateVisitStatus)
	r.Delete("/{id}", h.handleDeleteVisit)
}

func (h *Handler) reportRoutes(r chi.Router) {
	r.Get("/", h.handleListReports)
	r.With(requireRole(domain.RoleEmployee, domain.RoleRetailer)).Post("/", h.handleSubmitReport)
	r.Get("/{id}", h.handleGetReport)
	r.With(requireRole(domain.RoleAdmin)).Delete("/{id}", h.handleDeleteReport)
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
