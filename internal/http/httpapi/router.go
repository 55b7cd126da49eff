package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"medcamp/internal/http/handlers"
	"medcamp/internal/infra"
	"medcamp/internal/middleware"
)

// NewRouter wires the full HTTP surface. Route paths mirror the frontend's
// expectations exactly; auth is applied per route because the surface mixes
// public, token-gated and admin-gated endpoints at the same depth.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.CORS(cfg.AllowedOrigins),
		middleware.Logger(logger),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	token := middleware.AuthJWT(cfg.JWTSecret)
	admin := middleware.RequireAdmin(app.SQL)

	r.Get("/", app.Root)
	r.Get("/v1/healthz", app.Health)

	r.Post("/jwt", app.IssueToken)

	r.Post("/users", app.UsersCreate)
	r.With(token).Get("/users", app.UsersGet)
	r.With(token).Get("/users/role", app.UsersRole)
	r.Patch("/users", app.UsersPatch)

	r.Get("/camps", app.CampsSearch)
	r.With(token).Get("/camps/{id}", app.CampsGet)
	r.Get("/popular-camps", app.CampsPopular)
	r.With(token, admin).Post("/camps", app.CampsCreate)
	r.With(token, admin).Patch("/update-camp/{id}", app.CampsUpdate)
	r.Delete("/delete-camp/{id}", app.CampsDelete)

	r.Post("/participant", app.ParticipantRegister)
	r.With(token).Get("/participant/{participantId}", app.ParticipantGet)
	r.Get("/participants", app.ParticipantsList)
	r.With(token, admin).Get("/registered-camps", app.RegisteredCampsList)
	r.Patch("/confirm-registration/{id}", app.RegistrationConfirm)
	r.Delete("/cancel-registration/{id}", app.RegistrationCancel)

	r.Post("/create-payment-intent", app.PaymentIntentCreate)
	r.Post("/payments", app.PaymentsRecord)
	r.Get("/payment-history", app.PaymentHistory)

	r.Post("/feedback", app.FeedbackCreate)
	r.Get("/feedback", app.FeedbackList)

	r.With(token, admin).Get("/admin-stats", app.AdminStats)
	r.With(token).Get("/user-stats", app.UserStats)

	r.Get("/volunteers", app.VolunteersList)
	r.Post("/volunteers", app.VolunteersCreate)
	r.Delete("/volunteers/{id}", app.VolunteersDelete)

	return r
}
