// Package http собирает REST-маршрутизатор сервиса.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-ride-hail/internal/http/handlers"
	"github.com/pribylovaa/go-ride-hail/internal/http/middleware"
	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/service"
)

// RouterOptions — зависимости и настройки маршрутизатора.
type RouterOptions struct {
	Service        *service.Service
	Logger         *slog.Logger
	Env            string
	RequestTimeout time.Duration
}

// NewRouter возвращает полностью собранный chi-роутер API.
// Порядок обвязки: Recover -> RequestID -> Logging -> Timeout; guard'ы
// аутентификации и ролей навешиваются на конкретные поддеревья маршрутов.
func NewRouter(opts RouterOptions) http.Handler {
	h := handlers.New(opts.Service, opts.Env)

	authAny := middleware.Authenticate(opts.Service)
	authDriver := middleware.AuthenticateAs(opts.Service, models.RoleDriver)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", h.RegisterUser)
			r.Post("/login", h.LoginUser)

			r.Group(func(r chi.Router) {
				r.Use(authAny)

				r.Post("/logout", h.LogoutUser)
				r.Get("/", h.ListUsers)
				r.Get("/{id}", h.UserByID)
				r.Put("/{id}", h.UpdateUser)
				r.Post("/{id}/avatar/presign", h.PresignUserAvatar)
				r.Post("/{id}/avatar/confirm", h.ConfirmUserAvatar)

				r.Group(func(r chi.Router) {
					r.Use(adminOnly)
					r.Delete("/{id}", h.DeleteUser)
				})
			})
		})

		r.Route("/captains", func(r chi.Router) {
			r.Post("/register", h.RegisterCaptain)
			r.Post("/login", h.LoginCaptain)

			// Выход и профиль — только с водительским токеном.
			r.Group(func(r chi.Router) {
				r.Use(authDriver)

				r.Post("/logout", h.LogoutCaptain)
				r.Get("/{id}", h.CaptainByID)
				r.Post("/{id}/avatar/presign", h.PresignCaptainAvatar)
				r.Post("/{id}/avatar/confirm", h.ConfirmCaptainAvatar)
			})

			// Список водителей доступен любому аутентифицированному актору.
			r.Group(func(r chi.Router) {
				r.Use(authAny)
				r.Get("/", h.ListCaptains)
			})
		})
	})

	return middleware.Chain(r,
		middleware.Recover(),
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
		middleware.Timeout(opts.RequestTimeout),
	)
}
