package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"github.com/asharish/portfolio-api/internal/auth"
	"github.com/asharish/portfolio-api/internal/notify"
	"github.com/asharish/portfolio-api/internal/store"
)

// Deps holds all dependencies required to build the router.
type Deps struct {
	DB            *sqlx.DB
	Records       *store.RecordStore
	Messages      *store.MessageStore
	Settings      *store.SettingsStore
	Stats         *store.StatsStore
	Gate          *auth.Gate
	Google        *auth.GoogleVerifier
	Notifications chan<- notify.ContactMessage
	UploadDir     string
}

// NewRouter builds the full route tree: public content reads, the contact
// sink, the auth endpoints, and the admin surface behind the auth gate.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// The site frontend is served from a different origin in development.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", auth.PasswordHeader},
	}))

	public := newPublicHandler(deps)
	authH := newAuthHandler(deps)
	admin := newAdminHandler(deps)

	r.Route("/api", func(api chi.Router) {
		api.Use(jsonContentType)

		// One explicit read route per collection, matching the public paths
		// the rendering scripts already use.
		for _, name := range store.CollectionNames() {
			api.Get("/"+name, public.listCollection(name))
		}
		api.Get("/stats", public.GetStats)
		api.Post("/contact", public.SubmitContact)

		api.Get("/auth/config", authH.GetConfig)
		api.Post("/auth/login", authH.Login)
		api.Post("/auth/google", authH.GoogleLogin)

		api.Route("/admin", func(ar chi.Router) {
			ar.Use(requireAdmin(deps.Gate))

			ar.Get("/view/{table}", admin.ViewTable)
			ar.Post("/save", admin.Save)
			ar.Delete("/delete/{table}/{id}", admin.Delete)
			ar.Post("/reorder", admin.Reorder)
			ar.Get("/backup", admin.Backup)
			ar.Post("/upload", admin.Upload)
			ar.Get("/messages", admin.ListMessages)
			ar.Put("/messages/{id}/read", admin.MarkMessageRead)
			ar.Get("/settings", admin.ListSettings)
			ar.Get("/settings/{key}", admin.GetSetting)
			ar.Put("/settings/{key}", admin.PutSetting)
		})
	})

	// Uploaded assets are served straight from disk.
	if deps.UploadDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	return r
}

// requireAdmin rejects requests that carry neither the admin password header
// nor a valid session token.
func requireAdmin(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.Authenticated(r) {
				writeError(w, http.StatusUnauthorized, "unauthorized: invalid admin credentials", "UNAUTHORIZED")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// jsonContentType sets Content-Type: application/json on all API responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
