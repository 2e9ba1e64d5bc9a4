package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quintech/quintech-backend/api/controllers"
	"github.com/quintech/quintech-backend/api/middleware"
	"github.com/quintech/quintech-backend/internal/auth"
	"github.com/quintech/quintech-backend/internal/media"
	"github.com/quintech/quintech-backend/internal/profiles"
	"github.com/quintech/quintech-backend/pkg/auth/session"
	"github.com/quintech/quintech-backend/pkg/config"
	"github.com/quintech/quintech-backend/pkg/logger"
	"github.com/quintech/quintech-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	RedisClient     *redis.Client
	SessionManager  session.AccessSessionChecker
	RegisterService auth.RegisterService
	AuthService     auth.Service
	ProfileService  profiles.Service
	MediaService    *media.Service
	ReadyChecks     map[string]controllers.Pinger
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
		0,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
		cfg.AuthRateLimit.SignupHandleLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, params.ReadyChecks))
	})

	r.With(middleware.AuthRateLimit(signupPolicy, params.RedisClient, logg)).
		Post("/signup", controllers.Signup(params.RegisterService, logg))
	r.With(middleware.AuthRateLimit(loginPolicy, params.RedisClient, logg)).
		Post("/login", controllers.Login(params.AuthService, logg))

	r.Get("/user/{handle}", controllers.UserProfile(params.ProfileService, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, params.SessionManager, logg))

		r.Get("/user", controllers.OwnProfile(params.ProfileService, logg))
		r.Post("/user/image", controllers.UploadProfileImage(
			params.MediaService,
			int64(cfg.Media.MaxUploadMB)<<20,
			logg,
		))
	})

	return r
}
