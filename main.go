package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/authenticator"
	"github.com/blogem/welfare-admin/authz"
	"github.com/blogem/welfare-admin/config"
	"github.com/blogem/welfare-admin/controllers"
	"github.com/blogem/welfare-admin/database"
	"github.com/blogem/welfare-admin/logger"
	authmiddleware "github.com/blogem/welfare-admin/middleware"
	"github.com/blogem/welfare-admin/repositories"
	"github.com/blogem/welfare-admin/services"
	"github.com/blogem/welfare-admin/token"
)

func main() {
	if err := run(); err != nil {
		slog.Error("welfare-admin stopped", "error", err)
		os.Exit(1)
	}
}

// application holds everything the router needs
type application struct {
	cfg        config.Config
	services   *services.Services
	ctrl       *controllers.Controllers
	tokens     authmiddleware.TokenVerifier
	principals authmiddleware.PrincipalLoader
	oidc       authenticator.Provider // nil when OpenID Connect is not configured
}

func run() error {
	// Load environment variables from .env file when there is one
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load the env vars: %w", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.InitializeDatabase(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	tokens, err := token.New(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		return err
	}

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, tokens, services.AuditOptions{
		WriteTimeout: cfg.AuditWriteTimeout,
		Fallback:     logger.Fallback(),
	})

	if cfg.BootstrapAdminEPF != "" {
		created, err := srvs.Auth.EnsureSuperAdmin(ctx, cfg.BootstrapAdminEPF, cfg.BootstrapAdminPassword)
		if err != nil {
			return fmt.Errorf("failed to bootstrap super admin: %w", err)
		}
		if created {
			logger.Warn("bootstrap super admin created", "epf", cfg.BootstrapAdminEPF)
		}
	}

	app := &application{
		cfg:        cfg,
		services:   srvs,
		ctrl:       controllers.NewControllers(srvs, controllers.Options{SecureCookies: !cfg.Development()}),
		tokens:     tokens,
		principals: repos.Members,
	}

	if cfg.OIDCEnabled() {
		app.oidc, err = authenticator.NewOpenIDProvider(ctx, authenticator.Config{
			IssuerURL:    cfg.OIDCIssuerURL,
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			CallbackURL:  cfg.OIDCCallbackURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize OpenID Connect provider: %w", err)
		}
	}

	r, err := setupRouter(app)
	if err != nil {
		return fmt.Errorf("failed to setup router: %w", err)
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("welfare-admin starting", "addr", cfg.HTTPAddr, "env", cfg.Env, "db", cfg.DBPath, "oidc", app.oidc != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// setupRouter configures all routes
func setupRouter(app *application) (*chi.Mux, error) {
	r := chi.NewRouter()
	audit := app.services.Audit
	ctrl := app.ctrl

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(authmiddleware.RequestMeta)
	r.Use(middleware.Logger)
	r.Use(authmiddleware.Metrics)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(app.cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		authmiddleware.WriteError(w, apperrors.NewNotFound("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		authmiddleware.WriteJSON(w, http.StatusMethodNotAllowed, authmiddleware.ErrorBody{
			Error:   "method_not_allowed",
			Message: "method not allowed",
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		authmiddleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "welfare-admin"})
	})
	r.Handle("/metrics", promhttp.Handler())

	// Session middleware holds the OpenID Connect state between login and callback
	var sessionHandler func(http.Handler) http.Handler
	if app.oidc != nil {
		var err error
		sessionHandler, err = session.Sessioner(session.Options{
			Provider:       "memory",
			ProviderConfig: "",
			CookieName:     "welfare_oidc",
			Secure:         !app.cfg.Development(),
			Gclifetime:     3600,
			Maxlifetime:    600,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize session: %w", err)
		}
	}

	private := authmiddleware.RequireAuth(app.tokens, app.principals)
	can := func(c authz.Capability) func(http.Handler) http.Handler {
		return authmiddleware.RequireCapability(audit, c)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/members", func(r chi.Router) {
			r.Post("/", authmiddleware.Audited(audit, "member.register", ctrl.Auth.Register,
				authmiddleware.EscalateFaults()))
			r.Post("/auth", authmiddleware.Audited(audit, "auth.login", ctrl.Auth.Login,
				authmiddleware.EscalateFaults(), authmiddleware.FailureEvent("auth.login.failed")))

			r.Group(func(r chi.Router) {
				r.Use(private)
				r.Post("/logout", authmiddleware.Audited(audit, "auth.logout", ctrl.Auth.Logout))
				r.With(can(authz.ProfileRead)).Get("/profile", authmiddleware.Serve(ctrl.Members.Profile))
				r.With(can(authz.MemberList)).Get("/", authmiddleware.Serve(ctrl.Members.List))
				r.With(can(authz.MemberUpdate)).Put("/{id}", authmiddleware.Audited(audit, "member.update", ctrl.Members.Update))
				r.With(can(authz.MemberDelete)).Delete("/{id}", authmiddleware.Audited(audit, "member.delete", ctrl.Members.Delete))
			})
		})

		r.Route("/admins", func(r chi.Router) {
			r.Post("/auth", authmiddleware.Audited(audit, "auth.staff_login", ctrl.Auth.StaffLogin,
				authmiddleware.EscalateFaults(), authmiddleware.FailureEvent("auth.staff_login.failed")))
			r.With(private, can(authz.StaffRegister)).Post("/", authmiddleware.Audited(audit, "staff.register",
				ctrl.Auth.RegisterStaff, authmiddleware.EscalateFaults()))
		})

		r.Route("/loans", func(r chi.Router) {
			r.Use(private)
			r.With(can(authz.LoanRead)).Get("/", authmiddleware.Serve(ctrl.Loans.List))
			r.With(can(authz.LoanCreate)).Post("/", authmiddleware.Audited(audit, "loan.create", ctrl.Loans.Create))
			r.With(can(authz.LoanNumberGenerate)).Get("/util/generate-loan-number", authmiddleware.Serve(ctrl.Loans.GenerateNumber))
			r.With(can(authz.LoanRead)).Get("/util/loans-by-status", authmiddleware.Serve(ctrl.Loans.ByStatus))
			r.With(can(authz.LoanRead)).Get("/user/{userId}", authmiddleware.Serve(ctrl.Loans.ByMember))
			r.With(can(authz.LoanRead)).Get("/{id}", authmiddleware.Serve(ctrl.Loans.Get))
			r.With(can(authz.LoanUpdate)).Put("/{id}", authmiddleware.Audited(audit, "loan.update", ctrl.Loans.Update))
			r.With(can(authz.LoanStatusUpdate)).Put("/{id}/status", authmiddleware.Audited(audit, "loan.status.update", ctrl.Loans.UpdateStatus))
			r.With(can(authz.LoanDelete)).Delete("/{id}", authmiddleware.Audited(audit, "loan.delete", ctrl.Loans.Delete))
		})

		for _, b := range ctrl.Benefits {
			r.Route("/"+b.Path(), func(r chi.Router) {
				r.Use(private)
				r.With(can(authz.BenefitRead)).Get("/", authmiddleware.Serve(b.List))
				r.With(can(authz.BenefitCreate)).Post("/", authmiddleware.Audited(audit, b.Event("create"), b.Create))
				r.With(can(authz.BenefitRead)).Get("/benefits/{userId}", authmiddleware.Serve(b.ByMember))
				r.With(can(authz.BenefitRead)).Get("/{id}", authmiddleware.Serve(b.Get))
				r.With(can(authz.BenefitUpdate)).Put("/{id}", authmiddleware.Audited(audit, b.Event("update"), b.Update))
				r.With(can(authz.BenefitDelete)).Delete("/{id}", authmiddleware.Audited(audit, b.Event("delete"), b.Delete))
			})
		}

		r.Route("/logs", func(r chi.Router) {
			r.Use(private)
			r.With(can(authz.AuditRead)).Get("/", authmiddleware.Serve(ctrl.Logs.List))
			r.With(can(authz.AuditStats)).Get("/stats", authmiddleware.Serve(ctrl.Logs.Stats))
			r.With(can(authz.AuditAnnotate)).Post("/", ctrl.Logs.Annotate)
		})

		if sessionHandler != nil {
			r.Group(func(r chi.Router) {
				r.Use(sessionHandler)
				r.Get("/auth/oidc/login", ctrl.Auth.OIDCLogin(app.oidc))
				r.Get("/auth/oidc/callback", authmiddleware.Audited(audit, "auth.oidc.login", ctrl.Auth.OIDCCallback(app.oidc),
					authmiddleware.EscalateFaults(), authmiddleware.FailureEvent("auth.oidc.login.failed")))
			})
		}
	})

	return r, nil
}
