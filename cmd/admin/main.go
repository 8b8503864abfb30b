package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/cache"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/config"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/resource"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/session"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/ui"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/validation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var app *ui.App
	var locale string

	root := &cobra.Command{
		Use:           "melfak-admin",
		Short:         "Terminal dashboard for the Melfak content API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if locale != "" {
				cfg.Locale = locale
			}

			logger := newLogger(cfg)
			sess := session.New(cfg.SessionFile)
			if err := sess.Load(); err != nil {
				return err
			}

			apiClient := api.New(cfg.APIBaseURL,
				api.WithTokenSource(sess),
				api.WithLocale(cfg.Locale),
				api.WithTimeout(cfg.RequestTimeout),
				api.WithLogger(logger),
				api.WithUnauthorizedHook(sess.Clear),
			)

			store := resource.NewStore(buildCache(cmd.Context(), cfg, logger), cfg.CacheTTL, logger)
			app = ui.NewApp(catalog.NewClient(apiClient, store), sess, validation.New(), logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&locale, "lang", "", "interface language (ar or en)")

	page := func(use, short string, run func(*ui.App, context.Context) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(app, cmd.Context())
			},
		}
	}

	root.AddCommand(
		page("login", "Sign in to the dashboard", (*ui.App).RunSignIn),
		page("logout", "Sign out and drop the stored session", (*ui.App).RunLogout),
		page("dashboard", "Entity counts and latest activity", (*ui.App).RunDashboard),
		page("sections", "Manage sections, their services, and items", (*ui.App).RunSections),
		&cobra.Command{
			Use:   "items <serviceId>",
			Short: "Manage the items of one service",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.RunItems(cmd.Context(), args[0])
			},
		},
		page("contacts", "Manage phone contacts", (*ui.App).RunContacts),
		page("socialmedia", "Manage social media links", (*ui.App).RunSocialMedia),
		page("settings", "Edit the application settings", (*ui.App).RunSettings),
		page("profile", "View and edit the signed-in user", (*ui.App).RunProfile),
	)
	return root
}

func newLogger(cfg *config.Config) *slog.Logger {
	// Interactive forms own the terminal; logs go to a file when one is
	// configured, otherwise they are dropped.
	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			w = f
		}
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func buildCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) cache.Cache {
	switch cfg.CacheBackend {
	case "redis":
		redisCache := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, falling back to memory cache", slog.String("error", err.Error()))
			return cache.NewMemory()
		}
		return redisCache
	case "none":
		return cache.NewNoop()
	default:
		return cache.NewMemory()
	}
}
