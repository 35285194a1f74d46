package main

import (
	"fmt"
	"os"
	"time"

	_ "multikanban/docs"
	"multikanban/internal/auth"
	"multikanban/internal/config"
	"multikanban/internal/migrations"
	"multikanban/internal/server"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// @title           Multi-board Kanban API
// @version         1.0
// @description     Boards of tasks that graduate from one board to the next.

// @contact.name   octaview
// @contact.url    t.me/octaview
// @contact.email  octaviewes@gmail.com

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Optional. Type "Bearer" followed by a space and JWT token to act as a named user.

// @schemes http
func main() {
	rootCmd := &cobra.Command{
		Use:   "kanban",
		Short: "Multi-board kanban server",
		// serve is the default when no subcommand is given
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("⚠️  unknown LOG_LEVEL %q, using info", level)
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

func serve() error {
	cfg := config.Load()
	log := newLogger(cfg.LogLevel)

	s, err := server.Init(cfg, log)
	if err != nil {
		return err
	}

	s.Run()
	return nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := newLogger(cfg.LogLevel)

			url := migrations.URL(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
			if err := migrations.Up(url); err != nil {
				return fmt.Errorf("❌ migration failed: %w", err)
			}
			log.Info("✅ Migrations applied")
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cfg.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}

			token, err := auth.GenerateToken(cfg.JWTSecret, user, time.Duration(cfg.JWTExpiryHours)*time.Hour)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "user name recorded on activities and entries")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
