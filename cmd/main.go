package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/support371/Asset-Packet/internal/app"
	"github.com/support371/Asset-Packet/internal/platform/ctxutil"
	"github.com/support371/Asset-Packet/internal/platform/logger"
	"github.com/support371/Asset-Packet/internal/services"
)

var rootCmd = &cobra.Command{
	Use:   "asset-packet",
	Short: "Command center API for packets and organization records",
	RunE:  runServe,
}

// serveCmd is also the default when no subcommand is given
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations and exit",
	RunE:  runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the baseline organization and its records if the store is empty",
	RunE:  runSeed,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development bearer token",
	Long: `Mint an HS256 bearer token signed with JWT_SECRET_KEY.

Intended for local development and smoke tests against a running server.`,
	RunE: runToken,
}

var (
	tokenRole string
	tokenSub  string
	tokenOrg  uint
	tokenTTL  time.Duration
)

func init() {
	tokenCmd.Flags().StringVar(&tokenRole, "role", "admin", "role claim")
	tokenCmd.Flags().StringVar(&tokenSub, "sub", "", "subject claim (defaults to cli:<role>)")
	tokenCmd.Flags().UintVar(&tokenOrg, "org", 0, "organization id claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "token lifetime")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Start(ctx); err != nil {
		return err
	}
	return a.Run(ctx, ":"+strings.TrimPrefix(a.Cfg.Port, ":"))
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	// New migrates before returning.
	a, err := app.New(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	a.Log.Info("Migrations applied")
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	a, err := app.New(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	seeded, err := a.Services.Seed.EnsureSeeded(cmd.Context())
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if seeded {
		a.Log.Info("Baseline data written")
	} else {
		a.Log.Info("Store already seeded; nothing to do")
	}
	return nil
}

func runToken(cmd *cobra.Command, _ []string) error {
	log := logger.Nop()
	cfg, err := app.LoadConfig(log)
	if err != nil {
		return err
	}
	if strings.TrimSpace(cfg.JWTSecretKey) == "" {
		return fmt.Errorf("JWT_SECRET_KEY is not set")
	}
	sub := tokenSub
	if sub == "" {
		sub = "cli:" + strings.ToLower(tokenRole)
	}
	auth := services.NewAuthService(log, services.AuthModeJWT, cfg.JWTSecretKey)
	tok, err := auth.GenerateToken(ctxutil.Principal{Subject: sub, Role: tokenRole, OrganizationID: tokenOrg}, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
