package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zhouzirui/roster/backend/internal/config"
	"github.com/zhouzirui/roster/backend/internal/handler"
	"github.com/zhouzirui/roster/backend/internal/model/person"
	"github.com/zhouzirui/roster/backend/internal/service/roster"
	"github.com/zhouzirui/roster/backend/internal/view"
)

const version = "v0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()

	rootCmd := &cobra.Command{
		Use:           "roster",
		Short:         "Roster serves the charitable-assistance person registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, v)
		},
	}

	flags := rootCmd.Flags()
	flags.String("port", "", "port to listen on (env PORT, default 5000)")
	flags.String("host", "", "interface to bind (env HOST, default 0.0.0.0)")
	flags.Bool("seed", true, "load the sample roster at startup (env ROSTER_SEED)")
	_ = v.BindPFlag(config.KeyPort, flags.Lookup("port"))
	_ = v.BindPFlag(config.KeyHost, flags.Lookup("host"))
	_ = v.BindPFlag(config.KeySeed, flags.Lookup("seed"))

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "roster "+version)
		},
	})

	return rootCmd
}

func serve(ctx context.Context, v *viper.Viper) error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	var seed []person.Person
	if cfg.Roster.Seed {
		seed = person.Seed()
	}
	store := person.NewMemoryStore(seed)
	rosterSvc := roster.NewService(store, cfg.Roster.ActivityLimit)
	log.Printf("[roster] store ready with %d records", len(seed))

	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}

	router := handler.NewRouter(rosterSvc, renderer)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Roster listening on %s", cfg.Server.Addr)
	return runServer(ctx, srv)
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
