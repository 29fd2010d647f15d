package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/avsafe/occurrence-portal/internal/api"
	"github.com/avsafe/occurrence-portal/internal/config"
	"github.com/avsafe/occurrence-portal/internal/crm"
	"github.com/avsafe/occurrence-portal/internal/docstore"
	"github.com/avsafe/occurrence-portal/internal/lookup"
	"github.com/avsafe/occurrence-portal/internal/occurrences"
	"github.com/avsafe/occurrence-portal/internal/submission"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

const shutdownTimeout = 10 * time.Second

// runServer starts the HTTP server and blocks until a shutdown signal or a
// server error.
func runServer(server *api.Server) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- server.Run()
	}()

	select {
	case sig := <-signalCh:
		log.Printf("Received signal: %s", sig)
		log.Println("Initiating graceful shutdown...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown with error: %v", err)
			os.Exit(1)
		}

	case err := <-serverErrCh:
		if err != nil {
			log.Printf("Server error: %v", err)
			os.Exit(1)
		}
	}

	log.Println("Server stopped successfully")
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	crmClient := crm.NewClient(cfg.CRMBaseURL, cfg.CRMToken)

	orchestrator := &submission.Orchestrator{
		CRM:            crmClient,
		Module:         cfg.CRMModule,
		ParentFolderID: cfg.WorkdriveParentID,
		PollAttempts:   cfg.PollAttempts,
		PollDelay:      cfg.PollDelay,
	}
	if cfg.WorkdriveParentID != "" {
		orchestrator.Store = docstore.NewClient(cfg.WorkdriveBaseURL, cfg.WorkdriveToken)
	}

	server, err := api.NewServer(
		cfg,
		orchestrator,
		lookup.NewService(crmClient),
		occurrences.NewService(crmClient, cfg.CRMModule),
	)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	log.Printf("Starting occurrence portal on %s:%d", cfg.Host, cfg.Port)
	runServer(server)
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("Occurrence Portal\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
