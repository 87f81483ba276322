package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Shivam28kumar/cyber-suraksha/internal/config"
	"github.com/Shivam28kumar/cyber-suraksha/internal/handler"
	"github.com/Shivam28kumar/cyber-suraksha/internal/nlu"
	"github.com/Shivam28kumar/cyber-suraksha/internal/service/fulfillment"
	"github.com/Shivam28kumar/cyber-suraksha/internal/service/relay"
	"github.com/Shivam28kumar/cyber-suraksha/internal/service/session"
	"github.com/Shivam28kumar/cyber-suraksha/internal/sheets"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	addr, err := cfg.Addr()
	if err != nil {
		log.Fatalf("invalid listen address: %v", err)
	}

	nluClient, store := buildAdapters(ctx, cfg)

	registry := session.NewMemoryRegistry()
	relaySvc := relay.NewService(registry, nluClient)
	pipeline := fulfillment.NewPipeline(store, cfg.TerminalIntent, cfg.IntentKeyword, cfg.ComplaintIDPrefix)

	router := handler.NewRouter(relaySvc, pipeline, cfg.StaticDir)

	startServer(ctx, addr, router)
}

// buildAdapters constructs the Dialogflow and Sheets adapters. Missing or
// unusable credentials degrade the gateway instead of preventing startup:
// chat turns get the fallback reply and complaints are reported as pending.
func buildAdapters(ctx context.Context, cfg *config.Config) (nlu.Client, sheets.RecordStore) {
	creds, err := cfg.CredentialsJSON()
	if err != nil {
		log.Printf("warning: Google credentials unavailable: %v", err)
		log.Println("starting in degraded mode without NLU or record store")
		return nlu.Disabled(), sheets.Disabled()
	}

	var nluClient nlu.Client
	if dialogflowClient, err := nlu.NewDialogflowClient(ctx, creds, cfg.DialogflowProjectID, cfg.LanguageCode, cfg.Timeout()); err != nil {
		log.Printf("warning: failed to initialize Dialogflow client: %v", err)
		nluClient = nlu.Disabled()
	} else {
		log.Println("Dialogflow client initialized successfully")
		nluClient = dialogflowClient
	}

	return nluClient, buildStore(ctx, cfg, creds)
}

func buildStore(ctx context.Context, cfg *config.Config, creds []byte) sheets.RecordStore {
	store, err := sheets.NewSheetStore(ctx, creds, cfg.SpreadsheetID, cfg.SheetRange, cfg.Timeout())
	if err != nil {
		log.Printf("warning: failed to initialize Sheets client: %v", err)
		return sheets.Disabled()
	}
	log.Println("Sheets client initialized successfully")
	return store
}

func startServer(ctx context.Context, addr string, router http.Handler) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("cyber-suraksha gateway listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
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
