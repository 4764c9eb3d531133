package main

import (
	"context"
	"fmt"

	"github.com/haeun-dev/memo-server/internal/config"
	"github.com/haeun-dev/memo-server/internal/crypto"
	handler "github.com/haeun-dev/memo-server/internal/handler/http"
	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/mailer"
	"github.com/haeun-dev/memo-server/internal/oauth"
	"github.com/haeun-dev/memo-server/internal/server"
	"github.com/haeun-dev/memo-server/internal/service"
	"github.com/haeun-dev/memo-server/internal/session"
	"github.com/haeun-dev/memo-server/internal/store"
	"github.com/haeun-dev/memo-server/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("memo-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)
	hasher := crypto.NewBcryptHasher(0)
	providers := oauth.NewClients(cfg.OAuth)
	sessions := session.NewManager(cfg.Auth.SessionSignKey, cfg.Auth.SessionIssuer, cfg.Auth.SessionDuration)

	dispatcher, err := newDispatcher(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail dispatcher")
	}

	mailWorker := workers.NewMailWorker(dispatcher, cfg.Workers.MailQueueSize, log)
	workers.NewWorkers(mailWorker).Run()

	services := service.NewServices(*repositories, hasher, providers, mailWorker, log)
	router := handler.NewHandler(services, sessions, providers, log).Init()

	srv, err := server.NewServer(router, cfg.Server, log, mailWorker)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newDispatcher selects the outbound mail transport. Without a configured
// relay notifications are dropped silently so the rest of the application
// keeps working in local setups.
func newDispatcher(cfg config.Mail, log *logger.Logger) (mailer.Dispatcher, error) {
	if cfg.SMTPHost == "" {
		log.Warn().Msg("no SMTP relay configured, outbound mail is disabled")
		return mailer.NopDispatcher{}, nil
	}

	return mailer.NewSMTPDispatcher(cfg)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
