package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ARROM2405/hero-search-bot/internal/answerstore"
	"github.com/ARROM2405/hero-search-bot/internal/bot"
	"github.com/ARROM2405/hero-search-bot/internal/envstruct"
	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/logging"
	"github.com/ARROM2405/hero-search-bot/internal/pprofserver"
	"github.com/ARROM2405/hero-search-bot/internal/questionnaire"
	"github.com/ARROM2405/hero-search-bot/internal/report"
	"github.com/ARROM2405/hero-search-bot/internal/repositories"
	"github.com/ARROM2405/hero-search-bot/internal/sqlite"
	"github.com/ARROM2405/hero-search-bot/internal/telegram"
	"github.com/joho/godotenv"
)

type config struct {
	Addr            string `env:"HERO_BOT_ADDR" envDefault:"localhost:4000"`
	PprofPort       string `env:"HERO_BOT_PPROF_PORT" envDefault:":6060"`
	SqliteURL       string `env:"HERO_BOT_SQLITE_URL" envDefault:"./hero-search-bot.sqlite"`
	BotToken        string `env:"BOT_TOKEN"`
	TelegramBaseURL string `env:"HERO_BOT_TELEGRAM_BASE_URL" envDefault:"https://api.telegram.org"`
	// AdminIDs is a comma-separated list of Telegram user ids allowed to
	// request report exports. Empty means unrestricted.
	AdminIDs   string `env:"HERO_BOT_ADMIN_IDS" envDefault:""`
	TTLSeconds string `env:"HERO_BOT_INPUT_TTL_SECONDS" envDefault:"1800"`
}

type application struct {
	logger     *slog.Logger
	dispatcher *bot.Dispatcher
	// webhookPath carries the bot token so that only Telegram can reach the
	// update endpoint.
	webhookPath string
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	// The .env file is optional outside development.
	_ = godotenv.Load()

	ctx := context.Background()
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server exited with error", errors.SlogError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}
	adminIDs, err := parseAdminIDs(cfg.AdminIDs)
	if err != nil {
		return errors.Wrap(err, "parse admin ids")
	}
	ttlSeconds, err := strconv.Atoi(cfg.TTLSeconds)
	if err != nil {
		return errors.Wrap(err, "parse input TTL")
	}

	// Initialise pprof listening on localhost so that it's not open to the world.
	pprofserver.Launch(cfg.PprofPort, logger)

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db", slog.String("url", cfg.SqliteURL))
	go db.StartDatabaseOptimizer(ctx)

	app := newApplication(appDependencies{
		logger:          logger,
		db:              db,
		botToken:        cfg.BotToken,
		telegramBaseURL: cfg.TelegramBaseURL,
		adminIDs:        adminIDs,
		inputTTL:        time.Duration(ttlSeconds) * time.Second,
		httpClient:      nil,
	})

	return app.configureAndStartServer(ctx, cfg.Addr)
}

// appDependencies collects everything newApplication needs so that tests can
// swap the Telegram client and storage for fakes.
type appDependencies struct {
	logger          *slog.Logger
	db              *sqlite.Database
	botToken        string
	telegramBaseURL string
	adminIDs        []int64
	inputTTL        time.Duration
	httpClient      *http.Client
	// deliverer overrides the real Telegram client when non-nil.
	deliverer bot.Deliverer
}

func newApplication(deps appDependencies) *application {
	authors := repositories.NewAuthorRepository(deps.db, deps.logger)
	records := repositories.NewHeroRecordRepository(deps.db, deps.logger)
	audit := repositories.NewAuditRepository(deps.db, deps.logger)

	store := answerstore.NewMemoryStore(deps.inputTTL)
	tracker := questionnaire.NewTracker(store, records, deps.logger)
	reports := report.NewGenerator(records, "")

	deliverer := deps.deliverer
	if deliverer == nil {
		deliverer = telegram.NewClient(deps.httpClient, deps.telegramBaseURL, deps.botToken)
	}

	dispatcher := bot.NewDispatcher(tracker, authors, audit, reports, deliverer, deps.adminIDs, deps.logger)

	return &application{
		logger:      deps.logger,
		dispatcher:  dispatcher,
		webhookPath: webhookPath(deps.botToken),
	}
}

func webhookPath(botToken string) string {
	return "/api/telegram/webhook/" + botToken
}

func parseAdminIDs(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "parse admin id", slog.String("value", part))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
