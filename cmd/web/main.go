package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/myrjola/fitlog/internal/envstruct"
	"github.com/myrjola/fitlog/internal/errors"
	"github.com/myrjola/fitlog/internal/logging"
	"github.com/myrjola/fitlog/internal/pprofserver"
	"github.com/myrjola/fitlog/internal/sqlite"
	"github.com/myrjola/fitlog/internal/workout"
)

type application struct {
	logger         *slog.Logger
	workoutService *workout.Service
	bodyWeightKg   float64
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"FITLOG_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"FITLOG_SQLITE_URL" envDefault:"./fitlog.sqlite3"`
	// BodyWeightKg is the body weight used for calorie estimates.
	BodyWeightKg string `env:"FITLOG_BODYWEIGHT_KG" envDefault:"70"`
	// PProfAddr is the optional address to listen on for the pprof server.
	PProfAddr string `env:"FITLOG_PPROF_ADDR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	bodyWeightKg, err := strconv.ParseFloat(cfg.BodyWeightKg, 64)
	if err != nil || bodyWeightKg <= 0 {
		return errors.Wrap(errors.New("body weight must be a positive number"), "parse body weight",
			slog.String("bodyWeightKg", cfg.BodyWeightKg))
	}

	if cfg.PProfAddr != "" {
		pprofserver.Launch(ctx, cfg.PProfAddr, logger)
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	app := application{
		logger:         logger,
		workoutService: workout.NewService(db, workout.DefaultCatalog(), logger),
		bodyWeightKg:   bodyWeightKg,
	}

	// Warm the in-memory view so the first request doesn't pay for it.
	if _, err = app.workoutService.LoadAll(ctx); err != nil {
		return errors.Wrap(err, "load workouts")
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
