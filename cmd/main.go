package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/KAsare1/donation-server/cmd/api"
	"github.com/KAsare1/donation-server/cmd/utils"
	"github.com/KAsare1/donation-server/config"
	"github.com/KAsare1/donation-server/db"
	"github.com/KAsare1/donation-server/service/mail"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// @title Donation API
// @version 1.0
// @description CRUD API for campaigns, beneficiaries, donations, users, reports and milestones.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	log := utils.NewLogger(cfg.App.Env)

	// Check for command-line arguments
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			runMigrations(cfg, log)
			return
		case "clear-db":
			runDatabaseClear(cfg, log)
			return
		case "serve":
		default:
			log.Fatal().Str("command", os.Args[1]).Msg("unknown command")
		}
	}

	startServer(cfg, log)
}

func openDatabase(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	DB, err := db.NewPSQLStorage(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database initialization error")
	}
	log.Info().Msg("connected to the database")
	return DB
}

func closeDatabase(DB *gorm.DB, log zerolog.Logger) {
	if err := db.Close(DB); err != nil {
		log.Error().Err(err).Msg("closing database")
		return
	}
	log.Info().Msg("database connection closed")
}

func runMigrations(cfg *config.Config, log zerolog.Logger) {
	DB := openDatabase(cfg, log)
	defer closeDatabase(DB, log)

	if err := db.Migrate(DB, log); err != nil {
		log.Fatal().Err(err).Msg("migration error")
	}
}

func startServer(cfg *config.Config, log zerolog.Logger) {
	DB := openDatabase(cfg, log)
	defer closeDatabase(DB, log)

	if err := db.Migrate(DB, log); err != nil {
		log.Fatal().Err(err).Msg("migration error")
	}

	// Graceful shutdown setup
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mailer := mail.NewMailer(cfg.SMTP)
	if !cfg.SMTP.Enabled() {
		log.Warn().Msg("SMTP not configured, welcome mail disabled")
	}

	server := api.NewApiServer(cfg.Server, DB, log, mailer)
	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server error")
	}
}

func runDatabaseClear(cfg *config.Config, log zerolog.Logger) {
	DB := openDatabase(cfg, log)
	defer closeDatabase(DB, log)

	in := bufio.NewReader(os.Stdin)

	fmt.Print("Are you sure you want to clear the database? (yes/no): ")
	confirmation, _ := in.ReadString('\n')
	if strings.TrimSpace(confirmation) != "yes" {
		log.Info().Msg("database clearing cancelled")
		return
	}

	fmt.Print("Enter table names to clear (comma separated) or leave blank to clear all: ")
	tableNames, _ := in.ReadString('\n')

	var tables []interface{}
	for _, name := range splitTableNames(tableNames) {
		model, ok := db.ModelByTable(DB, name)
		if !ok {
			log.Warn().Str("table", name).Msg("unknown table")
			continue
		}
		tables = append(tables, model)
	}
	if strings.TrimSpace(tableNames) != "" && len(tables) == 0 {
		log.Info().Msg("nothing to clear")
		return
	}

	db.Clear(DB, log, tables...)
	log.Info().Msg("database cleared")
}

func splitTableNames(tableNames string) []string {
	var names []string
	for _, name := range strings.Split(tableNames, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
