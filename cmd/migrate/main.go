// Command migrate applies or reverts the SQL schema in migrations/.
//
//	migrate [-dir migrations] up|down|version
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/spec-kit/visitor-service/internal/config"
	"github.com/spec-kit/visitor-service/internal/observability"
	"github.com/spec-kit/visitor-service/internal/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dir := flag.String("dir", cfg.Postgres.MigrationsDir, "directory holding the migration files")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-dir path] up|down|version\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	action := persistence.MigrateUp
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := persistence.Migrate(action, *dir, cfg.Postgres.DSN, logger); err != nil {
		logger.Fatal("migration failed", zap.String("action", action), zap.Error(err))
	}
}
