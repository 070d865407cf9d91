package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var (
		databaseURL string
		source      string
		down        bool
		steps       int
	)

	flag.StringVar(&databaseURL, "database", os.Getenv("DATABASE_URL"), "Postgres connection URL (defaults to DATABASE_URL)")
	flag.StringVar(&source, "source", "db/migrations", "Path to migrations directory")
	flag.BoolVar(&down, "down", false, "Roll back instead of applying")
	flag.IntVar(&steps, "steps", 0, "Number of migrations to apply or roll back (0 = all)")
	flag.Parse()

	if databaseURL == "" {
		log.Fatal("set -database or DATABASE_URL")
	}

	if err := run(databaseURL, source, down, steps); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

func run(databaseURL, source string, down bool, steps int) error {
	m, err := migrate.New(fmt.Sprintf("file://%s", source), databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}
	defer m.Close()

	switch {
	case down && steps > 0:
		err = m.Steps(-steps)
	case down:
		err = m.Down()
	case steps > 0:
		err = m.Steps(steps)
	default:
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("schema already up to date")
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Println("schema rolled back to empty")
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("schema at version %d (dirty=%t)", version, dirty)
	return nil
}
