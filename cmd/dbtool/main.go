// Command dbtool prepares the parcelhub database.
//
//	dbtool migrate            create or update the schema
//	dbtool seed users.json    upsert the users projection from a JSON array
//	dbtool reset              empty every table
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"parcelhub/cmd"
	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	log.SetHeader("${time_rfc3339} ${level}")
	log.SetLevel(log.INFO)

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: dbtool migrate | seed <users.json> | reset")
		flag.PrintDefaults()
	}
	timeout := flag.Duration("timeout", time.Minute, "overall deadline")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (using environment variables)")
	}

	if err := run(flag.Args(), *timeout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, timeout time.Duration) error {
	if len(args) == 0 {
		flag.Usage()
		return errors.New("missing command")
	}

	configs, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		return err
	}

	sqlDB, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	db = db.WithContext(ctx)

	switch args[0] {
	case "migrate":
		log.Info("Migrating schema...")
		if err := postgres.Migrate(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Info("Schema ready.")
	case "seed":
		if len(args) < 2 {
			return errors.New("seed needs the path of a users JSON file")
		}
		users, err := readUsers(args[1])
		if err != nil {
			return err
		}
		n, err := userrepo.Seed(ctx, db, users)
		if err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		log.Infof("Seeded %d users from %s.", n, args[1])
	case "reset":
		log.Warn("Truncating every table...")
		if err := postgres.TruncateAll(db); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		log.Info("Database is empty.")
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func readUsers(path string) ([]userrepo.UserDTO, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var users []userrepo.UserDTO
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return users, nil
}
