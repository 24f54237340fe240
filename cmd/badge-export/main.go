// Command badge-export renders a printable QR badge PNG for every roster
// member into an output directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/badge"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/database"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/env"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/model"
)

var (
	_cfgFile = flag.String("cfg", "", "path to config file")
	_outDir  = flag.String("out", "badges", "output directory")
	_size    = flag.Int("size", badge.DefaultSize, "badge side length in pixels")
)

func main() {
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	err := run(logger)
	if err != nil {
		trace := string(debug.Stack())
		logger.Error(err.Error(), "trace", trace)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	if *_cfgFile != "" {
		err := env.Load(*_cfgFile)
		if err != nil {
			return err
		}
	}

	dsn := env.GetString("DB_DSN", "postgres:postgres@localhost:5432/postgres")

	db, err := database.New(dsn, false)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := os.MkdirAll(*_outDir, 0o755); err != nil {
		return err
	}

	ctx := context.Background()
	dao := database.NewUserDAO(logger, db)

	users, err := dao.FindAll(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		png, err := badge.EncodePNG(user.ID, *_size)
		if err != nil {
			return fmt.Errorf("encode badge for %s: %w", user.ID, err)
		}

		path := filepath.Join(*_outDir, badgeFileName(user))
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return err
		}

		logger.Info("wrote badge", "user", user.FullName, "path", path)
	}

	logger.Info("done", "countBadges", len(users))

	return nil
}

func badgeFileName(user model.User) string {
	name := strings.ToLower(strings.TrimSpace(user.FullName))
	name = strings.Join(strings.Fields(name), "-")
	return fmt.Sprintf("%s-%s.png", name, user.ID)
}
