package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/leadsite/backend/internal/config"
	"github.com/leadsite/backend/internal/logging"
	"github.com/leadsite/backend/internal/model"
	"github.com/leadsite/backend/internal/repository"
	"github.com/leadsite/backend/internal/service"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  up            apply all pending migrations (default)
  down [N]      roll back N migrations (default 1)
  force V       mark version V as applied without running it
  version       print the current schema version
  seed-admin    create an admin account (see seed-admin -h)`)
	os.Exit(2)
}

func main() {
	cfg, err := config.LoadDatabase()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(logging.Options{Level: cfg.LogLevel, Service: "leadsite-migrate", Env: cfg.Env})

	cmd := "up"
	args := os.Args[1:]
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "up", "down", "force", "version":
		if err := runMigrate(cfg.DSN(), cmd, args); err != nil {
			logging.Fatal("migration failed", "command", cmd, "error", err)
		}
	case "seed-admin":
		if err := seedAdmin(cfg, args); err != nil {
			logging.Fatal("seed admin failed", "error", err)
		}
	default:
		usage()
	}
}

func runMigrate(dsn, cmd string, args []string) error {
	m, err := repository.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		n := 1
		if len(args) > 0 {
			if n, err = strconv.Atoi(args[0]); err != nil || n < 1 {
				return fmt.Errorf("down: invalid step count %q", args[0])
			}
		}
		err = m.Steps(-n)
	case "force":
		if len(args) == 0 {
			return errors.New("force: version required")
		}
		v, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			return fmt.Errorf("force: invalid version %q", args[0])
		}
		err = m.Force(v)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("no change")
		err = nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		slog.Info("schema version", "version", "none")
		return nil
	}
	if err != nil {
		return err
	}
	slog.Info("schema version", "version", version, "dirty", dirty)
	return nil
}

func seedAdmin(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("seed-admin", flag.ExitOnError)
	username := fs.String("username", "admin", "login name")
	email := fs.String("email", "", "contact email (required)")
	fullName := fs.String("name", "Administrator", "display name")
	role := fs.String("role", "admin", "role stored in issued tokens")
	reset := fs.Bool("reset-password", false, "replace the password when the account exists")
	if err := fs.Parse(args); err != nil {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return errors.New("ADMIN_PASSWORD must be set")
	}
	if *email == "" && !*reset {
		return errors.New("-email is required")
	}
	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, repository.PoolConfig{DSN: cfg.DSN(), MaxConns: 1})
	if err != nil {
		return err
	}
	defer pool.Close()
	users := repository.NewPgAdminUserRepository(pool)

	if *reset {
		if err := users.UpdatePassword(ctx, *username, hash); err != nil {
			return fmt.Errorf("reset password for %q: %w", *username, err)
		}
		slog.Info("admin password reset", "username", *username)
		return nil
	}

	u := &model.AdminUser{
		Username:     *username,
		Email:        *email,
		PasswordHash: hash,
		FullName:     *fullName,
		Role:         *role,
		IsActive:     true,
	}
	if err := users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("admin %q already exists; use -reset-password to change it", *username)
		}
		return err
	}
	slog.Info("admin created", "id", u.ID, "username", u.Username)
	return nil
}
