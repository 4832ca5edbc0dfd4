// Command maintenance runs one-off database chores against the configured
// Mongo database:
//
//	maintenance ensure-indexes
//	maintenance backfill-liked
//	maintenance backfill-preference
//	maintenance reset-password --by username|contact --value ana --password s3cret
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"acedating-api/internal/cache"
	"acedating-api/internal/config"
	"acedating-api/internal/db"
	"acedating-api/internal/logging"
	"acedating-api/internal/repository"
	"acedating-api/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
)

const usage = `usage: maintenance <command> [flags]

commands:
  ensure-indexes        create the unique and inbox indexes
  backfill-liked        add an empty liked list where it is missing
  backfill-preference   add an empty preference where it is missing
  reset-password        --by username|contact --value V --password P
`

type command struct {
	name string

	by       repository.CredentialKey
	value    string
	password string
}

func parseCommand(args []string, stderr io.Writer) (*command, error) {
	if len(args) == 0 {
		return nil, errors.New("missing command")
	}
	cmd := &command{name: args[0]}

	switch cmd.name {
	case "ensure-indexes", "backfill-liked", "backfill-preference":
		if len(args) > 1 {
			return nil, fmt.Errorf("%s takes no arguments", cmd.name)
		}
	case "reset-password":
		fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		by := fs.String("by", string(repository.ByUsername), "lookup key: username or contact")
		fs.StringVar(&cmd.value, "value", "", "username or contact of the account")
		fs.StringVar(&cmd.password, "password", "", "new password")
		if err := fs.Parse(args[1:]); err != nil {
			return nil, err
		}
		cmd.by = repository.CredentialKey(*by)
		if cmd.by != repository.ByUsername && cmd.by != repository.ByContact {
			return nil, fmt.Errorf("--by must be username or contact, got %q", *by)
		}
		if cmd.value == "" || cmd.password == "" {
			return nil, errors.New("--value and --password are required")
		}
	default:
		return nil, fmt.Errorf("unknown command %q", cmd.name)
	}
	return cmd, nil
}

func main() {
	cmd, err := parseCommand(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	log := logging.New(os.Stderr, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, log, cmd); err != nil {
		log.Error(ctx, "maintenance failed", "command", cmd.name, "error", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logging.Logger, cmd *command) error {
	client, database, err := db.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	return execute(ctx, cfg, database, log, cmd)
}

func execute(ctx context.Context, cfg *config.Config, database *mongo.Database, log logging.Logger, cmd *command) error {
	users := repository.NewUserRepository(database)

	switch cmd.name {
	case "ensure-indexes":
		if err := db.EnsureIndexes(ctx, database); err != nil {
			return err
		}
		log.Info(ctx, "indexes ensured")

	case "backfill-liked":
		n, err := users.BackfillLiked(ctx)
		if err != nil {
			return err
		}
		log.Info(ctx, "liked backfilled", "updated", n)

	case "backfill-preference":
		n, err := users.BackfillPreference(ctx)
		if err != nil {
			return err
		}
		log.Info(ctx, "preference backfilled", "updated", n)

	case "reset-password":
		// sessions are left alone; the next login rotates the token
		auth := service.NewAuthService(users, (*cache.Cache)(nil), log, cfg.SecretKey, cfg.SessionTTL)
		if err := auth.ResetPassword(ctx, cmd.by, cmd.value, cmd.password); err != nil {
			return err
		}
		log.Info(ctx, "password reset", "by", string(cmd.by), "value", cmd.value)
	}
	return nil
}
