package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/isdelr/crud-auth-be/internal/auth"
	"github.com/isdelr/crud-auth-be/internal/config"
	"github.com/isdelr/crud-auth-be/internal/database"
	"github.com/isdelr/crud-auth-be/internal/logger"
	"github.com/isdelr/crud-auth-be/internal/services"
	"github.com/isdelr/crud-auth-be/internal/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	envFile string
	cfg     *config.Config
)

// rootCmd picks the lambda runtime when it is present and serves HTTP otherwise.
var rootCmd = &cobra.Command{
	Use:   "crud",
	Short: "User registration and authentication service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}

		var err error
		cfg, err = config.Load(files...)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.Init(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
			return lambdaCmd.RunE(cmd, args)
		}
		return serveCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default is .env)")
	rootCmd.AddCommand(serveCmd, lambdaCmd)
}

// openStore connects the configured backend. A failed connection is logged
// and replaced by store.Unavailable; the process keeps running.
func openStore(ctx context.Context, cfg *config.Config) store.CredentialStore {
	switch cfg.StoreDriver {
	case "sqlite":
		db, err := database.NewSQLite(cfg.SQLitePath)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.SQLitePath).Msg("Error opening SQLite database")
			return store.Unavailable{Cause: err}
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("Opened SQLite database")
		return store.NewSQLiteStore(db, cfg.OperationTimeout)
	default:
		client, err := database.ConnectMongo(ctx, database.MongoOptions{
			Endpoint:       cfg.DatabaseEndpoint,
			Port:           cfg.DatabasePort,
			User:           cfg.DatabaseUser,
			Password:       cfg.DatabasePassword,
			TLSCAFile:      cfg.DatabaseTLSCAFile,
			ConnectTimeout: cfg.ConnectTimeout,
			WaitTimeout:    cfg.OperationTimeout,
			MaxPoolSize:    cfg.MaxPoolSize,
		})
		if err != nil {
			log.Error().Err(err).Str("endpoint", cfg.DatabaseEndpoint).Msg("Error connecting to MongoDB")
			return store.Unavailable{Cause: err}
		}

		s := store.NewMongoStore(client, cfg.DatabaseName, cfg.DatabaseCollection, cfg.OperationTimeout)
		if err := s.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("Username uniqueness is not enforced by the database")
		}
		log.Info().Str("endpoint", cfg.DatabaseEndpoint).Msg("Connected to MongoDB")
		return s
	}
}

// newAccountService wires the store and token service together.
func newAccountService(ctx context.Context, cfg *config.Config) (*services.AccountService, store.CredentialStore, error) {
	secret, err := auth.ResolveSecret(ctx, cfg.JWTSecretARN, cfg.JWTSecret)
	if err != nil {
		return nil, nil, err
	}
	if secret == config.LegacyJWTSecret {
		log.Warn().Msg("Signing tokens with the built-in default secret; set JWT_SECRET or JWT_SECRET_ARN")
	}

	s := openStore(ctx, cfg)
	tokens := auth.NewTokenService(secret, auth.WithTTL(cfg.TokenTTL))
	return services.NewAccountService(s, tokens), s, nil
}
