package cli

import (
	"context"

	"github.com/isdelr/crud-auth-be/internal/api"
	"github.com/isdelr/crud-auth-be/internal/gateway"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Serve API Gateway proxy events inside AWS Lambda",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The store connection is made once per execution environment and
		// reused by every invocation it serves.
		accountService, _, err := newAccountService(context.Background(), cfg)
		if err != nil {
			return err
		}

		log.Info().Msg("Starting Lambda handler")
		gateway.Start(api.NewRouter(accountService, cfg.AllowedOrigins()))
		return nil
	},
}
