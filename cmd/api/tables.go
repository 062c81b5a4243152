package main

import (
	"fmt"

	"fundacoes_backoffice/internal/infrastructure/database"
	"fundacoes_backoffice/internal/infrastructure/observability"

	"github.com/spf13/cobra"
)

func tablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Manage the DynamoDB tables",
	}
	cmd.AddCommand(tablesCreateCmd())
	return cmd
}

func tablesCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create every missing table and its indexes",
		Long:  `Create the back office tables on the configured DynamoDB endpoint. Existing tables are left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := observability.NewLogger(cfg.LogLevel)
			defer logger.Sync() //nolint:errcheck

			ddb, err := database.ConnectDynamoDB(cmd.Context(), awsConfig(cfg))
			if err != nil {
				return fmt.Errorf("connect dynamodb: %w", err)
			}
			return database.CreateTables(cmd.Context(), ddb, cfg.Tables.Specs(), logger)
		},
	}
}
