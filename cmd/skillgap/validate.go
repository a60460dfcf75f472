package main

import (
	"fmt"
	"os"

	"github.com/jonathan/skill-gap-analyzer/internal/schemas"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var (
		schemaPath string
		jsonPath   string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a skill gap result file against a JSON schema",
		Long: `Validates a JSON file written by analyze. The built-in result schema is used
unless --schema names a different schema file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if schemaPath != "" {
				err = schemas.ValidateJSON(schemaPath, jsonPath)
			} else {
				var content []byte
				content, err = os.ReadFile(jsonPath)
				if err != nil {
					return fmt.Errorf("failed to read JSON file: %w", err)
				}
				err = schemas.ValidateSkillGapResult(content)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", jsonPath, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", jsonPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "Path to JSON schema file (default: built-in result schema)")
	cmd.Flags().StringVar(&jsonPath, "json", "", "Path to JSON file to validate (required)")
	if err := cmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	return cmd
}
