package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/skill-gap-analyzer/internal/ingestion"
	"github.com/jonathan/skill-gap-analyzer/internal/textproc"
	"github.com/spf13/cobra"
)

// extractOutput is the JSON document printed by the extract command
type extractOutput struct {
	Terms []string `json:"terms"`
}

func newExtractCmd() *cobra.Command {
	var (
		text string
		file string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract candidate skill terms from resume or profile text",
		Long:  "Extracts the distinct terms that analyze would take from a resume or profile, reading --text, --file or stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var stdin io.Reader
			if !cmd.Flags().Changed("text") {
				stdin = cmd.InOrStdin()
			}
			source := ingestion.Source{Name: "text", Text: text, Path: file}
			content, err := ingestion.ResolveText(source, stdin)
			if err != nil {
				return err
			}

			terms := textproc.ExtractTerms(content)
			jsonOutput, err := json.MarshalIndent(extractOutput{Terms: terms}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal terms to JSON: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), out, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "Text to extract terms from")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to file to extract terms from (txt, md, html, pdf, docx)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Path to output JSON file (default stdout)")
	cmd.MarkFlagsMutuallyExclusive("text", "file")

	return cmd
}
