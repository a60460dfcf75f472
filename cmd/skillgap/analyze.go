package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/skill-gap-analyzer/internal/analysis"
	"github.com/jonathan/skill-gap-analyzer/internal/config"
	"github.com/jonathan/skill-gap-analyzer/internal/ingestion"
	"github.com/jonathan/skill-gap-analyzer/internal/observability"
	"github.com/jonathan/skill-gap-analyzer/internal/schemas"
	"github.com/jonathan/skill-gap-analyzer/internal/textproc"
	"github.com/jonathan/skill-gap-analyzer/internal/types"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	configPath string
	jd         string
	jdSet      bool // --jd given, even if empty
	config.Config
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report job description skills missing from a candidate",
		Long: `Tokenizes the job description, subtracts the candidate's skills and reports up to 20 missing terms
with a category and a priority derived from how often each term appears.

The job description comes from --jd, --jd-file or stdin. Candidate skills come from --skills and from
terms extracted from --resume/--resume-file and --profile/--profile-file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.jdSet = cmd.Flags().Changed("jd")
			return runAnalyze(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to JSON or YAML config file (defaults to $"+config.EnvConfigPath+")")
	flags.StringVarP(&opts.jd, "jd", "j", "", "Job description text (reads stdin if neither --jd nor --jd-file is set)")
	flags.StringVar(&opts.JobFile, "jd-file", "", "Path to job description file (txt, md, html, pdf, docx)")
	flags.StringSliceVarP(&opts.Skills, "skills", "s", nil, "Candidate skills (repeatable, comma-separated)")
	flags.StringVar(&opts.Resume, "resume", "", "Resume text to extract skills from")
	flags.StringVar(&opts.ResumeFile, "resume-file", "", "Path to resume file to extract skills from")
	flags.StringVar(&opts.Profile, "profile", "", "Profile text to extract skills from")
	flags.StringVar(&opts.ProfileFile, "profile-file", "", "Path to profile file to extract skills from")
	flags.StringVarP(&opts.Out, "out", "o", "", "Path to output JSON file (default stdout)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Print input summary and gap table to stderr")
	flags.BoolVar(&opts.WithMetadata, "with-metadata", false, "Include analysis ID, timestamp and counts in the output")

	cmd.MarkFlagsMutuallyExclusive("jd", "jd-file")
	cmd.MarkFlagsMutuallyExclusive("resume", "resume-file")
	cmd.MarkFlagsMutuallyExclusive("profile", "profile-file")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions) error {
	// 1. Apply config file values as defaults for unset flags
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	var printer *observability.Printer
	if cfg.Verbose {
		printer = observability.NewPrinter(cmd.ErrOrStderr())
	}

	// 2. Acquire job description; an explicit --jd, even empty, never reads stdin
	var stdin io.Reader
	if !opts.jdSet {
		stdin = cmd.InOrStdin()
	}
	jobText, err := ingestion.ResolveText(ingestion.Source{
		Name: "job description",
		Text: opts.jd,
		Path: cfg.JobFile,
	}, stdin)
	if err != nil {
		return err
	}

	// 3. Load resume and profile sources and extract their terms
	texts, err := ingestion.LoadSources(cmd.Context(), []ingestion.Source{
		{Name: "resume", Text: cfg.Resume, Path: cfg.ResumeFile},
		{Name: "profile", Text: cfg.Profile, Path: cfg.ProfileFile},
	})
	if err != nil {
		return err
	}
	resumeTerms := textproc.ExtractTerms(texts[0])
	profileTerms := textproc.ExtractTerms(texts[1])
	if printer != nil {
		printer.PrintExtractedTerms("resume", resumeTerms)
		printer.PrintExtractedTerms("profile", profileTerms)
	}

	// 4. Analyze
	input := types.NewSkillGapInput(jobText, analysis.MergeSkills(cfg.Skills, resumeTerms, profileTerms))
	if printer != nil {
		printer.PrintAnalysisInput(input)
	}
	result := analysis.AnalyzeGap(input)
	if err := result.Validate(); err != nil {
		return fmt.Errorf("generated skill gap result is invalid: %w", err)
	}
	if printer != nil {
		printer.PrintSkillGapResult(result)
	}

	// 5. Marshal to JSON with indentation
	var payload any = result
	if cfg.WithMetadata {
		payload = types.SkillGapReport{
			ReportMetadata: types.NewReportMetadata(
				ingestion.Hash(jobText),
				textproc.Frequencies(jobText).Len(),
				analysis.NormalizeSkills(input.Skills).Len(),
			),
			SkillGapResult: *result,
		}
	}
	jsonOutput, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal skill gap result to JSON: %w", err)
	}

	// 6. Validate output against schema
	if err := schemas.ValidateSkillGapResult(jsonOutput); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not validate output against schema: %v\n", err)
	}

	// 7. Write output
	return writeOutput(cmd.OutOrStdout(), cfg.Out, jsonOutput)
}

// resolveConfig merges flag values over the config file named by --config or
// $SKILLGAP_CONFIG and validates the result
func resolveConfig(opts *analyzeOptions) (config.Config, error) {
	var fileCfg *config.Config
	var err error
	if opts.configPath != "" {
		fileCfg, err = config.LoadConfig(opts.configPath)
	} else {
		fileCfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return config.Config{}, err
	}

	cfg := opts.Config
	if fileCfg != nil {
		// a job description given on the command line replaces the configured file
		if opts.jdSet {
			fileCfg.JobFile = ""
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// writeOutput writes data to path, or to stdout when path is empty
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, string(data))
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
