package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/elliotjreed/idgen/internal/config"
	"github.com/elliotjreed/idgen/internal/exporter"
	"github.com/elliotjreed/idgen/internal/format"
	"github.com/elliotjreed/idgen/internal/generator"
)

var (
	version = "0.1.0"

	configPath     string
	initPath       string
	formats        string
	idTypes        string
	rows           int
	filesPerFormat int
	outputDir      string
	seed           int64
	verbose        bool
	dryRun         bool
	force          bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "idgen",
		Short: "Synthetic identifier test data generator",
		Long: `idgen writes files of fabricated personal identifiers (Aadhar, PAN,
Voter ID, passport and driving licence numbers) in CSV, TSV, JSON, JSONL,
TXT, LOG, XML, HTML and ZIP formats, for exercising PII detection and
data-loss-prevention tooling.

Settings can be read from a YAML/JSON file with --config; flags given on
the command line take precedence.`,
		SilenceUsage: true,
		RunE:         runGenerate,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (optional)")
	rootCmd.Flags().StringVar(&formats, "formats", config.AllKeyword, "Comma-separated list of formats (e.g. csv,json,zip) or 'all'")
	rootCmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "Number of rows to generate per file")
	rootCmd.Flags().StringVar(&idTypes, "id-types", config.AllKeyword, "Comma-separated list of ID types (e.g. Aadhar,PAN) or 'all'")
	rootCmd.Flags().IntVar(&filesPerFormat, "files-per-format", config.DefaultFilesPerFormat, "Number of files to generate per format")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", config.DefaultOutputDir, "Directory to write files to")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible values (0: random)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing files")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("idgen version %s\n", version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List supported ID types and formats",
		RunE:  runList,
	}
	rootCmd.AddCommand(listCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Writes the default generation settings to a config file that can be
edited and passed back with --config. The file format (YAML or JSON)
follows the file extension.`,
		RunE: runInit,
	}
	initCmd.Flags().StringVarP(&initPath, "config", "c", "idgen.yaml", "Path of the config file to write")
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	types, err := cfg.IdentifierTypes()
	if err != nil {
		return err
	}

	exp := exporter.New(generator.New(cfg.Seed), exporter.Options{
		OutputDir:      cfg.OutputDir,
		FilesPerFormat: cfg.FilesPerFormat,
		Verbose:        verbose,
	})

	if dryRun {
		return printDryRun(exp, cfg)
	}

	if verbose {
		fmt.Printf("Generating %d file(s) per format for: %s\n", cfg.FilesPerFormat, strings.Join(cfg.Formats, ", "))
		fmt.Printf("ID types: %s\n", strings.Join(cfg.IDTypes, ", "))
	}

	if err := exp.Export(cfg.Formats, cfg.Rows, types); err != nil {
		var cfgErr *generator.ConfigurationError
		if errors.As(err, &cfgErr) {
			return err
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	elapsed := time.Since(startTime)
	stats := exp.GetStats()

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "=== Generation Statistics ===")
	fmt.Fprintf(os.Stderr, "Files written:     %d\n", stats.FilesWritten)
	fmt.Fprintf(os.Stderr, "Records written:   %d\n", stats.RecordsWritten)
	fmt.Fprintf(os.Stderr, "Formats skipped:   %d\n", stats.FormatsSkipped)
	fmt.Fprintf(os.Stderr, "Run time:          %s\n", elapsed.Round(time.Millisecond))

	return nil
}

// loadConfig builds the run configuration from the optional config file,
// then applies any flags set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if configPath != "" {
		if verbose {
			fmt.Printf("Loading configuration from: %s\n", configPath)
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if configPath == "" || flags.Changed("formats") {
		cfg.SetFormats(formats)
	}
	if configPath == "" || flags.Changed("id-types") {
		cfg.SetIDTypes(idTypes)
	}
	if configPath == "" || flags.Changed("rows") {
		cfg.Rows = rows
	}
	if configPath == "" || flags.Changed("files-per-format") {
		cfg.FilesPerFormat = filesPerFormat
	}
	if configPath == "" || flags.Changed("output-dir") {
		cfg.OutputDir = outputDir
	}
	if configPath == "" || flags.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func printDryRun(exp *exporter.Exporter, cfg *config.Config) error {
	fmt.Println("=== DRY RUN MODE ===")
	fmt.Printf("Rows per file: %d (%d records)\n", cfg.Rows, cfg.Rows-1)
	fmt.Printf("ID types: %s\n\n", strings.Join(cfg.IDTypes, ", "))

	for _, target := range exp.Plan(cfg.Formats) {
		if target.Err != nil {
			fmt.Printf("  SKIP %s (%s)\n", target.Format, target.Err)
			continue
		}
		fmt.Printf("  WRITE %s\n", target.Path)
	}

	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	gen := generator.New(0)

	fmt.Println("ID types:")
	for _, t := range generator.AllTypes() {
		tmpl, _ := generator.Template(t)
		example, err := gen.Value(t)
		if err != nil {
			return err
		}
		fmt.Printf("  %-16s %-18s e.g. %s\n", t, tmpl, example)
	}

	fmt.Println()
	fmt.Println("Formats:")
	for _, tag := range format.All() {
		fmt.Printf("  %-6s -> %s\n", tag, exporter.Filename(tag, 1, 1))
	}

	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initPath); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", initPath)
	}

	if err := config.Default().Save(initPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Configuration written: %s\n", initPath)
	return nil
}
