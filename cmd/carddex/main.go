package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"carddex"
	"carddex/contact"
)

var (
	verbose     bool
	presetsFile string
	logger      *zap.Logger

	presetName string
	outputPath string
	parallel   int
)

var rootCmd = &cobra.Command{
	Use:   "carddex",
	Short: "Render contact-database records as text",
	Long: `carddex renders contact records (persons, organizations) into text
output for different target representations: plain display, Markdown,
HTML, LaTeX, vCard, and JSON lines.

Which fields appear, how they are grouped, and how they are styled is
controlled by named presets, either the built-in defaults or a YAML
preset file passed with --presets.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Render a contact file with a named preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry()
		if err != nil {
			return err
		}
		rend, err := reg.Lookup(presetName)
		if err != nil {
			return err
		}
		db, err := loadContacts(args[0])
		if err != nil {
			return err
		}

		out := os.Stdout
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		recs := db.Records()
		if parallel > 1 {
			return rend.RenderContext(cmd.Context(), out, recs...)
		}
		return rend.Render(out, recs...)
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List registered presets and their targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry()
		if err != nil {
			return err
		}
		for _, name := range reg.Names() {
			rend, err := reg.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, rend.Target().Name())
		}
		return nil
	},
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List built-in output targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range carddex.Builtins() {
			fmt.Fprintln(cmd.OutOrStdout(), t.Name())
		}
		return nil
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete PREFIX FILE",
	Short: "Complete a mail address against a contact file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := loadContacts(args[1])
		if err != nil {
			return err
		}
		for _, cand := range db.CompleteMail(args[0]) {
			fmt.Fprintln(cmd.OutOrStdout(), cand)
		}
		return nil
	},
}

func registry() (*carddex.Registry, error) {
	opts := []carddex.RendererOption{carddex.WithLogger(logger)}
	if parallel > 1 {
		opts = append(opts, carddex.WithParallelism(parallel))
	}
	if presetsFile == "" {
		return carddex.DefaultRegistry(opts...), nil
	}
	data, err := os.ReadFile(presetsFile)
	if err != nil {
		return nil, err
	}
	return carddex.LoadPresets(data, opts)
}

func loadContacts(path string) (*contact.DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return contact.LoadYAML(f)
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&presetsFile, "presets", "", "YAML preset file (default: built-in presets)")

	renderCmd.Flags().StringVarP(&presetName, "preset", "p", "plain", "preset name")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	renderCmd.Flags().IntVar(&parallel, "parallel", 1, "records rendered concurrently")

	rootCmd.AddCommand(renderCmd, presetsCmd, targetsCmd, completeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
