// Package main provides the CLI entry point for sheetimport.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moxuandi/sheetimport/internal/config"
	"github.com/moxuandi/sheetimport/internal/logger"
	"github.com/moxuandi/sheetimport/pkg/sheetimport"
	"github.com/moxuandi/sheetimport/pkg/sheetimport/models"
	"github.com/moxuandi/sheetimport/pkg/sheetimport/output"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetimport [file]",
		Short: "Read spreadsheet files into JSON or YAML",
		Long: `sheetimport reads the sheets of an xlsx, xls or csv file and prints
their rows, or records keyed by the header row, as JSON or YAML.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args, stdout, stderr)
			if err != nil {
				fmt.Fprintln(stderr, "Error:", err)
			}
			return err
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	config.RegisterFlags(rootCmd.Flags())
	return rootCmd
}

func run(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(viper.New(), cmd.Flags(), ".env")
	if err != nil {
		return err
	}

	log, err := logger.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	opts, err := cfg.ImportOptions()
	if err != nil {
		return err
	}
	opts.Logger = log

	imp, err := sheetimport.New(opts)
	if err != nil {
		return err
	}

	// Extra file arguments are rejected by the importer.
	result, err := imp.Import(args...)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	data, err := output.Encode(result, output.Format(cfg.Format), cfg.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Info("output written", "path", cfg.Output)
	} else if cfg.SheetsDir == "" {
		fmt.Fprintln(stdout, string(data))
	}

	// Write per-sheet files
	if cfg.SheetsDir != "" {
		if err := writeSheetFiles(result, cfg, cfg.SheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func writeSheetFiles(result *sheetimport.Result, cfg *config.Config, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if result.Collapsed() {
		return writeSheetFile(dir, result.Single.Name, &sheetimport.Result{Single: result.Single}, cfg)
	}

	var err error
	result.Each(func(id sheetimport.SheetID, sheet *models.SheetData) {
		if err != nil {
			return
		}
		err = writeSheetFile(dir, id.String(), &sheetimport.Result{Single: sheet}, cfg)
	})
	return err
}

func writeSheetFile(dir, name string, single *sheetimport.Result, cfg *config.Config) error {
	data, err := output.Encode(single, output.Format(cfg.Format), cfg.Pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(sheetFileName(dir, name, cfg.Format), data, 0644)
}

// sheetFileName keeps per-sheet files inside dir whatever the sheet is named.
func sheetFileName(dir, name, ext string) string {
	return filepath.Join(dir, filepath.Base(name)+"."+ext)
}
