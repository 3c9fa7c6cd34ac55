// Package main provides the CLI entry point for packlist.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"packlist/pkg/packlist"
	"packlist/pkg/packlist/config"
	"packlist/pkg/packlist/input"
	"packlist/pkg/packlist/models"
	"packlist/pkg/packlist/output"
)

var (
	outputPath  string
	sheetName   string
	configPath  string
	showMapping bool
	verbose     bool

	classCol  string
	lessonCol string
	itemCol   string
	qtyCol    string
	sizeCol   string
	unitCol   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "packlist [input.xlsx]",
		Short: "Generate per-class packing lists from a bulk purchasing table",
		Long: `packlist reads a bulk purchasing spreadsheet, groups its rows by class
and lesson, and writes a workbook with one packing-list sheet per group
plus an INDEX sheet. Column roles are inferred from the headers and can
be overridden with flags.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path (default: Packing_Lists.xlsx)")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Input sheet name (default: best-guess sheet)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file path")
	rootCmd.Flags().BoolVar(&showMapping, "show-mapping", false, "Print the resolved column mapping and exit")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log dropped rows, coercions, and collisions")

	rootCmd.Flags().StringVar(&classCol, "class-col", "", "Class column header (default: inferred)")
	rootCmd.Flags().StringVar(&lessonCol, "lesson-col", "", "Lesson column header (default: inferred)")
	rootCmd.Flags().StringVar(&itemCol, "item-col", "", "Item column header (default: inferred)")
	rootCmd.Flags().StringVar(&qtyCol, "qty-col", "", "Quantity column header (default: inferred)")
	rootCmd.Flags().StringVar(&sizeCol, "size-col", "", "Size column header (default: inferred, empty to disable)")
	rootCmd.Flags().StringVar(&unitCol, "unit-col", "", "Unit/notes column header (default: inferred, empty to disable)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer l.Sync()
		logger = l
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	src, err := input.OpenReader(file)
	if err != nil {
		return err
	}
	defer src.Close()

	sheet := sheetName
	if sheet == "" {
		sheet = cfg.Sheet
	}
	table, err := src.Table(sheet)
	if err != nil {
		return err
	}
	table = input.DropEmptyColumns(table)

	opts := packlist.Options{
		Logger:  logger,
		Phrases: cfg.PhraseTable(),
	}

	mapping := resolveMapping(cmd, table, opts)
	if showMapping {
		printMapping(cmd, mapping)
		return nil
	}

	wb, err := packlist.Build(table, mapping, opts)
	if err != nil {
		return err
	}
	data, err := output.Write(wb)
	if err != nil {
		return err
	}

	for _, c := range wb.Collisions {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: sheet name %q already taken, renamed to %q (class %q, lesson %q)\n",
			c.Name, c.RenamedTo, c.Class, c.Lesson)
	}

	out := outputPath
	if out == "" {
		out = cfg.Output
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d sheets + %s)\n", out, len(wb.Sheets), models.IndexSheetName)
	return nil
}

// resolveMapping combines inferred defaults with explicit flag overrides.
// An explicitly set flag always wins, including an empty value for the
// optional roles, which disables them.
func resolveMapping(cmd *cobra.Command, table *models.RawTable, opts packlist.Options) models.RoleMapping {
	defaults := packlist.InferDefaultsWith(table.Headers, opts)

	pick := func(flag, override, inferred string) string {
		if cmd.Flags().Changed(flag) {
			return override
		}
		return inferred
	}
	return models.RoleMapping{
		Class:    pick("class-col", classCol, defaults.Class),
		Lesson:   pick("lesson-col", lessonCol, defaults.Lesson),
		Item:     pick("item-col", itemCol, defaults.Item),
		Quantity: pick("qty-col", qtyCol, defaults.Quantity),
		Size:     pick("size-col", sizeCol, defaults.Size),
		Unit:     pick("unit-col", unitCol, defaults.Unit),
	}
}

func printMapping(cmd *cobra.Command, m models.RoleMapping) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "class:    %s\n", orNone(m.Class))
	fmt.Fprintf(w, "lesson:   %s\n", orNone(m.Lesson))
	fmt.Fprintf(w, "item:     %s\n", orNone(m.Item))
	fmt.Fprintf(w, "quantity: %s\n", orNone(m.Quantity))
	fmt.Fprintf(w, "size:     %s\n", orNone(m.Size))
	fmt.Fprintf(w, "unit:     %s\n", orNone(m.Unit))
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
