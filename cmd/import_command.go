package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Vovarama1992/planbmusic/internal/infra"
	"github.com/Vovarama1992/planbmusic/internal/ports"
	"github.com/spf13/cobra"
)

func newImportCommand(configFlag *string) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import albums from a CSV or XLSX sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, *configFlag, args[0], dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and validate without touching the store")
	return cmd
}

func runImport(cmd *cobra.Command, configPath, path string, dryRun bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	zl, flush := newLogger()
	defer flush()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var kv ports.KVStore
	if dryRun {
		kv = infra.NewMemoryKV()
	} else if err := cfg.Validate(); err != nil {
		return err
	}

	a, err := newApp(ctx, cfg, zl, kv)
	if err != nil {
		return err
	}
	defer a.Close()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	summary, err := a.importer.Import(ctx, filepath.Base(path), f, "")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(summary.Rejected) > 0 {
		rows := make([][]string, 0, len(summary.Rejected))
		for _, rej := range summary.Rejected {
			rows = append(rows, []string{strconv.Itoa(rej.Row), rej.Reason})
		}
		fmt.Fprintln(out, renderTable("Rejected rows", []string{"Row", "Reason"}, rows))
	}
	mode := ""
	if dryRun {
		mode = " (dry run)"
	}
	fmt.Fprintf(out, "imported %d, failed %d%s\n", summary.Succeeded, summary.Failed, mode)
	return nil
}
