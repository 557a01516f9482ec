package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newFAQCommand(configFlag *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faq",
		Short: "Manage FAQs",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Seed the default FAQ set when no FAQ exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			zl, flush := newLogger()
			defer flush()

			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a, err := newApp(ctx, cfg, zl, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.faqs.Initialize(ctx)
			if err != nil {
				return err
			}
			if res.Existing > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "FAQs already initialized (%d)\n", res.Existing)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d FAQs\n", res.Seeded)
			return nil
		},
	})
	return cmd
}
