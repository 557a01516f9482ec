package main

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/spf13/cobra"
)

func newVideosCommand(configFlag *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "videos",
		Short: "Manage the video catalog",
	}

	var commit bool
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "List channel uploads and optionally store the new ones",
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

			found, err := a.sync.Discover(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(found.Videos))
			var fresh []models.VideoCandidate
			for _, v := range found.Videos {
				state := "new"
				if v.IsExisting {
					state = "stored"
				} else {
					fresh = append(fresh, v)
				}
				rows = append(rows, []string{v.VideoID, v.Title, v.PublishedAt, state})
			}
			fmt.Fprintln(out, renderTable("Channel uploads", []string{"Video ID", "Title", "Published", "State"}, rows))
			fmt.Fprintf(out, "found %d, already stored %d\n", found.Total, found.Existing)

			if !commit {
				return nil
			}
			res, err := a.sync.Commit(ctx, fresh, "")
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "added %d, failed %d\n", res.Added, res.Failed)
			return nil
		},
	}
	syncCmd.Flags().BoolVar(&commit, "commit", false, "Store videos that are not in the catalog yet")

	cmd.AddCommand(syncCmd)
	return cmd
}
