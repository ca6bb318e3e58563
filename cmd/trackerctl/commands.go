package main

import (
	"alcyxob/training-tracker/internal/plan"
	"alcyxob/training-tracker/internal/service"
	"alcyxob/training-tracker/internal/storage"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the training plan with per-slot completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore(ctx, store)

			views, err := service.NewWorkoutService(store, plan.NewCatalog()).GetPlanView(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, week := range views {
				fmt.Fprintf(w, "Week %d\t%s\t%s\t%.1f mi\n", week.WeekNum, week.Dates, week.Phase, week.TotalMiles)
				for _, slot := range week.Workouts {
					mark := " "
					if slot.Record != nil && slot.Record.Completed {
						mark = "x"
					}
					fmt.Fprintf(w, "  [%s]\t%s\t%s\t%.1f\n", mark, slot.Day, slot.EffectiveWorkout, slot.EffectiveMiles)
				}
			}
			return w.Flush()
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print completion statistics as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore(ctx, store)

			stats, err := service.NewStatsService(store, plan.NewCatalog()).ComputeStats(ctx)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), stats)
		},
	}
}

func resetCmd() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored workout record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("refusing to delete records without --yes")
			}
			ctx := cmd.Context()
			_, store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore(ctx, store)

			n, err := service.NewWorkoutService(store, plan.NewCatalog()).ResetAll(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d records\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm deletion")
	return cmd
}

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all records to the configured S3 bucket, or to a local file with -o",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore(ctx, store)

			if output != "" {
				records, err := store.ListAll(ctx)
				if err != nil {
					return err
				}
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := writeJSON(f, records); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(records), output)
				return nil
			}

			if !cfg.S3.Enabled() {
				return service.ErrBackupsDisabled
			}
			objects, err := storage.NewS3Storage(ctx, cfg.S3)
			if err != nil {
				return err
			}
			backup, err := service.NewBackupService(store, objects, cfg.S3.PresignExpiry).Export(ctx)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), backup)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the snapshot to this file instead of S3")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
