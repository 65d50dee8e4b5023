package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvaidya/recheck/internal/store"
)

var requeueAllFailed bool

var requeueCmd = &cobra.Command{
	Use:   "requeue [item-id...]",
	Short: "Move failed items back to pending with a fresh attempt budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if !requeueAllFailed && len(args) == 0 {
			return fmt.Errorf("pass item IDs or --all-failed")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records := st.Records()
		ids := append([]string{}, args...)
		if requeueAllFailed {
			failed, err := records.Query(ctx, store.Filter{Status: store.StatusFailed})
			if err != nil {
				return err
			}
			for _, rec := range failed {
				ids = append(ids, rec.ItemID)
			}
		}

		requeued := 0
		for _, id := range ids {
			ok, err := records.Requeue(ctx, id)
			if err != nil {
				return fmt.Errorf("requeue %s: %w", id, err)
			}
			if ok {
				requeued++
			} else {
				fmt.Printf("Skipped %s: not in failed state\n", id)
			}
		}

		fmt.Printf("Requeued %d items; they will be picked up by 'recheck run'\n", requeued)
		return nil
	},
}

func init() {
	requeueCmd.Flags().BoolVar(&requeueAllFailed, "all-failed", false, "Requeue every failed item")
}
