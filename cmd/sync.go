package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvaidya/recheck/internal/reconcile"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push completed analyses to the reporting store once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Reconcile.ReportingURL == "" {
			return fmt.Errorf("reconcile.reporting_url is not configured")
		}
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		st, err := openStore(cmd, cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		reporting := reconcile.NewHTTPReportingStore(cfg.Reconcile.ReportingURL, cfg.ReportingTimeout())
		svc := reconcile.NewService(st.Records(), reporting, cfg.Reconcile.BatchSize, log)

		n, err := svc.Sync(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Synced %d rows\n", n)
		return nil
	},
}
