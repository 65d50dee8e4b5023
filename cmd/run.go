package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pvaidya/recheck/internal/config"
	"github.com/pvaidya/recheck/internal/gateway"
	"github.com/pvaidya/recheck/internal/llm"
	"github.com/pvaidya/recheck/internal/queue"
	"github.com/pvaidya/recheck/internal/reconcile"
	"github.com/pvaidya/recheck/internal/store"
	"github.com/pvaidya/recheck/internal/weakness"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the analysis workers and the scheduled reporting sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
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

		classifier, err := buildClassifier(ctx, cfg, st, log)
		if err != nil {
			return err
		}

		weakSvc := weakness.NewService(st.Weaknesses(), log)
		dispatcher := queue.NewDispatcher(st.Records(), weakSvc, classifier, queue.Config{
			BatchSize:     cfg.Queue.BatchSize,
			MaxAttempts:   cfg.Queue.MaxAttempts,
			SweepInterval: cfg.SweepInterval(),
		}, log)

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error { return dispatcher.Run(ctx) })

		if cfg.Reconcile.ReportingURL != "" {
			reporting := reconcile.NewHTTPReportingStore(cfg.Reconcile.ReportingURL, cfg.ReportingTimeout())
			sync := reconcile.NewService(st.Records(), reporting, cfg.Reconcile.BatchSize, log)
			g.Go(func() error { return sync.RunScheduled(ctx, cfg.Reconcile.Schedule) })
		} else {
			log.Warn("reporting_url not configured, reporting sync disabled")
		}

		log.Info("recheck running",
			zap.String("gateway", gatewayMode(cfg)),
			zap.Int("batch_size", cfg.Queue.BatchSize))
		return g.Wait()
	},
}

func gatewayMode(cfg config.Config) string {
	if cfg.Gateway.URL != "" {
		return cfg.Gateway.URL
	}
	return "in-process"
}

// buildClassifier returns a remote gateway client when gateway.url is set,
// otherwise an in-process classification service over a direct LLM provider.
func buildClassifier(ctx context.Context, cfg config.Config, st *store.Store, log *zap.Logger) (gateway.Classifier, error) {
	if cfg.Gateway.URL != "" {
		return gateway.NewClient(cfg.Gateway.URL, cfg.GatewayTimeout()), nil
	}

	llmCfg := cfg.LLMConfig()
	if err := llmCfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no usable LLM provider: %w", err)
		}
		llmCfg = discovered
	}

	provider, err := llm.NewProvider(ctx, llmCfg, st.Events(), log)
	if err != nil {
		return nil, err
	}
	return gateway.NewService(provider, gateway.DefaultServiceConfig(), log), nil
}
