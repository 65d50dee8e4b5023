package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pvaidya/recheck/internal/gateway"
	"github.com/pvaidya/recheck/internal/llm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the classification gateway HTTP server",
	Long: "Serves POST /v1/classify for analysis workers. The gateway is stateless: it can " +
		"be restarted or scaled at any time without losing work.",
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

		llmCfg := cfg.LLMConfig()
		if err := llmCfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no usable LLM provider: %w", err)
			}
			llmCfg = discovered
		}
		provider, err := llm.NewProvider(ctx, llmCfg, st.Events(), log)
		if err != nil {
			return err
		}

		svc := gateway.NewService(provider, gateway.DefaultServiceConfig(), log)
		srv := &http.Server{
			Addr:    cfg.Gateway.ListenAddr,
			Handler: gateway.NewRouter(svc, log),
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("gateway shutdown", zap.Error(err))
			}
		}()

		log.Info("classification gateway listening",
			zap.String("addr", cfg.Gateway.ListenAddr),
			zap.String("provider", llmCfg.Provider))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}
