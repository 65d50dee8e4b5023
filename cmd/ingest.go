package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pvaidya/recheck/internal/store"
)

// ingestItem is one graded answer as produced by the synchronous grading
// pass. item_id is optional; missing IDs get a generated UUID.
type ingestItem struct {
	ItemID        string    `json:"item_id"`
	Subject       string    `json:"subject"`
	QuestionText  string    `json:"question_text"`
	StudentAnswer string    `json:"student_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	IsCorrect     bool      `json:"is_correct"`
	GradedAt      time.Time `json:"graded_at"`
}

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Load graded answers into the local store and queue them for analysis",
	Long: "Reads a JSON array of graded answers from a file or stdin and stores each as a " +
		"pending record. Items whose item_id is already known are skipped, so re-running an " +
		"ingest is safe. Analysis happens asynchronously in 'recheck run'.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		in := io.Reader(os.Stdin)
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		var items []ingestItem
		if err := json.NewDecoder(in).Decode(&items); err != nil {
			return fmt.Errorf("parse graded items: %w", err)
		}

		records := st.Records()
		added, skipped := 0, 0
		for i, item := range items {
			if item.Subject == "" || item.QuestionText == "" {
				return fmt.Errorf("item %d: subject and question_text are required", i)
			}
			if item.ItemID == "" {
				item.ItemID = uuid.NewString()
			}
			if item.GradedAt.IsZero() {
				item.GradedAt = time.Now().UTC()
			}

			existing, err := records.Get(ctx, item.ItemID)
			if err != nil {
				return err
			}
			if existing != nil {
				skipped++
				continue
			}

			err = records.Upsert(ctx, &store.Record{
				ItemID:         item.ItemID,
				Subject:        item.Subject,
				QuestionText:   item.QuestionText,
				StudentAnswer:  item.StudentAnswer,
				CorrectAnswer:  item.CorrectAnswer,
				IsCorrect:      item.IsCorrect,
				AnalysisStatus: store.StatusPending,
				GradedAt:       item.GradedAt,
			})
			if err != nil {
				return fmt.Errorf("store item %s: %w", item.ItemID, err)
			}
			added++
		}

		fmt.Printf("Ingested %d items (%d already known)\n", added, skipped)
		return nil
	},
}
