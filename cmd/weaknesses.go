package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pvaidya/recheck/internal/weakness"
)

var (
	weaknessSubject string
	weaknessBase    string
	weaknessLimit   int
)

var weaknessesCmd = &cobra.Command{
	Use:   "weaknesses",
	Short: "Show the current weakness profile for a subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := weakness.NewService(st.Weaknesses(), zap.NewNop())
		entries, err := svc.Top(cmd.Context(), weaknessSubject, weaknessBase, weaknessLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No open weaknesses. Nice.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "COUNT\tBASE BRANCH\tDETAILED BRANCH\tLAST SEEN")
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				e.Count, e.BaseBranch, e.DetailedBranch, e.LastSeen.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

func init() {
	weaknessesCmd.Flags().StringVar(&weaknessSubject, "subject", "Math", "Subject to report on")
	weaknessesCmd.Flags().StringVar(&weaknessBase, "base", "", "Narrow to one base branch")
	weaknessesCmd.Flags().IntVar(&weaknessLimit, "limit", 10, "Maximum entries to show")
}
