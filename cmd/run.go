package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/port"
)

var (
	runDescription string
	runFields      map[string]string
	runOutputDir   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the whole workflow once without the web form",
	Long: `Extracts the brief from --description, fills missing fields from --set
key=value pairs, runs split tests, ad set generation and simulation, and writes
every artifact to the output directory. Sessions are kept in memory.`,
	Example: `  onebot-ads run --description "Run&Co sells running shoes to women in France" --set budget=800`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if runOutputDir != "" {
			cfg.Storage.OutputDir = runOutputDir
		}
		a, err := newApp(cmd.Context(), cfg, "memory", "file")
		if err != nil {
			return err
		}
		defer a.Close()
		return runHeadless(cmd, a.uc, runDescription, runFields, cmd.OutOrStdout())
	},
}

func init() {
	runCmd.Flags().StringVarP(&runDescription, "description", "d", "", "free-text campaign description (required)")
	runCmd.Flags().StringToStringVar(&runFields, "set", nil, "brief field used when extraction leaves it blank, as key=value")
	runCmd.Flags().StringVarP(&runOutputDir, "output", "o", "", "artifact directory (default STORAGE_OUTPUT_DIR)")
	_ = runCmd.MarkFlagRequired("description")
}

// runHeadless drives one session through extraction, completion and the
// workflow, then prints the recommendation and the artifact list to out.
func runHeadless(cmd *cobra.Command, uc port.CampaignUseCase, description string, fields map[string]string, out io.Writer) error {
	ctx := cmd.Context()
	s, err := uc.CreateSession(ctx)
	if err != nil {
		return err
	}

	if s, err = uc.Extract(ctx, s.ID, description); err != nil {
		return err
	}
	if fields == nil {
		fields = map[string]string{}
	}
	if s, err = uc.Complete(ctx, s.ID, fields); err != nil {
		var incomplete *port.IncompleteBriefError
		if errors.As(err, &incomplete) {
			return fmt.Errorf("%w (provide them with --set %s=...)", err, incomplete.Missing[0])
		}
		return err
	}

	res, err := uc.RunWorkflow(ctx, s.ID)
	if err != nil {
		return err
	}
	logger.Info("workflow done", slog.String("session", s.ID), slog.Int("artifacts", len(res.Artifacts)))

	names := make([]string, 0, len(res.Artifacts))
	for _, a := range res.Artifacts {
		names = append(names, a.Name)
	}
	sort.Strings(names)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "    ")
	return enc.Encode(struct {
		SessionID      string                `json:"session_id"`
		Recommendation domain.Recommendation `json:"model_recommendation"`
		TopMeanROAS    float64               `json:"top3_mean_roas"`
		Winners        map[string]string     `json:"winners"`
		Artifacts      []string              `json:"artifacts"`
	}{
		SessionID:      s.ID,
		Recommendation: res.Recommendation,
		TopMeanROAS:    res.Summary.TopMeanROAS,
		Winners:        winners(res),
		Artifacts:      names,
	})
}

func winners(res *domain.WorkflowResult) map[string]string {
	out := make(map[string]string, len(res.Winners))
	for attr, w := range res.Winners {
		out[attr] = strings.TrimSpace(w.Option)
	}
	return out
}

