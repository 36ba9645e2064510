package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/assistant"
	"github.com/jonathan/resume-builder/internal/observability"
)

var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "Generate resume content with the AI assistant",
}

var (
	flagAssistTitle      string
	flagAssistCompany    string
	flagAssistExperience string
	flagAssistSkills     []string
	flagAssistGoals      string
	flagAssistResp       string
	flagAssistAchieve    string
	flagAssistIndustry   string
	flagAssistApply      bool
	flagAssistKind       string
)

// newAssistant builds the Gemini-backed assistant. A missing API key
// surfaces as a configuration error with remediation instructions; there
// is no silent fallback.
func newAssistant(cmd *cobra.Command) (*assistant.Assistant, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := assistant.NewGeminiClient(cmd.Context(), cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = client.Close() }
	return assistant.New(client), closeFn, nil
}

var assistSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Generate a professional summary and store it in the document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, _, err := openWorkspace(cfg)
		if err != nil {
			return err
		}

		a, closeFn, err := newAssistant(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		summary, err := a.GenerateSummary(cmd.Context(), assistant.SummaryRequest{
			Name:       st.Data().Personal.Name,
			JobTitle:   flagAssistTitle,
			Experience: flagAssistExperience,
			Skills:     flagAssistSkills,
			Goals:      flagAssistGoals,
		})
		if err != nil {
			// The document is untouched on any failure.
			return err
		}

		if flagAssistApply {
			st.UpdateSummary(summary)
		}
		fmt.Fprintln(cmd.OutOrStdout(), summary)
		return nil
	},
}

var assistBulletsCmd = &cobra.Command{
	Use:   "bullets",
	Short: "Generate experience bullet points",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeFn, err := newAssistant(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		bullets, err := a.GenerateBulletPoints(cmd.Context(), assistant.BulletPointRequest{
			JobTitle:         flagAssistTitle,
			Company:          flagAssistCompany,
			Responsibilities: flagAssistResp,
			Achievements:     flagAssistAchieve,
			Skills:           flagAssistSkills,
			Industry:         flagAssistIndustry,
		})
		if err != nil {
			return err
		}

		for _, bullet := range bullets {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", bullet)
		}
		return nil
	},
}

var assistSkillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Suggest skills for a job title",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeFn, err := newAssistant(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		skills, err := a.SuggestSkills(cmd.Context(), assistant.SkillSuggestionRequest{
			JobTitle: flagAssistTitle,
			Industry: flagAssistIndustry,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(skills, ", "))
		return nil
	},
}

var assistAnalyzeCmd = &cobra.Command{
	Use:   "analyze <job-description-file>",
	Short: "Analyze a job description for resume tailoring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}

		a, closeFn, err := newAssistant(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		analysis, err := a.AnalyzeJob(cmd.Context(), assistant.JobAnalysisRequest{
			JobDescription: string(description),
		})
		if err != nil {
			var malformed *assistant.MalformedResponseError
			if errors.As(err, &malformed) {
				// Degrade to generic tips rather than failing the action.
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning: analysis response was malformed; showing generic tips")
				analysis = assistant.PlaceholderAnalysis()
			} else {
				return err
			}
		}

		observability.NewPrinter(cmd.OutOrStdout()).PrintJobAnalysis(analysis)
		return nil
	},
}

var assistImproveCmd = &cobra.Command{
	Use:   "improve <text>",
	Short: "Improve existing summary, bullet, or description text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeFn, err := newAssistant(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		improved, err := a.Improve(cmd.Context(), assistant.ImproveRequest{
			Content: args[0],
			Kind:    assistant.ContentKind(flagAssistKind),
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), improved)
		return nil
	},
}

func init() {
	assistCmd.PersistentFlags().StringVar(&flagAssistTitle, "title", "", "target job title")
	assistCmd.PersistentFlags().StringSliceVar(&flagAssistSkills, "skills", nil, "relevant skills")
	assistCmd.PersistentFlags().StringVar(&flagAssistIndustry, "industry", "", "industry context")

	assistSummaryCmd.Flags().StringVar(&flagAssistExperience, "experience", "", "years of experience")
	assistSummaryCmd.Flags().StringVar(&flagAssistGoals, "goals", "", "career goals")
	assistSummaryCmd.Flags().BoolVar(&flagAssistApply, "apply", false, "store the generated summary in the document")

	assistBulletsCmd.Flags().StringVar(&flagAssistCompany, "company", "", "company name")
	assistBulletsCmd.Flags().StringVar(&flagAssistResp, "responsibilities", "", "job responsibilities")
	assistBulletsCmd.Flags().StringVar(&flagAssistAchieve, "achievements", "", "key achievements")

	assistImproveCmd.Flags().StringVar(&flagAssistKind, "kind", "summary", "content kind: summary, bullet, or description")

	assistCmd.AddCommand(assistSummaryCmd, assistBulletsCmd, assistSkillsCmd, assistAnalyzeCmd, assistImproveCmd)
	rootCmd.AddCommand(assistCmd)
}
