package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wliu/gradewise/internal/llm"
	"github.com/wliu/gradewise/internal/practicegen"
	"github.com/wliu/gradewise/internal/profile"
	"github.com/wliu/gradewise/internal/recommend"
	"github.com/wliu/gradewise/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Generate practice questions for a recommended plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		grade, _ := cmd.Flags().GetInt("grade")
		planID, _ := cmd.Flags().GetString("plan")
		subject, err := subjectFlag(cmd)
		if err != nil {
			return err
		}

		graph, err := buildGraph(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		prof, err := profile.NewService(s.EventRepo(), s.SnapshotRepo()).Load(ctx, student)
		if err != nil {
			return err
		}

		plans := recommend.New(graph).DailyPlans(prof, subject, grade)
		plan, ok := pickPlan(plans, planID)
		if !ok {
			return fmt.Errorf("plan %q not available today (run: gradewise recommend)", planID)
		}

		gen, err := newGenerator(ctx, s.LLMLogRepo())
		if err != nil {
			return err
		}

		questions, err := gen.GenerateForPlan(ctx, graph, plan, subject, grade)
		if err != nil {
			return err
		}

		fmt.Printf("%s — %d questions\n", plan.Name, len(questions))
		printQuestions(questions)
		return nil
	},
}

// pickPlan selects the named plan, or the default when id is empty.
func pickPlan(plans []recommend.Plan, id string) (recommend.Plan, bool) {
	if id == "" {
		return recommend.DefaultPlan(plans)
	}
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return recommend.Plan{}, false
}

// newGenerator builds the question generator from env configuration.
// Calls are recorded in the store's LLM audit log.
func newGenerator(ctx context.Context, log store.LLMLogRepo) (*practicegen.Generator, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		} else {
			return nil, fmt.Errorf("no LLM provider configured: %w", err)
		}
	}
	provider, err := llm.NewProvider(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(os.Stderr, "using %s provider (%s)\n", cfg.Provider, provider.ModelID())
	return practicegen.New(provider, practicegen.DefaultConfig()), nil
}

func printQuestions(questions []practicegen.Question) {
	for i, q := range questions {
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%d. [%s] %s\n", i+1, q.PointName, q.Text)
		fmt.Printf("   答案：%s\n", q.Answer)
		fmt.Printf("   解析：%s\n", q.Analysis)
	}
}

func init() {
	practiceCmd.Flags().String("subject", "math", "Subject (math, chinese, english)")
	practiceCmd.Flags().Int("grade", 3, "Target grade (1-6)")
	practiceCmd.Flags().String("plan", "", "Plan ID to generate (default: today's default plan)")
}
