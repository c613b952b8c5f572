package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wliu/gradewise/internal/profile"
	"github.com/wliu/gradewise/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend today's practice plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		grade, _ := cmd.Flags().GetInt("grade")
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

		prof, err := profile.NewService(s.EventRepo(), s.SnapshotRepo()).Load(context.Background(), student)
		if err != nil {
			return err
		}

		plans := recommend.New(graph).DailyPlans(prof, subject, grade)
		def, _ := recommend.DefaultPlan(plans)

		fmt.Printf("Practice plans for %s — %s grade %d\n", student, subject.DisplayName(), grade)
		for _, plan := range plans {
			marker := " "
			if plan.ID == def.ID {
				marker = "*"
			}
			fmt.Println(strings.Repeat("─", 60))
			fmt.Printf("%s [%s] %s (%s)\n", marker, plan.Priority, plan.Name, plan.ID)
			fmt.Printf("  %s\n", plan.Description)
			fmt.Printf("  %d questions, ~%d minutes, difficulty %s\n",
				plan.TotalQuestions, plan.EstimatedMinutes, plan.Difficulty)
			fmt.Printf("  Goal: %s\n", plan.Goal)
			if plan.Remedial {
				fmt.Println("  (remedial: targets a prerequisite below the current grade)")
			}
			for _, pp := range plan.Points {
				fmt.Printf("    %-24s  %-16s  %d questions\n", pp.PointID, pp.Name, pp.Questions)
			}
		}
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println("* = default plan")
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("subject", "math", "Subject (math, chinese, english)")
	recommendCmd.Flags().Int("grade", 3, "Target grade (1-6)")
}
