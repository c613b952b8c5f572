package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wliu/gradewise/internal/diagnosis"
	"github.com/wliu/gradewise/internal/profile"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Diagnose a student's mastery and prerequisite gaps",
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

		report, err := diagnosis.NewService(graph).Diagnose(prof, subject, grade)
		if err != nil {
			return err
		}

		fmt.Printf("Diagnosis for %s — %s grade %d\n", report.Student, subject.DisplayName(), report.TargetGrade)
		fmt.Println(strings.Repeat("─", 60))

		if report.InsufficientData {
			fmt.Println("No practice recorded yet — no diagnosis possible.")
			fmt.Println("Record some practice first, or run a diagnostic test (gradewise test).")
			return nil
		}

		fmt.Printf("Estimated grade level:  %.1f\n", report.ActualGradeLevel)
		fmt.Printf("Mastered points:        %d\n", report.MasteredCount)
		fmt.Printf("Weak points:            %d\n", len(report.WeakPoints))

		if len(report.WeakPoints) > 0 {
			fmt.Println("\nWeak points (worst first):")
			for _, w := range report.WeakPoints {
				fmt.Printf("  %-24s  %-16s  %5.1f%%  (%d attempts, grade %d)\n",
					w.PointID, w.Name, w.Accuracy, w.Attempts, w.Grade)
			}
		}
		if len(report.RootCauses) > 0 {
			fmt.Println("\nRoot causes:")
			for _, rc := range report.RootCauses {
				fmt.Printf("  %-24s  %-16s  grade %d  (explains %s)\n",
					rc.PointID, rc.Name, rc.Grade, rc.ForPointID)
			}
		}
		if len(report.Recommendations) > 0 {
			fmt.Println("\nRecommendations:")
			for i, rec := range report.Recommendations {
				fmt.Printf("  %d. [%s] %s\n     %s\n", i+1, rec.Priority, rec.Action, rec.Reason)
			}
		}
		return nil
	},
}

func init() {
	diagnoseCmd.Flags().String("subject", "math", "Subject (math, chinese, english)")
	diagnoseCmd.Flags().Int("grade", 3, "Target grade (1-6)")
}
