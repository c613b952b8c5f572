package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wliu/gradewise/internal/profile"
)

var recordCmd = &cobra.Command{
	Use:   "record <point-id>",
	Short: "Record practice results for a knowledge point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		correct, _ := cmd.Flags().GetInt("correct")
		wrong, _ := cmd.Flags().GetInt("wrong")
		qtype, _ := cmd.Flags().GetString("type")

		if correct < 0 || wrong < 0 || correct+wrong == 0 {
			return fmt.Errorf("nothing to record: pass --correct and/or --wrong")
		}

		graph, err := buildGraph(cmd)
		if err != nil {
			return err
		}
		point, ok := graph.Point(args[0])
		if !ok {
			return fmt.Errorf("knowledge point %q not found", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		answers := make([]profile.Answer, 0, correct+wrong)
		for i := 0; i < correct; i++ {
			answers = append(answers, profile.Answer{Point: &point, QuestionType: qtype, Correct: true})
		}
		for i := 0; i < wrong; i++ {
			answers = append(answers, profile.Answer{Point: &point, QuestionType: qtype, Correct: false})
		}

		svc := profile.NewService(s.EventRepo(), s.SnapshotRepo())
		sessionID, err := svc.RecordSession(context.Background(), student, answers)
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %d correct / %d wrong on %s for %s (session %s)\n",
			correct, wrong, point.Name, student, sessionID)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <profile.json>",
	Short: "Import a legacy name-keyed profile into the event store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
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

		svc := profile.NewService(s.EventRepo(), s.SnapshotRepo())
		res, err := svc.ImportLegacy(context.Background(), student, args[0], subject, graph)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d points (%d events) for %s\n", res.Imported, res.Events, student)
		if len(res.Skipped) > 0 {
			fmt.Printf("Skipped %d unresolvable names:\n", len(res.Skipped))
			for _, name := range res.Skipped {
				fmt.Printf("  %s\n", name)
			}
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().Int("correct", 0, "Number of correct answers")
	recordCmd.Flags().Int("wrong", 0, "Number of wrong answers")
	recordCmd.Flags().String("type", "", "Question type (e.g. 计算题)")

	importCmd.Flags().String("subject", "math", "Subject the legacy profile belongs to")
}
