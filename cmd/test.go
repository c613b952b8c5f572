package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Author a diagnostic test for a subject and grade",
	Long: "Generates a short placement test covering the most important knowledge\n" +
		"points of the grade, two questions per point.",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		topN, _ := cmd.Flags().GetInt("points")
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
		gen, err := newGenerator(ctx, s.LLMLogRepo())
		if err != nil {
			return err
		}

		questions, err := gen.DiagnosticTest(ctx, graph, subject, grade, topN)
		if err != nil {
			return err
		}

		fmt.Printf("Diagnostic test — %s grade %d, %d questions\n", subject.DisplayName(), grade, len(questions))
		printQuestions(questions)
		return nil
	},
}

func init() {
	testCmd.Flags().String("subject", "math", "Subject (math, chinese, english)")
	testCmd.Flags().Int("grade", 3, "Grade (1-6)")
	testCmd.Flags().Int("points", 5, "How many knowledge points to probe")
}
