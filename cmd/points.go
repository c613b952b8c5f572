package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wliu/gradewise/internal/knowledge"
)

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Browse the knowledge point graph",
}

var pointsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List knowledge points for a subject and grade",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := subjectFlag(cmd)
		if err != nil {
			return err
		}
		grade, _ := cmd.Flags().GetInt("grade")
		category, _ := cmd.Flags().GetString("category")

		graph, err := buildGraph(cmd)
		if err != nil {
			return err
		}

		var points []knowledge.KnowledgePoint
		if category != "" {
			points = graph.PointsByCategory(subject, grade, category)
		} else {
			points = graph.PointsByGradeSubject(subject, grade)
		}
		if len(points) == 0 {
			return fmt.Errorf("no knowledge points for %s grade %d", subject, grade)
		}

		fmt.Printf("%-24s  %-20s  %-16s  %-4s  %s\n",
			"ID", "Name", "Category", "Imp", "Difficulty")
		fmt.Println(strings.Repeat("─", 84))
		for _, p := range points {
			fmt.Printf("%-24s  %-20s  %-16s  %-4d  %s\n",
				p.ID, p.Name, p.Category, p.Importance, p.Difficulty.Label())
		}
		fmt.Printf("\n%d points\n", len(points))
		return nil
	},
}

var pointsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one knowledge point with its prerequisites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, err := buildGraph(cmd)
		if err != nil {
			return err
		}

		p, ok := graph.Point(args[0])
		if !ok {
			return fmt.Errorf("knowledge point %q not found", args[0])
		}

		fmt.Printf("ID:          %s\n", p.ID)
		fmt.Printf("Name:        %s\n", p.Name)
		fmt.Printf("Subject:     %s\n", p.Subject.DisplayName())
		fmt.Printf("Grade:       %d\n", p.Grade)
		fmt.Printf("Category:    %s\n", p.Category)
		fmt.Printf("Difficulty:  %s\n", p.Difficulty.Label())
		fmt.Printf("Importance:  %d/5\n", p.Importance)
		if p.Description != "" {
			fmt.Printf("Description: %s\n", p.Description)
		}
		if len(p.Keywords) > 0 {
			fmt.Printf("Keywords:    %s\n", strings.Join(p.Keywords, ", "))
		}

		if direct := graph.Prerequisites(p.ID); len(direct) > 0 {
			fmt.Println("\nDirect prerequisites:")
			for _, pre := range direct {
				fmt.Printf("  %-24s  %s (grade %d)\n", pre.ID, pre.Name, pre.Grade)
			}
		}
		if closure := graph.PrerequisiteClosure(p.ID); len(closure) > 0 {
			fmt.Printf("\nFull prerequisite chain (%d points, foundational first):\n", len(closure))
			for _, pre := range closure {
				fmt.Printf("  %-24s  %s (grade %d)\n", pre.ID, pre.Name, pre.Grade)
			}
		}
		return nil
	},
}

func init() {
	pointsListCmd.Flags().String("subject", "math", "Subject (math, chinese, english)")
	pointsListCmd.Flags().Int("grade", 3, "Grade (1-6)")
	pointsListCmd.Flags().String("category", "", "Filter by category")

	pointsCmd.AddCommand(pointsListCmd)
	pointsCmd.AddCommand(pointsShowCmd)
}
