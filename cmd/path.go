package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wliu/gradewise/internal/kgraph"
	"github.com/wliu/gradewise/internal/profile"
)

var pathCmd = &cobra.Command{
	Use:   "path <from-id> <to-id>",
	Short: "Show the learning path between two knowledge points",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, err := buildGraph(cmd)
		if err != nil {
			return err
		}

		path, err := graph.LearningPath(args[0], args[1])
		if errors.Is(err, kgraph.ErrNoPath) {
			return fmt.Errorf("%s is not a prerequisite of %s: no learning path", args[0], args[1])
		}
		if err != nil {
			return err
		}

		fmt.Printf("Learning path (%d steps):\n", len(path))
		for i, p := range path {
			fmt.Printf("  %2d. %-24s  %s (grade %d)\n", i+1, p.ID, p.Name, p.Grade)
		}
		return nil
	},
}

var readyCmd = &cobra.Command{
	Use:   "ready <id>",
	Short: "Check whether a student is ready to learn a knowledge point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")

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

		check := graph.CheckReadiness(args[0], prof.MasteredIDs())
		if check.Ready {
			fmt.Printf("✓ %s is ready to learn %s\n", student, args[0])
			return nil
		}
		fmt.Printf("✗ %s\n", check.Message)
		for _, m := range check.Missing {
			fmt.Printf("  missing: %-24s  %s (grade %d)\n", m.ID, m.Name, m.Grade)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the knowledge corpus (duplicates, dangling edges, cycles)",
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, err := buildGraph(cmd)
		if err != nil {
			return err
		}
		if err := graph.Validate(); err != nil {
			return fmt.Errorf("corpus validation failed:\n%w", err)
		}
		fmt.Printf("✓ corpus OK: %d knowledge points, no duplicates, no dangling edges, no cycles\n", graph.Len())
		return nil
	},
}
