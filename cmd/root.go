package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wliu/gradewise/internal/kgraph"
	"github.com/wliu/gradewise/internal/knowledge"
	"github.com/wliu/gradewise/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gradewise",
	Short: "Knowledge-graph tutor for primary school students",
	Long: "Gradewise tracks a student's per-knowledge-point mastery, diagnoses\n" +
		"prerequisite gaps against the curriculum graph, and recommends daily practice.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GRADEWISE_DB env var)")
	rootCmd.PersistentFlags().String("data", "", "Path to knowledge corpus directory (overrides GRADEWISE_DATA env var)")
	rootCmd.PersistentFlags().String("student", "default", "Student name")

	rootCmd.AddCommand(pointsCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(readyCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then GRADEWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveDataDir returns the corpus directory using --data, then
// GRADEWISE_DATA, then the default XDG path.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p, nil
	}
	return store.DefaultDataDir()
}

// buildGraph loads the corpus and builds the knowledge graph.
func buildGraph(cmd *cobra.Command) (*kgraph.Graph, error) {
	dir, err := resolveDataDir(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	graph := kgraph.Build(knowledge.NewLoader(dir), kgraph.WithWarnings(cmd.ErrOrStderr()))
	if graph.Len() == 0 {
		return nil, fmt.Errorf("no knowledge points found under %s", dir)
	}
	return graph, nil
}

// openStore opens the event store for the resolved database path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// subjectFlag parses the --subject flag.
func subjectFlag(cmd *cobra.Command) (knowledge.Subject, error) {
	raw, _ := cmd.Flags().GetString("subject")
	s, ok := knowledge.ParseSubject(raw)
	if !ok {
		return "", fmt.Errorf("unknown subject %q (expected math, chinese, or english)", raw)
	}
	return s, nil
}
