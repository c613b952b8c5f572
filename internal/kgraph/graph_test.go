package kgraph

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wliu/gradewise/internal/knowledge"
)

// point builds a minimal math point for fixtures.
func point(id string, grade int, prereqs ...string) knowledge.KnowledgePoint {
	return knowledge.KnowledgePoint{
		ID:            id,
		Subject:       knowledge.SubjectMath,
		Grade:         grade,
		Category:      "Number Sense",
		Name:          "Point " + id,
		Difficulty:    knowledge.Medium,
		Prerequisites: prereqs,
		Importance:    3,
	}
}

// diamondGraph: D depends on B and C, which both depend on A.
func diamondGraph() *Graph {
	return New([]knowledge.KnowledgePoint{
		point("a", 1),
		point("b", 2, "a"),
		point("c", 2, "a"),
		point("d", 3, "b", "c"),
	})
}

func TestPoint_Lookup(t *testing.T) {
	g := diamondGraph()

	p, ok := g.Point("b")
	if !ok {
		t.Fatal("expected point b to exist")
	}
	if p.Grade != 2 {
		t.Errorf("got grade %d, want 2", p.Grade)
	}

	if _, ok := g.Point("nope"); ok {
		t.Error("expected lookup of unknown id to fail")
	}
}

func TestPrerequisites_DropsDangling(t *testing.T) {
	g := New([]knowledge.KnowledgePoint{
		point("a", 1),
		point("b", 2, "a", "ghost"),
	})

	prereqs := g.Prerequisites("b")
	if len(prereqs) != 1 {
		t.Fatalf("got %d prerequisites, want 1 (dangling dropped)", len(prereqs))
	}
	if prereqs[0].ID != "a" {
		t.Errorf("got prerequisite %q, want %q", prereqs[0].ID, "a")
	}

	if got := g.Prerequisites("nope"); got != nil {
		t.Errorf("unknown point: got %v, want nil", got)
	}
}

func TestPrerequisiteClosure_Diamond(t *testing.T) {
	g := diamondGraph()

	closure := g.PrerequisiteClosure("d")
	if len(closure) != 3 {
		t.Fatalf("got closure of %d points, want 3", len(closure))
	}

	pos := make(map[string]int, len(closure))
	for i, p := range closure {
		if _, dup := pos[p.ID]; dup {
			t.Errorf("point %q appears twice in closure", p.ID)
		}
		pos[p.ID] = i
	}

	if _, ok := pos["d"]; ok {
		t.Error("closure must not contain the target itself")
	}
	if pos["a"] > pos["b"] || pos["a"] > pos["c"] {
		t.Errorf("a must precede b and c, got order %v", closure)
	}
}

func TestPrerequisiteClosure_DependencyOrder(t *testing.T) {
	// Chain a <- b <- c <- d plus a shortcut edge d -> a.
	g := New([]knowledge.KnowledgePoint{
		point("a", 1),
		point("b", 1, "a"),
		point("c", 2, "b"),
		point("d", 3, "c", "a"),
	})

	closure := g.PrerequisiteClosure("d")
	got := make([]string, len(closure))
	for i, p := range closure {
		got[i] = p.ID
	}
	want := "a,b,c"
	if strings.Join(got, ",") != want {
		t.Errorf("got closure %v, want %s", got, want)
	}
}

func TestPrerequisiteClosure_CycleTerminates(t *testing.T) {
	g := New([]knowledge.KnowledgePoint{
		point("a", 1, "b"),
		point("b", 1, "a"),
	})

	closure := g.PrerequisiteClosure("a")
	if len(closure) != 1 || closure[0].ID != "b" {
		t.Errorf("got %v, want exactly [b]", closure)
	}

	// Three-node cycle reached through a clean point.
	g = New([]knowledge.KnowledgePoint{
		point("x", 1, "y"),
		point("y", 1, "z"),
		point("z", 1, "x"),
		point("top", 2, "x"),
	})
	closure = g.PrerequisiteClosure("top")
	if len(closure) != 3 {
		t.Errorf("cyclic corpus: got %d points, want 3 (finite, incomplete)", len(closure))
	}
}

func TestPrerequisiteClosure_UnknownAndLeaf(t *testing.T) {
	g := diamondGraph()

	if got := g.PrerequisiteClosure("nope"); len(got) != 0 {
		t.Errorf("unknown point: got %v, want empty", got)
	}
	if got := g.PrerequisiteClosure("a"); len(got) != 0 {
		t.Errorf("root point: got %v, want empty", got)
	}
}

func TestCheckReadiness(t *testing.T) {
	g := diamondGraph()

	tests := []struct {
		name     string
		id       string
		mastered map[string]bool
		ready    bool
		missing  int
	}{
		{"root always ready", "a", nil, true, 0},
		{"no prereqs mastered", "d", map[string]bool{}, false, 2},
		{"one of two", "d", map[string]bool{"b": true}, false, 1},
		{"all direct prereqs", "d", map[string]bool{"b": true, "c": true}, true, 0},
		// Readiness is about direct prerequisites only; a need not be mastered.
		{"transitive gap ignored", "b", map[string]bool{"a": true}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := g.CheckReadiness(tt.id, tt.mastered)
			if check.Ready != tt.ready {
				t.Errorf("ready = %v, want %v", check.Ready, tt.ready)
			}
			if len(check.Missing) != tt.missing {
				t.Errorf("got %d missing, want %d", len(check.Missing), tt.missing)
			}
		})
	}
}

func TestCheckReadiness_UnknownPoint(t *testing.T) {
	g := diamondGraph()

	check := g.CheckReadiness("nope", map[string]bool{})
	if check.Ready {
		t.Error("unknown point must not be ready")
	}
	if check.Message == "" {
		t.Error("unknown point should carry an explanatory message")
	}
}

func TestLearningPath(t *testing.T) {
	g := New([]knowledge.KnowledgePoint{
		point("a", 1),
		point("b", 1, "a"),
		point("c", 2, "b"),
		point("d", 3, "c"),
	})

	path, err := g.LearningPath("b", "d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := make([]string, len(path))
	for i, p := range path {
		got[i] = p.ID
	}
	if strings.Join(got, ",") != "b,c,d" {
		t.Errorf("got path %v, want [b c d]", got)
	}
}

func TestLearningPath_NoPath(t *testing.T) {
	g := diamondGraph()

	// "b" and "c" are siblings; neither is an ancestor of the other.
	_, err := g.LearningPath("b", "c")
	if !errors.Is(err, ErrNoPath) {
		t.Errorf("got err %v, want ErrNoPath", err)
	}

	_, err = g.LearningPath("a", "nope")
	if !errors.Is(err, ErrNoPath) {
		t.Errorf("unknown target: got err %v, want ErrNoPath", err)
	}
}

func TestRootCause(t *testing.T) {
	g := New([]knowledge.KnowledgePoint{
		point("a", 1),
		point("b", 1, "a"),
		point("c", 2, "b"),
	})

	tests := []struct {
		name     string
		mastered map[string]bool
		want     string
	}{
		{"nothing mastered", map[string]bool{}, "a"},
		{"foundation mastered", map[string]bool{"a": true}, "b"},
		{"all prereqs mastered", map[string]bool{"a": true, "b": true}, "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, ok := g.RootCause("c", tt.mastered)
			if !ok {
				t.Fatal("expected a root cause")
			}
			if rc.ID != tt.want {
				t.Errorf("got root cause %q, want %q", rc.ID, tt.want)
			}
		})
	}

	if _, ok := g.RootCause("nope", map[string]bool{}); ok {
		t.Error("unknown weak point must not produce a root cause")
	}
}

// More mastery must never push the root cause toward the foundations.
func TestRootCause_Monotonicity(t *testing.T) {
	g := New([]knowledge.KnowledgePoint{
		point("a", 1),
		point("b", 1, "a"),
		point("c", 2, "b"),
		point("d", 3, "c"),
	})

	closure := g.PrerequisiteClosure("d")
	pos := map[string]int{"d": len(closure)}
	for i, p := range closure {
		pos[p.ID] = i
	}

	smaller := map[string]bool{"a": true}
	larger := map[string]bool{"a": true, "b": true}

	rcSmall, _ := g.RootCause("d", smaller)
	rcLarge, _ := g.RootCause("d", larger)

	if pos[rcLarge.ID] < pos[rcSmall.ID] {
		t.Errorf("superset mastery moved root cause earlier: %q -> %q", rcSmall.ID, rcLarge.ID)
	}
}

func TestPointsByGradeSubject(t *testing.T) {
	english := point("e", 3)
	english.Subject = knowledge.SubjectEnglish
	g := New([]knowledge.KnowledgePoint{
		point("a", 1),
		point("b", 2, "a"),
		point("c", 2),
		english,
	})

	grade2 := g.PointsByGradeSubject(knowledge.SubjectMath, 2)
	if len(grade2) != 2 {
		t.Fatalf("got %d points, want 2", len(grade2))
	}
	if got := g.PointsByGradeSubject(knowledge.SubjectEnglish, 3); len(got) != 1 {
		t.Errorf("english grade 3: got %d points, want 1", len(got))
	}
	if got := g.PointsByGradeSubject(knowledge.SubjectChinese, 1); len(got) != 0 {
		t.Errorf("unconfigured subject: got %d points, want 0", len(got))
	}
}

func TestPointsByCategory(t *testing.T) {
	geometry := point("g", 2)
	geometry.Category = "Geometry"
	g := New([]knowledge.KnowledgePoint{point("a", 2), geometry})

	got := g.PointsByCategory(knowledge.SubjectMath, 2, "Geometry")
	if len(got) != 1 || got[0].ID != "g" {
		t.Errorf("got %v, want [g]", got)
	}
}

func TestBuild_SkipsMissingGrades(t *testing.T) {
	dir := t.TempDir()

	// Only math grade 1 exists on disk.
	writeCorpus(t, dir, "math", 1, `{
		"schema_version": "v1.0.0",
		"modules": {
			"Number Sense": {
				"description": "counting",
				"points": [
					{"id": "math_1_count_20", "category": "Number Sense", "name": "Counting to 20", "difficulty": 1}
				]
			}
		}
	}`)

	var warnings bytes.Buffer
	g := Build(knowledge.NewLoader(dir), WithWarnings(&warnings))

	if g.Len() != 1 {
		t.Fatalf("got %d points, want 1", g.Len())
	}
	if _, ok := g.Point("math_1_count_20"); !ok {
		t.Error("expected math_1_count_20 to be loaded")
	}
	// Absent files are skipped quietly; only corrupt files warn.
	if warnings.Len() != 0 {
		t.Errorf("unexpected warnings: %s", warnings.String())
	}
}

func TestBuild_WarnsOnCorruptFile(t *testing.T) {
	dir := t.TempDir()
	writeCorpus(t, dir, "math", 1, `{not json`)

	var warnings bytes.Buffer
	g := Build(knowledge.NewLoader(dir), WithWarnings(&warnings))

	if g.Len() != 0 {
		t.Errorf("corrupt file contributed %d points, want 0", g.Len())
	}
	if !strings.Contains(warnings.String(), "warning") {
		t.Errorf("expected a warning, got %q", warnings.String())
	}
}

func writeCorpus(t *testing.T, dir, subject string, grade int, body string) {
	t.Helper()
	subjectDir := filepath.Join(dir, subject)
	if err := os.MkdirAll(subjectDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(subjectDir, fmt.Sprintf("grade_%d.json", grade))
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}
