package kgraph

import (
	"strings"
	"testing"

	"github.com/wliu/gradewise/internal/knowledge"
)

func TestValidatePoints_Clean(t *testing.T) {
	if err := diamondGraph().Validate(); err != nil {
		t.Errorf("clean corpus should validate, got: %v", err)
	}
}

func TestValidatePoints_DuplicateID(t *testing.T) {
	err := ValidatePoints([]knowledge.KnowledgePoint{
		point("a", 1),
		point("a", 2),
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate point ID") {
		t.Errorf("got %v, want duplicate ID error", err)
	}
}

func TestValidatePoints_DanglingEdges(t *testing.T) {
	bad := point("b", 2, "ghost")
	bad.NextPoints = []string{"phantom"}

	err := ValidatePoints([]knowledge.KnowledgePoint{point("a", 1), bad})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, `nonexistent prerequisite "ghost"`) {
		t.Errorf("missing dangling prerequisite report: %v", msg)
	}
	if !strings.Contains(msg, `nonexistent next point "phantom"`) {
		t.Errorf("missing dangling next-point report: %v", msg)
	}
}

func TestValidatePoints_SelfReference(t *testing.T) {
	err := ValidatePoints([]knowledge.KnowledgePoint{point("a", 1, "a")})
	if err == nil || !strings.Contains(err.Error(), "lists itself") {
		t.Errorf("got %v, want self-reference error", err)
	}
}

func TestValidatePoints_Cycle(t *testing.T) {
	err := ValidatePoints([]knowledge.KnowledgePoint{
		point("a", 1, "b"),
		point("b", 1, "a"),
		point("c", 2),
	})
	if err == nil {
		t.Fatal("expected cycle to be reported")
	}
	msg := err.Error()
	if !strings.Contains(msg, "cycle") {
		t.Errorf("missing cycle report: %v", msg)
	}
	if !strings.Contains(msg, "a") || !strings.Contains(msg, "b") {
		t.Errorf("cycle report should name the participating points: %v", msg)
	}
}

func TestValidatePoints_DanglingIsNotACycle(t *testing.T) {
	// A dangling prerequisite leaves in-degree intact under Kahn only if
	// edges to unknown points are counted; they must not be.
	err := ValidatePoints([]knowledge.KnowledgePoint{point("a", 1, "ghost")})
	if err == nil {
		t.Fatal("expected dangling reference error")
	}
	if strings.Contains(err.Error(), "cycle") {
		t.Errorf("dangling reference misreported as cycle: %v", err)
	}
}
