package practicegen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/wliu/gradewise/internal/kgraph"
	"github.com/wliu/gradewise/internal/knowledge"
	"github.com/wliu/gradewise/internal/llm"
	"github.com/wliu/gradewise/internal/recommend"
)

func testPoint(id string, importance int) knowledge.KnowledgePoint {
	return knowledge.KnowledgePoint{
		ID:               id,
		Subject:          knowledge.SubjectMath,
		Grade:            3,
		Name:             "点" + id,
		Difficulty:       knowledge.Medium,
		Keywords:         []string{"加法"},
		TypicalQuestions: []string{"竖式计算"},
		CommonMistakes:   []string{"忘记进位"},
		Importance:       importance,
	}
}

func cannedBatch(n int) llm.MockResponse {
	type q struct {
		Text       string `json:"text"`
		Answer     string `json:"answer"`
		Analysis   string `json:"analysis"`
		Difficulty int    `json:"difficulty"`
	}
	var out struct {
		Questions []q `json:"questions"`
	}
	for i := 0; i < n; i++ {
		out.Questions = append(out.Questions, q{
			Text:       fmt.Sprintf("345 + %d = ?", 100+i),
			Answer:     fmt.Sprintf("%d", 445+i),
			Analysis:   "先加个位，再加十位，最后加百位。",
			Difficulty: 3,
		})
	}
	raw, _ := json.Marshal(out)
	return llm.MockResponse{Content: raw}
}

func TestGenerateBatch(t *testing.T) {
	mock := llm.NewMockProvider(cannedBatch(5))
	gen := New(mock, DefaultConfig())

	questions, err := gen.Generate(context.Background(), GenerateInput{
		Point:        testPoint("math_3_add", 5),
		QuestionType: "计算题",
		Count:        5,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("questions = %d, want 5", len(questions))
	}
	for _, q := range questions {
		if q.PointID != "math_3_add" || q.QuestionType != "计算题" {
			t.Errorf("question not tagged: %+v", q)
		}
	}

	req := mock.Calls[0]
	if req.Schema != QuestionsSchema {
		t.Error("request did not carry the questions schema")
	}
	if req.Purpose != llm.PurposeQuestionGen {
		t.Errorf("purpose = %q, want %q", req.Purpose, llm.PurposeQuestionGen)
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"点math_3_add", "3年级", "计算题", "忘记进位", "请出5道题"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerateRejectsBadCount(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())
	for _, count := range []int{0, 21} {
		if _, err := gen.Generate(context.Background(), GenerateInput{Point: testPoint("p", 3), Count: count}); err == nil {
			t.Errorf("count %d accepted", count)
		}
	}
}

func TestGenerateRejectsBrokenOutput(t *testing.T) {
	broken := llm.MockResponse{Content: json.RawMessage(
		`{"questions":[{"text":"1+1=?","answer":"","analysis":"","difficulty":3}]}`,
	)}
	gen := New(llm.NewMockProvider(broken), DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Point: testPoint("p", 3), Count: 1})
	if err == nil || !strings.Contains(err.Error(), "empty answer") {
		t.Fatalf("err = %v, want empty answer rejection", err)
	}
}

func TestGenerateForPlanFollowsPointAllocation(t *testing.T) {
	graph := kgraph.New([]knowledge.KnowledgePoint{
		testPoint("a", 3), testPoint("b", 3),
	})
	mock := llm.NewMockProvider(cannedBatch(5), cannedBatch(5))
	gen := New(mock, DefaultConfig())

	plan := recommend.Plan{
		ID: "weakness_breakthrough",
		Points: []recommend.PlanPoint{
			{PointID: "a", Name: "点a", Questions: 5},
			{PointID: "b", Name: "点b", Questions: 5},
		},
		TotalQuestions: 10,
	}
	questions, err := gen.GenerateForPlan(context.Background(), graph, plan, knowledge.SubjectMath, 3)
	if err != nil {
		t.Fatalf("GenerateForPlan: %v", err)
	}
	if len(questions) != 10 {
		t.Fatalf("questions = %d, want 10", len(questions))
	}

	// The second request must list the first batch as already asked.
	second := mock.Calls[1].Messages[0].Content
	if !strings.Contains(second, "已出过的题目") {
		t.Error("second prompt missing dedup section")
	}
}

func TestGenerateForPlanSpreadsUntargetedPlans(t *testing.T) {
	graph := kgraph.New([]knowledge.KnowledgePoint{
		testPoint("a", 3), testPoint("b", 3), testPoint("c", 3),
	})
	mock := llm.NewMockProvider(cannedBatch(4), cannedBatch(3), cannedBatch(3))
	gen := New(mock, DefaultConfig())

	plan := recommend.Plan{ID: "quick_practice", TotalQuestions: 10}
	questions, err := gen.GenerateForPlan(context.Background(), graph, plan, knowledge.SubjectMath, 3)
	if err != nil {
		t.Fatalf("GenerateForPlan: %v", err)
	}
	if len(questions) != 10 {
		t.Fatalf("questions = %d, want 10", len(questions))
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3 (one per point)", mock.CallCount())
	}
}

func TestDiagnosticTestPicksMostImportantPoints(t *testing.T) {
	graph := kgraph.New([]knowledge.KnowledgePoint{
		testPoint("minor", 1),
		testPoint("core", 5),
		testPoint("mid", 3),
	})
	mock := llm.NewMockProvider(cannedBatch(2), cannedBatch(2))
	gen := New(mock, DefaultConfig())

	questions, err := gen.DiagnosticTest(context.Background(), graph, knowledge.SubjectMath, 3, 2)
	if err != nil {
		t.Fatalf("DiagnosticTest: %v", err)
	}
	if len(questions) != 4 {
		t.Fatalf("questions = %d, want 4", len(questions))
	}
	if questions[0].PointID != "core" {
		t.Errorf("first batch for %s, want core", questions[0].PointID)
	}
	if questions[2].PointID != "mid" {
		t.Errorf("second batch for %s, want mid", questions[2].PointID)
	}
	for _, call := range mock.Calls {
		if call.Purpose != llm.PurposeDiagnostic {
			t.Errorf("purpose = %q, want %q", call.Purpose, llm.PurposeDiagnostic)
		}
	}
}

func TestDiagnosticTestEmptyGrade(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())
	graph := kgraph.New(nil)
	if _, err := gen.DiagnosticTest(context.Background(), graph, knowledge.SubjectMath, 3, 5); err == nil {
		t.Fatal("expected error for empty grade")
	}
}
