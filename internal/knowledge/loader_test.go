package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const grade3Math = `{
  "schema_version": "v1.0.0",
  "subject": "math",
  "grade": 3,
  "modules": {
    "Geometry": {
      "description": "Shapes and measurement",
      "points": [
        {
          "id": "math_3_rectangle_perimeter",
          "category": "Geometry",
          "name": "Rectangle Perimeter",
          "description": "Compute the perimeter of a rectangle",
          "difficulty": 3,
          "keywords": ["perimeter", "rectangle"],
          "prerequisites": ["math_2_mult_tables"],
          "importance": 4,
          "avg_learning_time": 45
        },
        {
          "id": "math_3_rectangle_area",
          "category": "Geometry",
          "name": "Rectangle Area"
        }
      ]
    }
  },
  "question_types": {
    "word_problem": {
      "weight": 0.4,
      "time_per_question": 90,
      "difficulty_range": [2, 4],
      "description": "Applied word problems"
    }
  }
}`

func writeGrade(t *testing.T, dir string, subject Subject, grade int, body string) *Loader {
	t.Helper()
	l := NewLoader(dir)
	path := l.Path(subject, grade)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return l
}

func TestLoadGrade(t *testing.T) {
	l := writeGrade(t, t.TempDir(), SubjectMath, 3, grade3Math)

	gk, err := l.LoadGrade(SubjectMath, 3)
	require.NoError(t, err)

	assert.Equal(t, SubjectMath, gk.Subject)
	assert.Equal(t, 3, gk.Grade)
	assert.Len(t, gk.AllPoints(), 2)

	p, ok := gk.PointByID("math_3_rectangle_perimeter")
	require.True(t, ok)
	assert.Equal(t, "Rectangle Perimeter", p.Name)
	assert.Equal(t, Medium, p.Difficulty)
	assert.Equal(t, 4, p.Importance)
	assert.Equal(t, []string{"math_2_mult_tables"}, p.Prerequisites)
	// Subject and grade come from the file location, not the point record.
	assert.Equal(t, SubjectMath, p.Subject)
	assert.Equal(t, 3, p.Grade)

	qt, ok := gk.QuestionTypes["word_problem"]
	require.True(t, ok)
	assert.Equal(t, 0.4, qt.Weight)
	assert.Equal(t, [2]int{2, 4}, qt.DifficultyRange)
}

func TestLoadGrade_Defaults(t *testing.T) {
	l := writeGrade(t, t.TempDir(), SubjectMath, 3, grade3Math)

	gk, err := l.LoadGrade(SubjectMath, 3)
	require.NoError(t, err)

	p, ok := gk.PointByID("math_3_rectangle_area")
	require.True(t, ok)
	assert.Equal(t, Medium, p.Difficulty, "unset difficulty defaults to medium")
	assert.Equal(t, 3, p.Importance, "unset importance defaults to 3")
	assert.Equal(t, 30, p.AvgLearningTime, "unset learning time defaults to 30 minutes")
}

func TestLoadGrade_NotFound(t *testing.T) {
	l := NewLoader(t.TempDir())

	_, err := l.LoadGrade(SubjectMath, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadGrade_RejectsInvalidDocument(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{broken`},
		{"missing modules", `{"schema_version": "v1.0.0"}`},
		{"point without id", `{"modules": {"M": {"points": [{"category": "c", "name": "n"}]}}}`},
		{"difficulty out of range", `{"modules": {"M": {"points": [{"id": "x", "category": "c", "name": "n", "difficulty": 9}]}}}`},
	}

	l := NewLoader(t.TempDir())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := l.Path(SubjectMath, 2)
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := l.LoadGrade(SubjectMath, 2)
			assert.Error(t, err)
		})
	}
}

func TestLoadGrade_SchemaVersionGate(t *testing.T) {
	future := `{"schema_version": "v2.0.0", "modules": {}}`
	l := writeGrade(t, t.TempDir(), SubjectMath, 4, future)

	_, err := l.LoadGrade(SubjectMath, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema_version")
}

func TestLoadGrade_LegacyUnversionedAccepted(t *testing.T) {
	legacy := `{"modules": {"M": {"points": [{"id": "x", "category": "c", "name": "n"}]}}}`
	l := writeGrade(t, t.TempDir(), SubjectChinese, 2, legacy)

	gk, err := l.LoadGrade(SubjectChinese, 2)
	require.NoError(t, err)
	assert.Len(t, gk.AllPoints(), 1)
}

func TestSaveGrade_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(dir)

	gk := NewGradeKnowledge(SubjectMath, 5)
	mod := NewModule("Fractions", "Fraction arithmetic")
	mod.AddPoint(KnowledgePoint{
		ID:            "math_5_fraction_add",
		Subject:       SubjectMath,
		Grade:         5,
		Category:      "Fractions",
		Name:          "Adding Fractions",
		Difficulty:    Hard,
		Prerequisites: []string{"math_4_fraction_basics"},
		Importance:    5,
	})
	gk.AddModule(mod)
	gk.AddQuestionType(QuestionType{
		Name:            "calculation",
		Weight:          0.6,
		TimePerQuestion: 40,
		DifficultyRange: [2]int{1, 3},
	})

	require.NoError(t, l.SaveGrade(gk, false))

	loaded, err := l.LoadGrade(SubjectMath, 5)
	require.NoError(t, err)

	p, ok := loaded.PointByID("math_5_fraction_add")
	require.True(t, ok)
	assert.Equal(t, Hard, p.Difficulty)
	assert.Equal(t, []string{"math_4_fraction_basics"}, p.Prerequisites)
	assert.Contains(t, loaded.QuestionTypes, "calculation")

	// Second save without overwrite must refuse.
	assert.Error(t, l.SaveGrade(gk, false))
	assert.NoError(t, l.SaveGrade(gk, true))
}

func TestLoadAll_SkipsMissing(t *testing.T) {
	dir := t.TempDir()
	writeGrade(t, dir, SubjectMath, 3, grade3Math)
	l := NewLoader(dir)

	got := l.LoadAll(3)
	assert.Len(t, got, 1)
	assert.Contains(t, got, SubjectMath)

	// English is not defined before grade 3 and must never be requested.
	assert.NotContains(t, l.LoadAll(1), SubjectEnglish)
}

func TestSubjectMinGrade(t *testing.T) {
	assert.Equal(t, 1, SubjectMath.MinGrade())
	assert.Equal(t, 1, SubjectChinese.MinGrade())
	assert.Equal(t, 3, SubjectEnglish.MinGrade())
}
