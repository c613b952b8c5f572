package knowledge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SchemaVersion is the corpus file format version this loader writes.
// Files from a different major version are rejected.
const SchemaVersion = "v1.0.0"

// ErrNotFound is returned when no corpus file exists for a subject+grade.
var ErrNotFound = errors.New("corpus file not found")

// Loader reads and writes grade corpus files under a config directory.
// Layout: <dir>/<subject>/grade_<N>.json.
type Loader struct {
	dir string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Path returns the corpus file path for a subject+grade.
func (l *Loader) Path(subject Subject, grade int) string {
	return filepath.Join(l.dir, string(subject), fmt.Sprintf("grade_%d.json", grade))
}

// gradeFile mirrors the on-disk corpus document.
type gradeFile struct {
	SchemaVersion string                `json:"schema_version,omitempty"`
	Subject       string                `json:"subject,omitempty"`
	Grade         int                   `json:"grade,omitempty"`
	Modules       map[string]moduleFile `json:"modules"`
	QuestionTypes map[string]qtypeFile  `json:"question_types,omitempty"`
}

type moduleFile struct {
	Description string      `json:"description,omitempty"`
	Points      []pointFile `json:"points"`
}

type pointFile struct {
	ID               string   `json:"id"`
	Category         string   `json:"category"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Difficulty       int      `json:"difficulty,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
	Prerequisites    []string `json:"prerequisites,omitempty"`
	NextPoints       []string `json:"next_points,omitempty"`
	TypicalQuestions []string `json:"typical_questions,omitempty"`
	CommonMistakes   []string `json:"common_mistakes,omitempty"`
	LearningTips     string   `json:"learning_tips,omitempty"`
	Importance       int      `json:"importance,omitempty"`
	AvgLearningTime  int      `json:"avg_learning_time,omitempty"`
}

type qtypeFile struct {
	Weight          float64 `json:"weight"`
	TimePerQuestion int     `json:"time_per_question"`
	DifficultyRange [2]int  `json:"difficulty_range"`
	Description     string  `json:"description,omitempty"`
}

// LoadGrade reads and parses the corpus for one subject+grade.
// Returns ErrNotFound if the file does not exist.
func (l *Loader) LoadGrade(subject Subject, grade int) (*GradeKnowledge, error) {
	path := l.Path(subject, grade)

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	if err := validateCorpus(raw); err != nil {
		return nil, fmt.Errorf("invalid corpus %s: %w", path, err)
	}

	var doc gradeFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}

	if err := checkSchemaVersion(doc.SchemaVersion); err != nil {
		return nil, fmt.Errorf("corpus %s: %w", path, err)
	}

	return buildGradeKnowledge(doc, subject, grade), nil
}

// LoadAll loads every subject+grade that has a corpus file for the given
// grade. Missing files are skipped.
func (l *Loader) LoadAll(grade int) map[Subject]*GradeKnowledge {
	out := make(map[Subject]*GradeKnowledge)
	for _, subject := range AllSubjects() {
		if grade < subject.MinGrade() {
			continue
		}
		gk, err := l.LoadGrade(subject, grade)
		if err != nil {
			continue
		}
		out[subject] = gk
	}
	return out
}

// SaveGrade writes a grade corpus back to disk. Refuses to clobber an
// existing file unless overwrite is set.
func (l *Loader) SaveGrade(gk *GradeKnowledge, overwrite bool) error {
	path := l.Path(gk.Subject, gk.Grade)

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("corpus file already exists: %s", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create corpus dir: %w", err)
	}

	doc := gradeFile{
		SchemaVersion: SchemaVersion,
		Subject:       string(gk.Subject),
		Grade:         gk.Grade,
		Modules:       make(map[string]moduleFile),
		QuestionTypes: make(map[string]qtypeFile),
	}

	for _, m := range gk.Modules() {
		mf := moduleFile{Description: m.Description}
		for _, p := range m.Points() {
			mf.Points = append(mf.Points, pointFile{
				ID:               p.ID,
				Category:         p.Category,
				Name:             p.Name,
				Description:      p.Description,
				Difficulty:       int(p.Difficulty),
				Keywords:         p.Keywords,
				Prerequisites:    p.Prerequisites,
				NextPoints:       p.NextPoints,
				TypicalQuestions: p.TypicalQuestions,
				CommonMistakes:   p.CommonMistakes,
				LearningTips:     p.LearningTips,
				Importance:       p.Importance,
				AvgLearningTime:  p.AvgLearningTime,
			})
		}
		doc.Modules[m.Name] = mf
	}

	for name, qt := range gk.QuestionTypes {
		doc.QuestionTypes[name] = qtypeFile{
			Weight:          qt.Weight,
			TimePerQuestion: qt.TimePerQuestion,
			DifficultyRange: qt.DifficultyRange,
			Description:     qt.Description,
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write corpus %s: %w", path, err)
	}
	return nil
}

// validateCorpus checks a raw corpus document against the corpus schema.
func validateCorpus(raw []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

// checkSchemaVersion rejects corpus files from an incompatible major
// version. An empty version is accepted for files predating versioning.
func checkSchemaVersion(v string) error {
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid schema_version %q", v)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return fmt.Errorf("unsupported schema_version %q (supported: %s)", v, semver.Major(SchemaVersion))
	}
	return nil
}

func buildGradeKnowledge(doc gradeFile, subject Subject, grade int) *GradeKnowledge {
	gk := NewGradeKnowledge(subject, grade)

	for name, mf := range doc.Modules {
		mod := NewModule(name, mf.Description)
		for _, pf := range mf.Points {
			mod.AddPoint(buildPoint(pf, subject, grade))
		}
		gk.AddModule(mod)
	}

	for name, qf := range doc.QuestionTypes {
		gk.AddQuestionType(QuestionType{
			Name:            name,
			Weight:          qf.Weight,
			TimePerQuestion: qf.TimePerQuestion,
			DifficultyRange: qf.DifficultyRange,
			Description:     qf.Description,
		})
	}

	return gk
}

func buildPoint(pf pointFile, subject Subject, grade int) KnowledgePoint {
	p := KnowledgePoint{
		ID:               pf.ID,
		Subject:          subject,
		Grade:            grade,
		Category:         pf.Category,
		Name:             pf.Name,
		Description:      pf.Description,
		Difficulty:       Difficulty(pf.Difficulty),
		Keywords:         pf.Keywords,
		Prerequisites:    pf.Prerequisites,
		NextPoints:       pf.NextPoints,
		TypicalQuestions: pf.TypicalQuestions,
		CommonMistakes:   pf.CommonMistakes,
		LearningTips:     pf.LearningTips,
		Importance:       pf.Importance,
		AvgLearningTime:  pf.AvgLearningTime,
	}

	// Defaults matching the corpus authoring conventions.
	if !p.Difficulty.Valid() {
		p.Difficulty = Medium
	}
	if p.Importance < 1 || p.Importance > 5 {
		p.Importance = 3
	}
	if p.AvgLearningTime <= 0 {
		p.AvgLearningTime = 30
	}

	return p
}
