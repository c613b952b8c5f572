package knowledge

// Subject identifies a school subject.
type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectChinese Subject = "chinese"
	SubjectEnglish Subject = "english"
)

// AllSubjects returns all subjects in display order.
func AllSubjects() []Subject {
	return []Subject{SubjectMath, SubjectChinese, SubjectEnglish}
}

// ParseSubject maps a string to a Subject, or false if unknown.
func ParseSubject(s string) (Subject, bool) {
	switch Subject(s) {
	case SubjectMath, SubjectChinese, SubjectEnglish:
		return Subject(s), true
	}
	return "", false
}

// DisplayName returns a human-readable name for a subject.
func (s Subject) DisplayName() string {
	switch s {
	case SubjectMath:
		return "Math"
	case SubjectChinese:
		return "Chinese"
	case SubjectEnglish:
		return "English"
	default:
		return string(s)
	}
}

// MinGrade returns the first grade a subject is taught in.
// English starts in grade 3; everything else in grade 1.
func (s Subject) MinGrade() int {
	if s == SubjectEnglish {
		return 3
	}
	return 1
}

// MaxGrade is the last primary-school grade.
const MaxGrade = 6

// Difficulty is an ordinal difficulty level from 1 (very easy) to 5 (very hard).
type Difficulty int

const (
	VeryEasy Difficulty = 1
	Easy     Difficulty = 2
	Medium   Difficulty = 3
	Hard     Difficulty = 4
	VeryHard Difficulty = 5
)

// Valid reports whether d is within the 1-5 range.
func (d Difficulty) Valid() bool {
	return d >= VeryEasy && d <= VeryHard
}

// Label returns the display label for a difficulty level.
func (d Difficulty) Label() string {
	switch d {
	case VeryEasy:
		return "Very Easy"
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case VeryHard:
		return "Very Hard"
	default:
		return "Unknown"
	}
}

// KnowledgePoint is one teachable unit of curriculum content.
// Points are immutable after the corpus is loaded; the graph hands out
// copies, never pointers into its index.
type KnowledgePoint struct {
	// ID is the globally unique key, by convention {subject}_{grade}_{slug},
	// e.g. "math_3_rectangle_perimeter".
	ID          string
	Subject     Subject
	Grade       int
	Category    string
	Name        string
	Description string

	Difficulty Difficulty
	Keywords   []string

	// Prerequisites lists point IDs this point depends on. Edges point
	// backward toward easier material. The corpus should be a DAG, but the
	// data is AI-authored and nothing enforces that; all traversals must be
	// cycle-safe.
	Prerequisites []string

	// NextPoints are the inverse edges. Informational only; traversal
	// correctness never depends on them.
	NextPoints []string

	TypicalQuestions []string
	CommonMistakes   []string
	LearningTips     string

	// Importance (1-5) ranks remediation priority.
	Importance int

	// AvgLearningTime is the expected minutes to learn this point.
	AvgLearningTime int
}
