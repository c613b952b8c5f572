package knowledge

// QuestionType describes one exam question type and its weighting.
// Consumed by document generation, not by the graph.
type QuestionType struct {
	Name            string
	Weight          float64
	TimePerQuestion int // seconds
	DifficultyRange [2]int
	Description     string
}

// KnowledgeModule is a named group of related knowledge points.
// Module names are unique within a grade+subject.
type KnowledgeModule struct {
	Name        string
	Description string
	points      map[string]KnowledgePoint
	order       []string
}

// NewModule creates an empty module.
func NewModule(name, description string) *KnowledgeModule {
	return &KnowledgeModule{
		Name:        name,
		Description: description,
		points:      make(map[string]KnowledgePoint),
	}
}

// AddPoint inserts a point, replacing any existing point with the same ID.
func (m *KnowledgeModule) AddPoint(p KnowledgePoint) {
	if _, exists := m.points[p.ID]; !exists {
		m.order = append(m.order, p.ID)
	}
	m.points[p.ID] = p
}

// Point returns the point with the given ID, or false if absent.
func (m *KnowledgeModule) Point(id string) (KnowledgePoint, bool) {
	p, ok := m.points[id]
	return p, ok
}

// Points returns all points in insertion order.
func (m *KnowledgeModule) Points() []KnowledgePoint {
	out := make([]KnowledgePoint, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.points[id])
	}
	return out
}

// PointsByDifficulty returns the module's points at the given difficulty.
func (m *KnowledgeModule) PointsByDifficulty(d Difficulty) []KnowledgePoint {
	var out []KnowledgePoint
	for _, id := range m.order {
		if p := m.points[id]; p.Difficulty == d {
			out = append(out, p)
		}
	}
	return out
}

// GradeKnowledge holds everything defined for one subject+grade pair.
type GradeKnowledge struct {
	Subject       Subject
	Grade         int
	modules       map[string]*KnowledgeModule
	moduleOrder   []string
	QuestionTypes map[string]QuestionType
}

// NewGradeKnowledge creates an empty grade corpus.
func NewGradeKnowledge(subject Subject, grade int) *GradeKnowledge {
	return &GradeKnowledge{
		Subject:       subject,
		Grade:         grade,
		modules:       make(map[string]*KnowledgeModule),
		QuestionTypes: make(map[string]QuestionType),
	}
}

// AddModule inserts a module, replacing any module with the same name.
func (g *GradeKnowledge) AddModule(m *KnowledgeModule) {
	if _, exists := g.modules[m.Name]; !exists {
		g.moduleOrder = append(g.moduleOrder, m.Name)
	}
	g.modules[m.Name] = m
}

// Module returns the named module, or false if absent.
func (g *GradeKnowledge) Module(name string) (*KnowledgeModule, bool) {
	m, ok := g.modules[name]
	return m, ok
}

// Modules returns all modules in insertion order.
func (g *GradeKnowledge) Modules() []*KnowledgeModule {
	out := make([]*KnowledgeModule, 0, len(g.moduleOrder))
	for _, name := range g.moduleOrder {
		out = append(out, g.modules[name])
	}
	return out
}

// AllPoints flattens every module's points into one slice.
func (g *GradeKnowledge) AllPoints() []KnowledgePoint {
	var out []KnowledgePoint
	for _, name := range g.moduleOrder {
		out = append(out, g.modules[name].Points()...)
	}
	return out
}

// PointByID searches all modules for the given point ID.
func (g *GradeKnowledge) PointByID(id string) (KnowledgePoint, bool) {
	for _, name := range g.moduleOrder {
		if p, ok := g.modules[name].Point(id); ok {
			return p, true
		}
	}
	return KnowledgePoint{}, false
}

// PointsByCategory returns all points with the given category.
func (g *GradeKnowledge) PointsByCategory(category string) []KnowledgePoint {
	var out []KnowledgePoint
	for _, p := range g.AllPoints() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// AddQuestionType registers a question type by name.
func (g *GradeKnowledge) AddQuestionType(qt QuestionType) {
	g.QuestionTypes[qt.Name] = qt
}
