// Package kgraph holds the knowledge dependency graph: every knowledge
// point across all subjects and grades, indexed by ID, with prerequisite
// traversal, readiness checks, learning paths, and root-cause search.
//
// The graph is built once at startup and read-only afterwards. It is an
// explicit dependency of the diagnosis and recommendation services, never
// a package-level singleton, so tests can inject small fixture graphs.
package kgraph

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wliu/gradewise/internal/knowledge"
)

// ErrNoPath is returned by LearningPath when the start point is not an
// ancestor of the target.
var ErrNoPath = errors.New("no learning path between points")

// Graph indexes all loaded knowledge points by ID.
type Graph struct {
	points map[string]knowledge.KnowledgePoint
	order  []string // insertion order, for deterministic iteration
	warn   io.Writer
}

// Option configures graph construction.
type Option func(*Graph)

// WithWarnings redirects load warnings (default: os.Stderr).
func WithWarnings(w io.Writer) Option {
	return func(g *Graph) { g.warn = w }
}

// Build constructs the graph by loading every subject and grade the loader
// has a corpus file for. A missing or unreadable grade file is warned about
// and skipped; it just contributes no points. English grades 1-2 are never
// requested because the subject starts in grade 3.
func Build(loader *knowledge.Loader, opts ...Option) *Graph {
	g := New(nil, opts...)

	for _, subject := range knowledge.AllSubjects() {
		for grade := subject.MinGrade(); grade <= knowledge.MaxGrade; grade++ {
			gk, err := loader.LoadGrade(subject, grade)
			if err != nil {
				if !errors.Is(err, knowledge.ErrNotFound) {
					fmt.Fprintf(g.warn, "warning: skipping %s grade %d: %v\n", subject, grade, err)
				}
				continue
			}
			for _, p := range gk.AllPoints() {
				g.add(p)
			}
		}
	}

	return g
}

// New constructs a graph directly from a point slice. Used by tests and by
// callers that already hold a parsed corpus.
func New(points []knowledge.KnowledgePoint, opts ...Option) *Graph {
	g := &Graph{
		points: make(map[string]knowledge.KnowledgePoint, len(points)),
		warn:   os.Stderr,
	}
	for _, opt := range opts {
		opt(g)
	}
	for _, p := range points {
		g.add(p)
	}
	return g
}

func (g *Graph) add(p knowledge.KnowledgePoint) {
	if _, exists := g.points[p.ID]; !exists {
		g.order = append(g.order, p.ID)
	}
	g.points[p.ID] = p
}

// Len returns the number of points in the graph.
func (g *Graph) Len() int {
	return len(g.points)
}

// Point returns the point with the given ID.
func (g *Graph) Point(id string) (knowledge.KnowledgePoint, bool) {
	p, ok := g.points[id]
	return p, ok
}

// Prerequisites resolves the direct prerequisites of a point. Dangling
// prerequisite IDs are dropped silently; the corpus is AI-authored and
// dangling references are tolerated everywhere, not treated as errors.
func (g *Graph) Prerequisites(id string) []knowledge.KnowledgePoint {
	p, ok := g.points[id]
	if !ok {
		return nil
	}
	out := make([]knowledge.KnowledgePoint, 0, len(p.Prerequisites))
	for _, prereqID := range p.Prerequisites {
		if prereq, ok := g.points[prereqID]; ok {
			out = append(out, prereq)
		}
	}
	return out
}

// PrerequisiteClosure returns the full transitive prerequisite set of a
// point in dependency order: every prerequisite appears before anything
// that depends on it, each exactly once, and the target itself is excluded.
//
// The traversal is an iterative post-order DFS over an explicit frame
// stack. The visited set is seeded before descending, which makes diamond
// dependencies emit once and cycles terminate (a cycle's back edge is
// simply not followed, so a cyclic corpus yields an incomplete but finite
// closure).
func (g *Graph) PrerequisiteClosure(id string) []knowledge.KnowledgePoint {
	type frame struct {
		id   string
		next int
	}

	var order []knowledge.KnowledgePoint
	visited := map[string]bool{id: true}
	stack := []frame{{id: id}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		p, ok := g.points[f.id]
		if !ok {
			// Dangling reference: nothing to emit, nothing to descend into.
			stack = stack[:len(stack)-1]
			continue
		}

		if f.next < len(p.Prerequisites) {
			child := p.Prerequisites[f.next]
			f.next++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, frame{id: child})
			}
			continue
		}

		stack = stack[:len(stack)-1]
		if p.ID != id {
			order = append(order, p)
		}
	}

	return order
}

// ReadinessCheck is the result of checking whether a student can start
// learning a point.
type ReadinessCheck struct {
	Ready   bool
	Missing []knowledge.KnowledgePoint
	Message string
}

// CheckReadiness reports whether every direct prerequisite of a point is
// in the mastered set. A nonexistent target is not-ready with an
// explanatory message, never an error.
func (g *Graph) CheckReadiness(id string, mastered map[string]bool) ReadinessCheck {
	p, ok := g.points[id]
	if !ok {
		return ReadinessCheck{
			Ready:   false,
			Message: fmt.Sprintf("knowledge point %q does not exist", id),
		}
	}

	var missing []knowledge.KnowledgePoint
	for _, prereq := range g.Prerequisites(id) {
		if !mastered[prereq.ID] {
			missing = append(missing, prereq)
		}
	}

	if len(missing) == 0 {
		return ReadinessCheck{
			Ready:   true,
			Message: fmt.Sprintf("ready to learn %q", p.Name),
		}
	}
	return ReadinessCheck{
		Ready:   false,
		Missing: missing,
		Message: fmt.Sprintf("%d prerequisite(s) must be mastered first", len(missing)),
	}
}

// LearningPath returns the ordered sequence of points to study to get from
// fromID to toID, both inclusive. The path is the suffix of toID's
// prerequisite closure starting at fromID, with toID appended.
//
// Returns ErrNoPath when fromID is not an ancestor of toID. (The system
// this replaces silently returned a path containing only the target in
// that case, which callers invariably misread as a real path.)
func (g *Graph) LearningPath(fromID, toID string) ([]knowledge.KnowledgePoint, error) {
	target, ok := g.points[toID]
	if !ok {
		return nil, fmt.Errorf("%w: target %q does not exist", ErrNoPath, toID)
	}

	closure := g.PrerequisiteClosure(toID)

	start := -1
	for i, p := range closure {
		if p.ID == fromID {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: %q is not a prerequisite of %q", ErrNoPath, fromID, toID)
	}

	path := append([]knowledge.KnowledgePoint{}, closure[start:]...)
	path = append(path, target)
	return path, nil
}

// RootCause finds the most foundational unmastered prerequisite of a weak
// point: the first entry of the prerequisite closure (dependency order,
// so earliest material first) not in the mastered set. When every
// prerequisite is mastered the weak point itself is the root cause — the
// deficiency is local, not upstream. Returns false for an unknown point.
func (g *Graph) RootCause(weakID string, mastered map[string]bool) (knowledge.KnowledgePoint, bool) {
	for _, p := range g.PrerequisiteClosure(weakID) {
		if !mastered[p.ID] {
			return p, true
		}
	}
	p, ok := g.points[weakID]
	return p, ok
}

// PointsByGradeSubject returns all points for one subject+grade, in load
// order. A linear scan is fine at corpus scale (hundreds of points).
func (g *Graph) PointsByGradeSubject(subject knowledge.Subject, grade int) []knowledge.KnowledgePoint {
	var out []knowledge.KnowledgePoint
	for _, id := range g.order {
		p := g.points[id]
		if p.Subject == subject && p.Grade == grade {
			out = append(out, p)
		}
	}
	return out
}

// PointsByCategory returns all points for one subject+grade+category.
func (g *Graph) PointsByCategory(subject knowledge.Subject, grade int, category string) []knowledge.KnowledgePoint {
	var out []knowledge.KnowledgePoint
	for _, p := range g.PointsByGradeSubject(subject, grade) {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// All returns every point in load order.
func (g *Graph) All() []knowledge.KnowledgePoint {
	out := make([]knowledge.KnowledgePoint, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.points[id])
	}
	return out
}

// FindByName returns the first point with the given display name within a
// subject. Only the legacy profile importer should need this; display
// names are not unique across grades, which is exactly why profiles are
// keyed by ID.
func (g *Graph) FindByName(name string, subject knowledge.Subject) (knowledge.KnowledgePoint, bool) {
	for _, id := range g.order {
		p := g.points[id]
		if p.Name == name && p.Subject == subject {
			return p, true
		}
	}
	return knowledge.KnowledgePoint{}, false
}
