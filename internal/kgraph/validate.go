package kgraph

import (
	"fmt"
	"strings"

	"github.com/wliu/gradewise/internal/knowledge"
)

// ValidatePoints performs structural checks on a point set: duplicate IDs,
// self-referential or dangling prerequisite edges, and cycles. Returns a
// combined error describing all problems found, or nil.
//
// The graph itself tolerates every one of these defects at query time (the
// corpus is AI-authored and partial corruption must not take the system
// down), so validation is a tooling concern: run it when authoring or
// importing corpus files to surface what the traversals would otherwise
// silently paper over — in particular cycles, which make closures
// silently incomplete.
func ValidatePoints(points []knowledge.KnowledgePoint) error {
	var errs []string

	idSet := make(map[string]bool, len(points))
	for _, p := range points {
		if idSet[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate point ID: %q", p.ID))
		}
		idSet[p.ID] = true
	}

	for _, p := range points {
		for _, prereqID := range p.Prerequisites {
			if prereqID == p.ID {
				errs = append(errs, fmt.Sprintf("point %q lists itself as a prerequisite", p.ID))
				continue
			}
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("point %q references nonexistent prerequisite %q", p.ID, prereqID))
			}
		}
		for _, nextID := range p.NextPoints {
			if !idSet[nextID] {
				errs = append(errs, fmt.Sprintf("point %q references nonexistent next point %q", p.ID, nextID))
			}
		}
	}

	if cycleNodes := findCycle(points); len(cycleNodes) > 0 {
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving: %s", strings.Join(cycleNodes, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("corpus validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Validate runs ValidatePoints over the whole graph.
func (g *Graph) Validate() error {
	return ValidatePoints(g.All())
}

// findCycle returns the IDs left unprocessed by Kahn's algorithm — the
// nodes participating in (or downstream of) a prerequisite cycle. Edges
// to points outside the set are ignored; dangling references are reported
// separately and must not masquerade as cycles.
func findCycle(points []knowledge.KnowledgePoint) []string {
	idSet := make(map[string]bool, len(points))
	for _, p := range points {
		idSet[p.ID] = true
	}

	inDegree := make(map[string]int, len(points))
	dependents := make(map[string][]string)
	for _, p := range points {
		for _, prereqID := range p.Prerequisites {
			if !idSet[prereqID] || prereqID == p.ID {
				continue
			}
			inDegree[p.ID]++
			dependents[prereqID] = append(dependents[prereqID], p.ID)
		}
	}

	var queue []string
	for _, p := range points {
		if inDegree[p.ID] == 0 {
			queue = append(queue, p.ID)
		}
	}

	processed := make(map[string]bool, len(points))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		processed[id] = true
		for _, depID := range dependents[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	var cycle []string
	for _, p := range points {
		if !processed[p.ID] {
			cycle = append(cycle, p.ID)
		}
	}
	return cycle
}
