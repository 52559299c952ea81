package registry

import (
	"fmt"
	"strings"

	"github.com/suisei-entertainment/sde/internal/errors"
)

// visit states of the iterative depth-first walk.
const (
	stateUnvisited = iota
	stateVisiting
	stateDone
)

// frame is one entry of the explicit traversal stack.
type frame struct {
	id   string
	deps []string
	next int
}

// Resolve returns every direct and indirect dependency of the component in
// the order first discovered by a depth-first walk over the declared
// dependency lists, with duplicates removed. The target itself is not part
// of the result.
//
// A dependency naming an unknown component and a dependency cycle are both
// resolution errors; a cycle is reported with the full cycle path.
func (r *Registry) Resolve(id string) ([]string, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	target, exists := r.components[id]
	if !exists {
		return nil, errors.NewDependencyError("resolve_not_found",
			fmt.Sprintf("component %s does not exist", id))
	}

	order := make([]string, 0)
	state := map[string]int{id: stateVisiting}
	stack := []frame{{id: id, deps: target.Dependencies}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next >= len(top.deps) {
			state[top.id] = stateDone
			stack = stack[:len(stack)-1]
			continue
		}

		dep := top.deps[top.next]
		top.next++

		switch state[dep] {
		case stateDone:
			continue

		case stateVisiting:
			return nil, errors.NewDependencyError("resolve_cycle",
				fmt.Sprintf("dependency cycle detected: %s", cyclePath(stack, dep)))

		default:
			desc, ok := r.components[dep]
			if !ok {
				return nil, errors.NewDependencyError("resolve_unknown_dependency",
					fmt.Sprintf("component %s depends on unknown component %s", top.id, dep))
			}

			order = append(order, dep)
			state[dep] = stateVisiting
			stack = append(stack, frame{id: dep, deps: desc.Dependencies})
		}
	}

	return order, nil
}

// cyclePath renders the cycle closed by revisiting dep, using the IDs
// currently on the traversal stack.
func cyclePath(stack []frame, dep string) string {
	start := 0
	for i, f := range stack {
		if f.id == dep {
			start = i
			break
		}
	}

	var parts []string
	for _, f := range stack[start:] {
		parts = append(parts, f.id)
	}
	parts = append(parts, dep)

	return strings.Join(parts, " -> ")
}
