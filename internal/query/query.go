// Package query provides composable, side-effect free filters and orderings
// over loaded tasks. Stages never modify the slice they are given.
package query

import (
	"sort"

	"github.com/yukikurage/project-task-api/internal/models"
)

// Predicate selects tasks.
type Predicate func(models.Task) bool

// Comparator reports whether a sorts before b.
type Comparator func(a, b models.Task) bool

// Stage transforms a task list into a new one.
type Stage func([]models.Task) []models.Task

// Apply runs stages left to right over a copy of tasks.
func Apply(tasks []models.Task, stages ...Stage) []models.Task {
	result := make([]models.Task, len(tasks))
	copy(result, tasks)
	for _, stage := range stages {
		result = stage(result)
	}
	return result
}

// And combines predicates; an empty list matches everything.
func And(preds ...Predicate) Predicate {
	return func(t models.Task) bool {
		for _, p := range preds {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(t models.Task) bool {
		return !p(t)
	}
}

// Where keeps the tasks matching every predicate.
func Where(preds ...Predicate) Stage {
	match := And(preds...)
	return func(tasks []models.Task) []models.Task {
		result := make([]models.Task, 0, len(tasks))
		for _, t := range tasks {
			if match(t) {
				result = append(result, t)
			}
		}
		return result
	}
}

// OrderBy stable-sorts by the comparators in turn; later comparators break
// ties left by earlier ones.
func OrderBy(cmps ...Comparator) Stage {
	return func(tasks []models.Task) []models.Task {
		result := make([]models.Task, len(tasks))
		copy(result, tasks)
		sort.SliceStable(result, func(i, j int) bool {
			a, b := result[i], result[j]
			for _, less := range cmps {
				if less(a, b) {
					return true
				}
				if less(b, a) {
					return false
				}
			}
			return false
		})
		return result
	}
}

// Limit keeps at most the first n tasks. A negative n keeps none.
func Limit(n int) Stage {
	return func(tasks []models.Task) []models.Task {
		size := n
		if size < 0 {
			size = 0
		}
		if size > len(tasks) {
			size = len(tasks)
		}
		result := make([]models.Task, size)
		copy(result, tasks[:size])
		return result
	}
}

// Count returns how many tasks match every predicate.
func Count(tasks []models.Task, preds ...Predicate) int {
	match := And(preds...)
	n := 0
	for _, t := range tasks {
		if match(t) {
			n++
		}
	}
	return n
}
