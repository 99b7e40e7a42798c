// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"sort"

	"github.com/cogentcore-labs/scenelayout/errs"
)

// TopoSort orders a set of names by their optional dependency, resolving
// any dependency that names an alias back to its canonical name first.
// deps maps name -> dependency name ("" for none). aliases maps an
// abbreviation to the canonical name it resolves to.
//
// It returns names in dependency order (a depended-upon name before its
// dependents) or ErrAttributeCycle, whose message lists every offending
// dependency edge, not just the first one found.
func TopoSort(names []string, deps map[string]string, aliases map[string]string) ([]string, error) {
	resolve := func(n string) string {
		if canon, ok := aliases[n]; ok {
			return canon
		}
		return n
	}

	nameSet := make(map[string]bool, len(names))
	for _, n := range names {
		nameSet[n] = true
	}

	edges := make(map[string][]string) // dep -> [dependents]
	indeg := make(map[string]int)
	for _, n := range names {
		indeg[n] = 0
	}
	for _, n := range names {
		dep := deps[n]
		if dep == "" {
			continue
		}
		dep = resolve(dep)
		if !nameSet[dep] {
			continue // dependency outside this set; nothing to order against
		}
		edges[dep] = append(edges[dep], n)
		indeg[n]++
	}

	// Kahn's algorithm, processing zero-indegree nodes in input order for
	// determinism.
	inDegree := make(map[string]int, len(indeg))
	for k, v := range indeg {
		inDegree[k] = v
	}
	var queue []string
	for _, n := range names {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}
	var order []string
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		// stable: visit dependents in the order edges were recorded.
		for _, dep := range edges[n] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(order) != len(names) {
		return nil, fmt.Errorf("%w: %s", errs.ErrAttributeCycle, cyclePairs(names, deps, resolve, nameSet, inDegree))
	}
	return order, nil
}

// cyclePairs lists every dependency edge among names still unresolved,
// sorted for a deterministic message.
func cyclePairs(names []string, deps map[string]string, resolve func(string) string, nameSet map[string]bool, inDegree map[string]int) string {
	var pairs []string
	for _, n := range names {
		if inDegree[n] == 0 {
			continue // resolved by Kahn's pass
		}
		dep := deps[n]
		if dep == "" {
			continue
		}
		dep = resolve(dep)
		if !nameSet[dep] {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s->%s", dep, n))
	}
	sort.Strings(pairs)
	return fmt.Sprintf("%v", pairs)
}
