package csp

import (
	"context"
	"sync"
)

// Solutions is a lazy, restartable (one iterator per call to
// Problem.Solutions) stream of complete assignments, in unspecified but
// stable order.
type Solutions struct {
	out  chan map[Var]int
	done chan struct{}
	once sync.Once

	stats *Stats
}

// Next blocks until the next solution is ready, or the stream is
// exhausted (second return false).
func (s *Solutions) Next() (map[Var]int, bool) {
	sol, ok := <-s.out
	return sol, ok
}

// Stop tells the search goroutine to abandon the search early. Safe to
// call multiple times, and safe to omit if the caller drains Next until
// it returns false.
func (s *Solutions) Stop() {
	s.once.Do(func() { close(s.done) })
}

// Stats returns the running search statistics; safe to read after the
// stream is exhausted, racy (but harmless for the approximate --profile
// counters it feeds) if read mid-stream.
func (s *Solutions) Stats() Stats { return *s.stats }

// Solutions begins a search over a cloned copy of the problem (the
// receiver is never mutated, so Solutions may be called more than once).
// The caller must either drain Next to exhaustion or call Stop, or the
// search goroutine leaks.
func (p *Problem) Solutions(ctx context.Context) *Solutions {
	s := &Solutions{
		out:   make(chan map[Var]int),
		done:  make(chan struct{}),
		stats: &Stats{},
	}

	domains := make(map[Var]*Domain, len(p.domains))
	for v, d := range p.domains {
		domains[v] = d.clone()
	}

	type active struct {
		c     Constraint
		scope []Var
	}
	live := make([]active, 0, len(p.constraints))
	infeasible := false
	for _, entry := range p.constraints {
		if pp, ok := entry.c.(PreProcessor); ok {
			remove, bad := pp.PreProcess(entry.scope, domains)
			if bad {
				infeasible = true
				break
			}
			if remove {
				continue
			}
		}
		live = append(live, active{c: entry.c, scope: entry.scope})
	}
	for _, d := range domains {
		if d.Len() == 0 {
			infeasible = true
		}
	}

	varConstraints := make(map[Var][]int)
	constraints := make([]constraintEntry, len(live))
	for i, a := range live {
		constraints[i] = constraintEntry{c: a.c, scope: a.scope}
		for _, v := range a.scope {
			varConstraints[v] = append(varConstraints[v], i)
		}
	}

	order := append([]Var(nil), p.order...)

	go func() {
		defer close(s.out)
		if infeasible {
			return
		}
		searcher{
			domains:        domains,
			constraints:    constraints,
			varConstraints: varConstraints,
			out:            s.out,
			done:           s.done,
			stats:          s.stats,
		}.run(ctx, order, make(map[Var]int, len(order)))
	}()

	return s
}

type searcher struct {
	domains        map[Var]*Domain
	constraints    []constraintEntry
	varConstraints map[Var][]int
	out            chan<- map[Var]int
	done           <-chan struct{}
	stats          *Stats
}

// run performs MRV-ordered, forward-checking chronological backtracking
// over the variables in remaining not yet present in assignment. It
// returns true if the caller should stop immediately (cancellation).
func (s searcher) run(ctx context.Context, remaining []Var, assignment map[Var]int) bool {
	select {
	case <-ctx.Done():
		return true
	case <-s.done:
		return true
	default:
	}

	if len(remaining) == 0 {
		s.stats.Solutions++
		out := make(map[Var]int, len(assignment))
		for k, v := range assignment {
			out[k] = v
		}
		select {
		case s.out <- out:
			return false
		case <-s.done:
			return true
		case <-ctx.Done():
			return true
		}
	}

	idx := s.mrv(remaining)
	v := remaining[idx]
	rest := make([]Var, 0, len(remaining)-1)
	rest = append(rest, remaining[:idx]...)
	rest = append(rest, remaining[idx+1:]...)

	dom := s.domains[v]
	candidates := append([]int(nil), dom.Values()...)

	for _, val := range candidates {
		s.stats.NodesExplored++
		assignment[v] = val

		for _, d := range s.domains {
			d.PushState()
		}

		if s.checkAll(v, assignment) {
			if s.run(ctx, rest, assignment) {
				for _, d := range s.domains {
					d.PopState()
				}
				delete(assignment, v)
				return true
			}
		} else {
			s.stats.BacktrackCount++
		}

		for _, d := range s.domains {
			d.PopState()
		}
		delete(assignment, v)
	}

	return false
}

// checkAll runs every constraint touching v with forward-checking
// enabled.
func (s searcher) checkAll(v Var, assignment map[Var]int) bool {
	for _, idx := range s.varConstraints[v] {
		entry := s.constraints[idx]
		s.stats.ConstraintChecks++
		if !entry.c.Check(entry.scope, s.domains, assignment, true) {
			return false
		}
		for _, sv := range entry.scope {
			if s.domains[sv].Len() == 0 {
				return false
			}
		}
	}
	return true
}

func (s searcher) mrv(remaining []Var) int {
	best := 0
	bestLen := s.domains[remaining[0]].Len()
	for i := 1; i < len(remaining); i++ {
		l := s.domains[remaining[i]].Len()
		if l < bestLen {
			bestLen = l
			best = i
		}
	}
	return best
}
