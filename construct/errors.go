package construct

import "errors"

// ErrNoFeasibleSingleton is returned when some customer can be served by
// neither a singleton truck route nor a singleton drone route (spec §4.F
// step 2): the instance admits no feasible solution at all.
var ErrNoFeasibleSingleton = errors.New("construct: customer admits no feasible singleton route")

// ErrTrivialSolutionImpossible is returned when the priority queue empties
// before the customer pool does (spec §4.F step 6).
var ErrTrivialSolutionImpossible = errors.New("construct: trivial solution cannot be constructed")
