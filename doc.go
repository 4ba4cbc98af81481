// Package taburoute is a cooperative truck-and-drone vehicle routing
// optimizer built around a tabu search metaheuristic.
//
// Given a single-depot instance with a mixed truck/drone fleet, it builds
// a feasible initial solution with a greedy, cluster-seeded constructor
// and refines it by searching six move-family neighborhoods (insertion,
// swap and 2-opt variants, both within and across routes) under
// per-neighborhood tabu lists, an aspiration criterion, adaptive
// constraint-violation penalties, an elite-solution set, and
// ejection-chain restarts. The objective is the fleet's makespan — the
// working time of its busiest vehicle — subject to truck capacity, drone
// energy/endurance, and customer waiting-time constraints.
//
// Package layout:
//
//	vrpconfig/    — the frozen Config record, drone energy-model variants, file loading
//	route/        — immutable, content-addressed Route values and their cost/capacity bookkeeping
//	neighborhood/ — the six move families, the ejection chain, and per-neighborhood tabu lists
//	solution/     — the Solution aggregate, its cost formula, and adaptive penalty coefficients
//	search/       — the outer tabu loop, elite set, restart sweep, and post-optimization pass
//	construct/    — the greedy, cluster-seeded initial-solution builder
//	cluster/      — a small k-means customer clusterer used by construct
//	problem/      — a minimal JSON instance-file reader
//	report/       — the CSV/JSON/HTML run report writer
//	metrics/      — a Prometheus-backed search.Logger and a /metrics endpoint
//	cmd/taburoute/ — the command-line entry point tying the above together
package taburoute
