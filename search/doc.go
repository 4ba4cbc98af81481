// Package search ties route, neighborhood and solution together into the
// tabu-search core: Search is the per-kind neighborhood orchestrator, Run is
// the outer driver loop, EliteSet diversifies restarts, and edit/applyEdits
// give every candidate evaluation copy-on-write Solution construction.
package search
