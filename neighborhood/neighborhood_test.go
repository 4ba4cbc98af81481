package neighborhood_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taburoute/neighborhood"
	"github.com/katalvlaran/taburoute/route"
	"github.com/katalvlaran/taburoute/vrpconfig"
)

func testConfig(n int) *vrpconfig.Config {
	dist := make([][]float64, n+1)
	for i := range dist {
		dist[i] = make([]float64, n+1)
	}
	demands := make([]float64, n+1)
	dronable := make([]bool, n+1)
	x := make([]float64, n+1)
	y := make([]float64, n+1)
	for i := range dronable {
		dronable[i] = true
	}

	cfg := vrpconfig.DefaultConfig()
	cfg.CustomersCount = n
	cfg.Demands = demands
	cfg.Dronable = dronable
	cfg.X, cfg.Y = x, y
	cfg.TruckDistances = dist
	cfg.DroneDistances = dist
	cfg.TruckSpeed = 1.0
	cfg.TruckCapacity = 1000.0
	cfg.WaitingTimeLimit = 1000.0

	return &cfg
}

func TestIntraMove10_DeterministicFirstCandidateAndCount(t *testing.T) {
	cfg := testConfig(4)
	route.Init(cfg)
	neighborhood.ResetCaches()

	r := route.New(route.Truck, []int{0, 1, 2, 3, 4, 0})
	candidates := neighborhood.IntraRoute(r, neighborhood.Move10)

	require.Len(t, candidates, 12)
	require.Equal(t, []int{0, 2, 1, 3, 4, 0}, candidates[0].Route.Sequence)
	require.Equal(t, neighborhood.TabuAttribute{1}, candidates[0].Tabu)
}

func TestIntraRoute_IsMemoized(t *testing.T) {
	cfg := testConfig(4)
	route.Init(cfg)
	neighborhood.ResetCaches()

	r := route.New(route.Truck, []int{0, 1, 2, 3, 4, 0})
	a := neighborhood.IntraRoute(r, neighborhood.Move11)
	b := neighborhood.IntraRoute(r, neighborhood.Move11)

	require.Same(t, &a[0], &b[0])
}

func TestIntraMove11_TabuIsSortedPair(t *testing.T) {
	cfg := testConfig(3)
	route.Init(cfg)
	neighborhood.ResetCaches()

	r := route.New(route.Truck, []int{0, 3, 1, 2, 0})
	candidates := neighborhood.IntraRoute(r, neighborhood.Move11)
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		require.True(t, c.Tabu[0] <= c.Tabu[1])
	}
}

func TestIntraTwoOpt_PreservesLength(t *testing.T) {
	cfg := testConfig(5)
	route.Init(cfg)
	neighborhood.ResetCaches()

	r := route.New(route.Truck, []int{0, 1, 2, 3, 4, 5, 0})
	for _, c := range neighborhood.IntraRoute(r, neighborhood.TwoOpt) {
		require.Len(t, c.Route.Sequence, len(r.Sequence))
		require.Equal(t, 0, c.Route.Sequence[0])
		require.Equal(t, 0, c.Route.Sequence[len(c.Route.Sequence)-1])
	}
}

func TestInterMove10_RespectsDroneEligibility(t *testing.T) {
	cfg := testConfig(3)
	cfg.Dronable = []bool{true, false, true, true}
	route.Init(cfg)
	neighborhood.ResetCaches()

	self := route.New(route.Truck, []int{0, 1, 2, 0})
	other := route.New(route.Drone, []int{0, 3, 0})

	candidates := neighborhood.InterRoute(self, other, neighborhood.Move10)
	for _, c := range candidates {
		for _, customer := range c.Other.Interior() {
			require.True(t, cfg.Dronable[customer])
		}
	}
	// customer 1 is not dronable, so it must never appear as a moved
	// customer into the drone route.
	moved := map[int]bool{}
	for _, c := range candidates {
		moved[c.Tabu[0]] = true
	}
	require.False(t, moved[1])
	require.True(t, moved[2])
}

func TestInterRouteExtract_UnsupportedNeighborhood(t *testing.T) {
	cfg := testConfig(2)
	route.Init(cfg)
	neighborhood.ResetCaches()

	self := route.New(route.Truck, []int{0, 1, 2, 0})
	_, err := neighborhood.InterRouteExtract(self, route.Drone, neighborhood.Move11)
	require.ErrorIs(t, err, neighborhood.ErrUnsupportedExtract)
}

func TestInterRouteExtract_Move10(t *testing.T) {
	cfg := testConfig(2)
	route.Init(cfg)
	neighborhood.ResetCaches()

	self := route.New(route.Truck, []int{0, 1, 2, 0})
	candidates, err := neighborhood.InterRouteExtract(self, route.Drone, neighborhood.Move10)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	for _, c := range candidates {
		require.Len(t, c.New.Interior(), 1)
	}
}

func TestEjectionChain_MovesCustomersAcrossThreeRoutes(t *testing.T) {
	cfg := testConfig(3)
	route.Init(cfg)
	neighborhood.ResetCaches()

	routeI := route.New(route.Truck, []int{0, 1, 0})
	routeJ := route.New(route.Truck, []int{0, 2, 0})
	routeK := route.New(route.Truck, []int{0, 3, 0})

	candidates := neighborhood.EjectionChain(routeI, routeJ, routeK)
	require.Len(t, candidates, 1)
	c := candidates[0]
	require.Nil(t, c.RouteI) // the only customer on I was ejected
	require.Equal(t, []int{1}, c.RouteJ.Interior())
	require.Equal(t, []int{3, 2}, c.RouteK.Interior())
}

func TestTabuList_FIFOAndRotateOnReinsert(t *testing.T) {
	l := neighborhood.NewTabuList(2)
	l.Insert(neighborhood.TabuAttribute{1})
	l.Insert(neighborhood.TabuAttribute{2})
	l.Insert(neighborhood.TabuAttribute{3})
	require.Equal(t, 2, l.Len())
	require.False(t, l.Contains(neighborhood.TabuAttribute{1}))
	require.True(t, l.Contains(neighborhood.TabuAttribute{2}))
	require.True(t, l.Contains(neighborhood.TabuAttribute{3}))

	l.Insert(neighborhood.TabuAttribute{2})
	entries := l.Entries()
	require.Equal(t, neighborhood.TabuAttribute{3}, entries[0])
	require.Equal(t, neighborhood.TabuAttribute{2}, entries[1])
}

func TestTabuList_ZeroCapacityNeverTabu(t *testing.T) {
	l := neighborhood.NewTabuList(0)
	l.Insert(neighborhood.TabuAttribute{1})
	require.False(t, l.Contains(neighborhood.TabuAttribute{1}))
}
