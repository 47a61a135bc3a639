package builder

// Method name constants, used to prefix errors with the constructor
// name for context.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
)

// centerTag labels the hub node of Star and Wheel topologies.
const centerTag = "center"

// Minimum node counts per topology.
const (
	// MinCycleNodes is the smallest ring a cycle can form without loops
	// or multi-edges.
	MinCycleNodes = 3
	// MinPathNodes is the smallest path with at least one edge.
	MinPathNodes = 2
	// MinStarNodes is one center plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes is a wheel's outer cycle (n-1 nodes) plus its hub.
	MinWheelNodes = 4
	// MinCompleteNodes is the smallest non-empty complete graph.
	MinCompleteNodes = 1
	// MinPartitionSize is the smallest non-empty side of a bipartite graph.
	MinPartitionSize = 1
	// MinGridDim is the smallest allowed grid dimension; a 1x1 grid has
	// no edges but is a valid graph.
	MinGridDim = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
