package icon

// colorRole selects a palette color by semantic role, keeping the scene
// table independent of the concrete theme.
type colorRole int

const (
	roleBG colorRole = iota
	roleCard
	roleGreen
	roleEarth
	roleSage
	roleLineGreen
	roleLineEarth
	roleLineFaint
	roleRing
	roleSageDim
	roleSatLine
)

// Detail thresholds: below these pixel sizes the corresponding elements are
// not perceptible and only add noise.
const (
	minSizeDetails    = 32 // discovery link
	minSizeSatellites = 48 // satellite lines and nodes
	minSizeRings      = 64 // outer ring and root glow
)

// lineOp is a straight stroke between two design-space points.
type lineOp struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          colorRole
}

// ringOp is an unfilled circle outline.
type ringOp struct {
	CX, CY float64
	Radius float64
	Width  float64
	Color  colorRole
}

// nodeOp is a device marker: a card-filled disc with a colored outline and
// an opaque inner dot.
type nodeOp struct {
	CX, CY  float64
	OuterR  float64
	InnerR  float64
	StrokeW float64
	Stroke  colorRole // outline
	Fill    colorRole // inner dot
}

// shape is one entry of the scene, gated by the smallest render size at
// which it is drawn.
type shape struct {
	MinSize int
	Line    *lineOp
	Ring    *ringOp
	Node    *nodeOp
}

// scene is the tree topology, authored in the 256x256 design space and
// drawn in order: rings and connectors first, then nodes back to front,
// root last. The layout is fixed; themes only recolor it.
var scene = []shape{
	// Outer decorative ring
	{MinSize: minSizeRings, Ring: &ringOp{CX: 128, CY: 128, Radius: 114, Width: 2, Color: roleRing}},

	// Trunk
	{Line: &lineOp{X0: 128, Y0: 200, X1: 128, Y1: 132, Width: 5, Color: roleLineGreen}},

	// Main branches
	{Line: &lineOp{X0: 128, Y0: 132, X1: 72, Y1: 88, Width: 4.5, Color: roleLineGreen}},
	{Line: &lineOp{X0: 128, Y0: 132, X1: 184, Y1: 88, Width: 4.5, Color: roleLineGreen}},

	// Leaf branches
	{Line: &lineOp{X0: 72, Y0: 88, X1: 44, Y1: 56, Width: 3.5, Color: roleLineEarth}},
	{Line: &lineOp{X0: 72, Y0: 88, X1: 100, Y1: 56, Width: 3.5, Color: roleLineEarth}},
	{Line: &lineOp{X0: 184, Y0: 88, X1: 156, Y1: 56, Width: 3.5, Color: roleLineEarth}},
	{Line: &lineOp{X0: 184, Y0: 88, X1: 212, Y1: 56, Width: 3.5, Color: roleLineEarth}},

	// Discovery link between the inner leaves
	{MinSize: minSizeDetails, Line: &lineOp{X0: 100, Y0: 56, X1: 156, Y1: 56, Width: 2, Color: roleLineFaint}},

	// Satellite connectors
	{MinSize: minSizeSatellites, Line: &lineOp{X0: 128, Y0: 132, X1: 96, Y1: 156, Width: 2, Color: roleSatLine}},
	{MinSize: minSizeSatellites, Line: &lineOp{X0: 128, Y0: 132, X1: 164, Y1: 152, Width: 2, Color: roleSatLine}},

	// Leaf device nodes
	{Node: &nodeOp{CX: 44, CY: 56, OuterR: 10, InnerR: 4.5, StrokeW: 3, Stroke: roleEarth, Fill: roleEarth}},
	{Node: &nodeOp{CX: 100, CY: 56, OuterR: 10, InnerR: 4.5, StrokeW: 3, Stroke: roleEarth, Fill: roleEarth}},
	{Node: &nodeOp{CX: 156, CY: 56, OuterR: 10, InnerR: 4.5, StrokeW: 3, Stroke: roleEarth, Fill: roleEarth}},
	{Node: &nodeOp{CX: 212, CY: 56, OuterR: 10, InnerR: 4.5, StrokeW: 3, Stroke: roleEarth, Fill: roleEarth}},

	// Subnet gateway nodes
	{Node: &nodeOp{CX: 72, CY: 88, OuterR: 13, InnerR: 6, StrokeW: 4, Stroke: roleGreen, Fill: roleGreen}},
	{Node: &nodeOp{CX: 184, CY: 88, OuterR: 13, InnerR: 6, StrokeW: 4, Stroke: roleGreen, Fill: roleGreen}},

	// Junction where the branches meet the trunk
	{Node: &nodeOp{CX: 128, CY: 132, OuterR: 15, InnerR: 7.5, StrokeW: 4, Stroke: roleGreen, Fill: roleGreen}},

	// Satellite nodes
	{MinSize: minSizeSatellites, Node: &nodeOp{CX: 96, CY: 156, OuterR: 7, InnerR: 3, StrokeW: 2.5, Stroke: roleSageDim, Fill: roleSage}},
	{MinSize: minSizeSatellites, Node: &nodeOp{CX: 164, CY: 152, OuterR: 7, InnerR: 3, StrokeW: 2.5, Stroke: roleSageDim, Fill: roleSage}},

	// Root server: glow ring, then the node itself
	{MinSize: minSizeRings, Ring: &ringOp{CX: 128, CY: 200, Radius: 21, Width: 2, Color: roleRing}},
	{Node: &nodeOp{CX: 128, CY: 200, OuterR: 18, InnerR: 9, StrokeW: 5, Stroke: roleGreen, Fill: roleGreen}},
}
