package world

// Color is a linear RGB triple in [0,1] as handed to the vertex color buffer.
type Color struct {
	R, G, B float32
}

// Palette holds the literal colours of the default scene.
var Palette = struct {
	Ground   Color
	Cannon   Color
	Trunk    Color
	LeafDark Color
	LeafMid  Color
	LeafLite Color
	LeafOld  Color
	LeafNew  Color
	PigGreen Color
	PigRed   Color
	Goal     Color
	Player   Color
}{
	Ground:   Color{R: 0.3, G: 0.1, B: 0},
	Cannon:   Color{R: 0.3, G: 0.2, B: 0.1},
	Trunk:    Color{R: 0.3, G: 0.1, B: 0},
	LeafDark: Color{R: 0.3, G: 0.4, B: 0.1},
	LeafMid:  Color{R: 0.3, G: 0.8, B: 0.1},
	LeafLite: Color{R: 0.2, G: 0.8, B: 0.1},
	LeafOld:  Color{R: 0.4, G: 0.4, B: 0.1},
	LeafNew:  Color{R: 0.4, G: 0.8, B: 0.1},
	PigGreen: Color{R: 0.2, G: 0.9, B: 0},
	PigRed:   Color{R: 1, G: 1, B: 0},
	Goal:     Color{R: 0.5, G: 0.2, B: 0.1},
	Player:   Color{R: 0, G: 0, B: 0},
}
