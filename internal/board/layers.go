package board

// Layer identifies one of the stacked drawing surfaces beneath the
// panels. The surfaces themselves are rendered by the drawing engine;
// the layout root only reserves their stacking order.
type Layer int

// Layers, bottom to top.
const (
	LayerMain Layer = iota
	LayerSub
	LayerTemp
)

// Layers returns the surface stack in bottom-to-top order.
func Layers() []Layer {
	return []Layer{LayerMain, LayerSub, LayerTemp}
}

func (l Layer) String() string {
	switch l {
	case LayerMain:
		return "main"
	case LayerSub:
		return "sub"
	case LayerTemp:
		return "temp"
	default:
		return "unknown"
	}
}
