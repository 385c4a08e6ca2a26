package core

// Snapshot captures the observable state of a running simulation for HUDs,
// sidebars and logs.
type Snapshot struct {
	Generation uint64
	Population int
	Size       Size
	CellSize   int
	Hue        float64
	Paused     bool
	Strategy   string
}
