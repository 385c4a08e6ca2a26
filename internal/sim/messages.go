package sim

import "time"

// Overlay receives transient status messages from the simulation. Backends
// decide how to present them; a nil overlay drops everything.
type Overlay interface {
	Show(text string, d time.Duration)
}

// infoDuration is how long each periodic message stays on screen.
const infoDuration = 5 * time.Second

// infoMessages rotate through the overlay on the info trigger.
var infoMessages = []string{
	"cells wrap around the screen edges",
	"space pauses, n steps one generation",
	"every reset rolls a fresh hue and cell size",
	"zoom with + and -",
	"r reseeds the current grid",
}
