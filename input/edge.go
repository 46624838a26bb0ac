package input

// EdgeDetector reports the transition of a discrete input from released to
// pressed. Holding an input down fires once.
type EdgeDetector struct {
	wasPressed map[Action]bool
}

func NewEdgeDetector() *EdgeDetector {
	return &EdgeDetector{wasPressed: make(map[Action]bool)}
}

// Rising records the current state of id and returns true on the frame it
// became pressed.
func (e *EdgeDetector) Rising(id Action, pressed bool) bool {
	fired := pressed && !e.wasPressed[id]
	e.wasPressed[id] = pressed
	return fired
}

// Reset forgets all recorded states
func (e *EdgeDetector) Reset() {
	e.wasPressed = make(map[Action]bool)
}
