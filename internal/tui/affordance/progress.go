package affordance

// ProgressTracker tracks completion of one long-running operation as a
// fraction in [0, 1]. Out-of-range updates are clamped rather than
// rejected so a sloppy producer cannot break the bar.
type ProgressTracker struct {
	percent float64
	label   string
	active  bool
}

// NewProgressTracker creates an inactive tracker.
func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{}
}

// Start activates the tracker at zero with a label.
func (p *ProgressTracker) Start(label string) {
	p.active = true
	p.label = label
	p.percent = 0
}

// Set updates the completion fraction, clamped to [0, 1].
func (p *ProgressTracker) Set(percent float64) {
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}
	p.percent = percent
}

// Complete forces the tracker to 100% and deactivates it.
func (p *ProgressTracker) Complete() {
	p.percent = 1
	p.active = false
}

// Reset deactivates the tracker and clears its state.
func (p *ProgressTracker) Reset() {
	p.percent = 0
	p.label = ""
	p.active = false
}

// Percent returns the current completion fraction.
func (p *ProgressTracker) Percent() float64 {
	return p.percent
}

// Label returns the label set by Start.
func (p *ProgressTracker) Label() string {
	return p.label
}

// Active reports whether an operation is being tracked.
func (p *ProgressTracker) Active() bool {
	return p.active
}
