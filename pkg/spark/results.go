package spark

// ProgressTrackerAction represents how a ProgressTracker was dismissed.
type ProgressTrackerAction int

const (
	ProgressTrackerActionConfirmed ProgressTrackerAction = iota // User confirmed the current step (A or Start)
	ProgressTrackerActionCancelled                              // User went back (B button)
)

func (a ProgressTrackerAction) String() string {
	switch a {
	case ProgressTrackerActionConfirmed:
		return "confirmed"
	case ProgressTrackerActionCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ProgressTrackerResult is returned when the user confirms a step.
type ProgressTrackerResult struct {
	Action ProgressTrackerAction
	Page   int  // Committed page when the tracker closed
	Step   Step // Step at Page
	// Visited lists every page committed while the tracker was shown, in order.
	Visited []int
}
