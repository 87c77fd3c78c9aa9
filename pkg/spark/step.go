package spark

// Step represents a single stop on a ProgressTracker.
type Step struct {
	Label    string      // Text under the indicator; empty uses the localized "Step N"
	Metadata interface{} // Application-specific data attached to the step
}

// StepsFromLabels builds one step per label.
func StepsFromLabels(labels ...string) []Step {
	steps := make([]Step, len(labels))
	for i, label := range labels {
		steps[i] = Step{Label: label}
	}
	return steps
}

// FooterHelpItem is a button hint shown at the bottom of the screen.
type FooterHelpItem struct {
	ButtonName string // e.g. "A"
	HelpText   string // e.g. "Confirm"
}
