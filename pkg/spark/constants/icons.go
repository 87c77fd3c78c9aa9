package constants

// Text glyphs drawn when an icon cannot be rasterised or in the terminal view.
const (
	CheckGlyph    = "✓" // Completed step
	CurrentGlyph  = "●" // Current step
	PendingGlyph  = "○" // Upcoming step
	TargetGlyph   = "◎" // Step under the finger
	DisabledGlyph = "·" // Any step while the tracker is disabled
)
