package tracker

import (
	"fmt"
	"strings"
)

// Policy is the interaction mode governing how many steps a single drag
// gesture may traverse.
type Policy int

const (
	PolicyNone        Policy = iota // Touches are ignored
	PolicyDiscrete                  // One adjacent step per gesture, committed on release
	PolicyContinuous                // Every step crossed is committed while dragging
	PolicyIndependent               // Any step can be picked directly, committed on release
)

var policyNames = map[Policy]string{
	PolicyNone:        "none",
	PolicyDiscrete:    "discrete",
	PolicyContinuous:  "continuous",
	PolicyIndependent: "independent",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a policy name onto its value. Matching ignores case.
func ParsePolicy(name string) (Policy, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for policy, n := range policyNames {
		if n == needle {
			return policy, nil
		}
	}
	return PolicyNone, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Orientation is the direction indicators are laid out in.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// Axis returns the geometry axis matching the orientation.
func (o Orientation) Axis() Axis {
	if o == OrientationVertical {
		return AxisVertical
	}
	return AxisHorizontal
}

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation maps "horizontal" or "vertical" onto an Orientation.
func ParseOrientation(name string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "horizontal":
		return OrientationHorizontal, nil
	case "vertical":
		return OrientationVertical, nil
	}
	return OrientationHorizontal, fmt.Errorf("%w: %q", ErrUnknownOrientation, name)
}
