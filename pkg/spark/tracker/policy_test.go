package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	for _, policy := range []Policy{PolicyNone, PolicyDiscrete, PolicyContinuous, PolicyIndependent} {
		got, err := ParsePolicy(policy.String())
		require.NoError(t, err)
		assert.Equal(t, policy, got)
	}

	got, err := ParsePolicy("  Continuous ")
	require.NoError(t, err)
	assert.Equal(t, PolicyContinuous, got)

	_, err = ParsePolicy("swipe")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
	assert.Contains(t, err.Error(), `"swipe"`)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "independent", PolicyIndependent.String())
	assert.Equal(t, "Policy(42)", Policy(42).String())
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("VERTICAL")
	require.NoError(t, err)
	assert.Equal(t, OrientationVertical, o)
	assert.Equal(t, AxisVertical, o.Axis())
	assert.Equal(t, AxisHorizontal, OrientationHorizontal.Axis())

	_, err = ParseOrientation("diagonal")
	assert.ErrorIs(t, err, ErrUnknownOrientation)
}
