package spark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/constants"
)

func newTestTracker(settings ProgressTrackerSettings) *progressTrackerController {
	return newProgressTrackerController("Setup", StepsFromLabels("Account", "Profile", "Done"), settings)
}

func TestProgressTrackerConfirmReturnsCurrentStep(t *testing.T) {
	c := newTestTracker(DefaultProgressTrackerSettings())

	assert.True(t, c.handleButton(constants.VirtualButtonRight))
	assert.False(t, c.handleButton(constants.VirtualButtonA))

	res, err := c.result()
	require.NoError(t, err)
	assert.Equal(t, ProgressTrackerActionConfirmed, res.Action)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, "Profile", res.Step.Label)
	assert.Equal(t, []int{1}, res.Visited)
}

func TestProgressTrackerBackCancels(t *testing.T) {
	c := newTestTracker(DefaultProgressTrackerSettings())

	assert.False(t, c.handleButton(constants.VirtualButtonB))

	res, err := c.result()
	assert.Nil(t, res)
	assert.True(t, IsCancelled(err))
}

func TestProgressTrackerClosedWithoutConfirmIsCancelled(t *testing.T) {
	c := newTestTracker(DefaultProgressTrackerSettings())
	c.handleButton(constants.VirtualButtonRight)

	_, err := c.result()
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestProgressTrackerDisabledBackButton(t *testing.T) {
	settings := DefaultProgressTrackerSettings()
	settings.DisableBackButton = true
	c := newTestTracker(settings)

	assert.True(t, c.handleButton(constants.VirtualButtonB), "back keeps the tracker open")
	require.Len(t, c.footer, 1)
	assert.Equal(t, "A", c.footer[0].ButtonName)
}
