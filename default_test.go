package dispatch_test

import (
	"testing"

	"github.com/dmitrymomot/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The default-registry tests mutate process-wide state, so none of them run
// in parallel.

func TestDefault(t *testing.T) {
	first := dispatch.Default()
	require.NotNil(t, first)
	assert.Same(t, first, dispatch.Default())
}

func TestSetDefault(t *testing.T) {
	t.Cleanup(func() { dispatch.SetDefault(dispatch.New()) })

	custom := dispatch.New(dispatch.WithDeferredQueue(4))
	dispatch.SetDefault(custom)
	assert.Same(t, custom, dispatch.Default())

	dispatch.SetDefault(nil)
	assert.Same(t, custom, dispatch.Default())
}

func TestPackageLevelFunctions(t *testing.T) {
	t.Cleanup(func() { dispatch.SetDefault(dispatch.New()) })

	dispatch.SetDefault(dispatch.New(dispatch.WithDeferredQueue(4)))

	fired := 0
	_, err := dispatch.Register("evt", dispatch.PriorityNormal,
		func(owner, data any) dispatch.Action {
			fired++
			return dispatch.Continue
		}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, dispatch.Count())

	dispatch.Trigger("evt", nil)
	assert.Equal(t, 1, fired)

	require.NoError(t, dispatch.TriggerDeferred("evt", nil))
	assert.Equal(t, 1, dispatch.Pump())
	assert.Equal(t, 2, fired)

	_, err = dispatch.RegisterOnce("boot", dispatch.PriorityHigh, noopCallback, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, dispatch.Count())

	assert.Equal(t, 2, dispatch.Unregister("", nil, nil))
	assert.Equal(t, 0, dispatch.Count())

	dispatch.Close()
	assert.Equal(t, 0, dispatch.Count())

	// Close tears down; a later Register re-arms the same instance.
	_, err = dispatch.Register("evt", dispatch.PriorityNormal, noopCallback, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, dispatch.Count())
}

func TestPackageLevelDeferredDisabled(t *testing.T) {
	t.Cleanup(func() { dispatch.SetDefault(dispatch.New()) })

	dispatch.SetDefault(dispatch.New())
	assert.ErrorIs(t, dispatch.TriggerDeferred("evt", nil), dispatch.ErrDeferredDisabled)
	assert.Equal(t, 0, dispatch.Pump())
}
