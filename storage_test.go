package dispatch_test

import (
	"fmt"
	"testing"

	"github.com/dmitrymomot/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GrowableStorage(t *testing.T) {
	t.Parallel()

	t.Run("doubles buckets at three quarters load", func(t *testing.T) {
		t.Parallel()

		reg := dispatch.New()
		defer reg.Close()

		for i := 0; i < 12; i++ {
			_, err := reg.Register(fmt.Sprintf("evt-%d", i), dispatch.PriorityNormal, noopCallback, nil)
			require.NoError(t, err)
		}
		assert.Equal(t, 16, reg.Stats().Buckets)

		_, err := reg.Register("evt-12", dispatch.PriorityNormal, noopCallback, nil)
		require.NoError(t, err)
		assert.Equal(t, 32, reg.Stats().Buckets)
	})

	t.Run("every registration survives growth", func(t *testing.T) {
		t.Parallel()

		reg := dispatch.New(dispatch.WithInitialBuckets(4))
		defer reg.Close()

		const n = 40
		fired := make(map[string]int)
		for i := 0; i < n; i++ {
			name := fmt.Sprintf("evt-%d", i)
			_, err := reg.Register(name, dispatch.PriorityNormal,
				func(owner, data any) dispatch.Action {
					fired[data.(string)]++
					return dispatch.Continue
				}, nil)
			require.NoError(t, err)
		}

		require.Greater(t, reg.Stats().Buckets, 4)

		for i := 0; i < n; i++ {
			name := fmt.Sprintf("evt-%d", i)
			reg.Trigger(name, name)
		}

		require.Len(t, fired, n)
		for name, count := range fired {
			assert.Equal(t, 1, count, "trigger %s fired %d times", name, count)
		}
	})

	t.Run("dispatch order survives growth", func(t *testing.T) {
		t.Parallel()

		reg := dispatch.New()
		defer reg.Close()

		var rec recorder
		_, err := reg.Register("msg", 90, rec.callback("ninety"), nil)
		require.NoError(t, err)
		_, err = reg.Register("msg", 50, rec.callback("fifty-a"), nil)
		require.NoError(t, err)
		_, err = reg.Register("msg", 50, rec.callback("fifty-b"), nil)
		require.NoError(t, err)

		// Push the live count past the growth threshold.
		for i := 0; i < 15; i++ {
			_, err := reg.Register(fmt.Sprintf("filler-%d", i), dispatch.PriorityNormal, noopCallback, nil)
			require.NoError(t, err)
		}
		require.Equal(t, 32, reg.Stats().Buckets)

		reg.Trigger("msg", nil)
		assert.Equal(t, []string{"ninety", "fifty-a", "fifty-b"}, rec.calls)
	})

	t.Run("close resets to the initial bucket count", func(t *testing.T) {
		t.Parallel()

		reg := dispatch.New(dispatch.WithInitialBuckets(8))

		for i := 0; i < 20; i++ {
			_, err := reg.Register(fmt.Sprintf("evt-%d", i), dispatch.PriorityNormal, noopCallback, nil)
			require.NoError(t, err)
		}
		require.Greater(t, reg.Stats().Buckets, 8)

		reg.Close()
		assert.Equal(t, 8, reg.Stats().Buckets)

		_, err := reg.Register("fresh", dispatch.PriorityNormal, noopCallback, nil)
		require.NoError(t, err)
		assert.Equal(t, 8, reg.Stats().Buckets)
		reg.Close()
	})

	t.Run("reports unbounded capacity", func(t *testing.T) {
		t.Parallel()

		reg := dispatch.New()
		defer reg.Close()

		assert.Equal(t, 0, reg.Stats().Capacity)
	})
}
