package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/symcore/utils/wrappers"
)

func TestCounterAddAndInc(t *testing.T) {
	require := require.New(t)

	c := NewCounter()
	c.Inc()
	c.Add(4)
	require.Equal(int64(5), c.Read())
}

func TestGaugeSetAndAdd(t *testing.T) {
	require := require.New(t)

	g := NewGauge()
	g.Set(3)
	g.Add(-1.5)
	require.Equal(1.5, g.Read())
}

func TestAveragerTracksMean(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	a := NewAveragerWithErrs("symcore_test_avg", "test average", reg, nil)
	require.Equal(float64(0), a.Read())

	a.Observe(2)
	a.Observe(4)
	require.Equal(float64(3), a.Read())
}

func TestAveragerWithErrsCollectsDuplicateRegistrationFailure(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	var errs wrappers.Errs
	NewAveragerWithErrs("symcore_test_dup", "test dup", reg, &errs)
	NewAveragerWithErrs("symcore_test_dup", "test dup", reg, &errs)
	require.True(errs.Errored())
}

func TestStartTimerIsNoOpOnNilAverager(t *testing.T) {
	stop := StartTimer(nil)
	stop()
}

func TestStartTimerObservesElapsedSeconds(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	a := NewAveragerWithErrs("symcore_test_timer", "test timer", reg, nil)
	stop := StartTimer(a)
	stop()
	require.GreaterOrEqual(a.Read(), float64(0))
}

func TestNewEngineWithNilRegistererIsUsable(t *testing.T) {
	require := require.New(t)

	eng, err := NewEngine(nil)
	require.NoError(err)
	require.NotNil(eng.ForwardImageSteps)
	require.NotNil(eng.OnionRingDepth)
	require.Nil(eng.SATSolveSeconds)

	eng.ForwardImageSteps.Inc()
	require.Equal(int64(1), eng.ForwardImageSteps.Read())
}
