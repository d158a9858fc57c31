package leg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManufacturedMotion/Hex3/pkg/motion/vec3"
)

func TestEnqueueDequeueFIFOOrder(t *testing.T) {
	var q Queue
	a := NewOpBySpeed(vec3.New(1, 0, 0), 10, false, 0)
	b := NewOpBySpeed(vec3.New(2, 0, 0), 10, false, 0)

	require.NoError(t, q.Enqueue(a))
	require.NoError(t, q.Enqueue(b))

	got, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, a, got)

	got, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, b, got)

	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestEnqueueRejectsWhenFull(t *testing.T) {
	var q Queue
	for i := 0; i < QueueCapacity; i++ {
		require.NoError(t, q.Enqueue(NewOpBySpeed(vec3.New(float32(i), 0, 0), 10, false, 0)))
	}
	assert.True(t, q.IsFull())
	err := q.Enqueue(NewOpBySpeed(vec3.New(99, 0, 0), 10, false, 0))
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestWrapAroundAfterDrain(t *testing.T) {
	var q Queue
	for i := 0; i < QueueCapacity; i++ {
		require.NoError(t, q.Enqueue(NewOpBySpeed(vec3.New(float32(i), 0, 0), 10, false, 0)))
	}
	for i := 0; i < QueueCapacity-1; i++ {
		_, ok := q.Dequeue()
		require.True(t, ok)
	}
	require.NoError(t, q.Enqueue(NewOpBySpeed(vec3.New(42, 0, 0), 10, false, 0)))
	assert.Equal(t, 2, q.Len())
}

func TestCurrentQueueEndPosTracksTail(t *testing.T) {
	var q Queue
	assert.Equal(t, vec3.Vec3{}, q.CurrentQueueEndPos(vec3.Vec3{}))

	require.NoError(t, q.Enqueue(NewOpBySpeed(vec3.New(1, 2, 3), 10, false, 0)))
	assert.Equal(t, vec3.New(1, 2, 3), q.CurrentQueueEndPos(vec3.Vec3{}))

	require.NoError(t, q.Enqueue(NewOpBySpeed(vec3.New(4, 5, 6), 10, false, 0)))
	assert.Equal(t, vec3.New(4, 5, 6), q.CurrentQueueEndPos(vec3.Vec3{}))
}

func TestCurrentQueueEndPosComposesRelativeOntoBase(t *testing.T) {
	var q Queue
	base := vec3.New(10, 0, 0)
	assert.Equal(t, base, q.CurrentQueueEndPos(base))

	require.NoError(t, q.Enqueue(NewOpBySpeed(vec3.New(1, 2, 3), 10, true, 0)))
	assert.Equal(t, vec3.New(11, 2, 3), q.CurrentQueueEndPos(base))

	require.NoError(t, q.Enqueue(NewOpBySpeed(vec3.New(4, 5, 6), 10, true, 0)))
	assert.Equal(t, vec3.New(15, 7, 9), q.CurrentQueueEndPos(base))
}

func TestCurrentQueueEndPosAbsoluteOpReplacesRunningPos(t *testing.T) {
	var q Queue
	base := vec3.New(10, 0, 0)

	require.NoError(t, q.Enqueue(NewOpBySpeed(vec3.New(1, 2, 3), 10, true, 0)))
	require.NoError(t, q.Enqueue(NewOpBySpeed(vec3.New(100, 200, 300), 10, false, 0)))
	require.NoError(t, q.Enqueue(NewOpBySpeed(vec3.New(1, 1, 1), 10, true, 0)))

	assert.Equal(t, vec3.New(101, 201, 301), q.CurrentQueueEndPos(base))
}

func TestNewOpByDurationDerivesSpeedRelative(t *testing.T) {
	op := NewOpByDuration(vec3.New(10, 0, 0), vec3.Vec3{}, 1000, true, 0)
	assert.InDelta(t, 0.01, op.Speed, 1e-6)
}

func TestNewOpByDurationDerivesSpeedAbsoluteFromQueueTail(t *testing.T) {
	// Tail already at (30,0,0); an absolute move to (10,0,0) must be
	// derived from the remaining 20 units to go, not from |end_pos|=10
	// measured against the origin (which would give 0.01 instead).
	op := NewOpByDuration(vec3.New(10, 0, 0), vec3.New(30, 0, 0), 1000, false, 0)
	assert.InDelta(t, 0.02, op.Speed, 1e-6)
}

func TestNewOpByDurationZeroDisplacementFallsBackToMinSpeed(t *testing.T) {
	op := NewOpByDuration(vec3.New(0, 0, 0), vec3.Vec3{}, 1000, true, 0)
	assert.Equal(t, float32(MinSpeed), op.Speed)

	opAbs := NewOpByDuration(vec3.New(5, 0, 0), vec3.New(5, 0, 0), 1000, false, 0)
	assert.Equal(t, float32(MinSpeed), opAbs.Speed)
}

func TestNewOpByDurationZeroDurationFallsBackToMinSpeed(t *testing.T) {
	op := NewOpByDuration(vec3.New(10, 0, 0), vec3.Vec3{}, 0, true, 0)
	assert.Equal(t, float32(MinSpeed), op.Speed)
}
