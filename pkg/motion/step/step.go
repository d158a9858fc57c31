package step

import (
	"errors"

	"github.com/ManufacturedMotion/Hex3/pkg/motion/pose"
	"github.com/ManufacturedMotion/Hex3/pkg/motion/steptype"
)

// ErrQueueFull is returned by Enqueue when the queue is already at
// QueueCapacity (spec §4.4, status code QueueFull).
var ErrQueueFull = errors.New("step: queue full")

// QueueCapacity bounds Queue's backing array, matching the firmware's
// fixed-memory budget (spec §2).
const QueueCapacity = 8

// Step is one queued body-level move: an end pose, the speed to reach
// it at (0 for a rapid move), a duration, and the step type that
// governs whether end_pos is absolute or relative and which tripod, if
// any, lifts (spec §3).
type Step struct {
	EndPos   pose.Pose
	Speed    float32
	TimeMs   uint32
	StepType steptype.StepType
}

// NewBySpeed builds a Step from an end pose and speed, deriving
// TimeMs = magnitude(end_pos) / speed at enqueue time (spec §3: "time
// is either supplied or derived from magnitude(end_pos)/speed"). A
// zero speed (rapid move) yields TimeMs 0.
func NewBySpeed(end pose.Pose, speed float32, st steptype.StepType) Step {
	var timeMs uint32
	if speed > 0 {
		timeMs = uint32(end.Magnitude() / speed * 1000)
	}
	return Step{EndPos: end, Speed: speed, TimeMs: timeMs, StepType: st}
}

// NewByDuration builds a Step from an end pose and an explicit
// duration, deriving Speed = magnitude(end_pos) / (timeMs/1000).
func NewByDuration(end pose.Pose, timeMs uint32, st steptype.StepType) Step {
	var speed float32
	if timeMs > 0 {
		speed = end.Magnitude() / (float32(timeMs) / 1000)
	}
	return Step{EndPos: end, Speed: speed, TimeMs: timeMs, StepType: st}
}

// Queue is a fixed-capacity FIFO of Steps, mirroring leg.Queue's
// bounded-array mechanics at the body level.
type Queue struct {
	entries [QueueCapacity]Step
	head    int
	count   int
}

// Enqueue appends s to the tail of the queue.
func (q *Queue) Enqueue(s Step) error {
	if q.count == QueueCapacity {
		return ErrQueueFull
	}
	tail := (q.head + q.count) % QueueCapacity
	q.entries[tail] = s
	q.count++
	return nil
}

// Dequeue removes and returns the Step at the head of the queue.
func (q *Queue) Dequeue() (s Step, ok bool) {
	if q.count == 0 {
		return Step{}, false
	}
	s = q.entries[q.head]
	q.head = (q.head + 1) % QueueCapacity
	q.count--
	return s, true
}

// Head returns the Step at the front of the queue without removing it.
func (q *Queue) Head() (s Step, ok bool) {
	if q.count == 0 {
		return Step{}, false
	}
	return q.entries[q.head], true
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue) IsEmpty() bool { return q.count == 0 }

// IsFull reports whether the queue is at QueueCapacity.
func (q *Queue) IsFull() bool { return q.count == QueueCapacity }

// Len reports the number of queued entries.
func (q *Queue) Len() int { return q.count }

// CurrentQueueEndPos returns the composed pose the planner would see
// after every currently queued step executes: basePos with each
// queued step's displacement folded in, honoring each step's
// absolute-vs-relative semantics (spec §3, §4.5.1's "q"). Absolute
// step types (RapidMove, LinearMoveAbsolute, ReturnToNeutral) replace
// the running pose outright; relative types (LinearMoveRelative,
// Group0, Group1) compose onto it.
func (q *Queue) CurrentQueueEndPos(basePos pose.Pose) pose.Pose {
	running := basePos
	for i := 0; i < q.count; i++ {
		s := q.entries[(q.head+i)%QueueCapacity]
		if s.StepType.IsAbsolute() {
			running = s.EndPos
		} else {
			running = running.Add(s.EndPos)
		}
	}
	return running
}
