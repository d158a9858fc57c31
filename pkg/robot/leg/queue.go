package leg

import (
	"errors"

	"github.com/ManufacturedMotion/Hex3/pkg/motion/vec3"
)

// ErrQueueFull is returned by Enqueue when the queue is already at
// QueueCapacity (spec §4.4, status code QueueFull).
var ErrQueueFull = errors.New("leg: queue full")

// QueueCapacity bounds LegQueue's backing array. No entry is ever
// allocated beyond this; Enqueue past capacity fails instead of
// growing, matching the firmware's fixed-memory budget (spec §2).
const QueueCapacity = 8

// MinSpeed is substituted whenever a duration-based enqueue would
// otherwise derive a zero or negative speed from a zero displacement
// (spec §4.4: "otherwise speed = 100").
const MinSpeed = 100

// Op is one queued leg move: a target end position, the speed to
// reach it at, whether that position is relative to the leg's current
// target, and a hold time. An Op with a non-zero WaitTimeMs is a pure
// delay: the combo executor issues a wait for it and does not move the
// leg.
//
// Grounded on the firmware's leg_queue_entry shape described in spec
// §3/§4.4; expressed here as a value type following vec3.Vec3 and
// pose.Pose's by-value convention rather than the teacher's pointer-
// heavy actuator types.
type Op struct {
	EndPos     vec3.Vec3
	Speed      float32
	Relative   bool
	WaitTimeMs uint32
}

// NewOpBySpeed builds an Op directly from a target and speed (spec
// §4.4, the speed-based enqueue overload).
func NewOpBySpeed(end vec3.Vec3, speed float32, relative bool, waitMs uint32) Op {
	return Op{EndPos: end, Speed: speed, Relative: relative, WaitTimeMs: waitMs}
}

// NewOpByDuration builds an Op from a target and a desired duration,
// deriving speed = |displacement to go| / duration when that
// displacement exceeds ZeroMagnitudeEpsilon, and falling back to
// MinSpeed otherwise (spec §4.4: "if |end_pos| > 1e-3, speed =
// displacement / duration; otherwise speed = 100"). durationMs of zero
// is treated the same as a negligible displacement, since a finite
// displacement over zero time is not representable as a finite speed.
//
// tailPos is the queue's current end position (leg.Queue.
// CurrentQueueEndPos), needed because the displacement to go differs
// by relative vs. absolute: a relative op's displacement is simply its
// own end, while an absolute op's displacement is how far end is from
// where the queue already has the leg headed. Grounded on the
// original firmware's legEnqueue duration overload, which computes
// distance_to_go = current_queue_end_pos − op_end_pos for absolute ops
// and falls back to op_end_pos.magnitude() only for relative ops.
func NewOpByDuration(end vec3.Vec3, tailPos vec3.Vec3, durationMs uint32, relative bool, waitMs uint32) Op {
	var mag float32
	if relative {
		mag = end.Magnitude()
	} else {
		mag = tailPos.Sub(end).Magnitude()
	}

	var speed float32
	if mag > vec3.ZeroMagnitudeEpsilon && durationMs > 0 {
		speed = mag / float32(durationMs)
	} else {
		speed = MinSpeed
	}
	return Op{EndPos: end, Speed: speed, Relative: relative, WaitTimeMs: waitMs}
}

// Queue is a fixed-capacity FIFO of leg Ops. It never allocates past
// QueueCapacity; Enqueue on a full queue returns ErrQueueFull rather
// than growing, mirroring the teacher's preference for fixed-size
// arrays over slices in hot paths (pkg/core/math/mat and the step/walk
// packages follow the same habit).
type Queue struct {
	entries [QueueCapacity]Op
	head    int
	count   int
}

// Enqueue appends op to the tail of the queue.
func (q *Queue) Enqueue(op Op) error {
	if q.count == QueueCapacity {
		return ErrQueueFull
	}
	tail := (q.head + q.count) % QueueCapacity
	q.entries[tail] = op
	q.count++
	return nil
}

// Dequeue removes and returns the Op at the head of the queue. ok is
// false if the queue was empty.
func (q *Queue) Dequeue() (op Op, ok bool) {
	if q.count == 0 {
		return Op{}, false
	}
	op = q.entries[q.head]
	q.head = (q.head + 1) % QueueCapacity
	q.count--
	return op, true
}

// Head returns the Op at the front of the queue without removing it.
func (q *Queue) Head() (op Op, ok bool) {
	if q.count == 0 {
		return Op{}, false
	}
	return q.entries[q.head], true
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue) IsEmpty() bool { return q.count == 0 }

// IsFull reports whether the queue is at QueueCapacity.
func (q *Queue) IsFull() bool { return q.count == QueueCapacity }

// Len reports the number of queued entries.
func (q *Queue) Len() int { return q.count }

// CurrentQueueEndPos returns the position the leg will be at once
// every queued Op has drained: basePos with each queued Op's EndPos
// folded in, honoring each Op's absolute-vs-relative semantics (spec
// §3's "end_pos of the tail entry composed onto the initial pose for
// relatives"). Absolute ops replace the running position outright;
// relative ops compose onto it. basePos is returned unchanged if the
// queue is empty.
//
// Grounded on the equivalent composition in
// pkg/motion/step.Queue.CurrentQueueEndPos.
func (q *Queue) CurrentQueueEndPos(basePos vec3.Vec3) vec3.Vec3 {
	running := basePos
	for i := 0; i < q.count; i++ {
		op := q.entries[(q.head+i)%QueueCapacity]
		if op.Relative {
			running = running.Add(op.EndPos)
		} else {
			running = op.EndPos
		}
	}
	return running
}
