package hexapod

// Clock supplies the monotonic millisecond time source the executor
// measures step progress against (spec §6: "now_ms() -> u32
// monotonic"). Wrapping is acceptable only if move_time stays well
// below the wrap period; the core never calls a real clock itself.
type Clock interface {
	NowMs() uint32
}
