package state

import "context"

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

func PageStep(height int, hasStatus bool) int {
	if height <= 0 {
		return 10
	}
	headerLines := 6
	if hasStatus {
		headerLines += 2
	}
	step := height - headerLines
	if step < 3 {
		step = 3
	}
	return step
}

func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}

// Mount ties a screen's in-flight commands to one activation of the screen.
// Leaving the screen calls Cancel; results tagged with another generation are
// stale and must be dropped.
type Mount struct {
	Gen    uint64
	ctx    context.Context
	cancel context.CancelFunc
}

func NewMount(gen uint64) Mount {
	ctx, cancel := context.WithCancel(context.Background())
	return Mount{Gen: gen, ctx: ctx, cancel: cancel}
}

func (m Mount) Context() context.Context {
	if m.ctx == nil {
		return context.Background()
	}
	return m.ctx
}

func (m Mount) Cancel() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Owns reports whether a result tagged gen belongs to this live mount.
func (m Mount) Owns(gen uint64) bool {
	return m.ctx != nil && m.Gen == gen && m.ctx.Err() == nil
}
