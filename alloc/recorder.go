package alloc

import "unsafe"

// Recorder wraps an Allocator and counts every call that reaches the inner
// allocator, successful or not. Tests use it to assert exactly-once release
// behavior.
type Recorder struct {
	Inner Allocator

	Allocates int
	Mores     int
	Frees     int
	RowFrees  int
}

// NewRecorder wraps inner in a Recorder.
func NewRecorder(inner Allocator) *Recorder {
	return &Recorder{Inner: inner}
}

func (r *Recorder) Allocate(byteCount uint32) (unsafe.Pointer, error) {
	r.Allocates++
	return r.Inner.Allocate(byteCount)
}

func (r *Recorder) AllocateMore(byteCount uint32, root unsafe.Pointer) (unsafe.Pointer, error) {
	r.Mores++
	return r.Inner.AllocateMore(byteCount, root)
}

func (r *Recorder) Free(root unsafe.Pointer) error {
	r.Frees++
	return r.Inner.Free(root)
}

func (r *Recorder) FreeRows(rows unsafe.Pointer) error {
	r.RowFrees++
	return r.Inner.FreeRows(rows)
}
