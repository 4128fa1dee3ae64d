// Package feedback models best-effort user feedback cues (the haptic buzz a
// device fires on submit success or failure) as an injectable port. Hosts
// without a feedback capability use the no-op port; emitting a cue never
// blocks and never fails.
package feedback

// Cue identifies the feedback pattern to emit.
type Cue string

const (
	CueSuccess Cue = "success"
	CueError   Cue = "error"
)

// Port is the capability-checked emitter. Supported reports whether the host
// can actually produce feedback; Emit is best-effort either way.
type Port interface {
	Supported() bool
	Emit(cue Cue)
}

// Noop returns a Port that reports no capability and swallows every cue.
func Noop() Port {
	return noopPort{}
}

type noopPort struct{}

func (noopPort) Supported() bool { return false }
func (noopPort) Emit(Cue)        {}

// Func adapts an emit function into a supported Port. A nil function yields
// the no-op port.
func Func(emit func(Cue)) Port {
	if emit == nil {
		return Noop()
	}
	return funcPort{emit: emit}
}

type funcPort struct {
	emit func(Cue)
}

func (funcPort) Supported() bool { return true }
func (p funcPort) Emit(cue Cue)  { p.emit(cue) }

// Recorder is a Port for tests that records every emitted cue in order.
type Recorder struct {
	Cues []Cue
}

func (*Recorder) Supported() bool { return true }

func (r *Recorder) Emit(cue Cue) {
	r.Cues = append(r.Cues, cue)
}
