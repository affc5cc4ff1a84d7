package retained

// ============================================================================
// Control Messages
// ============================================================================

// Control identifies a control message. The set is closed: widget types
// must report unknown codes as not handled and leave the instance alone.
type Control uint8

const (
	// ControlInit is sent once after the instance is linked into the tree.
	ControlInit Control = iota + 1

	// ControlRemove is sent before the instance is unlinked and freed.
	ControlRemove

	// ControlDraw asks the widget to paint itself.
	// param: Display, result: nil.
	ControlDraw

	// ControlSetParam carries a type-specific configuration change.
	// param: *Param, result: *bool (success).
	ControlSetParam

	// Touch messages. param: *TouchData, result: *TouchStatus.
	ControlTouchStart
	ControlTouchMove
	ControlTouchEnd

	// ControlClick follows TouchEnd when the release is inside the widget.
	// param: *TouchData, result: nil.
	ControlClick

	// Focus changes. param: nil, result: nil.
	ControlFocusIn
	ControlFocusOut
)

func (c Control) String() string {
	switch c {
	case ControlInit:
		return "Init"
	case ControlRemove:
		return "Remove"
	case ControlDraw:
		return "Draw"
	case ControlSetParam:
		return "SetParam"
	case ControlTouchStart:
		return "TouchStart"
	case ControlTouchMove:
		return "TouchMove"
	case ControlTouchEnd:
		return "TouchEnd"
	case ControlClick:
		return "Click"
	case ControlFocusIn:
		return "FocusIn"
	case ControlFocusOut:
		return "FocusOut"
	default:
		return "Unknown"
	}
}

// Callback is the single dispatch function of a widget type. It returns
// true when it recognized and handled ctrl.
type Callback func(w *Widget, ctrl Control, param, result any) bool

// Param is the payload of ControlSetParam. Type is interpreted only by the
// receiving widget type.
type Param struct {
	Type uint8
	Data any
}

// ============================================================================
// Touch Payloads
// ============================================================================

// MaxTouchPoints is the number of points carried by a TouchSample.
const MaxTouchPoints = 2

// TouchSample is one frame from the touch source. Count is the number of
// points down; zero means released.
type TouchSample struct {
	Count int
	X, Y  [MaxTouchPoints]int
}

// TouchStatus is the result of a TouchStart message.
type TouchStatus uint8

const (
	// TouchNotHandled lets the message bubble to the parent.
	TouchNotHandled TouchStatus = iota

	// TouchHandled consumes the touch and focuses the widget.
	TouchHandled

	// TouchHandledNoFocus consumes the touch without changing focus.
	TouchHandledNoFocus
)

// TouchData is the payload of touch messages.
type TouchData struct {
	// Sample holds absolute screen coordinates.
	Sample TouchSample

	// RelX/RelY are the sample points relative to the receiving widget.
	RelX, RelY [MaxTouchPoints]int

	// Drag is the router's drag state, shared by the whole GUI.
	Drag *DragState
}

// Single reports whether exactly one point is down.
func (t *TouchData) Single() bool {
	return t.Sample.Count == 1
}
