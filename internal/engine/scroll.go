package engine

// Alignment selects where a scrolled-to item lands inside the viewport.
type Alignment int

const (
	// AlignAuto keeps the current offset when the item is already fully
	// visible, otherwise scrolls the minimum distance to reveal it.
	AlignAuto Alignment = iota

	// AlignStart puts the item's top edge at the viewport top.
	AlignStart

	// AlignEnd puts the item's bottom edge at the viewport bottom.
	AlignEnd

	// AlignCenter centers the item in the viewport.
	AlignCenter
)

// String returns the alignment's configuration name.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	default:
		return "auto"
	}
}

// ParseAlignment maps a configuration string to an Alignment. Unknown
// values map to AlignAuto.
func ParseAlignment(s string) Alignment {
	switch s {
	case "start":
		return AlignStart
	case "end":
		return AlignEnd
	case "center":
		return AlignCenter
	default:
		return AlignAuto
	}
}

// TargetOffset computes the scroll offset that brings item index into view
// with the requested alignment. It is a pure function of current state:
// applying the returned offset (smoothly or instantly) is the host's
// responsibility, and no engine state changes.
//
// The result is clamped to [0, max(0, TotalSize()-viewportSize)]. Indices
// outside [0, Len()-1] fail with ErrInvalidIndex.
func (e *Engine) TargetOffset(
	index int,
	alignment Alignment,
	currentScrollOffset float64,
	viewportSize float64,
) (float64, error) {
	if index < 0 || index >= e.index.Len() {
		return 0, ErrInvalidIndex
	}

	top := e.index.OffsetOf(index)
	size := e.index.Size(index)

	var target float64
	switch alignment {
	case AlignStart:
		target = top
	case AlignEnd:
		target = top + size - viewportSize
	case AlignCenter:
		target = top - (viewportSize-size)/2
	case AlignAuto:
		fallthrough
	default:
		viewTop := currentScrollOffset
		viewBottom := currentScrollOffset + viewportSize
		if top >= viewTop && top+size <= viewBottom {
			// Already fully visible: no movement.
			return currentScrollOffset, nil
		}
		if top < viewTop {
			target = top
		} else {
			target = top + size - viewportSize
		}
	}

	return e.clampOffset(target, viewportSize), nil
}
