package main

// resizeTracker debounces framebuffer size changes: a regeneration is due on
// the first observation after the size stopped changing.
type resizeTracker struct {
	width, height int
	resizing      bool
}

func newResizeTracker(width, height int) resizeTracker {
	return resizeTracker{
		width:  width,
		height: height,
	}
}

// Observe records the framebuffer size for this frame and reports whether
// the fractal should be regenerated at that size.
func (r *resizeTracker) Observe(width, height int) bool {
	if width != r.width || height != r.height {
		r.width, r.height = width, height
		r.resizing = true
		return false
	}

	if !r.resizing {
		return false
	}

	// minimized windows report a zero sized framebuffer; wait for a real size
	if width <= 0 || height <= 0 {
		return false
	}

	r.resizing = false
	return true
}
