package schedule

// Window describes the visible portion of a daily timeline and the
// pixel height of one slot row.
type Window struct {
	StartHour   int
	EndHour     int
	SlotMinutes int
	SlotHeight  float64
}

// DefaultWindow matches the clinic's working day: 07:00-18:00 in
// 30-minute rows of 56px.
func DefaultWindow() Window {
	return Window{StartHour: 7, EndHour: 18, SlotMinutes: 30, SlotHeight: 56}
}

// Block is the computed vertical placement of one appointment inside
// the window, in pixels from the top of the grid.
type Block struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Position computes the block for an appointment spanning
// [startTime, endTime). Appointments partially outside the window are
// clamped to its edges; appointments entirely outside it (and malformed
// times) yield ok=false and should not be rendered.
func (w Window) Position(startTime, endTime string) (Block, bool) {
	start, err := ToMinutes(startTime)
	if err != nil {
		return Block{}, false
	}
	end, err := ToMinutes(endTime)
	if err != nil {
		return Block{}, false
	}

	windowStart := w.StartHour * 60
	windowEnd := w.EndHour * 60
	if end <= windowStart || start >= windowEnd || end <= start {
		return Block{}, false
	}
	if start < windowStart {
		start = windowStart
	}
	if end > windowEnd {
		end = windowEnd
	}

	perMinute := w.SlotHeight / float64(w.SlotMinutes)
	return Block{
		Top:    float64(start-windowStart) * perMinute,
		Height: float64(end-start) * perMinute,
	}, true
}

// SlotLabels returns the "HH:mm" label of every slot boundary in the
// window, e.g. 07:00, 07:30, ... 17:30 for the default window.
func (w Window) SlotLabels() []string {
	var labels []string
	for m := w.StartHour * 60; m < w.EndHour*60; m += w.SlotMinutes {
		labels = append(labels, MinutesToTime(m))
	}
	return labels
}
