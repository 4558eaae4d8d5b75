package icon

import "fmt"

// Candidates returns, in container order, the frames whose width and height
// are both multiples of size.
func Candidates(frames []Frame, size int) []Frame {
	if size <= 0 {
		size = DefaultSize
	}
	var out []Frame
	for _, f := range frames {
		if f.Width%size == 0 && f.Height%size == 0 {
			out = append(out, f)
		}
	}
	return out
}

// SelectFrame returns the candidate with the largest area. Only a strictly
// larger area replaces the current best, so ties resolve to the lowest index.
func SelectFrame(frames []Frame, size int) (Frame, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cands := Candidates(frames, size)
	if len(cands) == 0 {
		return Frame{}, fmt.Errorf("%w: %d frame(s), none divisible by %d", ErrNoCandidate, len(frames), size)
	}
	best := cands[0]
	for _, f := range cands[1:] {
		if f.Area() > best.Area() {
			best = f
		}
	}
	return best, nil
}

// Select enumerates c and picks its canonical source frame.
func Select(c *Container, size int) (Frame, error) {
	return SelectFrame(c.Frames(), size)
}
