package rectpack

import (
	"cmp"
	"slices"
)

// MinDimension is the smallest square side the packer reports, even for
// an empty batch.
const MinDimension = 2

// Handle identifies a registered rectangle. Handles are assigned in
// registration order, starting at 0, and stay stable across Pack calls.
type Handle int

// rect holds the dimensions of a registered rectangle.
type rect struct {
	w, h int
}

// point is an integer grid position.
type point struct {
	x, y int
}

// Packer accumulates rectangles and computes non-overlapping positions
// for all of them inside the smallest power-of-two square it can find.
//
// A Packer is single-use state for one packing run and is not safe for
// concurrent use. Registration order is part of the determinism
// contract, so concurrent callers must serialize Register calls.
type Packer struct {
	rects  []rect
	pos    []point
	packed bool
}

// New creates an empty packer.
func New() *Packer {
	return &Packer{}
}

// Register appends a rectangle to the batch and returns its handle.
// Zero dimensions are accepted; negative dimensions are rejected with
// InvalidRectangleError. Registering a rectangle discards any previous
// packing, since positions must cover every registered handle.
func (p *Packer) Register(width, height int) (Handle, error) {
	if width < 0 || height < 0 {
		return 0, &InvalidRectangleError{Width: width, Height: height}
	}
	p.pos = nil
	p.packed = false
	p.rects = append(p.rects, rect{w: width, h: height})
	return Handle(len(p.rects) - 1), nil
}

// Len returns the number of registered rectangles.
func (p *Packer) Len() int {
	return len(p.rects)
}

// Pack computes positions for all registered rectangles from scratch,
// replacing any previous packing. Packing the same registered set again
// yields bit-identical positions.
//
// Rectangles are processed in descending area order, ties broken by
// ascending handle, so equal-area inputs are placed reproducibly no
// matter how they were registered. Pack always succeeds: candidate
// anchors are unbounded in the positive direction, so a valid (if
// wasteful) position always exists.
func (p *Packer) Pack() {
	p.pos = make([]point, len(p.rects))

	order := make([]Handle, len(p.rects))
	for i := range order {
		order[i] = Handle(i)
	}
	slices.SortFunc(order, func(a, b Handle) int {
		areaA := p.rects[a].w * p.rects[a].h
		areaB := p.rects[b].w * p.rects[b].h
		if areaA != areaB {
			return cmp.Compare(areaB, areaA)
		}
		return cmp.Compare(a, b)
	})

	placed := make([]Handle, 0, len(order))
	for _, h := range order {
		r := p.rects[h]
		p.pos[h] = p.findPosition(placed, r.w, r.h)
		placed = append(placed, h)
	}
	p.packed = true
}

// Dimension returns the side of the smallest power-of-two square, at
// least MinDimension, that covers every placed rectangle. Before Pack
// has run (or with no rectangles registered) it returns MinDimension.
func (p *Packer) Dimension() int {
	var extent int
	if p.packed {
		for h, r := range p.rects {
			at := p.pos[h]
			extent = max(extent, at.x+r.w, at.y+r.h)
		}
	}
	return nextPow2(extent)
}

// Position returns the packed position of the rectangle identified by
// the given handle. It fails with ErrUnknownHandle for handles that were
// never registered, and with ErrNotPacked if Pack has not run since the
// last registration.
func (p *Packer) Position(h Handle) (x, y int, err error) {
	if h < 0 || int(h) >= len(p.rects) {
		return 0, 0, ErrUnknownHandle
	}
	if !p.packed {
		return 0, 0, ErrNotPacked
	}
	at := p.pos[h]
	return at.x, at.y, nil
}

// findPosition selects the anchor for a width x height rectangle given
// the rectangles already placed, in placement order.
func (p *Packer) findPosition(placed []Handle, width, height int) point {
	// Candidate anchors are the top-right and bottom-left corners of
	// every placed rectangle; (0,0) when nothing is placed yet. An
	// anchor that coincides with a placed rectangle's origin is already
	// claimed by that rectangle and is excluded. Enumeration order is
	// deterministic, and ties on cost keep the first candidate.
	var anchors []point
	if len(placed) == 0 {
		anchors = []point{{0, 0}}
	} else {
		origins := make(map[point]struct{}, len(placed))
		for _, ph := range placed {
			origins[p.pos[ph]] = struct{}{}
		}
		seen := make(map[point]struct{}, 2*len(placed))
		for _, ph := range placed {
			r := p.rects[ph]
			at := p.pos[ph]
			for _, a := range [2]point{{at.x + r.w, at.y}, {at.x, at.y + r.h}} {
				if _, dup := seen[a]; dup {
					continue
				}
				seen[a] = struct{}{}
				if _, claimed := origins[a]; claimed {
					continue
				}
				anchors = append(anchors, a)
			}
		}
	}

	var best point
	bestCost := -1
	for _, a := range anchors {
		if !p.fits(placed, a.x, a.y, width, height) {
			continue
		}
		if c := cost(a.x, a.y, width, height); bestCost < 0 || c < bestCost {
			best, bestCost = a, c
		}
	}
	// The top-right corner of the placed rectangle with the largest
	// x-extent can never collide, so at least one candidate survives.
	return best
}

// fits reports whether a width x height rectangle at (x, y) avoids every
// placed rectangle. The overlap test is a closed-interval test on grid
// coordinates, which makes zero-area rectangles never block anything.
func (p *Packer) fits(placed []Handle, x, y, width, height int) bool {
	axMin, axMax := x, x+width-1
	ayMin, ayMax := y, y+height-1
	for _, ph := range placed {
		r := p.rects[ph]
		at := p.pos[ph]
		if axMax < at.x || at.x+r.w-1 < axMin {
			continue
		}
		if ayMax < at.y || at.y+r.h-1 < ayMin {
			continue
		}
		return false
	}
	return true
}

// cost scores an anchor for a width x height rectangle. Positions far
// from the origin that also push the bounding square into a larger
// power-of-two size class score worse.
func cost(x, y, width, height int) int {
	return x*x*nextPow2(x+width) + y*y*nextPow2(y+height)
}

// nextPow2 returns the smallest power of two that is >= v, with a
// minimum of 2.
func nextPow2(v int) int {
	p := MinDimension
	for p < v {
		p *= 2
	}
	return p
}
