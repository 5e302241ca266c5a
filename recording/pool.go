package recording

import "github.com/treeviewer/highlight"

// ResourcePool stores resources referenced by recording commands.
// Each Add operation clones mutable resources to keep the recording
// immutable.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths  []*highlight.Path
	paints []Paint
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:  make([]*highlight.Path, 0, 64),
		paints: make([]Paint, 0, 16),
	}
}

// AddPath adds a boundary to the pool and returns its reference.
func (p *ResourcePool) AddPath(path *highlight.Path) PathRef {
	if path != nil {
		path = path.Clone()
	}
	p.paths = append(p.paths, path)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the boundary for the given reference, or nil.
func (p *ResourcePool) GetPath(ref PathRef) *highlight.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of boundaries in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddPaint adds a paint to the pool and returns its reference.
// Paints are immutable once recorded.
func (p *ResourcePool) AddPaint(paint Paint) PaintRef {
	p.paints = append(p.paints, paint)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PaintRef(uint32(len(p.paints) - 1))
}

// GetPaint returns the paint for the given reference, or nil.
func (p *ResourcePool) GetPaint(ref PaintRef) Paint {
	if int(ref) >= len(p.paints) {
		return nil
	}
	return p.paints[ref]
}

// PaintCount returns the number of paints in the pool.
func (p *ResourcePool) PaintCount() int {
	return len(p.paints)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.paths = p.paths[:0]
	p.paints = p.paints[:0]
}
