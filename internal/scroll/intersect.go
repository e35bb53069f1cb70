package scroll

// Region is a tracked block of the document, in lines: [Top, Bottom).
type Region struct {
	ID     string
	Top    int
	Bottom int
}

// Intersects reports whether the region overlaps the window [top, top+height).
func (r Region) Intersects(top, height int) bool {
	if height <= 0 || r.Bottom <= r.Top {
		return false
	}
	return r.Top < top+height && r.Bottom > top
}

// Intersections plays the role of a viewport intersection observer for a set
// of document regions. Update reports the regions that started or stopped
// intersecting since the previous call.
type Intersections struct {
	regions []Region
	visible map[string]bool
}

// NewIntersections creates an empty tracker.
func NewIntersections() *Intersections {
	return &Intersections{visible: make(map[string]bool)}
}

// SetRegions replaces the tracked layout while keeping visibility of regions
// that still exist, so a relayout does not re-announce them.
func (in *Intersections) SetRegions(regions []Region) {
	keep := make(map[string]bool, len(regions))
	for _, r := range regions {
		if in.visible[r.ID] {
			keep[r.ID] = true
		}
	}
	in.regions = append([]Region(nil), regions...)
	in.visible = keep
}

// Region returns a tracked region by id.
func (in *Intersections) Region(id string) (Region, bool) {
	for _, r := range in.regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Update recomputes visibility for the window [top, top+height).
// entered and left are in region order.
func (in *Intersections) Update(top, height int) (entered, left []string) {
	for _, r := range in.regions {
		now := r.Intersects(top, height)
		was := in.visible[r.ID]
		switch {
		case now && !was:
			entered = append(entered, r.ID)
		case !now && was:
			left = append(left, r.ID)
		}
		if now {
			in.visible[r.ID] = true
		} else {
			delete(in.visible, r.ID)
		}
	}
	return entered, left
}

// Visible reports whether id intersected the window at the last Update.
func (in *Intersections) Visible(id string) bool {
	return in.visible[id]
}
