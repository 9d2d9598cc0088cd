package renderer

import "time"

// FrameStats contains statistics about one rendered frame
type FrameStats struct {
	TotalPixels int           // total number of pixels rendered
	HitPixels   int           // pixels where the ray reached a surface
	MissPixels  int           // pixels rendered fully transparent
	Duration    time.Duration // wall time for the frame
}

// bandStats accumulates hit/miss counts for a single worker band
type bandStats struct {
	hits   int
	misses int
}

// merge folds a band's counts into the frame totals
func (fs *FrameStats) merge(bs bandStats) {
	fs.HitPixels += bs.hits
	fs.MissPixels += bs.misses
	fs.TotalPixels += bs.hits + bs.misses
}

// Coverage returns the fraction of pixels covered by geometry
func (fs FrameStats) Coverage() float64 {
	if fs.TotalPixels == 0 {
		return 0
	}
	return float64(fs.HitPixels) / float64(fs.TotalPixels)
}
