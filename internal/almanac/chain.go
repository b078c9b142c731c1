package almanac

import "github.com/sledgeworks/aoc"

// Chain feeds the output of each map into the next.
type Chain []Map

// Apply threads v through every stage.
func (c Chain) Apply(v int) int {
	for _, m := range c {
		v = m.Convert(v)
	}
	return v
}

// probe is an interval in the output space of stage; each of its values
// ends up offset higher after the last stage.
type probe struct {
	stage  int
	iv     aoc.Interval
	offset int
}

// Minimize returns the lowest final value over all seeds without visiting
// them one by one. The last stage's destination space is split into
// segments that are tried in ascending order; each segment is walked back
// to the seeds, and the first one that reaches any seed holds the minimum.
func (c Chain) Minimize(seeds SeedSet) (int, bool) {
	seeds = seeds.Coalesce()
	if len(c) == 0 {
		return seeds.Min()
	}
	for _, seg := range c[len(c)-1].segments() {
		if v, ok := c.minimizeSegment(seg, seeds); ok {
			return v, true
		}
	}
	return seeds.Min()
}

func (c Chain) minimizeSegment(seg aoc.Interval, seeds SeedSet) (best int, found bool) {
	var work aoc.Stack[probe]
	work.Push(probe{stage: len(c) - 1, iv: seg})
	work.While(func(p probe) bool {
		if p.stage < 0 {
			if ov, ok := seeds.Intersects(p.iv); ok {
				if v := ov.Start + p.offset; !found || v < best {
					best, found = v, true
				}
			}
			return true
		}
		for _, pc := range c[p.stage].Invert(p.iv) {
			work.Push(probe{
				stage:  p.stage - 1,
				iv:     pc.Src,
				offset: p.offset + pc.Offset,
			})
		}
		return true
	})
	return best, found
}
