package preview

import "go.trai.ch/mist/internal/core/domain"

// ReconcileJump combines the resolved start and end of a selected document
// range into one source range, clipped to the range of the enclosing element.
//
// Any argument may be nil when its resolution failed. The result is nil when
// nothing resolved. The arguments are not modified.
func ReconcileJump(start, end, elem *domain.JumpInfo) *domain.JumpInfo {
	rng := combine(start, end)

	// Generated content can place the end of a range before its start.
	if rng != nil && rng.Start != nil && rng.End != nil && rng.End.Compare(*rng.Start) <= 0 {
		rng.Start, rng.End = rng.End, rng.Start
	}

	switch {
	case elem != nil && rng != nil && elem.Filepath == rng.Filepath:
		return clip(rng, elem)
	case rng != nil:
		return rng
	case elem != nil:
		return cloneJump(elem)
	default:
		return nil
	}
}

func combine(start, end *domain.JumpInfo) *domain.JumpInfo {
	switch {
	case start != nil && end != nil:
		if start.Filepath == end.Filepath &&
			start.Start != nil && start.End != nil && start.Start.Compare(*start.End) <= 0 {
			return &domain.JumpInfo{
				Filepath: start.Filepath,
				Start:    clonePos(start.Start),
				End:      clonePos(end.Start),
			}
		}
		return cloneJump(end)
	case start != nil:
		return cloneJump(start)
	case end != nil:
		return cloneJump(end)
	default:
		return nil
	}
}

// clip restricts rng to the bounds of elem. A missing bound of either pair is
// replaced by the other bound of that pair.
func clip(rng, elem *domain.JumpInfo) *domain.JumpInfo {
	lo, hi := bounds(elem)
	from, to := bounds(rng)
	if lo == nil || hi == nil || from == nil || to == nil {
		return rng
	}

	s := minPos(maxPos(*from, *lo), *hi)
	e := minPos(maxPos(*to, *lo), *hi)
	rng.Start, rng.End = &s, &e
	return rng
}

func bounds(j *domain.JumpInfo) (lo, hi *domain.CharPosition) {
	lo = j.Start
	if lo == nil {
		lo = j.End
	}
	hi = j.End
	if hi == nil {
		hi = lo
	}
	return lo, hi
}

func maxPos(a, b domain.CharPosition) domain.CharPosition {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

func minPos(a, b domain.CharPosition) domain.CharPosition {
	if a.Compare(b) <= 0 {
		return a
	}
	return b
}

func clonePos(p *domain.CharPosition) *domain.CharPosition {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func cloneJump(j *domain.JumpInfo) *domain.JumpInfo {
	if j == nil {
		return nil
	}
	return &domain.JumpInfo{
		Filepath: j.Filepath,
		Start:    clonePos(j.Start),
		End:      clonePos(j.End),
	}
}
