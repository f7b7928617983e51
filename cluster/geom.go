package cluster

import (
	"math"

	"github.com/vlarandev/jetcluster/distance"
	"github.com/vlarandev/jetcluster/pseudojet"
)

// noNearest marks the absence of a nearest neighbour (no other record was
// available as a candidate).
const noNearest = -1

// jetRecord augments a pseudojet with the bookkeeping the geometric engine
// needs to maintain nearest-neighbour pointers in O(N) per merge instead
// of a full pairwise rescan: its own nearest neighbour, and the reverse adjacency list of
// every other record that currently considers this one its nearest
// neighbour (nearestFor).
type jetRecord struct {
	pj          pseudojet.PseudoJet
	beamDist    float64
	nearestDist float64
	nearestIdx  int
	nearestFor  []int
}

func (r *jetRecord) minDist() float64 {
	return math.Min(r.nearestDist, r.beamDist)
}

// geomEngine implements the O(N^2) geometric engine of arXiv:hep-ph/0512210:
// every pseudojet tracks a pointer to its current nearest neighbour, so
// the global minimum is found by a single linear scan instead of a full
// pairwise recomputation; only the handful of records whose nearest
// pointer is invalidated by a merge are recomputed.
type geomEngine struct {
	records []jetRecord
	dist    distance.Distance
}

// NewGeom builds a geometric engine over partons under the given distance
// measure.
func NewGeom(partons []pseudojet.PseudoJet, d distance.Distance) *geomEngine {
	n := len(partons)
	records := make([]jetRecord, n)
	for i, pj := range partons {
		records[i] = jetRecord{pj: pj, nearestIdx: noNearest}
	}
	e := &geomEngine{records: records, dist: d}
	for i := range e.records {
		e.records[i].beamDist = d.BeamDistance(e.records[i].pj)
		nearestDist := math.Inf(1)
		nearestIdx := noNearest
		for j := range e.records {
			if j == i {
				continue
			}
			gdist := pseudojet.DeltaR2(e.records[i].pj, e.records[j].pj)
			if gdist < nearestDist {
				nearestDist = gdist
				nearestIdx = j
			}
		}
		e.records[i].nearestIdx = nearestIdx
		if nearestIdx != noNearest {
			e.records[i].nearestDist = d.Distance(e.records[i].pj, e.records[nearestIdx].pj)
			e.records[nearestIdx].nearestFor = append(e.records[nearestIdx].nearestFor, i)
		} else {
			e.records[i].nearestDist = math.Inf(1)
		}
	}
	return e
}

func (e *geomEngine) minIdx() int {
	best := noNearest
	for i := range e.records {
		if best == noNearest || e.records[i].minDist() < e.records[best].minDist() {
			best = i
		}
	}
	return best
}

// Next performs the next clustering step, or reports done == true once no
// pseudojets remain.
func (e *geomEngine) Next() (step ClusterStep, done bool) {
	i := e.minIdx()
	if i == noNearest {
		return ClusterStep{}, true
	}
	pi := e.remove(i)
	if pi.beamDist < pi.nearestDist {
		return NewJetStep(pi.pj), false
	}
	j := pi.nearestIdx
	pj := e.remove(j)
	e.push(pi.pj.Add(pj.pj))
	return NewCombineStep(pi.pj, pj.pj), false
}

// swap exchanges the records at i and j, fixing up every nearest pointer
// and reverse-adjacency entry that referenced either position.
func (e *geomEngine) swap(i, j int) {
	if i == j {
		return
	}
	iIsNearestFor := e.records[i].nearestFor
	nearestI := e.records[i].nearestIdx
	jIsNearestFor := e.records[j].nearestFor
	nearestJ := e.records[j].nearestIdx

	for _, idx := range iIsNearestFor {
		e.records[idx].nearestIdx = j
	}
	for _, idx := range jIsNearestFor {
		e.records[idx].nearestIdx = i
	}
	if nearestI != noNearest {
		replaceIn(&e.records[nearestI].nearestFor, i, j)
	}
	if nearestJ != noNearest {
		replaceIn(&e.records[nearestJ].nearestFor, j, i)
	}
	e.records[i], e.records[j] = e.records[j], e.records[i]
}

func replaceIn(s *[]int, from, to int) {
	for k, v := range *s {
		if v == from {
			(*s)[k] = to
			return
		}
	}
}

// removeNearestLink ensures no record considers pos its nearest neighbour
// any more, by removing pos from that neighbour's reverse adjacency list.
func (e *geomEngine) removeNearestLink(pos int) {
	nearestIdx := e.records[pos].nearestIdx
	if nearestIdx == noNearest {
		return
	}
	swapRemoveValue(&e.records[nearestIdx].nearestFor, pos)
}

func swapRemoveValue(s *[]int, v int) {
	for k, x := range *s {
		if x == v {
			last := len(*s) - 1
			(*s)[k] = (*s)[last]
			*s = (*s)[:last]
			return
		}
	}
}

// remove deletes the record at idx, swapping it to the end first, and
// recomputes the nearest neighbour of every record that used to point at
// the removed one.
func (e *geomEngine) remove(idx int) jetRecord {
	last := len(e.records) - 1
	e.swap(idx, last)
	e.removeNearestLink(last)
	removed := e.records[last]
	e.records = e.records[:last]
	e.updateNearest(removed.nearestFor)
	return removed
}

func (e *geomEngine) updateNearest(positions []int) {
	for _, pos := range positions {
		e.updateNearestAt(pos)
	}
}

func (e *geomEngine) updateNearestAt(pos int) {
	nearestDist := math.Inf(1)
	nearestIdx := noNearest
	for idx := range e.records {
		if idx == pos {
			continue
		}
		gdist := pseudojet.DeltaR2(e.records[pos].pj, e.records[idx].pj)
		if gdist < nearestDist {
			nearestDist = gdist
			nearestIdx = idx
		}
	}
	e.records[pos].nearestIdx = nearestIdx
	if nearestIdx != noNearest {
		e.records[nearestIdx].nearestFor = append(e.records[nearestIdx].nearestFor, pos)
		e.records[pos].nearestDist = e.dist.Distance(e.records[pos].pj, e.records[nearestIdx].pj)
	} else {
		e.records[pos].nearestDist = math.Inf(1)
	}
}

// push inserts a freshly merged pseudojet, updating every other record
// whose nearest neighbour turns out to be the new arrival.
func (e *geomEngine) push(pj pseudojet.PseudoJet) {
	rec := jetRecord{pj: pj, beamDist: e.dist.BeamDistance(pj), nearestDist: math.Inf(1), nearestIdx: noNearest}
	newIdx := len(e.records)
	nearestDist := math.Inf(1)
	nearestIdx := noNearest
	for n := range e.records {
		d := e.dist.Distance(pj, e.records[n].pj)
		if d < nearestDist {
			nearestDist = d
			nearestIdx = n
		}
		if d < e.records[n].nearestDist {
			e.removeNearestLink(n)
			e.records[n].nearestIdx = newIdx
			e.records[n].nearestDist = d
			rec.nearestFor = append(rec.nearestFor, n)
		}
	}
	rec.nearestIdx = nearestIdx
	if nearestIdx != noNearest {
		e.records[nearestIdx].nearestFor = append(e.records[nearestIdx].nearestFor, newIdx)
		rec.nearestDist = e.dist.Distance(pj, e.records[nearestIdx].pj)
	}
	e.records = append(e.records, rec)
}
