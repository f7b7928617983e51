package cluster

import (
	"math"

	"github.com/vlarandev/jetcluster/distance"
	"github.com/vlarandev/jetcluster/pseudojet"
)

// Tile grid dimensions for the tiled geometric engine: the (rapidity,
// azimuth) plane is partitioned into a fixed nRapBins x nPhiBins grid,
// clamped at +-maxRap in rapidity and wrapped circularly in azimuth.
const (
	maxRap   = 5.0
	nRapBins = 10
	nPhiBins = 6
)

// tileEngine implements the tiled variant of the O(N^2) geometric engine:
// nearest-neighbour search is restricted to the 3x3 block of tiles
// surrounding a pseudojet's own tile, bounding the candidate set
// regardless of N at the cost of only finding the true nearest neighbour
// when R is small relative to a tile's extent (the regime this engine is
// dispatched for).
type tileEngine struct {
	records []jetRecord
	dist    distance.Distance
	tiles   [nRapBins][nPhiBins]*tileSet
}

// NewTiled builds a tiled geometric engine over partons under the given
// distance measure.
func NewTiled(partons []pseudojet.PseudoJet, d distance.Distance) *tileEngine {
	records := make([]jetRecord, len(partons))
	for i, pj := range partons {
		records[i] = jetRecord{pj: pj, beamDist: d.BeamDistance(pj), nearestDist: math.Inf(1), nearestIdx: noNearest}
	}
	e := &tileEngine{records: records, dist: d}
	for r := 0; r < nRapBins; r++ {
		for p := 0; p < nPhiBins; p++ {
			e.tiles[r][p] = newTileSet()
		}
	}
	e.initTiles()
	e.initNearest()
	return e
}

func tileCoord(pj pseudojet.PseudoJet) (rap, phi int) {
	rapCoord := int(math.Floor(pj.Rap() + maxRap))
	if rapCoord < 0 {
		rapCoord = 0
	}
	if rapCoord > nRapBins-1 {
		rapCoord = nRapBins - 1
	}
	phiCoord := pj.Phi() * (nPhiBins / (2 * math.Pi))
	return rapCoord, int(phiCoord)
}

func (e *tileEngine) initTiles() {
	for n := range e.records {
		rap, phi := tileCoord(e.records[n].pj)
		e.tiles[rap][phi].insert(n)
	}
}

func rapNeighbourRange(rapIdx int) (lo, hi int) {
	switch {
	case rapIdx == 0:
		return 0, 2
	case rapIdx == nRapBins-1:
		return nRapBins - 2, nRapBins
	default:
		return rapIdx - 1, rapIdx + 2
	}
}

func phiNeighbours(phiIdx int) [3]int {
	switch {
	case phiIdx == 0:
		return [3]int{nPhiBins - 1, 0, 1}
	case phiIdx == nPhiBins-1:
		return [3]int{nPhiBins - 2, nPhiBins - 1, 0}
	default:
		return [3]int{phiIdx - 1, phiIdx, phiIdx + 1}
	}
}

// tileNeighbours collects the indices present in the 3x3 tile block
// surrounding (rapIdx, phiIdx), in tile-then-insertion order.
func (e *tileEngine) tileNeighbours(rapIdx, phiIdx int) []int {
	rLo, rHi := rapNeighbourRange(rapIdx)
	phis := phiNeighbours(phiIdx)
	var out []int
	for r := rLo; r < rHi; r++ {
		for _, p := range phis {
			out = append(out, e.tiles[r][p].items...)
		}
	}
	return out
}

func (e *tileEngine) initNearest() {
	for i := range e.records {
		rap, phi := tileCoord(e.records[i].pj)
		nearestDist := math.Inf(1)
		nearestIdx := noNearest
		for _, j := range e.tileNeighbours(rap, phi) {
			if j == i {
				continue
			}
			gdist := pseudojet.DeltaR2(e.records[i].pj, e.records[j].pj)
			if gdist < nearestDist {
				nearestDist = gdist
				nearestIdx = j
			}
		}
		if nearestIdx != noNearest {
			e.records[i].nearestIdx = nearestIdx
			e.records[i].nearestDist = e.dist.Distance(e.records[i].pj, e.records[nearestIdx].pj)
			e.records[nearestIdx].nearestFor = append(e.records[nearestIdx].nearestFor, i)
		}
	}
}

func (e *tileEngine) minIdx() int {
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
func (e *tileEngine) Next() (step ClusterStep, done bool) {
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

func (e *tileEngine) swap(i, j int) {
	if i == j {
		return
	}
	iIsNearestFor := e.records[i].nearestFor
	nearestI := e.records[i].nearestIdx
	rapI, phiI := tileCoord(e.records[i].pj)
	jIsNearestFor := e.records[j].nearestFor
	nearestJ := e.records[j].nearestIdx
	rapJ, phiJ := tileCoord(e.records[j].pj)

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

	e.tiles[rapI][phiI].swapRemove(i)
	e.tiles[rapI][phiI].insert(j)
	e.tiles[rapJ][phiJ].swapRemove(j)
	e.tiles[rapJ][phiJ].insert(i)

	e.records[i], e.records[j] = e.records[j], e.records[i]
}

func (e *tileEngine) removeNearestLink(pos int) {
	nearestIdx := e.records[pos].nearestIdx
	if nearestIdx == noNearest {
		return
	}
	swapRemoveValue(&e.records[nearestIdx].nearestFor, pos)
}

func (e *tileEngine) remove(idx int) jetRecord {
	last := len(e.records) - 1
	e.swap(idx, last)
	e.removeNearestLink(last)
	rap, phi := tileCoord(e.records[last].pj)
	e.tiles[rap][phi].swapRemove(last)
	removed := e.records[last]
	e.records = e.records[:last]
	e.updateNearest(removed.nearestFor)
	return removed
}

func (e *tileEngine) updateNearest(positions []int) {
	for _, pos := range positions {
		e.updateNearestAt(pos)
	}
}

func (e *tileEngine) updateNearestAt(pos int) {
	rap, phi := tileCoord(e.records[pos].pj)
	nearestDist := math.Inf(1)
	nearestIdx := noNearest
	for _, j := range e.tileNeighbours(rap, phi) {
		if j == pos {
			continue
		}
		gdist := pseudojet.DeltaR2(e.records[pos].pj, e.records[j].pj)
		if gdist < nearestDist {
			nearestDist = gdist
			nearestIdx = j
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

func (e *tileEngine) push(pj pseudojet.PseudoJet) {
	rap, phi := tileCoord(pj)
	rec := jetRecord{pj: pj, beamDist: e.dist.BeamDistance(pj), nearestDist: math.Inf(1), nearestIdx: noNearest}
	newIdx := len(e.records)
	nearestDist := math.Inf(1)
	nearestIdx := noNearest
	for _, n := range e.tileNeighbours(rap, phi) {
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
	e.tiles[rap][phi].insert(newIdx)
	e.records = append(e.records, rec)
}
