package seld

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/seld-metrics/internal/units"
)

// Config holds configuration parameters for an Accumulator.
type Config struct {
	SpatialThresholdDeg float64 // DOA threshold for location-sensitive detection (degrees)
	NumClasses          int     // Number of sound classes evaluated in every block
}

// DefaultConfig returns the configuration used in the WASPAA 2019 paper:
// a 20 degree spatial threshold over 11 sound classes.
func DefaultConfig() Config {
	return Config{
		SpatialThresholdDeg: 20,
		NumClasses:          11,
	}
}

// Direction is a direction of arrival given as azimuth and elevation
// angles in degrees.
type Direction struct {
	Azimuth   float64
	Elevation float64
}

// CartesianTrack holds one class track within a block: the frame indices
// at which the track was active and the DOA unit vector for each frame.
// Frames and Points are positionally aligned; mismatched lengths are not
// validated and panic during accumulation.
type CartesianTrack struct {
	Frames []int
	Points []r3.Vec
}

// PolarTrack is the azimuth/elevation counterpart of CartesianTrack.
type PolarTrack struct {
	Frames     []int
	Directions []Direction
}

// CartesianBlocks maps block index to class index to track. Block indices
// run 0..B-1; a block or class absent from the map reads as empty.
type CartesianBlocks map[int]map[int]CartesianTrack

// PolarBlocks maps block index to class index to track.
type PolarBlocks map[int]map[int]PolarTrack

// Counts is a snapshot of an Accumulator's raw counters. All fields are
// additive across accumulators, so shard counts combine by summation.
type Counts struct {
	TruePositives  int
	FalsePositives int
	TrueNegatives  int
	FalseNegatives int

	// Per-block error decomposition totals
	Substitutions int
	Deletions     int
	Insertions    int

	RefEvents int // (class, block) memberships in the ground truth
	SysEvents int // (class, block) memberships in the predictions

	// Class-sensitive localization totals
	TotalAngularErrorDeg float64 // summed per-class mean angular error
	LocalizedTP          int     // candidate true positives with matched frames
}

// Accumulator ingests ground-truth and predicted annotations block by
// block and maintains the running counters from which Scores is derived.
// One accumulator serves one evaluation run; it is not safe for
// concurrent use. For parallel evaluation shards, run one accumulator
// per shard and combine them with Merge.
type Accumulator struct {
	cfg Config
	c   Counts
}

// NewAccumulator creates an accumulator with all counters at zero.
func NewAccumulator(cfg Config) *Accumulator {
	return &Accumulator{cfg: cfg}
}

// Config returns the accumulator's immutable configuration.
func (a *Accumulator) Config() Config {
	return a.cfg
}

// Counts returns a snapshot of the raw counters.
func (a *Accumulator) Counts() Counts {
	return a.c
}

// Merge folds the counters of another accumulator into this one.
// Counters are additive, so evaluating shards on separate accumulators
// and merging them matches sequential accumulation. The localization
// sentinel is derived in Scores and needs no handling here.
func (a *Accumulator) Merge(other *Accumulator) {
	o := other.c
	a.c.TruePositives += o.TruePositives
	a.c.FalsePositives += o.FalsePositives
	a.c.TrueNegatives += o.TrueNegatives
	a.c.FalseNegatives += o.FalseNegatives
	a.c.Substitutions += o.Substitutions
	a.c.Deletions += o.Deletions
	a.c.Insertions += o.Insertions
	a.c.RefEvents += o.RefEvents
	a.c.SysEvents += o.SysEvents
	a.c.TotalAngularErrorDeg += o.TotalAngularErrorDeg
	a.c.LocalizedTP += o.LocalizedTP
}

// Reset zeroes all counters, keeping the configuration. This is used
// between evaluation folds to reuse one accumulator.
func (a *Accumulator) Reset() {
	a.c = Counts{}
}

// UpdateCartesian accumulates one sequence of blocks with coordinates
// given as 3D DOA unit vectors. The block count is taken from the
// ground-truth map; prediction blocks outside it are ignored and missing
// prediction blocks read as empty.
func (a *Accumulator) UpdateCartesian(pred, gt CartesianBlocks) {
	update(a, cartesianTracks(pred), cartesianTracks(gt), CartesianAngularDistance)
}

// UpdatePolar accumulates one sequence of blocks with coordinates given
// as azimuth/elevation pairs in degrees. Angles are converted to radians
// internally; the contract is otherwise identical to UpdateCartesian.
func (a *Accumulator) UpdatePolar(pred, gt PolarBlocks) {
	update(a, polarTracks(pred), polarTracks(gt), func(p, q radDirection) float64 {
		return SphericalAngularDistance(p.az, p.el, q.az, q.el)
	})
}

// track is the common shape of both track variants once the coordinate
// representation is erased behind a pairwise distance function.
type track[P any] struct {
	frames []int
	coords []P
}

// radDirection is an azimuth/elevation pair in radians.
type radDirection struct {
	az, el float64
}

func cartesianTracks(blocks CartesianBlocks) map[int]map[int]track[r3.Vec] {
	out := make(map[int]map[int]track[r3.Vec], len(blocks))
	for block, classes := range blocks {
		classTracks := make(map[int]track[r3.Vec], len(classes))
		for class, tr := range classes {
			classTracks[class] = track[r3.Vec]{frames: tr.Frames, coords: tr.Points}
		}
		out[block] = classTracks
	}
	return out
}

func polarTracks(blocks PolarBlocks) map[int]map[int]track[radDirection] {
	out := make(map[int]map[int]track[radDirection], len(blocks))
	for block, classes := range blocks {
		classTracks := make(map[int]track[radDirection], len(classes))
		for class, tr := range classes {
			coords := make([]radDirection, len(tr.Directions))
			for i, d := range tr.Directions {
				coords[i] = radDirection{
					az: units.DegToRad(d.Azimuth),
					el: units.DegToRad(d.Elevation),
				}
			}
			classTracks[class] = track[radDirection]{frames: tr.Frames, coords: coords}
		}
		out[block] = classTracks
	}
	return out
}

// update runs the shared block/class iteration over predictions and
// ground truth, measuring matched frames with dist. Exactly one of the
// four detection outcomes fires per class per block.
func update[P any](a *Accumulator, pred, gt map[int]map[int]track[P], dist func(P, P) float64) {
	nBlocks := len(gt)
	for block := 0; block < nBlocks; block++ {
		gtClasses := gt[block]
		predClasses := pred[block]

		var locFN, locFP int
		for class := 0; class < a.cfg.NumClasses; class++ {
			gtTrack, inGT := gtClasses[class]
			predTrack, inPred := predClasses[class]
			if inGT {
				a.c.RefEvents++
			}
			if inPred {
				a.c.SysEvents++
			}

			switch {
			case inGT && inPred:
				// Candidate true positive: average the angular distance over
				// frames where both the reference and the prediction are
				// active. Assumes a single track per class per block; with
				// multiple tracks the frame intersection would have to become
				// an optimal assignment (Hungarian) step per class.
				var sum float64
				var matched int
				for gi, frame := range gtTrack.frames {
					pi := slices.Index(predTrack.frames, frame)
					if pi < 0 {
						continue
					}
					sum += dist(gtTrack.coords[gi], predTrack.coords[pi])
					matched++
				}
				if matched == 0 {
					locFN++
					a.c.FalseNegatives++
					break
				}
				mean := sum / float64(matched)
				a.c.TotalAngularErrorDeg += mean
				a.c.LocalizedTP++
				if mean <= a.cfg.SpatialThresholdDeg {
					a.c.TruePositives++
				} else {
					locFN++
					a.c.FalseNegatives++
				}
			case inGT:
				locFN++
				a.c.FalseNegatives++
			case inPred:
				locFP++
				a.c.FalsePositives++
			default:
				a.c.TrueNegatives++
			}
		}

		// Matched false positive/false negative pairs count once as
		// substitutions; the excess is pure deletions or insertions.
		a.c.Substitutions += min(locFP, locFN)
		a.c.Deletions += max(0, locFN-locFP)
		a.c.Insertions += max(0, locFP-locFN)
	}
}
