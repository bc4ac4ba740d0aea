package rules

import (
	"crypto/sha512"
	"encoding/binary"
	"math"
	"math/bits"
)

// Engine provides the pure yield, reward and genetic formulas (no I/O).
type Engine struct {
	rules Ruleset
}

// NewEngine creates a formula engine for the given ruleset
func NewEngine(r Ruleset) *Engine {
	return &Engine{rules: r}
}

// Rules returns the ruleset the engine was built with
func (e *Engine) Rules() Ruleset {
	return e.rules
}

// Weight computes the biomass weight of a harvest.
//
//	bonusPct = max(0, water-threshold)*waterPct + nutrients*nutrientPct
//	weight   = clamp(base + base*bonusPct/100, min, max)
//
// The percentages are summed before the single truncating division. Any
// overflow saturates to the maximum weight.
func (e *Engine) Weight(waterCount, nutrientCount uint64) uint64 {
	r := e.rules

	var waterPct uint64
	if waterCount > r.WaterBonusThreshold {
		var ok bool
		if waterPct, ok = mulChecked(waterCount-r.WaterBonusThreshold, r.WaterBonusPercent); !ok {
			return r.MaxWeight
		}
	}
	nutrientPct, ok := mulChecked(nutrientCount, r.NutrientBonusPercent)
	if !ok {
		return r.MaxWeight
	}
	bonusPct, ok := addChecked(waterPct, nutrientPct)
	if !ok {
		return r.MaxWeight
	}

	bonus, ok := percentOf(r.BaseWeight, bonusPct)
	if !ok {
		return r.MaxWeight
	}
	w, ok := addChecked(r.BaseWeight, bonus)
	if !ok {
		return r.MaxWeight
	}
	return clamp(w, r.MinWeight, r.MaxWeight)
}

// RarityReward returns the TERP bonus earned by a stored terpene profile.
// The first byte b of the profile digest must be below the rarity
// threshold; the reward then scales linearly from min (b at threshold) to
// max (b == 0).
func (e *Engine) RarityReward(profile []byte) uint64 {
	if len(profile) == 0 {
		return 0
	}
	r := e.rules
	digest := ProfileHash(profile)
	b := uint64(digest[0])
	if b >= r.RarityThreshold {
		return 0
	}
	return r.MinTerpReward + (r.RarityThreshold-b)*(r.MaxTerpReward-r.MinTerpReward)/r.RarityThreshold
}

// GeneticHash derives a deterministic profile from public inputs that are
// only fixed once the action is accepted:
// digest(address || tag || itob(timestamp) || itob(round)).
func GeneticHash(address, tag string, timestamp, round uint64) []byte {
	buf := make([]byte, 0, len(address)+len(tag)+16)
	buf = append(buf, address...)
	buf = append(buf, tag...)
	buf = binary.BigEndian.AppendUint64(buf, timestamp)
	buf = binary.BigEndian.AppendUint64(buf, round)
	sum := sha512.Sum512_256(buf)
	return sum[:]
}

// ProfileHash digests a stored profile for rarity evaluation
func ProfileHash(profile []byte) [32]byte {
	return sha512.Sum512_256(profile)
}

// percentOf returns base*pct/100, reporting false on overflow
func percentOf(base, pct uint64) (uint64, bool) {
	v, ok := mulChecked(base, pct)
	if !ok {
		return 0, false
	}
	return v / percentDenominator, true
}

func mulChecked(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

func addChecked(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}

func clamp(v, lo, hi uint64) uint64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
