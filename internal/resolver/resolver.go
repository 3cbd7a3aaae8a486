package resolver

import (
	"context"
	"math"

	"github.com/osse101/CaseForge_Go/internal/fairness"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

// Outcome is a settled upgrade attempt plus the wheel position that shows it
type Outcome struct {
	Chance        float64 `json:"chance"`
	Draw          float64 `json:"draw"`
	Won           bool    `json:"won"`
	Angle         float64 `json:"angle"`
	Spins         int     `json:"spins"`
	TotalRotation float64 `json:"total_rotation"`

	// Proof is set when the draw came from a verifiable source
	Proof *fairness.Proof `json:"proof,omitempty"`
}

// provable is a source that can prove which seed and nonce a draw used
type provable interface {
	Next() (float64, fairness.Proof)
}

// Resolver settles upgrade attempts
type Resolver struct {
	src utils.RandomSource
}

// New creates a Resolver. A nil source falls back to utils.MathSource.
func New(src utils.RandomSource) *Resolver {
	if src == nil {
		src = utils.MathSource()
	}
	return &Resolver{src: src}
}

// Resolve decides the attempt with a single draw in [0,100): won = draw < p.
// The stopping angle is derived from that same draw, so the wheel always
// lands in the arc matching the result.
func (r *Resolver) Resolve(ctx context.Context, p float64) Outcome {
	log := logger.FromContext(ctx)

	chance := utils.Clamp(p, 0, 100)
	if chance != p {
		log.Warn(LogMsgChanceClamped, "requested", p, "clamped", chance)
	}

	unit, proof := r.next()
	draw := unit * 100
	won := draw < chance
	angle := AngleFor(chance, draw, won)
	spins := utils.IntBetween(r.src.Float64(), MinSpins, MaxSpins)

	out := Outcome{
		Chance:        chance,
		Draw:          draw,
		Won:           won,
		Angle:         angle,
		Spins:         spins,
		TotalRotation: float64(spins)*FullCircle + angle,
		Proof:         proof,
	}

	log.Debug(LogMsgResolved, "chance", chance, "won", won, "angle", angle, "spins", spins)
	return out
}

func (r *Resolver) next() (float64, *fairness.Proof) {
	if p, ok := r.src.(provable); ok {
		v, proof := p.Next()
		return v, &proof
	}
	return r.src.Float64(), nil
}

// SuccessArc returns the width in degrees of the success arc for chance p
func SuccessArc(p float64) float64 {
	return utils.Clamp(p, 0, 100) * DegreesPerPercent
}

// AngleFor maps a draw to a stopping angle strictly inside the success arc
// [0, p*3.6) when won and strictly inside the failure arc otherwise. The
// position inside the arc is proportional to where the draw fell inside its
// half of [0,100).
func AngleFor(p, draw float64, won bool) float64 {
	successDeg := SuccessArc(p)
	if won {
		return placeInArc(0, successDeg, draw/p)
	}
	return placeInArc(successDeg, FullCircle, (draw-p)/(100-p))
}

func placeInArc(start, end, frac float64) float64 {
	width := end - start
	inset := math.Min(ArcInset, width/4)
	frac = utils.Clamp(frac, 0, math.Nextafter(1, 0))
	return start + inset + frac*(width-2*inset)
}

// Verify reports whether the outcome's final angle lies in the arc that
// matches its result
func Verify(o Outcome) bool {
	angle := math.Mod(o.TotalRotation, FullCircle)
	inSuccess := angle < SuccessArc(o.Chance)
	return inSuccess == o.Won
}
