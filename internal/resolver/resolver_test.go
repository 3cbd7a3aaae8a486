package resolver

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseForge_Go/internal/fairness"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

func TestResolve_FixedDraws(t *testing.T) {
	tests := []struct {
		name    string
		chance  float64
		draw    float64 // in [0,1)
		wantWon bool
	}{
		{"draw below chance wins", 50, 0.499, true},
		{"draw equal to chance loses", 50, 0.5, false},
		{"lowest draw wins at min chance", 5, 0, true},
		{"highest draw loses at max chance", 95, 0.9999, false},
		{"draw just under max chance wins", 95, 0.9499, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			r := New(utils.FixedSource(tt.draw, 0))

			// ACT
			out := r.Resolve(context.Background(), tt.chance)

			// ASSERT
			assert.Equal(t, tt.wantWon, out.Won)
			assert.Equal(t, tt.chance, out.Chance)
			assert.InDelta(t, tt.draw*100, out.Draw, 1e-9)
			assert.Equal(t, MinSpins, out.Spins)
			assert.True(t, Verify(out))
		})
	}
}

func TestResolve_FairSourceAttachesProof(t *testing.T) {
	// ARRANGE
	src := fairness.NewSource("server", "client")
	r := New(src)

	// ACT: each attempt consumes two nonces, the result draw and the spins
	first := r.Resolve(context.Background(), 50)
	second := r.Resolve(context.Background(), 50)

	// ASSERT
	require.NotNil(t, first.Proof)
	require.NotNil(t, second.Proof)
	assert.Equal(t, uint64(0), first.Proof.Nonce)
	assert.Equal(t, uint64(2), second.Proof.Nonce)
	assert.Equal(t, fairness.Commitment("server"), first.Proof.Commitment)
	assert.Equal(t, "client", first.Proof.ClientSeed)
	assert.InDelta(t, fairness.Draw("server", "client", 0)*100, first.Draw, 1e-9)
	assert.Equal(t, first.Draw < 50, first.Won)
}

func TestResolve_PlainSourceHasNoProof(t *testing.T) {
	out := New(utils.FixedSource(0.2, 0)).Resolve(context.Background(), 50)

	assert.Nil(t, out.Proof)
}

func TestResolve_ClampsOutOfRangeChance(t *testing.T) {
	ctx := context.Background()

	low := New(utils.FixedSource(0, 0)).Resolve(ctx, -20)
	assert.Equal(t, 0.0, low.Chance)
	assert.False(t, low.Won, "zero chance never wins")
	assert.True(t, Verify(low))

	high := New(utils.FixedSource(0.9999, 0)).Resolve(ctx, 150)
	assert.Equal(t, 100.0, high.Chance)
	assert.True(t, high.Won, "full chance always wins")
	assert.True(t, Verify(high))

	nan := New(utils.FixedSource(0.5, 0)).Resolve(ctx, math.NaN())
	assert.Equal(t, 0.0, nan.Chance)
	assert.False(t, nan.Won)
}

func TestResolve_WinRateConverges(t *testing.T) {
	const samples = 10000
	for _, p := range []float64{5, 17.5, 50, 80, 95} {
		r := New(utils.SeededSource(uint64(p * 1000)))
		wins := 0
		for i := 0; i < samples; i++ {
			if r.Resolve(context.Background(), p).Won {
				wins++
			}
		}
		rate := float64(wins) / samples * 100
		assert.InDelta(t, p, rate, 2.0, "win rate for p=%v", p)
	}
}

func TestResolve_AngleAlwaysMatchesOutcome(t *testing.T) {
	r := New(utils.SeededSource(2024))
	ctx := context.Background()

	for _, p := range []float64{0, 0.5, 5, 33.3, 50, 66.6, 95, 100} {
		successDeg := p / 100 * 360
		for i := 0; i < 5000; i++ {
			out := r.Resolve(ctx, p)
			final := math.Mod(out.TotalRotation, 360)

			require.GreaterOrEqual(t, out.Spins, MinSpins)
			require.LessOrEqual(t, out.Spins, MaxSpins)
			require.GreaterOrEqual(t, out.Angle, 0.0)
			require.Less(t, out.Angle, 360.0)
			if out.Won {
				require.Less(t, final, successDeg, "won at p=%v must stop in success arc", p)
				require.Greater(t, final, 0.0)
			} else {
				require.GreaterOrEqual(t, final, successDeg, "lost at p=%v must stop in failure arc", p)
			}
			require.True(t, Verify(out))
		}
	}
}

func TestAngleFor_StaysOffArcEdges(t *testing.T) {
	// Draw at the very start of the success half
	a := AngleFor(50, 0, true)
	assert.InDelta(t, ArcInset, a, 1e-9)

	// Draw at the very end of the success half
	b := AngleFor(50, math.Nextafter(50, 0), true)
	assert.Less(t, b, 180-ArcInset+1e-9)

	// First losing draw
	c := AngleFor(50, 50, false)
	assert.InDelta(t, 180+ArcInset, c, 1e-9)

	// Narrow arc uses a quarter of its width as inset
	d := AngleFor(0.5, 0, true)
	assert.InDelta(t, 0.5*3.6/4, d, 1e-9)
}

func TestVerify_DetectsContradiction(t *testing.T) {
	out := Outcome{Chance: 50, Won: true, Angle: 270, Spins: 5, TotalRotation: 5*360 + 270}
	assert.False(t, Verify(out))
}
