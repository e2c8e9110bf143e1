// Package curve implements the two swap primitives a pool's invariant can
// select: the constant-product formula and the Curve-style stable-swap
// invariant with token-multiplier upscaling and depeg re-pegging. Both are
// pure functions of their reserves; neither caches state across calls (I5).
package curve

import (
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/ammtypes"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/fixedpoint"
)

// SwapResult is the common shape both curves return.
type SwapResult struct {
	NewX        uint64
	NewY        uint64
	SrcSwapped  uint64
	DstSwapped  uint64
}

// ConstantProductSwap computes Δy such that X·Y = (X+Δx)·(Y−Δy), given
// input reserve x and output reserve y.
func ConstantProductSwap(dx, x, y uint64) (SwapResult, error) {
	newX, err := fixedpoint.AddU64(x, dx)
	if err != nil {
		return SwapResult{}, err
	}

	// Δy = Y·Δx / (X+Δx), all in wide arithmetic since Y·Δx can exceed 2^64.
	product := fixedpoint.WideFromU64(y).Mul(fixedpoint.WideFromU64(dx))
	quotient, err := product.QuoU64(newX)
	if err != nil {
		return SwapResult{}, err
	}
	if !quotient.FitsU64() {
		return SwapResult{}, ammtypes.ErrArithmetic.Wrap("constant-product output exceeds uint64")
	}
	dy := quotient.U64()

	newY, err := fixedpoint.SubU64(y, dy)
	if err != nil {
		return SwapResult{}, err
	}

	return SwapResult{NewX: newX, NewY: newY, SrcSwapped: dx, DstSwapped: dy}, nil
}
