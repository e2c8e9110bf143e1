package curve

import (
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/ammtypes"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/fixedpoint"
)

// n is the fixed pool arity the invariant below is specialized for; the
// pipeline only ever deals with two-sided pools.
const n = 2

// StableSwapScaled upscales both reserves to a common unit, runs the
// invariant-D solve and the y-solve for the new input reserve, then
// downscales the destination amount back to native precision. Fees are not
// applied here: the invariant layer is always called at zero fee, and fee
// arithmetic stays in the caller's native scale.
func StableSwapScaled(params ammtypes.StableCurveParams, dx, reserveIn, reserveOut uint64, inIsA bool, maxIterations int) (SwapResult, error) {
	upscaledDx, err := upscale(params, dx, inIsA)
	if err != nil {
		return SwapResult{}, err
	}
	upscaledReserveIn, err := upscale(params, reserveIn, inIsA)
	if err != nil {
		return SwapResult{}, err
	}
	upscaledReserveOut, err := upscale(params, reserveOut, !inIsA)
	if err != nil {
		return SwapResult{}, err
	}

	d, err := computeD(params.Amp, upscaledReserveIn, upscaledReserveOut, maxIterations)
	if err != nil {
		return SwapResult{}, err
	}

	newUpscaledReserveIn, err := fixedpoint.AddU64(upscaledReserveIn, upscaledDx)
	if err != nil {
		return SwapResult{}, err
	}

	newUpscaledReserveOut, err := computeY(params.Amp, d, newUpscaledReserveIn, maxIterations)
	if err != nil {
		return SwapResult{}, err
	}
	if newUpscaledReserveOut > upscaledReserveOut {
		return SwapResult{}, ammtypes.ErrArithmetic.Wrap("stable-swap solve increased the output reserve")
	}
	upscaledDy, err := fixedpoint.SubU64(upscaledReserveOut, newUpscaledReserveOut)
	if err != nil {
		return SwapResult{}, err
	}

	dy, err := downscale(params, upscaledDy, !inIsA)
	if err != nil {
		return SwapResult{}, err
	}

	newReserveIn, err := fixedpoint.AddU64(reserveIn, dx)
	if err != nil {
		return SwapResult{}, err
	}
	newReserveOut, err := fixedpoint.SubU64(reserveOut, dy)
	if err != nil {
		return SwapResult{}, err
	}

	return SwapResult{NewX: newReserveIn, NewY: newReserveOut, SrcSwapped: dx, DstSwapped: dy}, nil
}

// upscale lifts a native-precision amount to the invariant's common unit.
// Side A scales by a_mul then, if depegged, by ammtypes.DepegPricePrecision
// (10^6); side B scales by b_mul then by the cached base virtual price.
// This asymmetry encodes the convention that token A is the base asset and
// token B the yield-bearing derivative.
func upscale(params ammtypes.StableCurveParams, amount uint64, sideA bool) (uint64, error) {
	mul := params.TokenMultiplier.BMul
	if sideA {
		mul = params.TokenMultiplier.AMul
	}
	scaled, err := fixedpoint.MulU64(amount, mul)
	if err != nil {
		return 0, err
	}
	if params.Depeg.Kind == ammtypes.DepegNone {
		return scaled, nil
	}
	if sideA {
		return fixedpoint.MulU64(scaled, ammtypes.DepegPricePrecision)
	}
	return fixedpoint.MulU64(scaled, params.Depeg.BaseVirtualPrice)
}

// downscale reverses upscale, flooring each division.
func downscale(params ammtypes.StableCurveParams, amount uint64, sideA bool) (uint64, error) {
	scaled := amount
	if params.Depeg.Kind != ammtypes.DepegNone {
		var err error
		if sideA {
			scaled, err = fixedpoint.DivU64(scaled, ammtypes.DepegPricePrecision)
		} else {
			scaled, err = fixedpoint.DivU64(scaled, params.Depeg.BaseVirtualPrice)
		}
		if err != nil {
			return 0, err
		}
	}
	mul := params.TokenMultiplier.BMul
	if sideA {
		mul = params.TokenMultiplier.AMul
	}
	return fixedpoint.DivU64(scaled, mul)
}

// computeD solves the invariant A·n^n·Σxᵢ + D = A·n^n·D + D^(n+1)/(n^n·Πxᵢ)
// for D via Newton iteration starting from D = Σxᵢ, with Ann = A·n^n.
func computeD(amp, x0, x1 uint64, maxIterations int) (fixedpoint.Wide, error) {
	sum, err := fixedpoint.AddU64(x0, x1)
	if err != nil {
		return fixedpoint.Wide{}, err
	}
	if sum == 0 {
		return fixedpoint.WideZero(), nil
	}

	ann, err := fixedpoint.MulU64(amp, n*n)
	if err != nil {
		return fixedpoint.Wide{}, err
	}

	d := fixedpoint.WideFromU64(sum)
	annWide := fixedpoint.WideFromU64(ann)
	sumWide := fixedpoint.WideFromU64(sum)
	// nnx0x1 = n²·x0·x1; D_P = D³/nnx0x1 = D³/(x0·x1·n²) per the invariant.
	nnx0x1 := fixedpoint.WideFromU64(x0).Mul(fixedpoint.WideFromU64(x1)).Mul(fixedpoint.WideFromU64(n * n))

	for i := 0; i < maxIterations; i++ {
		dCubed := d.Mul(d).Mul(d)
		dP, err := dCubed.QuoWide(nnx0x1)
		if err != nil {
			return fixedpoint.Wide{}, err
		}

		numerator := annWide.Mul(sumWide)
		dPn := dP.Mul(fixedpoint.WideFromU64(n))
		numerator, err = numerator.Add(dPn)
		if err != nil {
			return fixedpoint.Wide{}, err
		}
		numerator = numerator.Mul(d)

		annMinus1, err := annWide.Sub(fixedpoint.WideFromU64(1))
		if err != nil {
			return fixedpoint.Wide{}, err
		}
		denomLeft := annMinus1.Mul(d)
		denomRight := dP.Mul(fixedpoint.WideFromU64(n + 1))
		denominator, err := denomLeft.Add(denomRight)
		if err != nil {
			return fixedpoint.Wide{}, err
		}
		if denominator.Cmp(fixedpoint.WideZero()) == 0 {
			return fixedpoint.Wide{}, ammtypes.ErrInvariantNonConverging.Wrap("zero denominator in D solve")
		}

		dNext, err := numerator.QuoWide(denominator)
		if err != nil {
			return fixedpoint.Wide{}, err
		}

		if wideAbsDiffLE1(dNext, d) {
			return dNext, nil
		}
		d = dNext
	}

	return fixedpoint.Wide{}, ammtypes.ErrInvariantNonConverging.Wrapf("D failed to converge within %d iterations", maxIterations)
}

// computeY solves for the new output reserve given the new input reserve
// and the invariant D, holding Ann = A·n^n fixed across the call.
func computeY(amp uint64, d fixedpoint.Wide, newReserveIn uint64, maxIterations int) (uint64, error) {
	ann, err := fixedpoint.MulU64(amp, n*n)
	if err != nil {
		return 0, err
	}

	// c = D^(n+1) / (n^n · x'₀ · Ann)
	dCubed := d.Mul(d).Mul(d)
	c, err := dCubed.QuoU64(n * n)
	if err != nil {
		return 0, err
	}
	c, err = c.QuoU64(newReserveIn)
	if err != nil {
		return 0, err
	}
	c, err = c.QuoU64(ann)
	if err != nil {
		return 0, err
	}

	// b = x'₀ + D/Ann
	dOverAnn, err := d.QuoU64(ann)
	if err != nil {
		return 0, err
	}
	b, err := dOverAnn.Add(fixedpoint.WideFromU64(newReserveIn))
	if err != nil {
		return 0, err
	}

	y := d
	for i := 0; i < maxIterations; i++ {
		ySquared := y.Mul(y)
		numerator, err := ySquared.Add(c)
		if err != nil {
			return 0, err
		}

		twoY := y.Mul(fixedpoint.WideFromU64(2))
		denominator, err := twoY.Add(b)
		if err != nil {
			return 0, err
		}
		denominator, err = denominator.Sub(d)
		if err != nil {
			return 0, ammtypes.ErrInvariantNonConverging.Wrap("negative denominator in y solve")
		}
		if denominator.Cmp(fixedpoint.WideZero()) == 0 {
			return 0, ammtypes.ErrInvariantNonConverging.Wrap("zero denominator in y solve")
		}

		yNext, err := numerator.QuoWide(denominator)
		if err != nil {
			return 0, err
		}

		if wideAbsDiffLE1(yNext, y) {
			if !yNext.FitsU64() {
				return 0, ammtypes.ErrArithmetic.Wrap("stable-swap y solve exceeds uint64")
			}
			return yNext.U64(), nil
		}
		y = yNext
	}

	return 0, ammtypes.ErrInvariantNonConverging.Wrapf("y failed to converge within %d iterations", maxIterations)
}

func wideAbsDiffLE1(a, b fixedpoint.Wide) bool {
	diff := a.Cmp(b)
	if diff == 0 {
		return true
	}
	if diff > 0 {
		sub, err := a.Sub(b)
		return err == nil && sub.Cmp(fixedpoint.WideFromU64(1)) <= 0
	}
	sub, err := b.Sub(a)
	return err == nil && sub.Cmp(fixedpoint.WideFromU64(1)) <= 0
}

