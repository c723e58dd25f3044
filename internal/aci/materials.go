package aci

import "math"

// Strength design constants, kgf/cm² units.

const (
	// Beta1 factors for the equivalent rectangular stress block
	Beta1Max = 0.85 // for f'c <= 280 kgf/cm²
	Beta1Min = 0.65 // minimum value

	// f'c at which β1 starts to decrease, and the step per 0.05 reduction
	Beta1Threshold = 280.0
	Beta1Step      = 70.0

	// Strain limits
	EpsilonCU = 0.003 // Ultimate concrete strain

	// Strength reduction factors
	PhiFlexure     = 0.90 // Tension-controlled sections
	PhiCompression = 0.65 // Compression-controlled (tied)

	// Modulus of elasticity for steel
	Es = 2.0e6 // kgf/cm²

	// Balanced-condition numerator: Es·εcu = 6000 kgf/cm²
	EsEpsilonCU = 6000.0

	// Fraction of ρb allowed as ρmax
	RhoMaxFactor = 0.75
)

// Default materials used when a document omits them.
const (
	DefaultFc = 210.0
	DefaultFy = 4200.0
)

// Beta1 calculates the factor for the equivalent rectangular stress block:
// 0.85 up to f'c = 280, then 0.05 less per 70 kgf/cm², never below 0.65.
func Beta1(fc float64) float64 {
	if fc <= Beta1Threshold {
		return Beta1Max
	}
	beta1 := Beta1Max - 0.05*(fc-Beta1Threshold)/Beta1Step
	return math.Max(beta1, Beta1Min)
}

// Phi calculates the strength reduction factor based on the tensile strain
func Phi(epsilonT float64, fy float64) float64 {
	epsilonTY := fy / Es

	if epsilonT >= epsilonTY+0.003 {
		// Tension-controlled
		return PhiFlexure
	} else if epsilonT <= epsilonTY {
		// Compression-controlled
		return PhiCompression
	}
	// Transition zone
	return PhiCompression + (PhiFlexure-PhiCompression)*(epsilonT-epsilonTY)/0.003
}

// RhoMin calculates the minimum reinforcement ratio, 14/fy
func RhoMin(fy float64) float64 {
	if fy <= 0 {
		return 0
	}
	return 14 / fy
}

// RhoBalanced calculates the balanced reinforcement ratio
// ρb = 0.85·β1·(f'c/fy)·(6000/(6000+fy))
func RhoBalanced(fc, fy float64) float64 {
	if fy <= 0 {
		return 0
	}
	return 0.85 * Beta1(fc) * (fc / fy) * (EsEpsilonCU / (EsEpsilonCU + fy))
}

// RhoMax calculates the maximum reinforcement ratio, 0.75·ρb
func RhoMax(fc, fy float64) float64 {
	return RhoMaxFactor * RhoBalanced(fc, fy)
}

// Limits bundles the ratio limits for one pair of materials.
type Limits struct {
	Beta1       float64
	RhoMin      float64
	RhoBalanced float64
	RhoMax      float64
}

// LimitsFor computes every ratio limit at once.
func LimitsFor(fc, fy float64) Limits {
	return Limits{
		Beta1:       Beta1(fc),
		RhoMin:      RhoMin(fy),
		RhoBalanced: RhoBalanced(fc, fy),
		RhoMax:      RhoMax(fc, fy),
	}
}
