// Package splitpolicy implements the stateless split decision
// process: given a height, an oracle price, the last declared split
// height, and a set of policy parameters, decide whether a split is
// due and at which factor.
package splitpolicy

import (
	"math"

	"splitchain/core"
)

// DefaultPolicy returns the v0 default policy: thresholds
// [(2, 3.0), (3, 7.0), (5, 15.0)] and minBlocksBetweenSplits = 10080.
func DefaultPolicy() core.SplitPolicyParams {
	p, err := core.NewSplitPolicyParams([]core.SplitThreshold{
		{Factor: core.SplitFactor2, TriggerEuPerThe: 3.0},
		{Factor: core.SplitFactor3, TriggerEuPerThe: 7.0},
		{Factor: core.SplitFactor5, TriggerEuPerThe: 15.0},
	}, 10080)
	if err != nil {
		// The default policy is a fixed, well-formed literal; a
		// failure here is a bug in this package, not a caller error.
		panic("splitpolicy: default policy failed validation: " + err.Error())
	}
	return p
}

// EvaluateSplitDecision is the pure decision function from spec.md
// §4.2. price and lastSplitHeight are both optional: pass a nil
// price pointer for "no oracle reading available", and a nil
// lastSplitHeight for "no split has ever been declared". Checks are
// evaluated in order; the first failing check determines the reason.
func EvaluateSplitDecision(height int64, price *float64, lastSplitHeight *int64, params core.SplitPolicyParams) core.SplitDecision {
	if height < 0 {
		return core.NoSplit(core.ReasonInvalidHeight)
	}
	if price == nil || math.IsInf(*price, 0) || math.IsNaN(*price) {
		return core.NoSplit(core.ReasonNoPrice)
	}
	if *price <= 0 {
		return core.NoSplit(core.ReasonNonPositivePrice)
	}
	if lastSplitHeight != nil && height-*lastSplitHeight < int64(params.MinBlocksBetweenSplits) {
		return core.NoSplit(core.ReasonMinIntervalNotMet)
	}

	best, found := bestEligibleThreshold(*price, params.Thresholds)
	if !found {
		return core.NoSplit(core.ReasonBelowThreshold)
	}
	return core.SplitWith(best.Factor)
}

// bestEligibleThreshold picks the threshold with the largest factor
// among those whose trigger price is at or below price. Because
// thresholds are validated to be strictly monotonic in both factor
// and price, "largest eligible factor" is equivalent to "highest
// eligible trigger" and does not depend on input order.
func bestEligibleThreshold(price float64, thresholds []core.SplitThreshold) (core.SplitThreshold, bool) {
	var best core.SplitThreshold
	found := false
	for _, t := range thresholds {
		if t.TriggerEuPerThe <= price {
			if !found || t.Factor > best.Factor {
				best = t
				found = true
			}
		}
	}
	return best, found
}
