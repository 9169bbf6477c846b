// Package splitcore is the thin, logging consensus-facing wrapper
// over the pure shadow/splitengine/rewardband/vault packages. This is
// where side effects (structured logging) are attached; the packages
// it wraps stay pure per spec.md §5.
package splitcore

import (
	"splitchain/core"
	"splitchain/internal/xlog"
	"splitchain/rewardband"
	"splitchain/shadow"
	"splitchain/vault"
)

// Evaluator bundles the shadow-mode config consensus holds for one
// chain and logs every call it makes on behalf of the host.
type Evaluator struct {
	cfg shadow.Config
}

// NewEvaluator builds an Evaluator over the given shadow config.
func NewEvaluator(cfg shadow.Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Evaluate calls shadow.Evaluate and logs the decision's height,
// reason, and resulting cumulative factor.
func (e *Evaluator) Evaluate(in shadow.Input) shadow.Result {
	res := shadow.Evaluate(e.cfg, in)
	xlog.With("splitcore").WithFields(map[string]interface{}{
		"height":            in.Height,
		"decision":          res.Decision.String(),
		"cumulativeFactor":  res.NextEngineState.CumulativeFactor.String(),
		"appliedInConsensus": res.AppliedInConsensus,
	}).Info("split decision evaluated")
	return res
}

// CommitSplit is called by a consensus host that has decided (outside
// this package) to commit a Split decision: it scales every supplied
// reward band by the engine's post-transition cumulative factor and
// every supplied vault balance by the single declared factor, then
// logs the commit. It never calls rewardband.ScaleRewardBandBySplit
// for the same event — only ApplyCumulativeSplitFactor — per the
// double-scaling avoidance in SPEC_FULL.md §9.
func (e *Evaluator) CommitSplit(height int64, factor core.SplitFactor, cumulativeFactor core.Amount, bands []core.RewardBand, vaults []core.VaultState) ([]core.RewardBand, []core.VaultState) {
	scaledBands := make([]core.RewardBand, len(bands))
	for i, b := range bands {
		scaledBands[i] = rewardband.ApplyCumulativeSplitFactor(b, cumulativeFactor)
	}
	scaledVaults := vault.ApplySplitToAll(vaults, height, factor)

	xlog.With("splitcore").WithFields(map[string]interface{}{
		"height":           height,
		"factor":           int(factor),
		"cumulativeFactor": cumulativeFactor.String(),
		"bands":            len(bands),
		"vaults":           len(vaults),
	}).Info("split committed")

	return scaledBands, scaledVaults
}
