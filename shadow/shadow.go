// Package shadow implements the feature-gated, non-mutating wrapper
// consensus calls to observe what the split engine would do without
// committing any state change. This is the only place block
// processing is expected to invoke the engine from.
package shadow

import (
	"splitchain/core"
	"splitchain/splitengine"
)

// Config bundles the feature flags and policy consulted on each call.
// A nil Policy uses splitpolicy.DefaultPolicy() via splitengine.
type Config struct {
	Flags  core.FeatureFlags
	Policy *core.SplitPolicyParams
}

// Input bundles the per-call inputs.
type Input struct {
	Height          int64
	EuPerThePrice   *float64
	PrevEngineState *core.SplitEngineState // nil means "use the initial state"
}

// Result is always reported with AppliedInConsensus = false: the
// shadow layer never mutates balances or consensus state, it only
// reports what the engine would do.
type Result struct {
	NextEngineState    core.SplitEngineState
	Decision           core.SplitDecision
	AppliedInConsensus bool
}

// Evaluate runs the shadow-mode contract: when cfg.Flags disables
// shadow mode, it passes the previous state through unchanged with
// reason shadow_disabled; otherwise it delegates to
// splitengine.StepSplitEngine.
func Evaluate(cfg Config, in Input) Result {
	prev := splitengine.InitSplitEngineState()
	if in.PrevEngineState != nil {
		prev = *in.PrevEngineState
	}

	if !cfg.Flags.EnableSplitShadowMode {
		return Result{
			NextEngineState:    prev,
			Decision:           core.NoSplit(core.ReasonShadowDisabled),
			AppliedInConsensus: false,
		}
	}

	out := splitengine.StepSplitEngine(prev, splitengine.StepInput{
		Height:        in.Height,
		EuPerThePrice: in.EuPerThePrice,
		Policy:        cfg.Policy,
	})
	return Result{
		NextEngineState:    out.State,
		Decision:           out.Decision,
		AppliedInConsensus: false,
	}
}
