// Package splitengine carries the split engine's state transition:
// it consults splitpolicy for a decision and, on a declared split,
// folds the factor into the carried-forward cumulative factor.
package splitengine

import (
	"splitchain/core"
	"splitchain/splitpolicy"
)

// StepInput bundles the per-call inputs to StepSplitEngine. Policy is
// optional; a nil Policy uses splitpolicy.DefaultPolicy().
type StepInput struct {
	Height        int64
	EuPerThePrice *float64
	Policy        *core.SplitPolicyParams
}

// StepOutput is the result of one engine transition.
type StepOutput struct {
	State    core.SplitEngineState
	Decision core.SplitDecision
}

// InitSplitEngineState returns {lastSplitHeight: none, cumulativeFactor: 1}.
func InitSplitEngineState() core.SplitEngineState {
	return core.InitialEngineState()
}

// StepSplitEngine evaluates the policy against prevState and returns
// the next state alongside the decision. It never mutates prevState:
// on NoSplit the returned state is prevState itself; on Split it is a
// freshly constructed state with the factor folded in.
func StepSplitEngine(prevState core.SplitEngineState, in StepInput) StepOutput {
	policy := splitpolicy.DefaultPolicy()
	if in.Policy != nil {
		policy = *in.Policy
	}

	decision := splitpolicy.EvaluateSplitDecision(in.Height, in.EuPerThePrice, prevState.LastSplitHeight, policy)
	if !decision.Split {
		return StepOutput{State: prevState, Decision: decision}
	}
	return StepOutput{State: prevState.WithSplit(in.Height, decision.Factor), Decision: decision}
}
