// Package core defines the shared data model for the split-consensus
// core: amounts, split factors, policy parameters, decisions, engine
// state, events, reward bands, feature flags and vault invariants.
package core

import (
	"fmt"
	"math/big"
)

// Amount is a non-negative arbitrary-precision integer representing a
// count of base units. Display scaling is not part of this package.
type Amount struct {
	v *big.Int
}

// NewAmount builds an Amount from a non-negative int64. Panics on a
// negative input, since a negative Amount is a programmer error, not
// a domain outcome.
func NewAmount(n int64) Amount {
	if n < 0 {
		panic(fmt.Sprintf("core: negative amount %d", n))
	}
	return Amount{v: big.NewInt(n)}
}

// NewAmountFromBigInt wraps a *big.Int as an Amount, rejecting
// negative values.
func NewAmountFromBigInt(n *big.Int) (Amount, error) {
	if n == nil {
		return Amount{}, fmt.Errorf("core: nil amount")
	}
	if n.Sign() < 0 {
		return Amount{}, fmt.Errorf("core: negative amount %s", n.String())
	}
	return Amount{v: new(big.Int).Set(n)}, nil
}

// Big returns the underlying big.Int, never nil. The zero Amount
// reports as zero.
func (a Amount) Big() *big.Int {
	if a.v == nil {
		return big.NewInt(0)
	}
	return a.v
}

// Mul returns a new Amount equal to a * factor.
func (a Amount) Mul(factor int) Amount {
	return Amount{v: new(big.Int).Mul(a.Big(), big.NewInt(int64(factor)))}
}

// Cmp compares two Amounts the way big.Int.Cmp does.
func (a Amount) Cmp(other Amount) int {
	return a.Big().Cmp(other.Big())
}

func (a Amount) String() string {
	return a.Big().String()
}

// MarshalJSON renders an Amount as its decimal string, matching how
// large integers are conventionally carried over JSON without losing
// precision.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.Big().String() + `"`), nil
}

// UnmarshalJSON parses the decimal string produced by MarshalJSON,
// rejecting negative or malformed values.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("core: invalid amount JSON %q", string(data))
	}
	if n.Sign() < 0 {
		return fmt.Errorf("core: negative amount in JSON %q", string(data))
	}
	a.v = n
	return nil
}

// SplitFactor is a tagged value restricted to {2, 3, 5}.
type SplitFactor int

const (
	// SplitFactorInvalid is the zero value, never a valid factor.
	SplitFactorInvalid SplitFactor = 0
	SplitFactor2       SplitFactor = 2
	SplitFactor3       SplitFactor = 3
	SplitFactor5       SplitFactor = 5
)

// NewSplitFactor validates that f is one of {2, 3, 5}.
func NewSplitFactor(f int) (SplitFactor, error) {
	switch SplitFactor(f) {
	case SplitFactor2, SplitFactor3, SplitFactor5:
		return SplitFactor(f), nil
	default:
		return SplitFactorInvalid, fmt.Errorf("core: invalid split factor %d, must be one of {2,3,5}", f)
	}
}

func (f SplitFactor) valid() bool {
	return f == SplitFactor2 || f == SplitFactor3 || f == SplitFactor5
}

// SplitThreshold pairs a factor with the minimum EU-per-THE price at
// which that factor becomes eligible.
type SplitThreshold struct {
	Factor          SplitFactor
	TriggerEuPerThe float64
}

// SplitPolicyParams is an ordered list of thresholds plus the minimum
// block gap required between two declared splits. Thresholds must be
// strictly increasing in both factor and trigger price.
type SplitPolicyParams struct {
	Thresholds             []SplitThreshold
	MinBlocksBetweenSplits int
}

// NewSplitPolicyParams validates monotonicity and returns a defensive
// copy. Construction fails (programmer error, per spec.md §7 stratum
// 2) if thresholds are not strictly increasing in factor and price,
// or if any factor is outside {2,3,5}.
func NewSplitPolicyParams(thresholds []SplitThreshold, minBlocksBetweenSplits int) (SplitPolicyParams, error) {
	if minBlocksBetweenSplits < 0 {
		return SplitPolicyParams{}, fmt.Errorf("core: minBlocksBetweenSplits must be non-negative, got %d", minBlocksBetweenSplits)
	}
	cp := make([]SplitThreshold, len(thresholds))
	copy(cp, thresholds)
	for i, t := range cp {
		if !t.Factor.valid() {
			return SplitPolicyParams{}, fmt.Errorf("core: threshold %d has invalid factor %d", i, t.Factor)
		}
		if i > 0 {
			prev := cp[i-1]
			if t.Factor <= prev.Factor || t.TriggerEuPerThe <= prev.TriggerEuPerThe {
				return SplitPolicyParams{}, fmt.Errorf(
					"core: thresholds must be strictly increasing in factor and trigger price, got [%d]=(%d,%.4f) after [%d]=(%d,%.4f)",
					i, t.Factor, t.TriggerEuPerThe, i-1, prev.Factor, prev.TriggerEuPerThe)
			}
		}
	}
	return SplitPolicyParams{Thresholds: cp, MinBlocksBetweenSplits: minBlocksBetweenSplits}, nil
}

// Reason is the closed set of strings a SplitDecision may carry.
type Reason string

const (
	ReasonInvalidHeight      Reason = "invalid_height"
	ReasonNoPrice            Reason = "no_price"
	ReasonNonPositivePrice   Reason = "non_positive_price"
	ReasonMinIntervalNotMet  Reason = "min_interval_not_met"
	ReasonBelowThreshold     Reason = "below_threshold"
	ReasonThresholdMet       Reason = "threshold_met"
	ReasonShadowDisabled     Reason = "shadow_disabled"
	reasonShadowDisabledAlt  Reason = "shadow-disabled" // historical alias, accepted on input only
)

// NormalizeReason maps the historical "shadow-disabled" alias onto
// the canonical "shadow_disabled" spelling. Any other reason passes
// through unchanged.
func NormalizeReason(r Reason) Reason {
	if r == reasonShadowDisabledAlt {
		return ReasonShadowDisabled
	}
	return r
}

// SplitDecision is a tagged outcome: either NoSplit(reason) or
// Split(factor, threshold_met).
type SplitDecision struct {
	Split  bool
	Factor SplitFactor // populated only when Split is true
	Reason Reason
}

// NoSplit constructs a NoSplit decision with the given reason.
func NoSplit(reason Reason) SplitDecision {
	return SplitDecision{Split: false, Reason: NormalizeReason(reason)}
}

// SplitWith constructs a Split decision for the given factor.
func SplitWith(factor SplitFactor) SplitDecision {
	return SplitDecision{Split: true, Factor: factor, Reason: ReasonThresholdMet}
}

func (d SplitDecision) String() string {
	if d.Split {
		return fmt.Sprintf("Split(factor=%d, reason=%s)", d.Factor, d.Reason)
	}
	return fmt.Sprintf("NoSplit(reason=%s)", d.Reason)
}

// SplitEngineState carries the last declared split height and the
// cumulative factor forward. The zero value is NOT the initial
// state; use InitSplitEngineState (in package splitengine) or
// InitialEngineState below.
type SplitEngineState struct {
	LastSplitHeight *int64 // nil means "no split yet"
	CumulativeFactor Amount
}

// InitialEngineState returns {lastSplitHeight: none, cumulativeFactor: 1}.
func InitialEngineState() SplitEngineState {
	return SplitEngineState{LastSplitHeight: nil, CumulativeFactor: NewAmount(1)}
}

// WithSplit returns a fresh state recording a split of the given
// factor at the given height, never mutating the receiver.
func (s SplitEngineState) WithSplit(height int64, factor SplitFactor) SplitEngineState {
	h := height
	return SplitEngineState{
		LastSplitHeight:  &h,
		CumulativeFactor: s.CumulativeFactor.Mul(int(factor)),
	}
}

// SplitEvent is an immutable record of a declared split.
type SplitEvent struct {
	Height           int64
	Factor           SplitFactor
	CumulativeFactor Amount
	EuPerThePrice    float64
	Reason           Reason
	TimestampMs      *int64
}

// RewardBand is a per-block-range miner/network-incentive reward
// schedule entry.
type RewardBand struct {
	HeightFrom     int64
	HeightTo       int64
	MinerRewardThe Amount
	NipRewardThe   Amount
}

// NewRewardBand validates heightFrom <= heightTo.
func NewRewardBand(heightFrom, heightTo int64, minerRewardThe, nipRewardThe Amount) (RewardBand, error) {
	if heightFrom > heightTo {
		return RewardBand{}, fmt.Errorf("core: heightFrom (%d) must be <= heightTo (%d)", heightFrom, heightTo)
	}
	return RewardBand{
		HeightFrom:     heightFrom,
		HeightTo:       heightTo,
		MinerRewardThe: minerRewardThe,
		NipRewardThe:   nipRewardThe,
	}, nil
}

// FeatureFlags is the typed configuration surface consulted by the
// shadow evaluator. enableSplitShadowMode (alias splitShadow) is the
// only flag this core reads; other flags are preserved but ignored.
type FeatureFlags struct {
	EnableSplitShadowMode bool
	Extra                 map[string]bool
}

// VaultState is the invariant-level balance record affected by a
// declared split. Owner, ID, kind and CreatedAtHeight are preserved
// across a split; only BalanceThe and UpdatedAtHeight change.
type VaultState struct {
	ID              string
	Owner           string
	Kind            string
	BalanceThe      Amount
	CreatedAtHeight int64
	UpdatedAtHeight int64
}
