// Package rewardband transforms emissions reward bands by a split
// factor, preserving EU-denominated value across a declared split.
package rewardband

import (
	"math/big"

	"splitchain/core"
)

// ScaleRewardBandBySplit returns a band with the same heights and
// miner/network-incentive rewards multiplied by factor.
func ScaleRewardBandBySplit(band core.RewardBand, factor core.SplitFactor) core.RewardBand {
	return core.RewardBand{
		HeightFrom:     band.HeightFrom,
		HeightTo:       band.HeightTo,
		MinerRewardThe: band.MinerRewardThe.Mul(int(factor)),
		NipRewardThe:   band.NipRewardThe.Mul(int(factor)),
	}
}

// ApplyCumulativeSplitFactor behaves identically to
// ScaleRewardBandBySplit but multiplies by an already-accumulated
// factor (core.Amount) rather than a single SplitFactor. Callers must
// use exactly one of these two functions per committed split event —
// composing both for the same event double-scales the band (see
// SPEC_FULL.md §9 open question resolution).
func ApplyCumulativeSplitFactor(band core.RewardBand, cumulative core.Amount) core.RewardBand {
	return core.RewardBand{
		HeightFrom:     band.HeightFrom,
		HeightTo:       band.HeightTo,
		MinerRewardThe: mulAmount(band.MinerRewardThe, cumulative),
		NipRewardThe:   mulAmount(band.NipRewardThe, cumulative),
	}
}

func mulAmount(a, b core.Amount) core.Amount {
	product := new(big.Int).Mul(a.Big(), b.Big())
	out, err := core.NewAmountFromBigInt(product)
	if err != nil {
		// Both operands are non-negative Amounts; their product can
		// never be negative.
		panic("rewardband: unexpected negative product: " + err.Error())
	}
	return out
}
