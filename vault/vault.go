// Package vault implements the vault-balance invariant under a
// declared split: balances multiply by the split factor with no
// rounding, preserving redemption parity since both certificate face
// values and backing balances scale by the same cumulative factor.
package vault

import "splitchain/core"

// ApplySplit returns a new VaultState with BalanceThe multiplied by
// factor and UpdatedAtHeight set to height. Owner, ID, Kind and
// CreatedAtHeight are preserved unchanged. The input is never
// mutated.
func ApplySplit(v core.VaultState, height int64, factor core.SplitFactor) core.VaultState {
	return core.VaultState{
		ID:              v.ID,
		Owner:           v.Owner,
		Kind:            v.Kind,
		BalanceThe:      v.BalanceThe.Mul(int(factor)),
		CreatedAtHeight: v.CreatedAtHeight,
		UpdatedAtHeight: height,
	}
}

// ApplySplitToAll applies ApplySplit to every vault in vaults,
// returning a fresh slice in the same order.
func ApplySplitToAll(vaults []core.VaultState, height int64, factor core.SplitFactor) []core.VaultState {
	out := make([]core.VaultState, len(vaults))
	for i, v := range vaults {
		out[i] = ApplySplit(v, height, factor)
	}
	return out
}
