package vault

import (
	"testing"

	"splitchain/core"
)

func TestApplySplitPreservesIdentityFields(t *testing.T) {
	v := core.VaultState{
		ID:              "vault-1",
		Owner:           "alice",
		Kind:            "redeemable",
		BalanceThe:      core.NewAmount(1000),
		CreatedAtHeight: 50,
		UpdatedAtHeight: 50,
	}

	got := ApplySplit(v, 20000, core.SplitFactor3)

	if got.ID != v.ID || got.Owner != v.Owner || got.Kind != v.Kind || got.CreatedAtHeight != v.CreatedAtHeight {
		t.Errorf("identity fields changed: got %+v", got)
	}
	if got.BalanceThe.Cmp(core.NewAmount(3000)) != 0 {
		t.Errorf("got balance=%s, want 3000", got.BalanceThe)
	}
	if got.UpdatedAtHeight != 20000 {
		t.Errorf("got updatedAtHeight=%d, want 20000", got.UpdatedAtHeight)
	}
}

func TestApplySplitDoesNotMutateInput(t *testing.T) {
	v := core.VaultState{BalanceThe: core.NewAmount(100), UpdatedAtHeight: 1}
	_ = ApplySplit(v, 999, core.SplitFactor5)
	if v.BalanceThe.Cmp(core.NewAmount(100)) != 0 || v.UpdatedAtHeight != 1 {
		t.Error("input vault was mutated")
	}
}

func TestApplySplitToAll(t *testing.T) {
	vaults := []core.VaultState{
		{ID: "a", BalanceThe: core.NewAmount(10)},
		{ID: "b", BalanceThe: core.NewAmount(20)},
	}
	got := ApplySplitToAll(vaults, 100, core.SplitFactor2)
	if got[0].BalanceThe.Cmp(core.NewAmount(20)) != 0 {
		t.Errorf("got[0].BalanceThe=%s, want 20", got[0].BalanceThe)
	}
	if got[1].BalanceThe.Cmp(core.NewAmount(40)) != 0 {
		t.Errorf("got[1].BalanceThe=%s, want 40", got[1].BalanceThe)
	}
}
