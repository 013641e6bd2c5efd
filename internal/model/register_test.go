package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRegister(t *testing.T) Register {
	return Register{
		NewRecord("FF04C3DC-F0FE-472E-8737-0F4034C049F0", openingDeposit(t, nil, false)),
		NewRecord("1422CBC6-7B0B-4584-B7AB-35167CC5647B", headsetWithdrawal(t)),
		NewRecord("BB22187E-0BD3-41E8-B3D8-8136BD700865", velociraptorDeposit(t)),
	}
}

func TestRegisterBalances(t *testing.T) {
	g := sampleRegister(t)

	got := g.Balances()
	require.Len(t, got, 3)
	assert.Equal(t, "500", got[0].String())
	assert.Equal(t, "300", got[1].String())
	assert.Equal(t, "50300", got[2].String())
	assert.Equal(t, "50300", g.Balance().String())
}

func TestRegisterLinkMatchesBalances(t *testing.T) {
	g := sampleRegister(t)
	g.Link()

	assert.Nil(t, g[0].Previous)
	assert.Same(t, &g[0], g[1].Previous)
	assert.Same(t, &g[1], g[2].Previous)

	balances := g.Balances()
	for i := range g {
		assert.True(t, balances[i].Equal(g[i].Balance()), "record %d", i)
	}

	g.Unlink()
	assert.Equal(t, "50000", g[2].Balance().String())
}

func TestRegisterEmpty(t *testing.T) {
	var g Register
	assert.Empty(t, g.Balances())
	assert.True(t, g.Balance().IsZero())
	g.Link()
	assert.Equal(t, -1, g.Index("x"))
}

func TestRegisterSortByDate(t *testing.T) {
	early := NewRecord("z", mustTxn(t, TransactionParams{Date: Ptr("2021-01-02"), Vendor: "a", Amount: decimal.NewFromInt(1), Type: Deposit}))
	late := NewRecord("a", mustTxn(t, TransactionParams{Date: Ptr("2021-03-04"), Vendor: "b", Amount: decimal.NewFromInt(1)}))
	mid := NewRecord("m", mustTxn(t, TransactionParams{Date: Ptr("2021-02-03"), Vendor: "c", Amount: decimal.NewFromInt(1)}))

	g := Register{late, early, mid}
	g.Link()
	g.SortByDate()

	assert.Equal(t, []string{"z", "m", "a"}, []string{g[0].ID, g[1].ID, g[2].ID})
	for _, r := range g {
		assert.Nil(t, r.Previous, "sorting clears links")
	}

	g.Sort()
	assert.Equal(t, []string{"a", "m", "z"}, []string{g[0].ID, g[1].ID, g[2].ID})
	assert.Equal(t, 1, g.Index("m"))
}
