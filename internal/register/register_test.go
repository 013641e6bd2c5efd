package register

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bcheck-dev/bcheck/internal/model"
)

const (
	samHillID      = "FF04C3DC-F0FE-472E-8737-0F4034C049F0"
	headsetID      = "1422CBC6-7B0B-4584-B7AB-35167CC5647B"
	velociraptorID = "BB22187E-0BD3-41E8-B3D8-8136BD700865"
)

func localDate(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
}

func txn(t *testing.T, p model.TransactionParams) model.Transaction {
	t.Helper()
	out, err := model.NewTransaction(p)
	require.NoError(t, err)
	return out
}

// sampleRecords mirrors testdata/transactions.bcheck.
func sampleRecords(t *testing.T) []model.Record {
	return []model.Record{
		model.NewRecord(samHillID, txn(t, model.TransactionParams{
			Date:        model.Ptr("2021-7-8"),
			CheckNumber: model.Ptr(uint32(1260)),
			Vendor:      "Sam Hill Credit Union",
			Memo:        "Open Account",
			Amount:      decimal.NewFromInt(500),
			Type:        model.Deposit,
		})),
		model.NewRecord(headsetID, txn(t, model.TransactionParams{
			Date:   model.Ptr("2021-7-8"),
			Vendor: "Fake Street Electronics",
			Memo:   "Head set",
			Amount: decimal.NewFromInt(200),
			Type:   model.Withdrawal,
		})),
		model.NewRecord(velociraptorID, txn(t, model.TransactionParams{
			Date:   model.Ptr("2021-7-8"),
			Vendor: "Velociraptor Entertainment",
			Amount: decimal.NewFromInt(50000),
			Type:   model.Deposit,
		})),
	}
}

// requireSameRecords compares ids and transactions field by field.
func requireSameRecords(t *testing.T, want, got []model.Record) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Equal(t, want[i].ID, got[i].ID, "record %d", i)
		require.True(t, want[i].Transaction.Equal(got[i].Transaction),
			"record %d: want %s, got %s", i, want[i].Transaction, got[i].Transaction)
	}
}
