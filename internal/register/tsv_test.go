package register

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcheck-dev/bcheck/internal/id"
	"github.com/bcheck-dev/bcheck/internal/model"
)

func TestEncodeTSV(t *testing.T) {
	got := EncodeTSV(sampleRecords(t))
	want := samHillID + "\t2021-07-08\t1260\tN\t\tSam Hill Credit Union\tOpen Account\t500.00\t\r\n" +
		headsetID + "\t2021-07-08\t\tN\t\tFake Street Electronics\tHead set\t\t200.00\r\n" +
		velociraptorID + "\t2021-07-08\t\tN\t\tVelociraptor Entertainment\t\t50000.00\t\r\n"
	assert.Equal(t, want, got)
}

func TestEncodeTSV_Empty(t *testing.T) {
	assert.Empty(t, EncodeTSV(nil))
	assert.Empty(t, DecodeTSV(""))
}

func TestDecodeTSV_Testdata(t *testing.T) {
	data, err := os.ReadFile("../../testdata/transactions.tsv")
	require.NoError(t, err)

	records := DecodeTSV(string(data))
	require.Len(t, records, 3, "trailing line ending does not produce a record")

	assert.Equal(t, samHillID, records[0].ID)
	assert.True(t, records[0].Transaction.IsReconciled)
	require.NotNil(t, records[0].Transaction.Category)
	assert.Equal(t, "Opening Balance", *records[0].Transaction.Category)
	assert.Equal(t, model.Withdrawal, records[1].Transaction.Type)
	assert.Equal(t, "50300", model.Register(records).Balance().String())

	assert.Equal(t, string(data), EncodeTSV(records), "testdata is in canonical form")
}

func TestDecodeTSV_UnixLineEndings(t *testing.T) {
	text := strings.ReplaceAll(EncodeTSV(sampleRecords(t)), "\r\n", "\n")
	requireSameRecords(t, sampleRecords(t), DecodeTSV(text))
}

func TestTSVIdempotent(t *testing.T) {
	first := EncodeTSV(sampleRecords(t))
	second := EncodeTSV(DecodeTSV(first))
	third := EncodeTSV(DecodeTSV(second))
	assert.Equal(t, first, second)
	assert.Equal(t, second, third)
}

func TestDecodeTSV_MalformedRowsDegrade(t *testing.T) {
	text := "abc\tnot-a-date\tx\tY\t\tVendor\tMemo\t\tmany\r\n" +
		"\r\n" +
		"\t2021-07-08\t\tN\t\tShort\r\n" +
		"lonely-id\r\n"

	records := DecodeTSV(text)
	require.Len(t, records, 3)

	assert.Equal(t, "abc", records[0].ID)
	assert.Nil(t, records[0].Transaction.CheckNumber)
	assert.True(t, records[0].Transaction.IsReconciled)
	assert.True(t, records[0].Transaction.Amount.IsZero())

	assert.True(t, id.Valid(records[1].ID), "empty id column gets a fresh id")
	assert.Equal(t, "Short", records[1].Transaction.Vendor)
	assert.True(t, records[1].Transaction.Date.Equal(localDate(2021, 7, 8)))

	assert.Equal(t, "lonely-id", records[2].ID)
}

func TestDecodeTSVStrict(t *testing.T) {
	records, err := DecodeTSVStrict(EncodeTSV(sampleRecords(t)))
	require.NoError(t, err)
	requireSameRecords(t, sampleRecords(t), records)

	text := EncodeTSV(sampleRecords(t)) + "bad\t2021-07-08\t\tN\t\tVendor\t\t\tten\r\n"
	_, err = DecodeTSVStrict(text)
	require.Error(t, err)

	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Contains(t, err.Error(), "line 4")
}
