package contract

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

const contractH16 = `Date,Open,High,Low,Close,TotalVolume
2016-01-03 18:59:00,359.00,359.25,358.75,359.00,5
2016-01-03 19:00:00,359.25,359.50,359.00,359.25,10
2016-01-03 23:59:00,359.50,359.75,359.25,359.50,25
2016-01-04 00:00:00,359.75,360.00,359.50,359.75,40
2016-01-04 13:20:00,360.00,360.25,359.75,360.00,70
2016-01-04 13:21:00,360.25,360.50,360.00,360.25,71
2016-01-04 19:00:00,360.50,360.75,360.25,360.50,80
2016-01-05 08:30:00,360.75,361.00,360.50,360.75,95
`

const contractK16 = `Date,Open,High,Low,Close,TotalVolume
2016-01-05 19:00:00,370.00,370.25,369.75,370.00,3
2016-01-06 09:00,370.25,370.50,370.00,370.25,9
`

func TestReadContract(t *testing.T) {
	p := writeFile(t, t.TempDir(), "ZCH16.csv", contractH16)
	bars, err := ReadContract(p)
	require.NoError(t, err)
	require.Len(t, bars, 8)

	assert.True(t, math.IsNaN(bars[0].Volume))
	assert.Equal(t, 5.0, bars[1].Volume)
	assert.Equal(t, 15.0, bars[2].Volume)
	assert.Equal(t, 359.25, bars[1].Open)
	assert.Equal(t, time.Date(2016, 1, 3, 19, 0, 0, 0, time.UTC), bars[1].Time())
}

func TestReadContractMissingColumn(t *testing.T) {
	p := writeFile(t, t.TempDir(), "bad.csv", "Date,Open,High,Low,Close\n2016-01-04 00:00:00,1,1,1,1\n")
	_, err := ReadContract(p)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestReadContractEmptyFieldIsNaN(t *testing.T) {
	p := writeFile(t, t.TempDir(), "gap.csv", "Date,Open,High,Low,Close,TotalVolume\n2016-01-04 00:00:00,1,,1,1,4\n")
	bars, err := ReadContract(p)
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.True(t, math.IsNaN(bars[0].High))
}

func TestSessionDay(t *testing.T) {
	p := writeFile(t, t.TempDir(), "ZCH16.csv", contractH16)
	bars, err := ReadContract(p)
	require.NoError(t, err)

	day := SessionDay(bars, time.Date(2016, 1, 4, 0, 0, 0, 0, time.UTC))
	require.Len(t, day, 4)
	assert.Equal(t, time.Date(2016, 1, 3, 19, 0, 0, 0, time.UTC), day[0].Time())
	assert.Equal(t, time.Date(2016, 1, 4, 13, 20, 0, 0, time.UTC), day[3].Time())
	assert.Equal(t, 10.0, day[0].Volume, "first bar volume is its total volume")
	assert.Equal(t, 30.0, day[3].Volume)

	// the source table is not modified
	assert.Equal(t, 5.0, bars[1].Volume)

	assert.Nil(t, SessionDay(bars, time.Date(2016, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestReadFrontAndGroup(t *testing.T) {
	p := writeFile(t, t.TempDir(), "front.csv", "2016-01-04,H16\n2016-01-05,H16\n2016-01-05,H16\n2016-01-06,K16\n")
	entries, err := ReadFront(p)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	order, dates := GroupByContract(entries)
	assert.Equal(t, []string{"H16", "K16"}, order)
	assert.Len(t, dates["H16"], 2)
	assert.Len(t, dates["K16"], 1)
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ZCH16.csv", contractH16)
	writeFile(t, dir, "ZCK16.csv", contractK16)
	front := writeFile(t, dir, "front.csv", "2016-01-04,H16\n2016-01-05,H16\n2016-01-06,K16\n")

	l := &Loader{FrontPath: front, ContractsDir: dir, Prefix: "ZC"}
	bars, err := l.LoadAll(context.Background())
	require.NoError(t, err)
	// 4 bars for 01-04, 2 for 01-05, 2 for 01-06
	require.Len(t, bars, 8)
	for i := 1; i < len(bars); i++ {
		assert.Less(t, bars[i-1].Timestamp, bars[i].Timestamp)
	}
	assert.Equal(t, 80.0, bars[4].Volume)
	assert.Equal(t, 3.0, bars[6].Volume)
	assert.Equal(t, 6.0, bars[7].Volume)
}

func TestLoaderMissingContract(t *testing.T) {
	dir := t.TempDir()
	front := writeFile(t, dir, "front.csv", "2016-01-04,N16\n")
	l := &Loader{FrontPath: front, ContractsDir: dir, Prefix: "ZC"}
	_, err := l.LoadAll(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "N16"))
}

func TestLoaderCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ZCH16.csv", contractH16)
	front := writeFile(t, dir, "front.csv", "2016-01-04,H16\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := &Loader{FrontPath: front, ContractsDir: dir, Prefix: "ZC"}
	_, err := l.LoadAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
