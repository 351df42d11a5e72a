package export

import (
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examaudit/examdash/internal/record"
)

func TestCSV_RoundTrip(t *testing.T) {
	records := []record.Record{
		{QuestionNo: "1", AnswerLabel: "3", AnswerText: "text, with comma", FinalDecision: "agree_with_key", Confidence: 0.856, Depth: "standard"},
		{QuestionNo: "2", AnswerLabel: "1", AnswerText: "plain", FinalDecision: "override_key", Confidence: 0.9, HasImages: true, RunnerUp: "4"},
		{QuestionNo: "x", Confidence: 0.33333},
	}

	out, err := CSV(records)
	require.NoError(t, err)

	parsed, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)

	// Header plus one row per record.
	require.Len(t, parsed, len(records)+1)
	assert.Equal(t, csvColumns, parsed[0])

	// Confidence column holds round(original*100, 2).
	confIdx := 5
	wantConf := []float64{85.6, 90, 33.33}
	for i, want := range wantConf {
		got, err := strconv.ParseFloat(parsed[i+1][confIdx], 64)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9, "row %d", i)
	}

	// Order and identity of rows follow input order.
	assert.Equal(t, "1", parsed[1][0])
	assert.Equal(t, "text, with comma", parsed[1][2])
	assert.Equal(t, "2", parsed[2][0])
	assert.Equal(t, "true", parsed[2][7])
	assert.Equal(t, "x", parsed[3][0])
}

func TestCSV_EmptySetStillHasHeader(t *testing.T) {
	out, err := CSV(nil)
	require.NoError(t, err)
	parsed, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, csvColumns, parsed[0])
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.856, "85.6"},
		{0.33333, "33.33"},
		{1.0, "100"},
		{0.0, "0"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, formatPercent(tc.in))
	}
}
