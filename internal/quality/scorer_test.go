package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fundpulse/internal/dataprocessing"
)

func buildFrame(t *testing.T, headers []string, kinds []dataprocessing.ColumnKind, rows ...[]string) *dataprocessing.Frame {
	t.Helper()
	f := &dataprocessing.Frame{
		Name:    "test",
		Headers: headers,
		Kinds:   kinds,
	}
	for _, raw := range rows {
		row := make([]dataprocessing.Cell, len(headers))
		for i, v := range raw {
			row[i] = dataprocessing.Cell{Raw: v, Missing: v == ""}
		}
		f.Rows = append(f.Rows, row)
	}
	return f
}

func numberKinds(n int) []dataprocessing.ColumnKind {
	kinds := make([]dataprocessing.ColumnKind, n)
	for i := range kinds {
		kinds[i] = dataprocessing.KindNumber
	}
	return kinds
}

func TestScorePerfectDataset(t *testing.T) {
	f := buildFrame(t, []string{"a", "b"}, numberKinds(2),
		[]string{"1", "2"},
		[]string{"3", "4"},
	)

	score := ScoreDataset(f)
	assert.Equal(t, 10.0, score.Score)
	assert.Equal(t, 0.0, score.MissingPercent)
	assert.Equal(t, 0, score.DuplicateRows)
}

func TestScoreHalfMissing(t *testing.T) {
	f := buildFrame(t, []string{"a", "b"}, numberKinds(2),
		[]string{"1", ""},
		[]string{"", "4"},
	)

	score := ScoreDataset(f)
	// 50% missing caps the penalty at 3 points
	assert.InDelta(t, 7.0, score.Score, 0.0001)
	assert.InDelta(t, 50.0, score.MissingPercent, 0.0001)
}

func TestScoreDuplicatePenalty(t *testing.T) {
	f := buildFrame(t, []string{"a", "b"}, numberKinds(2),
		[]string{"1", "2"},
		[]string{"1", "2"},
	)

	score := ScoreDataset(f)
	// 1 duplicate of 2 rows = 50%, capped at 2 points
	assert.InDelta(t, 8.0, score.Score, 0.0001)
	assert.Equal(t, 1, score.DuplicateRows)
}

func TestScoreTextColumnPenalty(t *testing.T) {
	f := buildFrame(t, []string{"a", "b", "c"},
		[]dataprocessing.ColumnKind{dataprocessing.KindText, dataprocessing.KindText, dataprocessing.KindText},
		[]string{"x", "y", "z"},
	)

	score := ScoreDataset(f)
	assert.InDelta(t, 9.0, score.Score, 0.0001, "all-text columns cost one point")
}

func TestScoreNeverNegative(t *testing.T) {
	// Worst case: half missing, every row duplicated, all text
	f := buildFrame(t, []string{"a", "b"},
		[]dataprocessing.ColumnKind{dataprocessing.KindText, dataprocessing.KindText},
		[]string{"x", ""},
		[]string{"x", ""},
		[]string{"x", ""},
		[]string{"x", ""},
	)

	score := ScoreDataset(f)
	assert.GreaterOrEqual(t, score.Score, 0.0)
	assert.LessOrEqual(t, score.Score, 10.0)
}

func TestScoreEmptyFrame(t *testing.T) {
	f := &dataprocessing.Frame{Name: "empty", Headers: []string{"a"}, Kinds: numberKinds(1)}

	score := ScoreDataset(f)
	assert.Equal(t, 10.0, score.Score)
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{9.5, GradeExcellent},
		{8.0, GradeExcellent},
		{7.9, GradeGood},
		{6.0, GradeGood},
		{5.0, GradeFair},
		{4.0, GradeFair},
		{3.9, GradePoor},
		{0.0, GradePoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.score), "score %.1f", tt.score)
	}
}
