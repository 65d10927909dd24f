package quality

import (
	"math"

	"fundpulse/internal/dataprocessing"
)

// Scoring constants. These are part of the report contract; changing them
// changes every historical score comparison.
const (
	maxMissingPenalty   = 3.0
	missingPctDivisor   = 10.0
	maxDuplicatePenalty = 2.0
	duplicatePctDivisor = 5.0
	textColumnThreshold = 0.7
	textColumnPenalty   = 1.0
)

// Grade buckets for the overall assessment.
const (
	GradeExcellent = "EXCELLENT"
	GradeGood      = "GOOD"
	GradeFair      = "FAIR"
	GradePoor      = "POOR"
)

// DatasetScore is the quality assessment of one dataset.
type DatasetScore struct {
	Name               string         `json:"name"`
	RowCount           int            `json:"row_count"`
	ColumnCount        int            `json:"column_count"`
	MissingCells       int            `json:"missing_cells"`
	MissingPercent     float64        `json:"missing_percent"`
	MissingByColumn    map[string]int `json:"missing_by_column"`
	DuplicateRows      int            `json:"duplicate_rows"`
	DuplicatePercent   float64        `json:"duplicate_percent"`
	TextColumnFraction float64        `json:"text_column_fraction"`
	Score              float64        `json:"score"`
}

// ScoreDataset computes the 0-10 quality score for one frame.
//
// The score starts at 10 and loses up to 3 points for missing cells (one per
// 10% missing), up to 2 for duplicate rows (one per 5% duplicated), and 1 if
// more than 70% of columns are still free-form text after coercion. It never
// goes below 0.
func ScoreDataset(f *dataprocessing.Frame) DatasetScore {
	rows := f.RowCount()
	cols := f.ColumnCount()

	score := DatasetScore{
		Name:               f.Name,
		RowCount:           rows,
		ColumnCount:        cols,
		MissingCells:       f.MissingCellCount(),
		MissingByColumn:    f.MissingByColumn(),
		DuplicateRows:      f.DuplicateRowCount(),
		TextColumnFraction: f.TextColumnFraction(),
	}

	totalCells := rows * cols
	if totalCells > 0 {
		score.MissingPercent = float64(score.MissingCells) / float64(totalCells) * 100
	}
	if rows > 0 {
		score.DuplicatePercent = float64(score.DuplicateRows) / float64(rows) * 100
	}

	value := 10.0
	value -= math.Min(score.MissingPercent/missingPctDivisor, maxMissingPenalty)
	value -= math.Min(score.DuplicatePercent/duplicatePctDivisor, maxDuplicatePenalty)
	if score.TextColumnFraction > textColumnThreshold {
		value -= textColumnPenalty
	}
	score.Score = math.Max(value, 0)

	return score
}

// GradeFor buckets an average score into the overall assessment label.
func GradeFor(avgScore float64) string {
	switch {
	case avgScore >= 8:
		return GradeExcellent
	case avgScore >= 6:
		return GradeGood
	case avgScore >= 4:
		return GradeFair
	default:
		return GradePoor
	}
}
