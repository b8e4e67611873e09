package league

import (
	"strconv"

	"github.com/FocuswithJustin/Standings/core/errors"
)

// PointsTable maps a team name to its accumulated points. A team enters
// the table through its first match; there is no pre-seeded universe of
// teams.
type PointsTable map[string]int

// Points awarded per match under the win/draw/loss rule.
const (
	winPoints  = 3
	drawPoints = 1
)

// AccumulatePoints folds match records into a points table. It fails on
// the first record whose teams are identical or whose score text is not
// an integer; no partial table is returned.
func AccumulatePoints(records []MatchRecord) (PointsTable, error) {
	points := make(PointsTable)
	for _, rec := range records {
		if rec.TeamA == rec.TeamB {
			return nil, errors.NewMatch(rec.TeamA)
		}
		scoreA, err := strconv.Atoi(rec.ScoreA)
		if err != nil {
			return nil, errors.NewScore(rec.TeamA, rec.ScoreA, err)
		}
		scoreB, err := strconv.Atoi(rec.ScoreB)
		if err != nil {
			return nil, errors.NewScore(rec.TeamB, rec.ScoreB, err)
		}

		pointsA, pointsB := matchPoints(scoreA, scoreB)
		points[rec.TeamA] += pointsA
		points[rec.TeamB] += pointsB
	}
	return points, nil
}

// matchPoints applies the scoring rule for one match: 3 to the winner,
// 1 each for a draw.
func matchPoints(scoreA, scoreB int) (int, int) {
	switch {
	case scoreA > scoreB:
		return winPoints, 0
	case scoreA < scoreB:
		return 0, winPoints
	default:
		return drawPoints, drawPoints
	}
}
