package league

import (
	"cmp"
	"slices"
)

// Standing is one team's entry in the ranked table.
type Standing struct {
	Team   string
	Points int
}

// RankGroup holds every team sharing one rank, ordered by team name
// ascending.
type RankGroup struct {
	Rank  int
	Teams []Standing
}

// RankTable is the ranked standings, ascending by rank. Ranks follow
// competition style: tied teams share a rank and still consume rank
// slots, so a rank number can go unassigned.
type RankTable []RankGroup

// Rank orders the points table by points descending, breaking ties by
// team name ascending, and assigns competition ranks. The ordering is
// deterministic regardless of map iteration order. An empty table
// produces an empty RankTable.
func Rank(points PointsTable) RankTable {
	standings := make([]Standing, 0, len(points))
	for team, pts := range points {
		standings = append(standings, Standing{Team: team, Points: pts})
	}

	slices.SortFunc(standings, func(a, b Standing) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.Team, b.Team)
	})

	var table RankTable
	for i, s := range standings {
		// A new rank opens whenever the points value changes; the rank
		// is the 1-based position of the first team holding it.
		if i == 0 || s.Points != standings[i-1].Points {
			table = append(table, RankGroup{Rank: i + 1})
		}
		group := &table[len(table)-1]
		group.Teams = append(group.Teams, s)
	}
	return table
}
