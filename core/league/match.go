// Package league implements the standings pipeline: parsing match
// results, accumulating points, ranking teams, and writing the report.
package league

import (
	"regexp"
	"strings"
)

// MatchRecord is one reported game result between two named teams.
// Scores are kept as the raw captured digit strings; AccumulatePoints
// converts them to integers.
type MatchRecord struct {
	TeamA  string
	ScoreA string
	TeamB  string
	ScoreB string
}

// matchPattern extracts one record per result line: team names are runs
// of word characters and spaces, scores are unsigned integers. It is
// deliberately unanchored, so trailing text after a valid record does
// not reject the record.
var matchPattern = regexp.MustCompile(`([\w ]+) (\d+), ([\w ]*) (\d+)`)

// Parse extracts match records from raw results text, in input order.
// The source is trimmed as a whole before matching. Text that does not
// fit the pattern is skipped; a malformed line is a filter case, not an
// error.
func Parse(data []byte) []MatchRecord {
	matches := matchPattern.FindAllStringSubmatch(strings.TrimSpace(string(data)), -1)

	records := make([]MatchRecord, 0, len(matches))
	for _, m := range matches {
		records = append(records, MatchRecord{
			TeamA:  m[1],
			ScoreA: m[2],
			TeamB:  m[3],
			ScoreB: m[4],
		})
	}
	return records
}
