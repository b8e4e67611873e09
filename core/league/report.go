package league

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/Standings/core/errors"
)

// FormatReport renders the ranked table as report lines, one team per
// line in rank order: "{rank}. {team}, {points} pt|pts". The unit is
// "pt" only for exactly one point.
func FormatReport(table RankTable) []byte {
	var b strings.Builder
	for _, group := range table {
		for _, s := range group.Teams {
			unit := "pts"
			if s.Points == 1 {
				unit = "pt"
			}
			fmt.Fprintf(&b, "%d. %s, %d %s\n", group.Rank, s.Team, s.Points, unit)
		}
	}
	return []byte(b.String())
}

// WriteReport renders the table and writes it to path, replacing any
// previous report there. An empty table still writes an empty file.
// It returns the BLAKE3 digest (hex) of the written report, so two runs
// can be compared for byte-identity without diffing files.
func WriteReport(table RankTable, path string) (string, error) {
	report := FormatReport(table)
	if err := os.WriteFile(path, report, 0644); err != nil {
		return "", errors.NewDestination(path, err)
	}
	sum := blake3.Sum256(report)
	return hex.EncodeToString(sum[:]), nil
}
