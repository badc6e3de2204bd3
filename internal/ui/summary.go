package ui

import (
	"fmt"

	"pnmgrid/internal/unblack"
)

// Summary formats the statistics shown by the overlay.
func Summary(st unblack.Stats, set int) string {
	pct := 0.0
	if set > 0 {
		pct = 100 * float64(st.Cleared) / float64(set)
	}
	return fmt.Sprintf("black: %d  cleared: %d (%.1f%%)  fills: %d  max stack: %d",
		set, st.Cleared, pct, st.Seeds, st.MaxStack)
}
