package builtins

import "strconv"

// formatFloat renders f with up to 15 significant digits, as spec.md
// §4.4's `print` requires.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 15, 64)
}
