package docx

import (
	"math"
	"strconv"
)

// twips are 1/20 of a point, 1440 per inch.

func inchesToTwips(in float64) string {
	return strconv.Itoa(int(math.Round(in * 1440)))
}

func pointsToTwips(pt float64) string {
	return strconv.Itoa(int(math.Round(pt * 20)))
}

// halfPoints is the unit of w:sz.
func halfPoints(pt float64) string {
	return strconv.Itoa(int(math.Round(pt * 2)))
}
