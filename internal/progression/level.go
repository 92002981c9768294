package progression

// Leveling: thresholds grow geometrically. Level 1 needs 100 XP, each
// level-up multiplies the threshold by 1.5 (floored to an integer).

const (
	xpBaseThreshold = 100
	xpGrowthNum     = 3 // threshold *= 3/2 per level, integer math
	xpGrowthDen     = 2
)

// applyXP folds an XP grant into (xp, level, threshold) and reports how
// many levels were gained. A single large grant may cross several
// thresholds; the loop consumes them one at a time so the result is
// independent of how the grant was split across calls.
func applyXP(xp, level, threshold, amount int) (newXP, newLevel, newThreshold, gained int) {
	newXP = xp + amount
	newLevel = level
	newThreshold = threshold

	for newXP >= newThreshold {
		newXP -= newThreshold
		newLevel++
		gained++
		newThreshold = newThreshold * xpGrowthNum / xpGrowthDen
	}
	return newXP, newLevel, newThreshold, gained
}
