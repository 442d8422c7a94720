package stats

const (
	// Confidence95 is the two-sided 95% z-score of the standard normal distribution.
	Confidence95 = 1.96

	DefaultWorkers = 1

	// consecutive already-open draws tolerated before falling back to picking
	// among the closed sites directly
	MaxRedraws = 64
)
