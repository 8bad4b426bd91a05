package model

// UserStats holds the per-user counters backing the rate limiter.
type UserStats struct {
	UserID             string
	UpdateWindowStart  int64
	UpdateWindowCount  int
	PendingCount       int
	DailyApprovedCount int
	LastActivityDate   string
	LastSubmissionTS   int64
}
