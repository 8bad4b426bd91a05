package utils

import (
	"slices"

	"github.com/scavara/statusquo/config"
)

// IsReviewer checks whether the user may decide on pending submissions.
func IsReviewer(userID string) bool {
	return slices.Contains(config.Cfg.Reviewers, userID)
}
