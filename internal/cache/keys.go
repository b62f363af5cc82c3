package cache

import (
	"context"
	"fmt"
	"time"
)

const applicationsKeyPrefix = "applications:%d"

// ApplicationsTTL bounds staleness of a cached application list when an
// invalidation is lost.
const ApplicationsTTL = 5 * time.Minute

// ApplicationsKey is the cache key for an owner's full application list.
func ApplicationsKey(ownerID uint) string {
	return fmt.Sprintf(applicationsKeyPrefix, ownerID)
}

// InvalidateApplications drops the cached list for an owner. Called on every
// mutation of that owner's records.
func InvalidateApplications(ctx context.Context, ownerID uint) {
	Invalidate(ctx, ApplicationsKey(ownerID))
}
