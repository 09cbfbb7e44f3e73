package service

import (
	"sort"
	"time"

	"coaching-practice-manager/internal/converter"
	"coaching-practice-manager/internal/delivery/dto"
	"coaching-practice-manager/internal/domain/entity"
)

const (
	newClientWindow = 7 * 24 * time.Hour
	recentBurnCount = 3
)

// ClientStatsService derives the per-client display state from raw
// rows. Build is pure and deterministic for a given evaluation
// instant; it runs on every request and its output is never cached.
type ClientStatsService struct{}

func NewClientStatsService() *ClientStatsService {
	return &ClientStatsService{}
}

// Build composes the current/queue package selection with the client's
// session rows into a read-only stats view.
//
// The computed status is derived only from whether a current package
// exists; the stored status tag on the client is a manual
// classification and the two are reported separately.
func (s *ClientStatsService) Build(
	client *entity.Client,
	pkgs []entity.SessionPackage,
	scheduled []entity.ScheduledSession,
	consumed []entity.ConsumedSession,
	now time.Time,
) *dto.ClientStatsResponse {
	current, queue := entity.SelectCurrentActivePackage(pkgs)

	sessionsTotal := 0
	sessionsUsed := 0
	computedStatus := "inactive"
	activeExpiry := ""
	packageExpired := false
	if current != nil {
		sessionsTotal = current.TotalSessions
		sessionsUsed = current.UsedSessions
		computedStatus = "active"
		packageExpired = current.IsExpired(now)
		if current.ExpiryDate != nil {
			activeExpiry = current.ExpiryDate.Format("2006-01-02")
		}
	}

	activeCount := 0
	for i := range pkgs {
		if pkgs[i].Status == entity.PackageStatusActive {
			activeCount++
		}
	}

	scheduledCount := 0
	for i := range scheduled {
		if scheduled[i].IsScheduled() {
			scheduledCount++
		}
	}

	stats := &dto.ClientStatsResponse{
		Client:            *converter.ClientToResponse(client),
		CurrentPackage:    converter.PackageToResponse(current),
		QueuedPackages:    converter.PackagesToResponses(queue),
		PackagesTotal:     len(pkgs),
		PackagesActive:    activeCount,
		PackagesQueued:    len(queue),
		SessionsTotal:     sessionsTotal,
		SessionsUsed:      sessionsUsed,
		SessionsRemaining: remaining(sessionsTotal, sessionsUsed),
		ComputedStatus:    computedStatus,
		IsNew:             s.isNew(client, now),
		ActiveExpiryDate:  activeExpiry,
		PackageExpired:    packageExpired,
		ScheduledCount:    scheduledCount,
		RecentBurns:       converter.ConsumedSessionsToResponses(recentBurns(consumed)),
	}
	return stats
}

// isNew reports whether the client joined within the last week. A
// zero creation timestamp falls back to the stored manual tag.
func (s *ClientStatsService) isNew(client *entity.Client, now time.Time) bool {
	if client.CreatedAt.IsZero() {
		return client.Status == entity.ClientStatusNew
	}
	return now.Sub(client.CreatedAt) <= newClientWindow
}

func remaining(total, used int) int {
	r := total - used
	if r < 0 {
		return 0
	}
	return r
}

// recentBurns returns the latest burn events, most recent first.
func recentBurns(consumed []entity.ConsumedSession) []entity.ConsumedSession {
	sorted := make([]entity.ConsumedSession, len(consumed))
	copy(sorted, consumed)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ConsumedAt.After(sorted[j].ConsumedAt)
	})
	if len(sorted) > recentBurnCount {
		sorted = sorted[:recentBurnCount]
	}
	return sorted
}
