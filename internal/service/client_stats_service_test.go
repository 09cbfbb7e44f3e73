package service

import (
	"testing"
	"time"

	"coaching-practice-manager/internal/domain/entity"

	"github.com/google/uuid"
)

var statsNow = time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

func statsDatePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func statsClient(createdAt time.Time, status entity.ClientStatus) *entity.Client {
	return &entity.Client{
		ID:        uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"),
		FullName:  "Test Client",
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestBuildComputedStatus(t *testing.T) {
	svc := NewClientStatsService()
	client := statsClient(statsNow.AddDate(0, -2, 0), entity.ClientStatusActive)

	t.Run("active when a current package exists", func(t *testing.T) {
		pkgs := []entity.SessionPackage{
			{ID: uuid.New(), Status: entity.PackageStatusActive, TotalSessions: 10, UsedSessions: 4},
		}
		stats := svc.Build(client, pkgs, nil, nil, statsNow)

		if stats.ComputedStatus != "active" {
			t.Errorf("ComputedStatus = %s, want active", stats.ComputedStatus)
		}
		if stats.CurrentPackage == nil {
			t.Fatal("expected a current package")
		}
		if stats.SessionsTotal != 10 || stats.SessionsUsed != 4 || stats.SessionsRemaining != 6 {
			t.Errorf("session counts = %d/%d/%d, want 10/4/6",
				stats.SessionsTotal, stats.SessionsUsed, stats.SessionsRemaining)
		}
	})

	t.Run("inactive when every package is exhausted", func(t *testing.T) {
		pkgs := []entity.SessionPackage{
			{ID: uuid.New(), Status: entity.PackageStatusActive, TotalSessions: 5, UsedSessions: 5},
		}
		stats := svc.Build(client, pkgs, nil, nil, statsNow)

		if stats.ComputedStatus != "inactive" {
			t.Errorf("ComputedStatus = %s, want inactive", stats.ComputedStatus)
		}
		if stats.CurrentPackage != nil {
			t.Error("expected no current package")
		}
		if stats.SessionsRemaining != 0 {
			t.Errorf("SessionsRemaining = %d, want 0", stats.SessionsRemaining)
		}
	})

	t.Run("stored tag does not override computed state", func(t *testing.T) {
		inactiveTagged := statsClient(statsNow.AddDate(0, -2, 0), entity.ClientStatusInactive)
		pkgs := []entity.SessionPackage{
			{ID: uuid.New(), Status: entity.PackageStatusActive, TotalSessions: 10, UsedSessions: 0},
		}
		stats := svc.Build(inactiveTagged, pkgs, nil, nil, statsNow)

		if stats.ComputedStatus != "active" {
			t.Errorf("ComputedStatus = %s, want active regardless of stored tag", stats.ComputedStatus)
		}
	})
}

func TestBuildIsNew(t *testing.T) {
	svc := NewClientStatsService()

	tests := []struct {
		name      string
		createdAt time.Time
		status    entity.ClientStatus
		want      bool
	}{
		{name: "created yesterday", createdAt: statsNow.Add(-24 * time.Hour), status: entity.ClientStatusActive, want: true},
		{name: "created exactly a week ago", createdAt: statsNow.Add(-7 * 24 * time.Hour), status: entity.ClientStatusActive, want: true},
		{name: "created eight days ago", createdAt: statsNow.Add(-8 * 24 * time.Hour), status: entity.ClientStatusNew, want: false},
		{name: "zero timestamp falls back to new tag", createdAt: time.Time{}, status: entity.ClientStatusNew, want: true},
		{name: "zero timestamp with active tag", createdAt: time.Time{}, status: entity.ClientStatusActive, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := svc.Build(statsClient(tt.createdAt, tt.status), nil, nil, nil, statsNow)
			if stats.IsNew != tt.want {
				t.Errorf("IsNew = %v, want %v", stats.IsNew, tt.want)
			}
		})
	}
}

func TestBuildPackageExpiry(t *testing.T) {
	svc := NewClientStatsService()
	client := statsClient(statsNow.AddDate(0, -2, 0), entity.ClientStatusActive)

	t.Run("expired current package flagged", func(t *testing.T) {
		pkgs := []entity.SessionPackage{
			{ID: uuid.New(), Status: entity.PackageStatusActive, TotalSessions: 10, UsedSessions: 2, ExpiryDate: statsDatePtr(2026, 6, 1)},
		}
		stats := svc.Build(client, pkgs, nil, nil, statsNow)

		if !stats.PackageExpired {
			t.Error("expected PackageExpired for expiry in the past")
		}
		if stats.ActiveExpiryDate != "2026-06-01" {
			t.Errorf("ActiveExpiryDate = %q, want 2026-06-01", stats.ActiveExpiryDate)
		}
		if stats.ComputedStatus != "active" {
			t.Errorf("ComputedStatus = %s, expiry must not change selection", stats.ComputedStatus)
		}
	})

	t.Run("future expiry not flagged", func(t *testing.T) {
		pkgs := []entity.SessionPackage{
			{ID: uuid.New(), Status: entity.PackageStatusActive, TotalSessions: 10, UsedSessions: 2, ExpiryDate: statsDatePtr(2026, 9, 1)},
		}
		stats := svc.Build(client, pkgs, nil, nil, statsNow)

		if stats.PackageExpired {
			t.Error("future expiry must not be flagged")
		}
	})

	t.Run("no current package leaves expiry empty", func(t *testing.T) {
		stats := svc.Build(client, nil, nil, nil, statsNow)

		if stats.PackageExpired {
			t.Error("no package cannot be expired")
		}
		if stats.ActiveExpiryDate != "" {
			t.Errorf("ActiveExpiryDate = %q, want empty", stats.ActiveExpiryDate)
		}
	})
}

func TestBuildPackageCounts(t *testing.T) {
	svc := NewClientStatsService()
	client := statsClient(statsNow.AddDate(0, -2, 0), entity.ClientStatusActive)

	pkgs := []entity.SessionPackage{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Status: entity.PackageStatusActive, TotalSessions: 10, UsedSessions: 3, StartDate: statsDatePtr(2026, 1, 1)},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Status: entity.PackageStatusActive, TotalSessions: 5, UsedSessions: 0, StartDate: statsDatePtr(2026, 4, 1)},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Status: entity.PackageStatusCompleted, TotalSessions: 8, UsedSessions: 8, StartDate: statsDatePtr(2025, 9, 1)},
	}
	stats := svc.Build(client, pkgs, nil, nil, statsNow)

	if stats.PackagesTotal != 3 {
		t.Errorf("PackagesTotal = %d, want 3", stats.PackagesTotal)
	}
	if stats.PackagesActive != 2 {
		t.Errorf("PackagesActive = %d, want 2", stats.PackagesActive)
	}
	if stats.PackagesQueued != 1 {
		t.Errorf("PackagesQueued = %d, want 1", stats.PackagesQueued)
	}
	if stats.CurrentPackage == nil || stats.CurrentPackage.ID.String() != "11111111-1111-1111-1111-111111111111" {
		t.Error("oldest active package must be current")
	}
}

func TestBuildScheduledCount(t *testing.T) {
	svc := NewClientStatsService()
	client := statsClient(statsNow.AddDate(0, -2, 0), entity.ClientStatusActive)

	scheduled := []entity.ScheduledSession{
		{Status: entity.SessionStatusScheduled},
		{Status: entity.SessionStatusScheduled},
		{Status: entity.SessionStatusCompleted},
		{Status: entity.SessionStatusCancelled},
	}
	stats := svc.Build(client, nil, scheduled, nil, statsNow)

	if stats.ScheduledCount != 2 {
		t.Errorf("ScheduledCount = %d, want 2", stats.ScheduledCount)
	}
}

func TestBuildRecentBurns(t *testing.T) {
	svc := NewClientStatsService()
	client := statsClient(statsNow.AddDate(0, -2, 0), entity.ClientStatusActive)

	consumed := []entity.ConsumedSession{
		{ID: uuid.New(), ConsumedAt: statsNow.Add(-4 * 24 * time.Hour), Note: "oldest"},
		{ID: uuid.New(), ConsumedAt: statsNow.Add(-1 * 24 * time.Hour), Note: "newest"},
		{ID: uuid.New(), ConsumedAt: statsNow.Add(-3 * 24 * time.Hour), Note: "third"},
		{ID: uuid.New(), ConsumedAt: statsNow.Add(-2 * 24 * time.Hour), Note: "second"},
	}
	stats := svc.Build(client, nil, nil, consumed, statsNow)

	if len(stats.RecentBurns) != 3 {
		t.Fatalf("RecentBurns length = %d, want 3", len(stats.RecentBurns))
	}
	wantOrder := []string{"newest", "second", "third"}
	for i, want := range wantOrder {
		if stats.RecentBurns[i].Note != want {
			t.Errorf("RecentBurns[%d].Note = %q, want %q", i, stats.RecentBurns[i].Note, want)
		}
	}
}
