package entity

import (
	"testing"
	"time"
)

func TestSessionPackageConsume(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		used       int
		wantUsed   int
		wantStatus PackageStatus
	}{
		{name: "normal burn", total: 10, used: 3, wantUsed: 4, wantStatus: PackageStatusActive},
		{name: "final burn completes package", total: 3, used: 2, wantUsed: 3, wantStatus: PackageStatusCompleted},
		{name: "single session package", total: 1, used: 0, wantUsed: 1, wantStatus: PackageStatusCompleted},
		{name: "exhausted package saturates", total: 3, used: 3, wantUsed: 3, wantStatus: PackageStatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := &SessionPackage{
				TotalSessions: tt.total,
				UsedSessions:  tt.used,
				Status:        PackageStatusActive,
			}
			pkg.Consume()

			if pkg.UsedSessions != tt.wantUsed {
				t.Errorf("UsedSessions = %d, want %d", pkg.UsedSessions, tt.wantUsed)
			}
			if pkg.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", pkg.Status, tt.wantStatus)
			}
		})
	}
}

func TestSessionPackageRemaining(t *testing.T) {
	tests := []struct {
		name  string
		total int
		used  int
		want  int
	}{
		{name: "untouched", total: 10, used: 0, want: 10},
		{name: "partially used", total: 10, used: 4, want: 6},
		{name: "exhausted", total: 5, used: 5, want: 0},
		{name: "overdrawn never negative", total: 5, used: 7, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := &SessionPackage{TotalSessions: tt.total, UsedSessions: tt.used}
			if got := pkg.Remaining(); got != tt.want {
				t.Errorf("Remaining() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSessionPackageIsExpired(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry *time.Time
		want   bool
	}{
		{name: "no expiry never expires", expiry: nil, want: false},
		{name: "past expiry", expiry: datePtr(2026, 6, 1), want: true},
		{name: "future expiry", expiry: datePtr(2026, 7, 1), want: false},
		{name: "expiry equal to instant is not expired", expiry: &now, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := &SessionPackage{ExpiryDate: tt.expiry}
			if got := pkg.IsExpired(now); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}
