package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestSelectCurrentActivePackage(t *testing.T) {
	idA := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	idB := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	idC := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	tests := []struct {
		name        string
		pkgs        []SessionPackage
		wantCurrent *uuid.UUID
		wantQueue   []uuid.UUID
	}{
		{
			name:        "no packages",
			pkgs:        nil,
			wantCurrent: nil,
			wantQueue:   nil,
		},
		{
			name: "exhausted package skipped in favor of next",
			pkgs: []SessionPackage{
				{ID: idA, Status: PackageStatusActive, TotalSessions: 10, UsedSessions: 10, StartDate: datePtr(2026, 1, 1)},
				{ID: idB, Status: PackageStatusActive, TotalSessions: 5, UsedSessions: 0, StartDate: datePtr(2026, 2, 1)},
			},
			wantCurrent: &idB,
			wantQueue:   nil,
		},
		{
			name: "earliest start date wins",
			pkgs: []SessionPackage{
				{ID: idA, Status: PackageStatusActive, TotalSessions: 5, UsedSessions: 1, StartDate: datePtr(2026, 3, 1)},
				{ID: idB, Status: PackageStatusActive, TotalSessions: 5, UsedSessions: 0, StartDate: datePtr(2026, 2, 1)},
			},
			wantCurrent: &idB,
			wantQueue:   []uuid.UUID{idA},
		},
		{
			name: "missing start date sorts first",
			pkgs: []SessionPackage{
				{ID: idA, Status: PackageStatusActive, TotalSessions: 5, UsedSessions: 0, StartDate: datePtr(2026, 1, 1)},
				{ID: idB, Status: PackageStatusActive, TotalSessions: 5, UsedSessions: 0, StartDate: nil},
			},
			wantCurrent: &idB,
			wantQueue:   []uuid.UUID{idA},
		},
		{
			name: "equal start dates break ties by id",
			pkgs: []SessionPackage{
				{ID: idC, Status: PackageStatusActive, TotalSessions: 5, UsedSessions: 0, StartDate: datePtr(2026, 2, 1)},
				{ID: idA, Status: PackageStatusActive, TotalSessions: 5, UsedSessions: 0, StartDate: datePtr(2026, 2, 1)},
				{ID: idB, Status: PackageStatusActive, TotalSessions: 5, UsedSessions: 0, StartDate: datePtr(2026, 2, 1)},
			},
			wantCurrent: &idA,
			wantQueue:   []uuid.UUID{idB, idC},
		},
		{
			name: "completed packages never selected",
			pkgs: []SessionPackage{
				{ID: idA, Status: PackageStatusCompleted, TotalSessions: 5, UsedSessions: 2, StartDate: datePtr(2026, 1, 1)},
			},
			wantCurrent: nil,
			wantQueue:   nil,
		},
		{
			name: "all exhausted leaves no current",
			pkgs: []SessionPackage{
				{ID: idA, Status: PackageStatusActive, TotalSessions: 3, UsedSessions: 3},
				{ID: idB, Status: PackageStatusActive, TotalSessions: 1, UsedSessions: 1},
			},
			wantCurrent: nil,
			wantQueue:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, queue := SelectCurrentActivePackage(tt.pkgs)

			if tt.wantCurrent == nil {
				if current != nil {
					t.Fatalf("expected no current package, got %s", current.ID)
				}
			} else {
				if current == nil {
					t.Fatalf("expected current package %s, got nil", *tt.wantCurrent)
				}
				if current.ID != *tt.wantCurrent {
					t.Errorf("current package = %s, want %s", current.ID, *tt.wantCurrent)
				}
			}

			if len(queue) != len(tt.wantQueue) {
				t.Fatalf("queue length = %d, want %d", len(queue), len(tt.wantQueue))
			}
			for i, wantID := range tt.wantQueue {
				if queue[i].ID != wantID {
					t.Errorf("queue[%d] = %s, want %s", i, queue[i].ID, wantID)
				}
			}
		})
	}
}

func TestSelectCurrentActivePackageDeterministic(t *testing.T) {
	pkgs := []SessionPackage{
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Status: PackageStatusActive, TotalSessions: 5, StartDate: datePtr(2026, 2, 1)},
		{ID: uuid.MustParse("55555555-5555-5555-5555-555555555555"), Status: PackageStatusActive, TotalSessions: 5, StartDate: datePtr(2026, 2, 1)},
	}
	reversed := []SessionPackage{pkgs[1], pkgs[0]}

	first, _ := SelectCurrentActivePackage(pkgs)
	second, _ := SelectCurrentActivePackage(reversed)

	if first == nil || second == nil {
		t.Fatal("expected a current package for both orderings")
	}
	if first.ID != second.ID {
		t.Errorf("selection depends on input order: %s vs %s", first.ID, second.ID)
	}
}

func TestSelectCurrentActivePackageDoesNotMutateInput(t *testing.T) {
	idA := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	idB := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	pkgs := []SessionPackage{
		{ID: idB, Status: PackageStatusActive, TotalSessions: 5, StartDate: datePtr(2026, 3, 1)},
		{ID: idA, Status: PackageStatusActive, TotalSessions: 5, StartDate: datePtr(2026, 2, 1)},
	}

	SelectCurrentActivePackage(pkgs)

	if pkgs[0].ID != idB || pkgs[1].ID != idA {
		t.Error("input slice was reordered")
	}
}
