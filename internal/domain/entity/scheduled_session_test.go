package entity

import "testing"

func TestScheduledSessionCanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   SessionStatus
		target SessionStatus
		want   bool
	}{
		{name: "scheduled to completed", from: SessionStatusScheduled, target: SessionStatusCompleted, want: true},
		{name: "scheduled to cancelled", from: SessionStatusScheduled, target: SessionStatusCancelled, want: true},
		{name: "scheduled back to scheduled", from: SessionStatusScheduled, target: SessionStatusScheduled, want: false},
		{name: "completed is terminal", from: SessionStatusCompleted, target: SessionStatusCancelled, want: false},
		{name: "cancelled is terminal", from: SessionStatusCancelled, target: SessionStatusCompleted, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &ScheduledSession{Status: tt.from}
			if got := s.CanTransitionTo(tt.target); got != tt.want {
				t.Errorf("CanTransitionTo(%s) from %s = %v, want %v", tt.target, tt.from, got, tt.want)
			}
		})
	}
}

func TestScheduledSessionIsScheduled(t *testing.T) {
	s := &ScheduledSession{Status: SessionStatusScheduled}
	if !s.IsScheduled() {
		t.Error("expected scheduled session to report IsScheduled")
	}
	s.Status = SessionStatusCompleted
	if s.IsScheduled() {
		t.Error("completed session must not report IsScheduled")
	}
}
