package rules

import "testing"

func TestOutcomeTable(t *testing.T) {
	for n := 0; n <= MaxNeighbors; n++ {
		wantAlive := Dies
		if n == 2 || n == 3 {
			wantAlive = Survives
		}
		if got := Outcome(n, true); got != wantAlive {
			t.Fatalf("alive cell with %d neighbors: got %v, expected %v", n, got, wantAlive)
		}

		wantDead := StaysDead
		if n == 3 {
			wantDead = Born
		}
		if got := Outcome(n, false); got != wantDead {
			t.Fatalf("dead cell with %d neighbors: got %v, expected %v", n, got, wantDead)
		}
	}
}

func TestOutcomeOutOfRange(t *testing.T) {
	tests := []struct {
		neighbors int
		alive     bool
		want      Transition
	}{
		{-1, true, Dies},
		{-1, false, StaysDead},
		{9, true, Dies},
		{9, false, StaysDead},
	}
	for _, tt := range tests {
		if got := Outcome(tt.neighbors, tt.alive); got != tt.want {
			t.Fatalf("Outcome(%d, %v) = %v, expected %v", tt.neighbors, tt.alive, got, tt.want)
		}
	}
}

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"underpopulation", 1, true, false},
		{"survival with two", 2, true, true},
		{"survival with three", 3, true, true},
		{"overpopulation", 4, true, false},
		{"birth", 3, false, true},
		{"no birth with two", 2, false, false},
		{"no birth with four", 4, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Fatalf("ApplyConwayRules(%d, %v) = %v, expected %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}
