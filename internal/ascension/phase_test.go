package ascension

import "testing"

func TestPhase(t *testing.T) {
	tests := []struct {
		lvl  int
		want int
	}{
		{1, 0},
		{20, 0},
		{40, 1},
		{50, 2},
		{60, 3},
		{70, 4},
		{80, 5},
		{90, 6},
		{13, 0},  // off-milestone degrades to 0
		{100, 0}, // off-milestone degrades to 0
	}

	for _, tt := range tests {
		got := Phase(tt.lvl)
		if got != tt.want {
			t.Errorf("Phase(%d) = %d, want %d", tt.lvl, got, tt.want)
		}
	}
}

func TestPhaseRange(t *testing.T) {
	tests := []struct {
		current, target int
		from, to        int
		ok              bool
	}{
		{1, 90, 1, 6, true},
		{1, 20, 0, 0, false}, // no phase boundary crossed
		{20, 40, 1, 1, true},
		{40, 70, 2, 4, true},
		{80, 90, 6, 6, true},
		{90, 90, 0, 0, false},
		{70, 40, 0, 0, false}, // current past target: empty
		{90, 1, 0, 0, false},
	}

	for _, tt := range tests {
		from, to, ok := PhaseRange(tt.current, tt.target)
		if from != tt.from || to != tt.to || ok != tt.ok {
			t.Errorf("PhaseRange(%d, %d) = (%d, %d, %v), want (%d, %d, %v)",
				tt.current, tt.target, from, to, ok, tt.from, tt.to, tt.ok)
		}
	}
}

func TestClampMilestone(t *testing.T) {
	tests := []struct {
		lvl  int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{19, 1},
		{20, 20},
		{39, 20},
		{55, 50},
		{90, 90},
		{200, 90},
	}

	for _, tt := range tests {
		if got := ClampMilestone(tt.lvl); got != tt.want {
			t.Errorf("ClampMilestone(%d) = %d, want %d", tt.lvl, got, tt.want)
		}
	}
}

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		lvl  int
		want int
	}{
		{1, 20},
		{20, 40},
		{45, 50},
		{80, 90},
		{90, 90}, // saturates at the cap
	}

	for _, tt := range tests {
		if got := NextMilestone(tt.lvl); got != tt.want {
			t.Errorf("NextMilestone(%d) = %d, want %d", tt.lvl, got, tt.want)
		}
	}
}
