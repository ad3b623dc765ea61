package check

import "testing"

func TestBeats(t *testing.T) {
	tests := []struct {
		name      string
		rollTotal int
		target    int
		want      bool
	}{
		{"above target", 70, 65, true},
		{"exact tie fails", 65, 65, false},
		{"below target", 60, 65, false},
		{"one above", 66, 65, true},
		{"zero target", 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Beats(tt.rollTotal, tt.target)
			if got != tt.want {
				t.Errorf("Beats(%d, %d) = %v, want %v", tt.rollTotal, tt.target, got, tt.want)
			}
		})
	}
}

func TestMargin(t *testing.T) {
	tests := []struct {
		name      string
		rollTotal int
		target    int
		want      int
	}{
		{"above by 5", 70, 65, 5},
		{"tie", 65, 65, 0},
		{"below by 10", 55, 65, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Margin(tt.rollTotal, tt.target)
			if got != tt.want {
				t.Errorf("Margin(%d, %d) = %d, want %d", tt.rollTotal, tt.target, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		target    int
		rollTotal int
		want      Result
	}{
		{"success", 65, 70, Result{Target: 65, RollTotal: 70, Success: true, Margin: 5}},
		{"tie fails", 65, 65, Result{Target: 65, RollTotal: 65, Success: false, Margin: 0}},
		{"failure", 65, 40, Result{Target: 65, RollTotal: 40, Success: false, Margin: -25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.target, tt.rollTotal)
			if got != tt.want {
				t.Errorf("Resolve(%d, %d) = %+v, want %+v", tt.target, tt.rollTotal, got, tt.want)
			}
		})
	}
}
