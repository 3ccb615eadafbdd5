package tween

import "testing"

func TestWaves(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		in   float64
		want float64
	}{
		{"ping", Ping, 0.3, 0.3},
		{"pong", Pong, 0.25, 0.75},
		{"pingpong rise", PingPong, 0.25, 0.5},
		{"pingpong peak", PingPong, 0.5, 1},
		{"pingpong fall", PingPong, 0.75, 0.5},
		{"sinus start", Sinus, 0, 0},
		{"sinus crest", Sinus, 0.25, 1},
		{"sinus middle", Sinus, 0.5, 0},
		{"sinus trough", Sinus, 0.75, -1},
		{"sinus end", Sinus, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("%s(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
			}
		})
	}
}
