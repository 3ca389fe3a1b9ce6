package core

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{1, time.Second},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.TickInterval(); got != tc.want {
			t.Errorf("TickInterval at %d ticks/s = %v, expected %v", tc.rate, got, tc.want)
		}
	}
}

func TestColorDim(t *testing.T) {
	tests := []struct {
		in, want Color
	}{
		{ColorBrightRed, ColorRed},
		{ColorBrightBlue, ColorBlue},
		{ColorBrightWhite, ColorWhite},
		{ColorRed, ColorRed},
		{ColorOrange, ColorOrange},
		{ColorDefault, ColorDefault},
	}
	for _, tc := range tests {
		if got := tc.in.Dim(); got != tc.want {
			t.Errorf("%d.Dim() = %d, expected %d", tc.in, got, tc.want)
		}
	}
}
