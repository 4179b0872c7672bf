package util

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"Monday", time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), 0},
		{"Friday", time.Date(2023, 1, 6, 0, 0, 0, 0, time.UTC), 4},
		{"Saturday", time.Date(2023, 1, 7, 0, 0, 0, 0, time.UTC), 5},
		{"Sunday", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekdayIndex(tt.date); got != tt.want {
				t.Errorf("WeekdayIndex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthEnd(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"January", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "2023-01-31"},
		{"February", time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC), "2023-02-28"},
		{"Leap February", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "2024-02-29"},
		{"December", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), "2023-12-31"},
		{"April", time.Date(2023, 4, 30, 0, 0, 0, 0, time.UTC), "2023-04-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(MonthEnd(tt.date)); got != tt.want {
				t.Errorf("MonthEnd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuarter(t *testing.T) {
	for month := 1; month <= 12; month++ {
		d := time.Date(2023, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		want := (month-1)/3 + 1
		if got := Quarter(d); got != want {
			t.Errorf("Quarter(%s) = %d, want %d", FormatDate(d), got, want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2023, 1, 1, 18, 30, 0, 0, time.UTC)
	to := time.Date(2023, 3, 1, 1, 0, 0, 0, time.UTC)

	if got := DaysBetween(from, to); got != 59 {
		t.Errorf("DaysBetween() = %d, want 59", got)
	}
	if got := DaysBetween(to, from); got != -59 {
		t.Errorf("DaysBetween() reversed = %d, want -59", got)
	}
}

func TestSampler_Reproducible(t *testing.T) {
	a := NewSampler(42)
	b := NewSampler(42)

	for i := 0; i < 100; i++ {
		if x, y := a.Normal(0, 1), b.Normal(0, 1); x != y {
			t.Fatalf("draw %d differs: %v != %v", i, x, y)
		}
	}
}

func TestSampler_Ranges(t *testing.T) {
	s := NewSampler(7)

	for i := 0; i < 1000; i++ {
		if v := s.Uniform(0.6, 0.95); v < 0.6 || v >= 0.95 {
			t.Fatalf("Uniform() = %v out of [0.6, 0.95)", v)
		}
		if v := s.IntBetween(1, 14); v < 1 || v > 14 {
			t.Fatalf("IntBetween() = %v out of [1, 14]", v)
		}
	}
}

func TestSampler_NormalZeroSigma(t *testing.T) {
	s := NewSampler(1)
	if got := s.Normal(3, 0); got != 3 {
		t.Errorf("Normal(3, 0) = %v, want 3", got)
	}
}

func TestSampler_Distinct(t *testing.T) {
	s := NewSampler(3)

	got := s.Distinct(20, 5)
	if len(got) != 5 {
		t.Fatalf("Distinct() returned %d indices, want 5", len(got))
	}

	seen := make(map[int]bool)
	for _, idx := range got {
		if idx < 0 || idx >= 20 {
			t.Errorf("index %d out of range", idx)
		}
		if seen[idx] {
			t.Errorf("index %d returned twice", idx)
		}
		seen[idx] = true
	}

	if got := s.Distinct(2, 5); len(got) != 2 {
		t.Errorf("Distinct(2, 5) returned %d indices, want 2", len(got))
	}
	if got := s.Distinct(0, 3); got != nil {
		t.Errorf("Distinct(0, 3) = %v, want nil", got)
	}
}

func TestRunID_Deterministic(t *testing.T) {
	a := RunID("seed=42", "days=365")
	b := RunID("seed=42", "days=365")
	c := RunID("seed=43", "days=365")

	if a != b {
		t.Errorf("RunID() not deterministic: %s != %s", a, b)
	}
	if a == c {
		t.Errorf("RunID() collided for different inputs")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("RunID() = %q is not a valid UUID", a)
	}
}

func TestSequenceCode(t *testing.T) {
	if got := SequenceCode("TL", 7); got != "TL0007" {
		t.Errorf("SequenceCode() = %q, want TL0007", got)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v      float64
		places int32
		want   float64
	}{
		{1.005, 2, 1.01},
		{0.125, 2, 0.13},
		{2.675, 1, 2.7},
		{-1.25, 1, -1.3},
		{100, 2, 100},
	}

	for _, tt := range tests {
		if got := Round(tt.v, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.places, got, tt.want)
		}
	}
}

func TestRound_NonFinite(t *testing.T) {
	if got := Round(math.Inf(1), 2); !math.IsInf(got, 1) {
		t.Errorf("Round(+Inf, 2) = %v, want +Inf", got)
	}
	if got := Round(math.NaN(), 2); !math.IsNaN(got) {
		t.Errorf("Round(NaN, 2) = %v, want NaN", got)
	}
}

func TestRound_Idempotent(t *testing.T) {
	s := NewSampler(11)
	for i := 0; i < 500; i++ {
		v := Round(s.Uniform(-1000, 1000), 2)
		if again := Round(v, 2); again != v {
			t.Fatalf("Round(Round(x, 2), 2) = %v, want %v", again, v)
		}
	}
}

func TestSampler_Bernoulli(t *testing.T) {
	s := NewSampler(5)

	hits := 0
	for i := 0; i < 4000; i++ {
		if s.Bernoulli(0.25) {
			hits++
		}
		if s.Bernoulli(0) {
			t.Fatal("Bernoulli(0) = true")
		}
		if !s.Bernoulli(1) {
			t.Fatal("Bernoulli(1) = false")
		}
	}
	if hits < 800 || hits > 1200 {
		t.Errorf("Bernoulli(0.25) hit %d of 4000, want about 1000", hits)
	}
}
