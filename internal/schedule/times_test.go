package schedule

import (
	"errors"
	"testing"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"00:01", 1},
		{"07:00", 420},
		{"09:30", 570},
		{"12:45", 765},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ToMinutes(tc.in)
		if err != nil {
			t.Errorf("ToMinutes(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestToMinutes_Malformed(t *testing.T) {
	for _, in := range []string{"", "9:00", "24:00", "12:60", "12-30", "ab:cd", "12:3", "012:30"} {
		if _, err := ToMinutes(in); !errors.Is(err, ErrBadTime) {
			t.Errorf("ToMinutes(%q) err = %v, want ErrBadTime", in, err)
		}
	}
}

func TestMinutesToTime_RoundTrip(t *testing.T) {
	for _, m := range []int{0, 1, 420, 570, 765, 1439} {
		s := MinutesToTime(m)
		got, err := ToMinutes(s)
		if err != nil {
			t.Fatalf("ToMinutes(MinutesToTime(%d)) error: %v", m, err)
		}
		if got != m {
			t.Errorf("round trip %d -> %q -> %d", m, s, got)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2024-07-30") {
		t.Error("2024-07-30 should be valid")
	}
	for _, in := range []string{"", "2024-7-30", "30-07-2024", "2024/07/30"} {
		if IsValidDate(in) {
			t.Errorf("IsValidDate(%q) = true, want false", in)
		}
	}
}
