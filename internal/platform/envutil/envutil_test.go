package envutil

import (
	"reflect"
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", 3 * time.Second},
		{"10s", 10 * time.Second},
		{"45", 45 * time.Second},
		{"garbage", 3 * time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			t.Setenv("MINDEASE_TEST_DURATION", tc.raw)
			if got := Duration("MINDEASE_TEST_DURATION", 3*time.Second); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestIntAndBool(t *testing.T) {
	t.Setenv("MINDEASE_TEST_INT", "x")
	if got := Int("MINDEASE_TEST_INT", 7); got != 7 {
		t.Fatalf("bad int should fall back, got %d", got)
	}
	t.Setenv("MINDEASE_TEST_BOOL", "On")
	if !Bool("MINDEASE_TEST_BOOL", false) {
		t.Fatalf("expected true")
	}
}

func TestCSV(t *testing.T) {
	t.Setenv("MINDEASE_TEST_CSV", " a, ,b ,")
	if got := CSV("MINDEASE_TEST_CSV", nil); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("got %v", got)
	}
}
