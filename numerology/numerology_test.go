package numerology

import (
	"reflect"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReduce(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0},
		{9, 9},
		{10, 1},
		{29, 11},  // 2+9 hits a master number
		{38, 11},  // 3+8
		{1990, 1}, // 19 -> 10 -> 1
		{11, 11},
		{22, 22},
		{33, 33},
		{-14, 5},
	}
	for _, c := range cases {
		if got := Reduce(c.in); got != c.want {
			t.Fatalf("Reduce(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestLifePath(t *testing.T) {
	// 15 -> 6, May -> 5, 1990 -> 1; 6+5+1 = 12 -> 3
	if got := LifePath(date(1990, time.May, 15)); got != 3 {
		t.Fatalf("LifePath = %d, want 3", got)
	}
	// 29 -> 11 (master), Nov -> 11 (master), 1994 -> 23 -> 5; 11+11+5 = 27 -> 9
	if got := LifePath(date(1994, time.November, 29)); got != 9 {
		t.Fatalf("LifePath = %d, want 9", got)
	}
}

func TestNameNumber(t *testing.T) {
	if got := NameNumber("John"); got != 2 {
		t.Fatalf("NameNumber(John) = %d, want 2", got)
	}
	// case and spacing do not matter
	if NameNumber("ada lovelace") != NameNumber("Ada Lovelace") {
		t.Fatalf("NameNumber should ignore case and non-letters")
	}
	if got := NameNumber("!!!"); got != 0 {
		t.Fatalf("NameNumber of symbols = %d, want 0", got)
	}
}

func TestLoshuGrid(t *testing.T) {
	// 15-05-1990 -> digits 1,5 / 5 / 1,9,9 (zeros skipped)
	g := Loshu(date(1990, time.May, 15))

	if got := g.Count(1); got != 2 {
		t.Fatalf("count(1) = %d, want 2", got)
	}
	if got := g.Count(5); got != 2 {
		t.Fatalf("count(5) = %d, want 2", got)
	}
	if got := g.Count(9); got != 2 {
		t.Fatalf("count(9) = %d, want 2", got)
	}

	want := []int{2, 3, 4, 6, 7, 8}
	if got := g.Missing(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Missing = %v, want %v", got, want)
	}
}

func TestLoshuLayoutIsMagicSquare(t *testing.T) {
	for i := 0; i < 3; i++ {
		row, col := 0, 0
		for j := 0; j < 3; j++ {
			row += Layout(i, j)
			col += Layout(j, i)
		}
		if row != 15 || col != 15 {
			t.Fatalf("row/col %d sums %d/%d, want 15", i, row, col)
		}
	}
	if Layout(0, 0)+Layout(1, 1)+Layout(2, 2) != 15 {
		t.Fatalf("main diagonal does not sum to 15")
	}
}
