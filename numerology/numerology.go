// Package numerology holds the only locally computed readings logic:
// digit-sum reductions and the Loshu grid layout. Everything else in a
// reading comes back from the generative model.
package numerology

import (
	"time"
	"unicode"
)

// Grid is the 3x3 Loshu layout. Each cell counts how often its fixed
// number occurs in the subject's birth-date digits.
type Grid [3][3]int

// loshuLayout is the classic magic square: every row, column and diagonal
// sums to 15.
var loshuLayout = [3][3]int{
	{4, 9, 2},
	{3, 5, 7},
	{8, 1, 6},
}

// Layout returns the fixed number for a grid cell.
func Layout(row, col int) int { return loshuLayout[row][col] }

// Reduce sums digits repeatedly until a single digit remains, preserving
// the master numbers 11, 22 and 33.
func Reduce(n int) int {
	if n < 0 {
		n = -n
	}
	for n > 9 {
		if n == 11 || n == 22 || n == 33 {
			return n
		}
		s := 0
		for n > 0 {
			s += n % 10
			n /= 10
		}
		n = s
	}
	return n
}

// LifePath reduces the full birth date (day, month and year reduced
// separately, then the sum) to the life-path number.
func LifePath(birth time.Time) int {
	d := Reduce(birth.Day())
	m := Reduce(int(birth.Month()))
	y := Reduce(birth.Year())
	return Reduce(d + m + y)
}

// BirthNumber is the reduced day of the month.
func BirthNumber(birth time.Time) int {
	return Reduce(birth.Day())
}

// pythagorean maps A..Z to 1..9 cyclically.
func pythagorean(r rune) int {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return 0
	}
	return int(r-'A')%9 + 1
}

// NameNumber reduces the Pythagorean letter values of name. Non-letters
// are ignored; an empty or all-symbol name yields 0.
func NameNumber(name string) int {
	sum := 0
	for _, r := range name {
		sum += pythagorean(r)
	}
	if sum == 0 {
		return 0
	}
	return Reduce(sum)
}

// Loshu builds the grid from every digit of the birth date written as
// DDMMYYYY. Zeros have no cell and are skipped.
func Loshu(birth time.Time) Grid {
	var g Grid
	digits := func(n int) {
		if n == 0 {
			return
		}
		for n > 0 {
			g.add(n % 10)
			n /= 10
		}
	}
	digits(birth.Day())
	digits(int(birth.Month()))
	digits(birth.Year())
	return g
}

func (g *Grid) add(digit int) {
	if digit == 0 {
		return
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if loshuLayout[r][c] == digit {
				g[r][c]++
				return
			}
		}
	}
}

// Count returns how many times digit occurs in the grid.
func (g Grid) Count(digit int) int {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if loshuLayout[r][c] == digit {
				return g[r][c]
			}
		}
	}
	return 0
}

// Missing lists the numbers 1..9 absent from the grid, ascending.
func (g Grid) Missing() []int {
	var out []int
	for d := 1; d <= 9; d++ {
		if g.Count(d) == 0 {
			out = append(out, d)
		}
	}
	return out
}
