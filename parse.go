package meshview

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	vertexMarker = "v "
	faceMarker   = "f "
)

func isVertexLine(line string) bool {
	return strings.HasPrefix(line, vertexMarker)
}

func isFaceLine(line string) bool {
	return strings.HasPrefix(line, faceMarker)
}

// parseVertexLine reads up to three coordinates after the "v " marker the
// way sscanf("%c %lf %lf %lf") does: each number starts right where the last
// one stopped (after any whitespace), and the first failed conversion ends
// the line. Coordinates that were not read stay zero, so "v 1.5.6 2 3"
// reads (1.5, 0.6, 2) and "v 1,5 2 3" reads (1, 0, 0).
func parseVertexLine(line string) mgl64.Vec3 {
	var v mgl64.Vec3
	rest := line[len(vertexMarker):]
	for axis := 0; axis < 3; axis++ {
		rest = strings.TrimLeft(rest, " \t\n\v\f\r")
		f, n := scanFloat(rest)
		if n == 0 {
			break
		}
		v[axis] = f
		rest = rest[n:]
	}
	return v
}

// parseFaceLine splits a face line on whitespace. slots is the number of
// tokens after the marker; indices holds the tokens whose leading number
// truncates to a positive integer, in order. Tokens such as "7/1/3" keep
// their leading vertex index, tokens that truncate to zero or below are
// dropped.
func parseFaceLine(line string) (slots int, indices []int) {
	tokens := strings.Fields(line)
	slots = len(tokens) - 1
	if slots < 0 {
		slots = 0
	}
	indices = make([]int, 0, slots)
	for _, tok := range tokens {
		if idx := faceIndex(tok); idx > 0 {
			indices = append(indices, idx)
		}
	}
	return slots, indices
}

func faceIndex(tok string) int {
	f, ok := parseFloatPrefix(tok)
	if !ok || math.IsNaN(f) || f < 1 || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// parseFloatPrefix parses the longest leading floating point number in s,
// the way C's strtod does for ordinary input ("1.5e3xyz" -> 1500).
func parseFloatPrefix(s string) (float64, bool) {
	f, n := scanFloat(s)
	return f, n > 0
}

// scanFloat parses the longest leading decimal number, "inf", "infinity" or
// "nan" (any case, optional sign) at the start of s and returns it with the
// number of bytes consumed. n is 0 when s does not start with a number.
func scanFloat(s string) (f float64, n int) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for _, word := range []string{"infinity", "inf", "nan"} {
		if len(s)-i >= len(word) && strings.EqualFold(s[i:i+len(word)], word) {
			end := i + len(word)
			if word == "nan" {
				return math.NaN(), end
			}
			f, _ := strconv.ParseFloat(s[:end], 64)
			return f, end
		}
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			end = j
		}
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// out of range: ParseFloat still returns the signed infinity or zero
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return f, end
		}
		return 0, 0
	}
	return f, end
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
