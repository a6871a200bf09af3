package main

import (
	"strings"
)

const (
	mulPrefix  = "mul("
	doMarker   = "do()"
	dontMarker = "don't()"
)

// parseMul parses a mul(a,b) instruction at the start of s, where a and b
// have one to three digits. It returns a*b and the length of the
// instruction. Anything else is not an instruction and ok is false.
func parseMul(s string) (product, n int, ok bool) {
	rest, ok := strings.CutPrefix(s, mulPrefix)
	if !ok {
		return 0, 0, false
	}
	a, rest, ok := operand(rest)
	if !ok {
		return 0, 0, false
	}
	if rest, ok = strings.CutPrefix(rest, ","); !ok {
		return 0, 0, false
	}
	b, rest, ok := operand(rest)
	if !ok {
		return 0, 0, false
	}
	if rest, ok = strings.CutPrefix(rest, ")"); !ok {
		return 0, 0, false
	}
	return a * b, len(s) - len(rest), true
}

// operand parses up to three leading ASCII digits of s.
func operand(s string) (v int, rest string, ok bool) {
	i := 0
	for ; i < len(s) && i < 3 && '0' <= s[i] && s[i] <= '9'; i++ {
		v = v*10 + int(s[i]-'0')
	}
	return v, s[i:], i > 0
}

type mulState int

const (
	enabled mulState = iota
	disabled
)

func (st mulState) String() string {
	switch st {
	case enabled:
		return "enabled"
	case disabled:
		return "disabled"
	}
	return "unknown"
}

// sumMuls sums the products of the mul instructions in text, left to right.
// If conditional is set, don't() disables the instructions that follow it
// until the next do().
func sumMuls(text string, conditional bool) int {
	starts := "m"
	if conditional {
		starts = "md"
	}
	state := enabled
	var sum int
	for i := 0; i < len(text); {
		j := strings.IndexAny(text[i:], starts)
		if j < 0 {
			break
		}
		i += j
		rest := text[i:]
		switch {
		case strings.HasPrefix(rest, mulPrefix):
			product, n, ok := parseMul(rest)
			if !ok {
				i += len(mulPrefix)
				continue
			}
			if state == enabled {
				sum += product
			}
			i += n
		case conditional && strings.HasPrefix(rest, dontMarker):
			state = disabled
			i += len(dontMarker)
		case conditional && strings.HasPrefix(rest, doMarker):
			state = enabled
			i += len(doMarker)
		default:
			i++
		}
	}
	return sum
}

// enabledSpans splits text into the spans where mul instructions are
// enabled. Each span after the first starts with the do() that enabled it.
func enabledSpans(text string) []string {
	var spans []string
	state := enabled
	start := 0
	for i := 0; i < len(text); {
		j := strings.IndexByte(text[i:], 'd')
		if j < 0 {
			break
		}
		i += j
		switch rest := text[i:]; {
		case strings.HasPrefix(rest, dontMarker):
			if state == enabled {
				spans = append(spans, text[start:i])
				state = disabled
			}
			i += len(dontMarker)
		case strings.HasPrefix(rest, doMarker):
			if state == disabled {
				start = i
				state = enabled
			}
			i += len(doMarker)
		default:
			i++
		}
	}
	if state == enabled {
		spans = append(spans, text[start:])
	}
	return spans
}

/*
want=161

xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))
*/
func (s solver) D3p1() any {
	return sumMuls(s.Text(), false)
}

/*
want=48

xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))
*/
func (s solver) D3p2() any {
	text := s.Text()
	spans := enabledSpans(text)
	var n int
	for _, sp := range spans {
		n += len(sp)
	}
	s.Logf("Enabled spans: %d (%d of %d bytes)", len(spans), n, len(text))
	s.Debugf("%q", spans)
	return sumMuls(text, true)
}
