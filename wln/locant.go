package wln

// Locant numbering: a value in 1..N for a ring of size N, encoded
// externally as letters with '&' expansions. A=1 .. W=23, X=24, Y=25,
// Z=26, and a trailing run of k '&' characters after Z adds k: Z& = 27,
// Z&& = 28, and so on — an unbounded letter+ampersand form that extends
// past a single byte's worth of locants.
//
// Broken (off-path) locants reserve the numeric range >=128 and are
// written as dashes/ampersands in a 6-child tree rooted at a parent
// locant.

// EncodeLocant renders a locant (1-based ring position, or a broken
// locant >=128) to its external letter form.
func EncodeLocant(n int) string {
	if n >= brokenLocantBase {
		return encodeBrokenLocant(n)
	}
	if n <= 0 {
		return ""
	}
	if n <= 26 {
		return string([]byte{byte('A' + n - 1)})
	}
	// 24=X, 25=Y, 26=Z, then trailing '&' for each 27+ step.
	amps := n - 26
	buf := make([]byte, 0, 1+amps)
	buf = append(buf, 'Z')
	for i := 0; i < amps; i++ {
		buf = append(buf, '&')
	}
	return string(buf)
}

// DecodeLocant parses a letter (with trailing '&' run) back to its
// numeric locant. ok is false on a malformed string.
func DecodeLocant(s string) (n int, ok bool) {
	if len(s) == 0 {
		return 0, false
	}
	ch := s[0]
	if ch < 'A' || ch > 'Z' {
		return 0, false
	}
	if ch < 'X' {
		if len(s) != 1 {
			return 0, false
		}
		return int(ch-'A') + 1, true
	}
	amps := 0
	for i := 1; i < len(s); i++ {
		if s[i] != '&' {
			return 0, false
		}
		amps++
	}
	base := int(ch-'A') + 1 // X=24, Y=25, Z=26
	if ch != 'Z' && amps > 0 {
		return 0, false // only Z extends via '&'
	}
	return base + amps, true
}

// brokenLocantBase is the numeric floor for off-path atoms: a separate
// numeric range starting at 128, kept clear of every normal 1..N locant.
const brokenLocantBase = 128

// BrokenLocantChild computes the numeric locant for the i'th (0..5) child
// hung off parent under the fixed 6-way tree:
//
//	child 0 = parent + "-"     child 3 = parent + "--&"
//	child 1 = parent + "-&"    child 4 = parent + "-&-"
//	child 2 = parent + "--"    child 5 = parent + "-&&"
func BrokenLocantChild(parent, i int) int {
	return brokenLocantBase + parent*6 + i
}

// brokenLocantSuffixes is the fixed 6-way broken-locant tree notation.
var brokenLocantSuffixes = [6]string{"-", "-&", "--", "--&", "-&-", "-&&"}

// encodeBrokenLocant renders a broken-locant numeric value as
// "<parent-letter><suffix>", inverting BrokenLocantChild.
func encodeBrokenLocant(n int) string {
	rel := n - brokenLocantBase
	parent := rel / 6
	child := rel % 6
	return EncodeLocant(parent) + brokenLocantSuffixes[child]
}

// IsBrokenLocant reports whether n is an off-path (broken) locant.
func IsBrokenLocant(n int) bool {
	return n >= brokenLocantBase
}
