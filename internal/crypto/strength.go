package crypto

// Label is the qualitative strength of a password.
type Label string

const (
	Weak   Label = "Weak"
	Medium Label = "Medium"
	Strong Label = "Strong"
)

const (
	lengthWeight     = 50.0
	lengthSaturation = 20.0
	varietyWeight    = 30.0
	varietyClasses   = 4.0
	uniqueWeight     = 20.0

	mediumThreshold = 40.0
	strongThreshold = 70.0
)

// Score rates a password on a 0-100 scale from its length, the number of
// character classes it uses and the share of distinct characters.
// An empty password scores 0.
func Score(password string) float64 {
	chars := []rune(password)
	n := len(chars)
	if n == 0 {
		return 0
	}

	score := min(lengthWeight, float64(n)*lengthWeight/lengthSaturation)
	score += float64(VarietyCount(password)) * varietyWeight / varietyClasses

	seen := make(map[rune]struct{}, n)
	for _, c := range chars {
		seen[c] = struct{}{}
	}
	score += min(uniqueWeight, float64(len(seen))*uniqueWeight/float64(n))

	return score
}

// VarietyCount returns how many of lowercase, uppercase, digit and
// non-alphanumeric characters appear in password.
func VarietyCount(password string) int {
	var lower, upper, digit, other bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		default:
			other = true
		}
	}

	count := 0
	for _, present := range []bool{lower, upper, digit, other} {
		if present {
			count++
		}
	}
	return count
}

// LabelFor maps a score to its label.
func LabelFor(score float64) Label {
	switch {
	case score < mediumThreshold:
		return Weak
	case score < strongThreshold:
		return Medium
	default:
		return Strong
	}
}

// Classify returns the strength label of password.
func Classify(password string) Label {
	return LabelFor(Score(password))
}
