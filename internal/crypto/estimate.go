package crypto

import zxcvbn "github.com/ccojocar/zxcvbn-go"

// Estimate is a zxcvbn assessment shown alongside the heuristic label.
type Estimate struct {
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crack_time"`
}

// EstimateStrength runs zxcvbn over password. Empty input yields the zero Estimate.
func EstimateStrength(password string) Estimate {
	if password == "" {
		return Estimate{}
	}
	result := zxcvbn.PasswordStrength(password, nil)
	return Estimate{
		Score:     result.Score,
		Entropy:   result.Entropy,
		CrackTime: result.CrackTimeDisplay,
	}
}
