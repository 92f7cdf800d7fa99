package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"strings"
	"sync"
)

const (
	Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	Digits  = "0123456789"
	Symbols = "!@#$%^&*-_+=[]{}~`"

	MinLength     = 4
	MaxLength     = 32
	DefaultLength = 12
)

var ErrLengthOutOfRange = fmt.Errorf("password length must be between %d and %d", MinLength, MaxLength)

// ErrEmptyAlphabet is returned by a Source asked to pick from nothing.
var ErrEmptyAlphabet = errors.New("alphabet is empty")

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length  int  `json:"length"`
	Digits  bool `json:"digits"`
	Symbols bool `json:"symbols"`
}

// DefaultOptions returns the widget defaults: 12 characters with digits and symbols.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:  DefaultLength,
		Digits:  true,
		Symbols: true,
	}
}

// Alphabet returns the characters eligible for the given options.
// Letters are always present, so the result is never empty.
func Alphabet(opts GeneratorOptions) string {
	var b strings.Builder
	b.Grow(len(Letters) + len(Digits) + len(Symbols))
	b.WriteString(Letters)
	if opts.Digits {
		b.WriteString(Digits)
	}
	if opts.Symbols {
		b.WriteString(Symbols)
	}
	return b.String()
}

// Clamp forces n into [MinLength, MaxLength], the way the length slider does.
func Clamp(n int) int {
	return min(max(n, MinLength), MaxLength)
}

// ValidateLength reports whether n is a length the input surface accepts.
func ValidateLength(n int) error {
	if n < MinLength || n > MaxLength {
		return ErrLengthOutOfRange
	}
	return nil
}

// Source picks uniform indexes in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyAlphabet
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// MathSource draws from math/rand. It is not suitable for real secrets and
// exists for the legacy generator behavior and reproducible tests.
// It is safe for concurrent use.
type MathSource struct {
	mu sync.Mutex
	r  *mrand.Rand
}

// NewMathSource returns a MathSource seeded with seed.
func NewMathSource(seed uint64) *MathSource {
	return &MathSource{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *MathSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyAlphabet
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n), nil
}

// Generator produces passwords from a random Source.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator using src, or crypto/rand when src is nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

// Generate builds a password of opts.Length characters, each picked
// independently from Alphabet(opts). Length is not validated; zero or
// negative lengths yield an empty password.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	if opts.Length <= 0 {
		return "", nil
	}

	alphabet := Alphabet(opts)
	result := make([]byte, opts.Length)
	for i := range result {
		idx, err := g.src.Intn(len(alphabet))
		if err != nil {
			return "", fmt.Errorf("pick character %d: %w", i, err)
		}
		result[i] = alphabet[idx]
	}

	return string(result), nil
}

var defaultGenerator = NewGenerator(CryptoSource{})

// Generate creates a password with the crypto/rand backed generator.
func Generate(opts GeneratorOptions) (string, error) {
	return defaultGenerator.Generate(opts)
}
