package crypto

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		opts GeneratorOptions
	}{
		{name: "default options", opts: DefaultOptions()},
		{name: "letters only", opts: GeneratorOptions{Length: 16}},
		{name: "digits only", opts: GeneratorOptions{Length: 16, Digits: true}},
		{name: "symbols only", opts: GeneratorOptions{Length: 16, Symbols: true}},
		{name: "minimum length", opts: GeneratorOptions{Length: MinLength, Digits: true, Symbols: true}},
		{name: "maximum length", opts: GeneratorOptions{Length: MaxLength, Digits: true, Symbols: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.opts.Length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.opts.Length)
			}
		})
	}
}

func TestGenerateEveryValidLength(t *testing.T) {
	alphabetCases := []GeneratorOptions{
		{},
		{Digits: true},
		{Symbols: true},
		{Digits: true, Symbols: true},
	}

	for _, base := range alphabetCases {
		alphabet := Alphabet(base)
		for length := MinLength; length <= MaxLength; length++ {
			opts := base
			opts.Length = length

			password, err := Generate(opts)
			if err != nil {
				t.Fatalf("Generate(%+v) unexpected error: %v", opts, err)
			}
			if len(password) != length {
				t.Fatalf("Generate(%+v) length = %d", opts, len(password))
			}
			for _, ch := range password {
				if !strings.ContainsRune(alphabet, ch) {
					t.Fatalf("Generate(%+v) produced %q outside alphabet", opts, ch)
				}
			}
		}
	}
}

func TestGenerateRespectsDisabledSets(t *testing.T) {
	tests := []struct {
		name      string
		opts      GeneratorOptions
		forbidden string
	}{
		{name: "no digits", opts: GeneratorOptions{Length: 32, Symbols: true}, forbidden: Digits},
		{name: "no symbols", opts: GeneratorOptions{Length: 32, Digits: true}, forbidden: Symbols},
		{name: "letters only", opts: GeneratorOptions{Length: 32}, forbidden: Digits + Symbols},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				password, err := Generate(tt.opts)
				if err != nil {
					t.Fatalf("Generate() unexpected error: %v", err)
				}
				if strings.ContainsAny(password, tt.forbidden) {
					t.Fatalf("password %q contains a disabled character", password)
				}
			}
		})
	}
}

func TestGenerateNonPositiveLength(t *testing.T) {
	for _, length := range []int{0, -1, -32} {
		password, err := Generate(GeneratorOptions{Length: length, Digits: true})
		if err != nil {
			t.Errorf("Generate(length=%d) unexpected error: %v", length, err)
		}
		if password != "" {
			t.Errorf("Generate(length=%d) = %q, want empty", length, password)
		}
	}
}

func TestGenerateIgnoresRange(t *testing.T) {
	password, err := Generate(GeneratorOptions{Length: 64})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(password) != 64 {
		t.Errorf("Generate() length = %d, want 64", len(password))
	}
}

func TestAlphabet(t *testing.T) {
	tests := []struct {
		name string
		opts GeneratorOptions
		want int
	}{
		{name: "letters", opts: GeneratorOptions{}, want: 52},
		{name: "digits", opts: GeneratorOptions{Digits: true}, want: 62},
		{name: "symbols", opts: GeneratorOptions{Symbols: true}, want: 70},
		{name: "everything", opts: GeneratorOptions{Digits: true, Symbols: true}, want: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Alphabet(tt.opts)
			if len(got) != tt.want {
				t.Errorf("len(Alphabet()) = %d, want %d", len(got), tt.want)
			}
			if !strings.HasPrefix(got, Letters) {
				t.Errorf("Alphabet() = %q, must start with the letter set", got)
			}
		})
	}

	if len(Symbols) != 18 {
		t.Errorf("len(Symbols) = %d, want 18", len(Symbols))
	}
}

func TestClampAndValidate(t *testing.T) {
	tests := []struct {
		in      int
		clamped int
		valid   bool
	}{
		{in: -5, clamped: MinLength},
		{in: 3, clamped: MinLength},
		{in: 4, clamped: 4, valid: true},
		{in: 12, clamped: 12, valid: true},
		{in: 32, clamped: 32, valid: true},
		{in: 33, clamped: MaxLength},
	}

	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.clamped {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.clamped)
		}
		err := ValidateLength(tt.in)
		if tt.valid && err != nil {
			t.Errorf("ValidateLength(%d) unexpected error: %v", tt.in, err)
		}
		if !tt.valid && err != ErrLengthOutOfRange {
			t.Errorf("ValidateLength(%d) error = %v, want %v", tt.in, err, ErrLengthOutOfRange)
		}
	}
}

type sequenceSource struct {
	next []int
}

func (s *sequenceSource) Intn(n int) (int, error) {
	v := s.next[0] % n
	s.next = s.next[1:]
	return v, nil
}

type failingSource struct{}

var errEntropy = errors.New("entropy exhausted")

func (failingSource) Intn(int) (int, error) { return 0, errEntropy }

func TestGeneratorUsesSource(t *testing.T) {
	g := NewGenerator(&sequenceSource{next: []int{0, 26, 52, 62}})
	password, err := g.Generate(GeneratorOptions{Length: 4, Digits: true, Symbols: true})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if password != "Aa0!" {
		t.Errorf("Generate() = %q, want %q", password, "Aa0!")
	}
}

func TestGeneratorSourceError(t *testing.T) {
	g := NewGenerator(failingSource{})
	password, err := g.Generate(DefaultOptions())
	if !errors.Is(err, errEntropy) {
		t.Fatalf("Generate() error = %v, want %v", err, errEntropy)
	}
	if password != "" {
		t.Error("Generate() should return empty string on error")
	}
}

func TestMathSourceIsReproducible(t *testing.T) {
	a, err := NewGenerator(NewMathSource(42)).Generate(DefaultOptions())
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	b, err := NewGenerator(NewMathSource(42)).Generate(DefaultOptions())
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}

func TestMathSourceConcurrentUse(t *testing.T) {
	g := NewGenerator(NewMathSource(1))
	opts := GeneratorOptions{Length: MaxLength, Digits: true, Symbols: true}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				password, err := g.Generate(opts)
				if err != nil {
					t.Errorf("Generate() unexpected error: %v", err)
					return
				}
				if len(password) != MaxLength {
					t.Errorf("Generate() length = %d, want %d", len(password), MaxLength)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestSourcesRejectEmptyRange(t *testing.T) {
	if _, err := (CryptoSource{}).Intn(0); err != ErrEmptyAlphabet {
		t.Errorf("CryptoSource.Intn(0) error = %v, want %v", err, ErrEmptyAlphabet)
	}
	if _, err := NewMathSource(1).Intn(0); err != ErrEmptyAlphabet {
		t.Errorf("MathSource.Intn(0) error = %v, want %v", err, ErrEmptyAlphabet)
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	opts := GeneratorOptions{Length: MaxLength, Digits: true, Symbols: true}
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}
