package service

import (
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/model"
)

// GeneratorService handles one-off password generation.
type GeneratorService struct {
	gen      *crypto.Generator
	defaults crypto.GeneratorOptions
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(gen *crypto.Generator, defaults crypto.GeneratorOptions) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{gen: gen, defaults: defaults}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:  req.Length,
		Digits:  boolOrDefault(req.Digits, s.defaults.Digits),
		Symbols: boolOrDefault(req.Symbols, s.defaults.Symbols),
	}

	if opts.Length == 0 {
		opts.Length = s.defaults.Length
	}
	if err := crypto.ValidateLength(opts.Length); err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	score := crypto.Score(password)
	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: crypto.LabelFor(score),
		Score:    score,
		Estimate: crypto.EstimateStrength(password),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
