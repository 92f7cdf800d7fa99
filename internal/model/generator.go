package model

import "github.com/vaultpass/pwgen-go/internal/crypto"

// GenerateRequest represents a one-off password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length  int   `json:"length"`
	Digits  *bool `json:"digits"`
	Symbols *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string          `json:"password"`
	Length   int             `json:"length"`
	Strength crypto.Label    `json:"strength"`
	Score    float64         `json:"score"`
	Estimate crypto.Estimate `json:"estimate"`
}

// OptionsPatch changes some of the widget options; nil fields are left alone.
type OptionsPatch struct {
	Length  *int  `json:"length"`
	Digits  *bool `json:"digits"`
	Symbols *bool `json:"symbols"`
}

// WidgetState is a snapshot of what the widget displays.
type WidgetState struct {
	Options  crypto.GeneratorOptions `json:"options"`
	Password string                  `json:"password"`
	Strength crypto.Label            `json:"strength"`
	Score    float64                 `json:"score"`
	Estimate crypto.Estimate         `json:"estimate"`
	Copied   bool                    `json:"copied"`
}
