package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/vaultpass/pwgen-go/internal/clipboard"
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/model"
)

// Widget owns the generator form state: the options, the current password
// and the copy indicator. Every option change regenerates the password.
// Strength is derived from the password on read and never stored.
type Widget struct {
	mu       sync.Mutex
	gen      *crypto.Generator
	copier   *clipboard.Copier
	opts     crypto.GeneratorOptions
	password string
}

// NewWidget creates a Widget and generates its first password.
func NewWidget(gen *crypto.Generator, copier *clipboard.Copier, opts crypto.GeneratorOptions) (*Widget, error) {
	if err := crypto.ValidateLength(opts.Length); err != nil {
		return nil, err
	}
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	if copier == nil {
		copier = clipboard.NewCopier(nil, clipboard.DefaultResetAfter)
	}

	w := &Widget{gen: gen, copier: copier, opts: opts}
	if err := w.regenerateLocked(); err != nil {
		return nil, err
	}
	return w, nil
}

// State returns what the widget currently displays.
func (w *Widget) State() model.WidgetState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

// Options returns the current generation options.
func (w *Widget) Options() crypto.GeneratorOptions {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.opts
}

// SetOptions applies patch and regenerates. An out of range length rejects
// the whole patch.
func (w *Widget) SetOptions(patch model.OptionsPatch) (model.WidgetState, error) {
	return w.update(func(o *crypto.GeneratorOptions) error {
		if patch.Length != nil {
			if err := crypto.ValidateLength(*patch.Length); err != nil {
				return err
			}
			o.Length = *patch.Length
		}
		if patch.Digits != nil {
			o.Digits = *patch.Digits
		}
		if patch.Symbols != nil {
			o.Symbols = *patch.Symbols
		}
		return nil
	})
}

// SetLength clamps n into the slider range and regenerates.
func (w *Widget) SetLength(n int) (model.WidgetState, error) {
	return w.update(func(o *crypto.GeneratorOptions) error {
		o.Length = crypto.Clamp(n)
		return nil
	})
}

// ToggleDigits flips the digits option and regenerates.
func (w *Widget) ToggleDigits() (model.WidgetState, error) {
	return w.update(func(o *crypto.GeneratorOptions) error {
		o.Digits = !o.Digits
		return nil
	})
}

// ToggleSymbols flips the symbols option and regenerates.
func (w *Widget) ToggleSymbols() (model.WidgetState, error) {
	return w.update(func(o *crypto.GeneratorOptions) error {
		o.Symbols = !o.Symbols
		return nil
	})
}

// update edits a copy of the options; they are committed only when fn and
// the regeneration both succeed.
func (w *Widget) update(fn func(*crypto.GeneratorOptions) error) (model.WidgetState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	prev := w.opts
	next := w.opts
	if err := fn(&next); err != nil {
		return model.WidgetState{}, err
	}

	w.opts = next
	if err := w.regenerateLocked(); err != nil {
		w.opts = prev
		return model.WidgetState{}, err
	}
	return w.stateLocked(), nil
}

// Regenerate replaces the password using the current options.
func (w *Widget) Regenerate() (model.WidgetState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.regenerateLocked(); err != nil {
		return model.WidgetState{}, err
	}
	return w.stateLocked(), nil
}

// Copy puts the current password on the clipboard. The lock is held
// across the write so the returned state names the password that was copied.
func (w *Widget) Copy() (model.WidgetState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	err := w.copier.Copy(w.password)
	return w.stateLocked(), err
}

// Close cancels the pending copy indicator revert.
func (w *Widget) Close() {
	w.copier.Close()
}

func (w *Widget) regenerateLocked() error {
	password, err := w.gen.Generate(w.opts)
	if err != nil {
		return fmt.Errorf("generate password: %w", err)
	}
	w.password = password
	slog.Debug("password regenerated", "length", w.opts.Length, "digits", w.opts.Digits, "symbols", w.opts.Symbols)
	return nil
}

func (w *Widget) stateLocked() model.WidgetState {
	score := crypto.Score(w.password)
	return model.WidgetState{
		Options:  w.opts,
		Password: w.password,
		Strength: crypto.LabelFor(score),
		Score:    score,
		Estimate: crypto.EstimateStrength(w.password),
		Copied:   w.copier.Copied(),
	}
}
