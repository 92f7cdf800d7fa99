package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/pwgen-go/internal/clipboard"
	"github.com/vaultpass/pwgen-go/internal/config"
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/model"
	"github.com/vaultpass/pwgen-go/internal/service"
)

var errCount = errors.New("--count must be at least 1")

func newGenerateCmd(cfg config.Config, cb clipboard.Writer) *cobra.Command {
	var (
		length  int
		digits  bool
		symbols bool
		count   int
		copyOut bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print passwords with their strength label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := crypto.ValidateLength(length); err != nil {
				return err
			}
			if count < 1 {
				return errCount
			}

			svc := service.NewGeneratorService(crypto.NewGenerator(cfg.Source()), cfg.Defaults)
			req := model.GenerateRequest{Length: length, Digits: &digits, Symbols: &symbols}

			results := make([]model.GenerateResponse, 0, count)
			for i := 0; i < count; i++ {
				resp, err := svc.Generate(req)
				if err != nil {
					return err
				}
				results = append(results, resp)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					fmt.Fprintf(out, "%s\t%s\n", r.Password, r.Strength)
				}
			}

			if copyOut {
				copier := clipboard.NewCopier(cb, cfg.CopyReset)
				defer copier.Close()
				if err := copier.Copy(results[len(results)-1].Password); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", cfg.Defaults.Length, fmt.Sprintf("password length (%d-%d)", crypto.MinLength, crypto.MaxLength))
	cmd.Flags().BoolVar(&digits, "digits", cfg.Defaults.Digits, "include digits")
	cmd.Flags().BoolVar(&symbols, "symbols", cfg.Defaults.Symbols, "include symbols")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords")
	cmd.Flags().BoolVarP(&copyOut, "copy", "c", false, "copy the last password to the clipboard")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}
