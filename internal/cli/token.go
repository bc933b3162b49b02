package cli

import (
	"errors"
	"fmt"

	"github.com/hauskeep/dispatch/internal/keyring"
)

type TokenSetCmd struct {
	Token string `arg:"" help:"Backend API bearer token."`
}

func (c *TokenSetCmd) Run(ctx *Context) error {
	if err := keyring.SetToken(c.Token); err != nil {
		return err
	}
	fmt.Println("API token stored in OS keyring.")
	return nil
}

type TokenShowCmd struct{}

func (c *TokenShowCmd) Run(ctx *Context) error {
	token, err := keyring.GetToken()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No API token stored.")
			return nil
		}
		return err
	}
	// Only enough to confirm which token is active.
	if len(token) > 8 {
		token = token[:4] + "…" + token[len(token)-4:]
	}
	fmt.Printf("API token: %s\n", token)
	return nil
}

type TokenClearCmd struct{}

func (c *TokenClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteToken(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No API token stored.")
			return nil
		}
		return err
	}
	fmt.Println("API token removed from OS keyring.")
	return nil
}
