package cli

import (
	"context"
	"errors"
	"os"

	"github.com/vrocha/admincli/internal/client/validation"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
)

// Login prompts for credentials and signs in through the session. Schema
// violations are printed next to the offending field; gateway failures are
// printed with the server-supplied message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Senha: ", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			for _, fe := range verr.Fields {
				printlnFn("  " + fe.Field + ": " + fe.Message)
			}
			return err
		}
		printlnFn("Falha no login:", err.Error())
		return err
	}

	printlnFn("Login efetuado com sucesso!")
	return nil
}

// Logout signs out and drops the stored token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("Falha ao sair:", err.Error())
		return err
	}
	printlnFn("Sessão encerrada.")
	return nil
}
