package cli

import (
	"context"
	"errors"
	"os"

	"github.com/vrocha/admincli/internal/client/form"
	"github.com/vrocha/admincli/internal/client/models"
	"github.com/vrocha/admincli/internal/client/validation"
)

// New opens the form in create mode and runs it to completion.
func (a *App) New(ctx context.Context) error {
	a.form.Open(form.ModeCreate, nil)
	return a.runForm(ctx)
}

// Edit fetches the record, opens the form in edit mode prefilled with it
// (password always blank) and runs it to completion.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Informe o ID do usuário")
	if err != nil {
		return err
	}

	user, err := a.users.GetByID(ctx, id)
	if err != nil {
		printlnFn("Erro ao buscar usuário:", err.Error())
		return err
	}

	a.form.Open(form.ModeEdit, user)
	return a.runForm(ctx)
}

// runForm collects the candidate record, submits it, and on failure offers
// another attempt with the typed input preserved. Success and root-level
// errors are reported through the controller callbacks; field-level errors
// are printed here, aligned to the field names.
func (a *App) runForm(ctx context.Context) error {
	for {
		in, err := a.collectInput()
		if err != nil {
			a.form.Close()
			return err
		}

		err = a.form.Submit(ctx, in)
		if err == nil {
			return nil
		}

		var verr *validation.Error
		if errors.As(err, &verr) {
			for _, fe := range verr.Fields {
				printlnFn("  " + fe.Field + ": " + fe.Message)
			}
		}

		again, perr := getSimpleText(a.reader, "Tentar novamente? (s/N)", os.Stdout)
		if perr != nil || !isYes(again) {
			a.form.Close()
			return err
		}
	}
}

// collectInput prompts for each field. In edit mode the current values are
// offered as defaults and a blank password means "leave unchanged".
func (a *App) collectInput() (models.UserInput, error) {
	cand := a.form.Candidate()
	edit := a.form.Mode() == form.ModeEdit

	name, err := getTextWithDefault(a.reader, "Nome completo", cand.Name, os.Stdout)
	if err != nil {
		return models.UserInput{}, err
	}
	email, err := getTextWithDefault(a.reader, "Email", cand.Email, os.Stdout)
	if err != nil {
		return models.UserInput{}, err
	}
	cpf, err := getTextWithDefault(a.reader, "CPF", cand.CPF, os.Stdout)
	if err != nil {
		return models.UserInput{}, err
	}

	prompt := "Senha: "
	if edit {
		prompt = "Senha (deixe em branco para manter): "
	}
	password, err := getPassword(prompt, os.Stdout)
	if err != nil {
		return models.UserInput{}, err
	}

	return models.UserInput{
		ID:       cand.ID,
		Name:     name,
		Email:    email,
		CPF:      cpf,
		Password: password,
	}, nil
}
