package cli

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/vrocha/admincli/internal/client/models"
)

var errInvalidID = errors.New("ID inválido")

// List prints one page of users. An optional argument selects the page
// (1-based, default 1).
func (a *App) List(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			page = n
		}
	}

	users, err := a.users.ListPaged(ctx, page, a.config.PageSize)
	if err != nil {
		printlnFn("Erro ao buscar usuários:", err.Error())
		return err
	}

	if len(users) == 0 {
		printlnFn("Nenhum usuário encontrado.")
		return nil
	}
	for _, u := range users {
		printlnFn(formatUser(u))
	}
	return nil
}

// Show prints a single user by id.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Informe o ID do usuário")
	if err != nil {
		return err
	}

	user, err := a.users.GetByID(ctx, id)
	if err != nil {
		printlnFn("Erro ao buscar usuário:", err.Error())
		return err
	}
	printlnFn(formatUser(*user))
	return nil
}

// Delete removes a user after an explicit confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Informe o ID do usuário")
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, "Tem certeza que deseja excluir o usuário "+id+"? (s/N)", os.Stdout)
	if err != nil {
		return err
	}
	if !isYes(answer) {
		printlnFn("Exclusão cancelada.")
		return nil
	}

	if err := a.users.Delete(ctx, id); err != nil {
		printlnFn("Erro ao deletar usuário:", err.Error())
		return err
	}
	printlnFn("Usuário excluído.")
	return nil
}

// argOrPrompt takes the first argument when present, otherwise prompts.
// The result is normalized through models.ParseID.
func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		line, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return "", err
		}
		raw = line
	}

	id, ok := models.ParseID(raw)
	if !ok {
		printlnFn("ID inválido.")
		return "", errInvalidID
	}
	return id, nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}
