package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"eventhub-cli/account"
	"eventhub-cli/model"
)

func (c *cli) registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Register and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := promptRegistration()
			if err != nil {
				return err
			}
			sessions, closeSessions, err := openSessions(contextOf(cmd), c.cfg)
			if err != nil {
				return err
			}
			defer closeSessions()

			user, err := account.Register(contextOf(cmd), sessions, form, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Регистрация успешна! Добро пожаловать, %s.\n", user.FullName)
			return nil
		},
	}
}

func (c *cli) accountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the stored profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, closeSessions, err := openSessions(contextOf(cmd), c.cfg)
			if err != nil {
				return err
			}
			defer closeSessions()

			user, ok, err := account.Current(contextOf(cmd), sessions)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Нет активной сессии. Выполните eventhub-cli register.")
				return nil
			}
			renderProfile(cmd.OutOrStdout(), user)
			return nil
		},
	}
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, closeSessions, err := openSessions(contextOf(cmd), c.cfg)
			if err != nil {
				return err
			}
			defer closeSessions()

			if err := account.Logout(contextOf(cmd), sessions); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Вы вышли из аккаунта.")
			return nil
		},
	}
}

func renderProfile(out io.Writer, user model.User) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("Личные данные")
	t.AppendRow(table.Row{"ФИО", user.FullName})
	t.AppendRow(table.Row{"Email", user.Email})
	t.AppendRow(table.Row{"Телефон", user.Phone})
	if user.Company != "" {
		t.AppendRow(table.Row{"Компания", user.Company})
	}
	if !user.RegisteredAt.IsZero() {
		t.AppendRow(table.Row{"Дата регистрации", user.RegisteredAt.Local().Format("02.01.2006")})
	}
	t.Render()
}

func promptRegistration() (account.Form, error) {
	var form account.Form
	var err error

	if form.FullName, err = runPrompt("ФИО", validateFullName); err != nil {
		return form, err
	}
	if form.Email, err = runPrompt("Email", validateEmail); err != nil {
		return form, err
	}
	if form.Phone, err = runPrompt("Телефон", validatePhone); err != nil {
		return form, err
	}
	if form.Company, err = runPrompt("Компания (необязательно)", nil); err != nil {
		return form, err
	}

	confirm := promptui.Prompt{
		Label:     "Я согласен на обработку персональных данных",
		IsConfirm: true,
	}
	if _, err := confirm.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return form, errors.New("необходимо согласие на обработку данных")
		}
		return form, err
	}
	form.AgreeToTerms = true
	return form, nil
}

func runPrompt(label string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
	}
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// Prompt validators apply the registration rules one field at a time.

func validateFullName(input string) error {
	return fieldError(account.Form{FullName: input}, account.FieldFullName)
}

func validateEmail(input string) error {
	return fieldError(account.Form{Email: strings.TrimSpace(input)}, account.FieldEmail)
}

func validatePhone(input string) error {
	return fieldError(account.Form{Phone: strings.TrimSpace(input)}, account.FieldPhone)
}

func fieldError(form account.Form, field string) error {
	if msg, ok := form.Validate()[field]; ok {
		return errors.New(msg)
	}
	return nil
}
