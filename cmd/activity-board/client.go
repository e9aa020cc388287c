package main

import (
	"errors"
	"fmt"
	"io"
	"net/mail"

	"github.com/spf13/cobra"

	"activity-board/internal/model"
	"activity-board/internal/render"
	"activity-board/internal/service"
)

// errOperationFailed возвращается командой, если API отклонил операцию: текст уже выведен баннером.
var errOperationFailed = errors.New("operation failed")

func listCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print activities and their participants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configFile)
			if err != nil {
				return err
			}
			sess := newCLISession()
			view := a.board.FetchActivities(cmd.Context(), sess)
			if err := render.RenderText(cmd.OutOrStdout(), view); err != nil {
				return err
			}
			if view.LoadFailed {
				return errOperationFailed
			}
			return nil
		},
	}
}

func signupCmd(configFile *string) *cobra.Command {
	var activity, email string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Sign a student up for an activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateEmail(email); err != nil {
				return err
			}
			a, err := newApp(*configFile)
			if err != nil {
				return err
			}
			sess := newCLISession()
			out := a.board.Signup(cmd.Context(), sess, model.SignupForm{Email: email, Activity: activity})
			return report(cmd.OutOrStdout(), sess, out)
		},
	}
	cmd.Flags().StringVarP(&activity, "activity", "a", "", "activity name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "student email")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func removeCmd(configFile *string) *cobra.Command {
	var activity, email string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a participant from an activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configFile)
			if err != nil {
				return err
			}
			sess := newCLISession()
			out := a.board.Remove(cmd.Context(), sess, activity, email)
			return report(cmd.OutOrStdout(), sess, out)
		},
	}
	cmd.Flags().StringVarP(&activity, "activity", "a", "", "activity name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "participant email")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// newCLISession создаёт одноразовую сессию: баннер в терминале не скрывается по таймеру.
func newCLISession() *service.Session {
	sess, _ := service.NewSessionStore(0, 0).Get("")
	return sess
}

// report печатает баннер и, если операция прошла, обновлённую доску.
func report(w io.Writer, sess *service.Session, out service.Outcome) error {
	view := sess.View()
	if !out.Success {
		fmt.Fprintf(w, "[%s] %s\n", view.Banner.Kind, view.Banner.Text)
		return errOperationFailed
	}
	return render.RenderText(w, view)
}

// validateEmail заменяет проверку input type=email, которой у терминала нет.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email %q", email)
	}
	return nil
}
