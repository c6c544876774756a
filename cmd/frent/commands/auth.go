package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"frent-client/internal/models"

	"github.com/spf13/cobra"
)

func newLoginCmd(e *env) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session",
		Long: `Exchange credentials for a session token. The password is read from
standard input when --password is not given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				p, err := readLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = p
			}

			ctx := cmd.Context()
			sess, err := e.app.AuthService.Login(ctx, &models.LoginRequest{Email: email, Password: password})
			if err != nil {
				return err
			}
			if sess, err = e.guard.Login(ctx, sess.Token()); err != nil {
				return err
			}
			// Views cached under an earlier session of this user are stale.
			e.app.Views.InvalidateAll(ctx, sess.Username())

			resp := models.SessionResponse{
				Token:     sess.Token(),
				Username:  sess.Username(),
				Role:      sess.Role(),
				ExpiresAt: sess.ExpiresAt(),
			}
			return e.print.Result(resp, func() {
				e.print.Success("Logged in as %s (%s), session valid until %s",
					resp.Username, resp.Role, resp.ExpiresAt.Local().Format("2006-01-02 15:04"))
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.guard.Logout(cmd.Context()); err != nil {
				return err
			}
			e.print.Success("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := e.session(cmd.Context())
			if err != nil {
				return err
			}
			resp := models.SessionResponse{
				Username:  sess.Username(),
				Role:      sess.Role(),
				ExpiresAt: sess.ExpiresAt(),
			}
			return e.print.Result(resp, func() {
				e.print.Success("%s (%s), session valid until %s",
					resp.Username, resp.Role, resp.ExpiresAt.Local().Format("2006-01-02 15:04"))
			})
		},
	}
}

func newRegisterCmd(e *env) *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				p, err := readLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				req.Password = p
			}

			user, err := e.app.AuthService.Register(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return e.print.Result(user, func() {
				e.print.Success("Account %s created, you can now log in with %s", user.Username, user.Email)
			})
		},
	}

	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email")
	cmd.Flags().StringVar(&req.Username, "username", "", "Username")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (read from stdin when empty)")
	cmd.Flags().StringVar(&req.UserType, "type", "", "Account type: MEMBER, EMPLOYEE or ADMIN")
	for _, name := range []string{"first-name", "last-name", "email", "username"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
