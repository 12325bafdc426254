package cli

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/gerich15/TemplateHub/internal/client/session"
	"github.com/spf13/cobra"
)

// AuthOptions holds flags shared by register and login.
type AuthOptions struct {
	*RootOptions
	Email    string
	Password string
}

func (o *AuthOptions) password(cmd *cobra.Command) (string, error) {
	if o.Password != "" {
		return o.Password, nil
	}
	pw, err := GetPassword(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if pw == "" {
		return "", errors.New("password must not be empty")
	}
	return pw, nil
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AuthOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Email == "" {
				email, err := GetSimpleText(bufio.NewReader(cmd.InOrStdin()), "Email", cmd.OutOrStdout())
				if err != nil {
					return fmt.Errorf("read email: %w", err)
				}
				opts.Email = email
			}
			pw, err := opts.password(cmd)
			if err != nil {
				return err
			}

			c, err := opts.connect(false)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := opts.callContext(cmd.Context())
			defer cancel()

			id, err := c.client.Register(ctx, args[0], opts.Email, pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (id %d). Run `templatehub login %s` to sign in.\n", args[0], id, args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Email, "email", "e", "", "email address")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "password (prompted when omitted)")

	return cmd
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AuthOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "login <username|email>",
		Short: "Sign in and remember the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := opts.password(cmd)
			if err != nil {
				return err
			}

			c, err := opts.connect(false)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := opts.callContext(cmd.Context())
			defer cancel()

			tokens, err := c.client.Login(ctx, args[0], pw)
			if err != nil {
				return err
			}
			if err := c.store.Save(&session.Session{Login: args[0], Tokens: tokens}); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "password (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rootOpts.connect(false)
			if err != nil {
				return err
			}
			defer c.Close()

			if c.session == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}

			ctx, cancel := rootOpts.callContext(cmd.Context())
			defer cancel()

			// the local session goes away even if the server cannot be reached
			logoutErr := c.client.Logout(ctx)
			if err := c.store.Clear(); err != nil {
				return err
			}
			if cache, closeCache, err := openLibraryCache(ctx, c.store); err == nil {
				_ = cache.Clear(ctx, c.session.Login)
				closeCache()
			}
			if logoutErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: server logout failed: %v\n", logoutErr)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

// NewWhoAmICommand creates the whoami command.
func NewWhoAmICommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rootOpts.connect(true)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := rootOpts.callContext(cmd.Context())
			defer cancel()

			u, err := c.client.WhoAmI(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (id %d)\n", u.Username, u.Email, u.ID)
			return nil
		},
	}
}
