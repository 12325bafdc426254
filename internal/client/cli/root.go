package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gerich15/TemplateHub/internal/client/client"
	"github.com/gerich15/TemplateHub/internal/client/config"
	"github.com/gerich15/TemplateHub/internal/client/session"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Server     string
	SessionDir string
	Timeout    time.Duration

	config *config.Config
}

var errNotLoggedIn = errors.New("not logged in, run `templatehub login` first")

// newClient is a seam for tests.
var newClient = func(addr string) (client.Client, error) {
	return client.NewMarketplaceClientService(addr)
}

// NewRootCommand creates the root command of the templatehub CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "templatehub",
		Short:         "Browse, buy and download design templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.ConfigFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("server") {
				cfg.ServerEndpointAddr = opts.Server
			}
			if flags.Changed("session-dir") {
				cfg.SessionDir = opts.SessionDir
			}
			if flags.Changed("timeout") {
				cfg.RequestTimeout = opts.Timeout
			}
			opts.config = cfg
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "path to a JSON config file")
	cmd.PersistentFlags().StringVarP(&opts.Server, "server", "a", "", "server gRPC address (host:port)")
	cmd.PersistentFlags().StringVar(&opts.SessionDir, "session-dir", "", "directory holding the saved login")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 0, "deadline for server calls")

	// Add subcommands
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewWhoAmICommand(opts))
	cmd.AddCommand(NewTemplatesCommand(opts))
	cmd.AddCommand(NewBuyCommand(opts))
	cmd.AddCommand(NewLibraryCommand(opts))
	cmd.AddCommand(NewDownloadCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// conn is one command's link to the server plus the saved session.
type conn struct {
	client  client.Client
	store   *session.Store
	session *session.Session
}

func (c *conn) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// restore loads the saved login without dialing the server.
func (o *RootOptions) restore() (*conn, error) {
	store, err := session.NewStore(o.config.SessionDir)
	if err != nil {
		return nil, err
	}
	sess, err := store.Load()
	if errors.Is(err, session.ErrNoSession) {
		return nil, errNotLoggedIn
	}
	if err != nil {
		return nil, err
	}
	return &conn{store: store, session: sess}, nil
}

// connect dials the server and restores the saved login, if any. When
// requireLogin is set a missing session is an error. Tokens refreshed during
// the command are written back to the session file.
func (o *RootOptions) connect(requireLogin bool) (*conn, error) {
	store, err := session.NewStore(o.config.SessionDir)
	if err != nil {
		return nil, err
	}

	sess, err := store.Load()
	switch {
	case errors.Is(err, session.ErrNoSession):
		if requireLogin {
			return nil, errNotLoggedIn
		}
		sess = nil
	case err != nil:
		return nil, err
	}

	c, err := newClient(o.config.ServerEndpointAddr)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", o.config.ServerEndpointAddr, err)
	}

	if sess != nil {
		c.SetTokens(sess.Tokens)
		c.OnTokensRefreshed(func(t client.Tokens) {
			sess.Tokens = t
			_ = store.Save(sess)
		})
	}

	return &conn{client: c, store: store, session: sess}, nil
}

func (o *RootOptions) callContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, o.config.RequestTimeout)
}
