package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/gerich15/TemplateHub/internal/client/client"
	"github.com/gerich15/TemplateHub/internal/client/models"
	"github.com/spf13/cobra"
)

// TemplatesOptions holds flags for the templates command.
type TemplatesOptions struct {
	*RootOptions
	Query string
}

// NewTemplatesCommand creates the templates command.
func NewTemplatesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TemplatesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"ls"},
		Short:   "List the catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.connect(false)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := opts.callContext(cmd.Context())
			defer cancel()

			list, err := c.client.ListTemplates(ctx, opts.Query)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No templates found")
				return nil
			}
			return printTemplates(cmd.OutOrStdout(), list)
		},
	}

	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "search name, description and category")

	return cmd
}

func printTemplates(w io.Writer, list []models.Template) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE")
	for _, t := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", t.ID, t.Name, t.Category, t.Price.StringFixed(2))
	}
	return tw.Flush()
}

func parseTemplateID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid template id %q", arg)
	}
	return id, nil
}

// NewBuyCommand creates the buy command.
func NewBuyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <template-id>",
		Short: "Purchase a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTemplateID(args[0])
			if err != nil {
				return err
			}

			c, err := rootOpts.connect(true)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := rootOpts.callContext(cmd.Context())
			defer cancel()

			r, err := c.client.Purchase(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Purchased %s for %s\nTransaction: %s\n",
				r.TemplateName, r.Price.StringFixed(2), r.TransactionID)
			return nil
		},
	}
}

// LibraryOptions holds flags for the library command.
type LibraryOptions struct {
	*RootOptions
	Offline bool
}

// NewLibraryCommand creates the library command. The listing is cached
// locally and the cache is shown when the server cannot be reached.
func NewLibraryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LibraryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "library",
		Short: "List purchased templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				c   *conn
				err error
			)
			if opts.Offline {
				c, err = opts.restore()
			} else {
				c, err = opts.connect(true)
			}
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := opts.callContext(cmd.Context())
			defer cancel()

			cache, closeCache, err := openLibraryCache(ctx, c.store)
			if err != nil {
				return err
			}
			defer closeCache()

			var list []models.Entitlement
			if !opts.Offline {
				list, err = c.client.ListEntitlements(ctx)
				switch {
				case err == nil:
					if err := cache.Replace(ctx, c.session.Login, list); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
					}
				case errors.Is(err, client.ErrUnavailable):
					fmt.Fprintln(cmd.ErrOrStderr(), "server unreachable, showing cached library")
					opts.Offline = true
				default:
					return err
				}
			}
			if opts.Offline {
				if list, err = cache.List(ctx, c.session.Login); err != nil {
					return err
				}
			}

			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Your library is empty")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPURCHASED")
			for _, e := range list {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", e.TemplateID, e.TemplateName, e.PurchasedAt.Local().Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.Offline, "offline", false, "show the cached library without contacting the server")

	return cmd
}
