package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gerich15/TemplateHub/internal/netx"
	"github.com/spf13/cobra"
)

// httpClient fetches archives; nil means http.DefaultClient.
var httpClient *http.Client

// DownloadOptions holds flags for the download command.
type DownloadOptions struct {
	*RootOptions
	Output string
}

// NewDownloadCommand creates the download command.
func NewDownloadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DownloadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "download <template-id>",
		Short: "Download a purchased template archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTemplateID(args[0])
			if err != nil {
				return err
			}

			c, err := opts.connect(true)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := opts.callContext(cmd.Context())
			defer cancel()

			grant, err := c.client.AuthorizeDownload(ctx, id)
			if err != nil {
				return err
			}
			if grant.Expired(time.Now()) {
				return errors.New("download link expired before it could be used, try again")
			}

			out := opts.Output
			if out == "" {
				out = fmt.Sprintf("template-%d.zip", id)
			}
			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}

			n, err := netx.DownloadFromPresignedURL(ctx, httpClient, grant.URL, f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				os.Remove(out)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes) to %s\n", grant.TemplateName, n, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "destination file (default template-<id>.zip)")

	return cmd
}

