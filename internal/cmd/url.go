package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/restscope/cli/internal/appconfig"
	"github.com/restscope/cli/internal/cmdtypes"
	"github.com/restscope/cli/internal/output"
	"github.com/restscope/cli/internal/route"
)

// urlOptions holds the flags for the url command.
type urlOptions struct {
	protocol    string
	port        int
	contextPath string
}

// NewURLCmd creates the url command.
func NewURLCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &urlOptions{}

	c := &cobra.Command{
		Use:   "url PATH",
		Short: "Compose an endpoint URL",
		Long: `Compose the absolute URL of a route path the way scan does.

The port is omitted unless --port is given. The context path is used only
when it starts with "/".

Examples:
  restscope url /orders --port 8443 --protocol https --context-path /shop
  # https://localhost:8443/shop/orders`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var port *int
			if c.Flags().Changed("port") {
				port = route.IntPtr(opts.port)
			}
			url := route.ComposeURL(opts.protocol, port, opts.contextPath, args[0])

			if format := cfg.Format(); format.IsStructured() {
				return output.WriteDocument(c.OutOrStdout(), format, map[string]string{"url": url})
			}
			_, err := fmt.Fprintln(c.OutOrStdout(), url)
			return err
		},
	}

	c.Flags().StringVar(&opts.protocol, "protocol", appconfig.DefaultProtocol, "URL scheme")
	c.Flags().IntVar(&opts.port, "port", appconfig.DefaultPort, "Port (omitted unless set)")
	c.Flags().StringVar(&opts.contextPath, "context-path", "", "Servlet context path")

	return c
}
