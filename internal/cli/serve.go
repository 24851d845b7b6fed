package cli

import (
	"github.com/spf13/cobra"

	"github.com/chronoline/chronoline/internal/api"
)

// serveCommand creates the serve command exposing the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart pipeline over HTTP",
		Long: `Serve starts an HTTP server exposing the layout pipeline. Rosters are
posted inline as JSON; responses carry the assembled geometry and rendered
artifacts. The server shuts down gracefully on SIGINT/SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := api.NewServer(runner, addr, loggerFromContext(cmd.Context()))
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the layout cache")
	return cmd
}
