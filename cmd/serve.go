// Package cmd — serve command.
// Runs the citation form and JSON API until interrupted.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/webcite/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the citation form over HTTP",
	Long: `Serve starts a small web server with a form that accepts one URL at a time
and shows its citation.

Endpoints:
  GET  /                  the form
  POST /                  submit the form (field "url")
  GET  /api/citation?url= JSON metadata and citation
  GET  /healthz           liveness
  GET  /metrics           Prometheus metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return web.NewServer(newPipeline(), logger).ListenAndServe(cmd.Context(), cfg.Server.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	bindFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}
