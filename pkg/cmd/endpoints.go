package cmd

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/novaex/pkg/exchange/nova/novaapi"
	"github.com/c9s/novaex/pkg/style"
)

func init() {
	RootCmd.AddCommand(endpointsCmd)
}

var endpointsCmd = &cobra.Command{
	Use:          "endpoints",
	Short:        "List the api methods and how they are dispatched",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderEndpoints(cmd.OutOrStdout())
		return nil
	},
}

func renderEndpoints(w io.Writer) {
	t := style.NewTableWriter(w)
	t.SetTitle("NOVA API METHODS")
	t.AppendHeader(table.Row{"Method", "Kind", "HTTP", "Auth"})

	var methods []string
	methods = append(methods, novaapi.PublicMethods...)
	methods = append(methods, novaapi.PrivateMethods()...)

	for _, method := range methods {
		kind := novaapi.Classify(method)
		httpMethod, auth := "GET", "-"
		if kind == novaapi.EndpointPrivate {
			httpMethod, auth = "POST", "apikey + signature"
		}

		t.AppendRow(table.Row{method, kind.String(), httpMethod, auth})
	}

	t.Render()
}
