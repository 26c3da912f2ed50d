// Package cli defines the cobra command tree for rutero.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/maparra/rutero/internal/client"
	"github.com/maparra/rutero/internal/controller"
	"github.com/maparra/rutero/internal/logging"
	"github.com/maparra/rutero/internal/session"
)

var (
	flagFormat  string
	flagServer  string
	flagVerbose bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rutero",
		Short:         "Work a seller's daily visit route",
		Long:          "A field-sales tool to view the day's visit route, inspect scheduled visits, and register their outcome (completed with evidence, or cancelled with a reason) against the visits backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logging.Setup(true)
			}
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "server URL (default: from config or http://localhost:8080)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log every API call")

	root.AddCommand(
		newRouteCmd(),
		newVisitCmd(),
		newCancelCmd(),
		newRegisterCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates an HTTP client for the visits API.
func newAPIClient() *client.Client {
	return client.New(getServerURL(), getAPIToken())
}

// newIdentity resolves the seller identity from env/config.
func newIdentity() session.Identity {
	return session.Static{ID: getSellerID()}
}

// newRouteController wires a route list controller from config.
func newRouteController() *controller.RouteList {
	return controller.NewRouteList(newAPIClient(), newIdentity())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
