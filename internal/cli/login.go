package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var seller string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the server, API token, and seller id",
		Long:  "Stores the backend URL, an API token, and your seller id in the CLI config. Tokens are issued by your administrator.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(flagServer, seller)
		},
	}

	cmd.Flags().StringVar(&seller, "seller", "", "seller id assigned by the backend")

	return cmd
}

func runLogin(serverFlag, sellerFlag string) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Paste your API token: ")
	token, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("no API token provided")
	}

	seller := sellerFlag
	if seller == "" {
		fmt.Print("Seller id: ")
		seller, err = reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		seller = strings.TrimSpace(seller)
	}
	if seller == "" {
		return fmt.Errorf("no seller id provided")
	}

	// Load existing config to preserve other fields
	cfg, err := loadConfig()
	if err != nil {
		cfg = CLIConfig{}
	}

	cfg.APIToken = token
	cfg.SellerID = seller
	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}

	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("✓ Credentials saved. You're logged in!")
	return nil
}
