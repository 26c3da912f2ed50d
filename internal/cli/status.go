package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection and session status",
		Long:  "Shows the configured server and seller, and tests whether the stored API token is accepted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	serverURL := getServerURL()
	token := getAPIToken()
	seller := getSellerID()

	fmt.Printf("Server:  %s\n", serverURL)

	if seller == "" {
		fmt.Println("Seller:  not configured")
	} else {
		fmt.Printf("Seller:  %s\n", seller)
	}

	if token == "" {
		fmt.Println("Token:   not configured")
		fmt.Println("\nRun 'rutero login' to authenticate.")
		return nil
	}

	prefix := token
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	fmt.Printf("Token:   %s…\n", prefix)

	// Probe the route endpoint for today with the stored credentials
	client := &http.Client{Timeout: 5 * time.Second}
	url := fmt.Sprintf("%s/api/visits?fecha=%s&vendedor=%s", serverURL, time.Now().Format("2006-01-02"), seller)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Status:  ✗ cannot reach server (%v)\n", err)
		return nil
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Println("Status:  ✓ connected and authenticated")
	case http.StatusUnauthorized:
		fmt.Println("Status:  ✗ invalid API token")
		fmt.Println("\nRun 'rutero login' to re-authenticate.")
	default:
		fmt.Printf("Status:  ✗ unexpected response (%d)\n", resp.StatusCode)
	}

	return nil
}
