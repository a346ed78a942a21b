// cmd/hubctl/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaepaama/Employeehub/internal/auth"
	"github.com/jaepaama/Employeehub/internal/config"
	"github.com/jaepaama/Employeehub/internal/identity"
	"github.com/jaepaama/Employeehub/internal/store"
	"github.com/jaepaama/Employeehub/sdk/client"
)

const version = "0.1.0"

var (
	verbose   bool
	serverURL string
	email     string
	password  string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	catalogCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the running hub")
	catalogCmd.PersistentFlags().StringVar(&email, "email", "", "Directory email to log in with")
	catalogCmd.PersistentFlags().StringVar(&password, "password", "", "Password for the directory user")
	catalogCmd.AddCommand(catalogTrainingCmd)
	catalogCmd.AddCommand(catalogPoliciesCmd)

	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "hubctl",
	Short: "hubctl is a CLI tool for operating the employee hub",
	Long:  `hubctl mints session tokens, dumps the seed catalogs, and lists the catalogs of a running employee hub.`,
}

var tokenCmd = &cobra.Command{
	Use:   "token [email]",
	Short: "Mint a session token for a directory user",
	Long:  `Mint a signed session token for a user in the static directory, for use against a running hub.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		directory := identity.NewStaticProvider(identity.DefaultDirectory())
		user, err := directory.FindByEmail(context.Background(), args[0])
		if err != nil {
			log.Fatalf("Unknown directory user: %s", args[0])
		}

		tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)
		token, tokenID, err := tokenManager.Generate(user.Email, string(user.Role))
		if err != nil {
			log.Fatalf("Failed to generate token: %v", err)
		}

		if verbose {
			fmt.Printf("Token ID: %s\n", tokenID)
		}
		fmt.Println(token)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print the seed catalogs",
	Long:  `Print the training and policy catalogs the hub is seeded with, as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		hub := store.NewHub(identity.NewStaticProvider(identity.DefaultDirectory()))

		out := map[string]interface{}{
			"training": hub.TrainingModules(),
			"policies": hub.Policies(),
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatalf("Failed to encode catalogs: %v", err)
		}
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the catalogs of a running hub",
	Long:  `Log in to a running hub and print the catalogs visible to the given directory user.`,
}

var catalogTrainingCmd = &cobra.Command{
	Use:   "training",
	Short: "Print the visible training catalog",
	Run: func(cmd *cobra.Command, args []string) {
		printCatalog(cmd.Context(), func(ctx context.Context, c *client.Client) (*client.CatalogResponse, error) {
			return c.ListTraining(ctx)
		})
	},
}

var catalogPoliciesCmd = &cobra.Command{
	Use:   "policies",
	Short: "Print the visible policy catalog",
	Run: func(cmd *cobra.Command, args []string) {
		printCatalog(cmd.Context(), func(ctx context.Context, c *client.Client) (*client.CatalogResponse, error) {
			return c.ListPolicies(ctx)
		})
	},
}

func printCatalog(ctx context.Context, list func(context.Context, *client.Client) (*client.CatalogResponse, error)) {
	if email == "" || password == "" {
		log.Fatal("--email and --password are required")
	}

	c := client.NewClient(&client.Config{BaseURL: serverURL})
	if _, err := c.Login(ctx, email, password); err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	defer c.Logout(ctx)

	resp, err := list(ctx, c)
	if err != nil {
		log.Fatalf("Listing catalog failed: %v", err)
	}

	for _, card := range resp.Cards {
		switch card.Kind {
		case "placeholder":
			fmt.Println(card.Body)
		case "training":
			status := " "
			if card.Completed {
				status = "x"
			}
			fmt.Printf("[%s] %d %s\n", status, card.ID, card.Title)
		default:
			fmt.Printf("%d %s\n", card.ID, card.Title)
		}
		if verbose && card.Kind != "placeholder" {
			fmt.Printf("    %s\n", card.Body)
		}
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the hubctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hubctl %s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
