package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jaepaama/Employeehub/sdk/client"
)

func main() {
	// Create a client against a locally running hub
	c := client.NewClient(&client.Config{
		BaseURL: "http://localhost:8080",
		Timeout: 5 * time.Second,
	})

	ctx := context.Background()

	// Log in as the seeded employee
	login, err := c.Login(ctx, "employee@gmail.com", "1234")
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	fmt.Printf("Logged in as %s (%s, %s/%s)\n",
		login.Identity.Email, login.Identity.Role, login.Identity.Country, login.Identity.Department)

	// List the training catalog visible to this user
	training, err := c.ListTraining(ctx)
	if err != nil {
		log.Fatalf("Listing training failed: %v", err)
	}
	for _, card := range training.Cards {
		status := " "
		if card.Completed {
			status = "x"
		}
		fmt.Printf("[%s] %d %s\n", status, card.ID, card.Title)
	}

	// Complete the first incomplete module
	for _, card := range training.Cards {
		if card.CanComplete {
			if _, err := c.CompleteTraining(ctx, card.ID); err != nil {
				log.Fatalf("Completing module failed: %v", err)
			}
			fmt.Printf("Completed %q\n", card.Title)
			break
		}
	}

	// List policies
	policies, err := c.ListPolicies(ctx)
	if err != nil {
		log.Fatalf("Listing policies failed: %v", err)
	}
	for _, card := range policies.Cards {
		fmt.Printf("Policy %d: %s\n", card.ID, card.Title)
	}

	// Log out
	if err := c.Logout(ctx); err != nil {
		log.Fatalf("Logout failed: %v", err)
	}
	fmt.Println("Logged out")
}
