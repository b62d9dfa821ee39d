// scripts/gtasks-auth/main.go
//
// Run this ONCE locally to authorize Google Tasks and profile access and
// generate token.json.
//
// Usage:
//   go run ./scripts/gtasks-auth -credentials google-credentials.json -token token.json
//
// It prints a consent URL; sign in with your Google account, paste the
// authorization code, and the token is saved.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"momentum-tab/internal/task/repository/gtasks"
	"momentum-tab/pkg/gauth"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop client secrets file")
	tokenPath := flag.String("token", "token.json", "where to write the token")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	scopes := append(append([]string{}, gtasks.Scopes...), gauth.ProfileScopes...)
	config, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in with Google:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := gauth.SaveToken(*tokenPath, tok); err != nil {
		log.Fatalf("Failed to write %s: %v", *tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", *tokenPath)
	fmt.Println("Restart momentum-tab to pick it up.")
}
