// Command hashpw prints a salt and hash for an admin password so it can be
// pasted into config.json under admin_users.
package main

import (
	"fmt"
	"os"

	"ravepayments/internal/adapters/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: hashpw <your_password_here>")
		os.Exit(1)
	}

	hasher := auth.NewBcryptHasher(12)
	salt, err := hasher.GenerateSalt()
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate salt:", err)
		os.Exit(1)
	}
	hash, err := hasher.Hash(salt, os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}

	fmt.Println("Add this entry to admin_users in config.json:")
	fmt.Printf("  \"<username>\": {\"salt\": %q, \"hash\": %q}\n", salt, hash)
}
