package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"firebase-reset/pkg/firebase"

	"github.com/sethvargo/go-password/password"
	"github.com/spf13/cobra"
)

// resetClient is the slice of the firebase client the reset flow needs.
type resetClient interface {
	ProjectID() string
	GetUser(ctx context.Context, uid string) (*firebase.UserRecord, error)
	UpdatePassword(ctx context.Context, uid, newPassword string) error
}

var newClient = func(ctx context.Context, credentialsPath string) (resetClient, error) {
	return firebase.NewClient(ctx, credentialsPath)
}

var (
	userID          string
	credentialsFile string
	newPassword     string
	showUserInfo    bool
	generate        bool
)

var rootCmd = &cobra.Command{
	Use:   "firebase-reset",
	Short: "Reset a Firebase user's password",
	Long:  `A tool to reset one Firebase Authentication user's password using a service account key, with an optional lookup of the account before the change.`,
	RunE:  runReset,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&userID, "user-id", "u", "", "Firebase UID of the user whose password should be reset")
	rootCmd.Flags().StringVarP(&credentialsFile, "credentials", "c", "", "Path to service account credentials JSON file (or set GOOGLE_APPLICATION_CREDENTIALS)")
	rootCmd.Flags().StringVarP(&newPassword, "password", "p", "password123", "New password to set")
	rootCmd.Flags().BoolVar(&showUserInfo, "show-user-info", false, "Display user information before resetting the password")
	rootCmd.Flags().BoolVar(&generate, "generate", false, "Generate a random password instead of the default")
	_ = rootCmd.MarkFlagRequired("user-id")
	rootCmd.MarkFlagsMutuallyExclusive("password", "generate")
}

func runReset(cmd *cobra.Command, args []string) error {
	creds := getEnvOrFlag(credentialsFile, "GOOGLE_APPLICATION_CREDENTIALS")
	if creds == "" {
		return fmt.Errorf("credentials file is required (use --credentials or set GOOGLE_APPLICATION_CREDENTIALS)")
	}

	fmt.Println("Firebase Password Reset Tool")

	ctx := cmd.Context()
	client, err := newClient(ctx, creds)
	if err != nil {
		return fmt.Errorf("failed to initialize firebase: %w", err)
	}
	fmt.Printf("✓ Firebase Admin SDK initialized (project: %s)\n", client.ProjectID())

	if showUserInfo {
		fmt.Printf("\nFetching user information for %s...\n", userID)
		user, err := client.GetUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to fetch user %s: %w", userID, err)
		}
		printUser(user)
	}

	pass := newPassword
	if generate {
		pass, err = password.Generate(16, 4, 2, false, false)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
	}

	fmt.Printf("\nResetting password for user %s...\n", userID)
	if err := client.UpdatePassword(ctx, userID, pass); err != nil {
		return fmt.Errorf("failed to reset password for user %s: %w", userID, err)
	}

	fmt.Printf("\n✓ Password reset completed successfully!\n")
	fmt.Printf("  User: %s\n", userID)
	fmt.Printf("  New password: %s\n", pass)

	return nil
}

func printUser(u *firebase.UserRecord) {
	fmt.Printf("  Email: %s\n", valueOrNone(u.Email))
	fmt.Printf("  Display Name: %s\n", valueOrNone(u.DisplayName))
	fmt.Printf("  Email Verified: %t\n", u.EmailVerified)
	fmt.Printf("  Account Disabled: %t\n", u.Disabled)
	if !u.Created.IsZero() {
		fmt.Printf("  Created: %s\n", u.Created.Format(time.RFC3339))
	}
	if u.LastSignIn.IsZero() {
		fmt.Printf("  Last Sign-In: never\n")
	} else {
		fmt.Printf("  Last Sign-In: %s\n", u.LastSignIn.Format(time.RFC3339))
	}
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func getEnvOrFlag(flag, envVar string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(envVar)
}
