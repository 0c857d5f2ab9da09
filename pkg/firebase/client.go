package firebase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	admin "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type authAPI interface {
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	UpdateUser(ctx context.Context, uid string, user *auth.UserToUpdate) (*auth.UserRecord, error)
}

// Client wraps the Admin SDK auth client for one project.
type Client struct {
	auth      authAPI
	projectID string
}

// serviceAccount holds the key-file fields checked before the path is
// handed to the SDK.
type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
}

// NewClient loads the service account key at credentialsPath and builds
// an authenticated Firebase Authentication client for its project.
func NewClient(ctx context.Context, credentialsPath string) (*Client, error) {
	if _, err := os.Stat(credentialsPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Kind: CredentialsNotFound, Err: fmt.Errorf("credentials file not found: %s", credentialsPath)}
		}
		return nil, &Error{Kind: Unexpected, Err: fmt.Errorf("credentials file not readable: %w", err)}
	}

	sa, err := readServiceAccount(credentialsPath)
	if err != nil {
		return nil, &Error{Kind: InvalidCredentials, Err: err}
	}

	app, err := admin.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, classifyInit(err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, classifyInit(err)
	}

	return &Client{auth: authClient, projectID: sa.ProjectID}, nil
}

func readServiceAccount(path string) (*serviceAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sa serviceAccount
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, fmt.Errorf("malformed credentials file: %w", err)
	}

	required := []struct {
		field string
		value string
	}{
		{"type", sa.Type},
		{"project_id", sa.ProjectID},
		{"private_key", sa.PrivateKey},
		{"client_email", sa.ClientEmail},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("credentials file missing required field %q", r.field)
		}
	}
	if sa.Type != "service_account" {
		return nil, fmt.Errorf("credentials file has type %q, expected \"service_account\"", sa.Type)
	}

	return &sa, nil
}

// ProjectID returns the project the credentials are bound to.
func (c *Client) ProjectID() string {
	return c.projectID
}

// GetUser fetches a snapshot of the user identified by uid.
func (c *Client) GetUser(ctx context.Context, uid string) (*UserRecord, error) {
	u, err := c.auth.GetUser(ctx, uid)
	if err != nil {
		return nil, classify(err)
	}
	return newUserRecord(u), nil
}

// UpdatePassword overwrites the stored credential of the user identified
// by uid. The platform enforces its own password policy; rejections come
// back as WeakPassword.
func (c *Client) UpdatePassword(ctx context.Context, uid, newPassword string) error {
	update := (&auth.UserToUpdate{}).Password(newPassword)
	if _, err := c.auth.UpdateUser(ctx, uid, update); err != nil {
		if isWeakPassword(err) {
			return &Error{Kind: WeakPassword, Err: err}
		}
		return classify(err)
	}
	return nil
}
