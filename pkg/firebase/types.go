package firebase

import (
	"time"

	"firebase.google.com/go/v4/auth"
)

// UserRecord is a point-in-time snapshot of one account as reported by
// Firebase Authentication. Email and DisplayName may be empty; LastSignIn
// is zero for accounts that have never signed in.
type UserRecord struct {
	UID           string
	Email         string
	DisplayName   string
	EmailVerified bool
	Disabled      bool
	Created       time.Time
	LastSignIn    time.Time
}

func newUserRecord(u *auth.UserRecord) *UserRecord {
	rec := &UserRecord{
		EmailVerified: u.EmailVerified,
		Disabled:      u.Disabled,
	}
	if u.UserInfo != nil {
		rec.UID = u.UID
		rec.Email = u.Email
		rec.DisplayName = u.DisplayName
	}
	if u.UserMetadata != nil {
		if u.UserMetadata.CreationTimestamp > 0 {
			rec.Created = time.UnixMilli(u.UserMetadata.CreationTimestamp)
		}
		if u.UserMetadata.LastLogInTimestamp > 0 {
			rec.LastSignIn = time.UnixMilli(u.UserMetadata.LastLogInTimestamp)
		}
	}
	return rec
}
