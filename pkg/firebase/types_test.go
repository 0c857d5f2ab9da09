package firebase

import (
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
)

func TestNewUserRecordOptionalFieldsAbsent(t *testing.T) {
	rec := newUserRecord(&auth.UserRecord{
		UserInfo: &auth.UserInfo{UID: "abc123"},
		Disabled: true,
	})

	assert.Equal(t, "abc123", rec.UID)
	assert.Empty(t, rec.Email)
	assert.Empty(t, rec.DisplayName)
	assert.True(t, rec.Disabled)
	assert.True(t, rec.Created.IsZero())
	assert.True(t, rec.LastSignIn.IsZero())
}

func TestNewUserRecordNeverSignedIn(t *testing.T) {
	rec := newUserRecord(&auth.UserRecord{
		UserInfo:     &auth.UserInfo{UID: "abc123", Email: "x@example.com"},
		UserMetadata: &auth.UserMetadata{CreationTimestamp: 1700000000000},
	})

	assert.Equal(t, int64(1700000000000), rec.Created.UnixMilli())
	assert.True(t, rec.LastSignIn.IsZero())
}
