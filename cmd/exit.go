package cmd

import "firebase-reset/pkg/firebase"

// One exit code per failure category; 1 covers usage mistakes and
// anything the classifier could not place.
const (
	exitUnexpected           = 1
	exitCredentialsNotFound  = 2
	exitInvalidCredentials   = 3
	exitAuthenticationFailed = 4
	exitUserNotFound         = 5
	exitPermissionDenied     = 6
	exitWeakPassword         = 7
	exitNetworkError         = 8
)

// ExitCode maps an error returned by Execute to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch firebase.KindOf(err) {
	case firebase.CredentialsNotFound:
		return exitCredentialsNotFound
	case firebase.InvalidCredentials:
		return exitInvalidCredentials
	case firebase.AuthenticationFailed:
		return exitAuthenticationFailed
	case firebase.UserNotFound:
		return exitUserNotFound
	case firebase.PermissionDenied:
		return exitPermissionDenied
	case firebase.WeakPassword:
		return exitWeakPassword
	case firebase.NetworkError:
		return exitNetworkError
	default:
		return exitUnexpected
	}
}
