package ports

// TokenService issues and verifies signed, time-limited session tokens.
//
// Tokens are stateless: validity is fully determined by signature and expiry.
// There is no revocation list: logout is a client-side discard and a token
// stays verifiable until its natural expiry.
type TokenService interface {
	// Issue produces a signed token with the account ID as subject.
	Issue(accountID string) (string, error)
	// Verify returns the subject account ID, or one of domain.ErrTokenMissing,
	// domain.ErrTokenInvalid, domain.ErrTokenExpired.
	Verify(token string) (string, error)
}
