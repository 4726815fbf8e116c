// Package auth implements the credential check that gates the session.
//
// Credentials are seeded once from the users source file and compared as
// plain text by exact equality. The application assumes a single trusted
// local user, so there is no hashing, lockout or rate limiting.
//
//	svc := auth.NewService(users.NewRepository(db.DB))
//	user, err := svc.Login("alice", "secret")
//	if errors.Is(err, apperr.ErrNotFound) {
//	    // ask again
//	}
package auth
