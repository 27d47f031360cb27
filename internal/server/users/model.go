package users

import "time"

// User is the stored credential record for an account.
//
// Email is the unique key, normalized to lowercase on the way in.
// EmailVerified flips to true exactly once, on email confirmation; the
// record itself is never deleted.
type User struct {
	UserID        string    `dynamodbav:"user_id"`
	Name          string    `dynamodbav:"name"`
	Email         string    `dynamodbav:"email"`
	PasswordHash  string    `dynamodbav:"password_hash"`
	PasswordSalt  string    `dynamodbav:"password_salt"`
	EmailVerified bool      `dynamodbav:"email_verified"`
	CreatedAt     time.Time `dynamodbav:"created_at,unixtime"`
}
