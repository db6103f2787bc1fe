// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a registered account.
// Password always holds the bcrypt hash, never the plain-text value.
type User struct {
	// UserID is assigned by the database on insert.
	UserID int64 `json:"user_id"`

	// Username is free text and is not required to be unique.
	Username string `json:"username"`

	// Email is unique across all accounts and is the login identifier.
	Email string `json:"email"`

	// Password is the salted bcrypt hash of the user's password.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
