package entity

// Caller is the identity attached to a request on optional-auth endpoints.
// The two branches are explicit: generation is permitted for anonymous
// callers, and the quota gate is skipped entirely for them.
type Caller struct {
	user *User
}

func AnonymousCaller() Caller {
	return Caller{}
}

func AuthenticatedCaller(u *User) Caller {
	return Caller{user: u}
}

func (c Caller) Anonymous() bool {
	return c.user == nil
}

// User returns the authenticated user, or nil for anonymous callers.
func (c Caller) User() *User {
	return c.user
}
