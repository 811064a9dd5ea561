// Package authz decides who may act on posts and comments. The rules are
// fixed: every operation requires an authenticated identity, and deletion
// additionally requires ownership or an elevated role.
package authz

// Identity is the resolved requester of an operation. The zero value is
// anonymous.
type Identity struct {
	ID            int64
	Username      string
	Staff         bool
	Superuser     bool
	Authenticated bool
}

// Anonymous is the identity of an unauthenticated request.
var Anonymous = Identity{}

// CanDelete reports whether the identity may delete a resource owned by
// authorID. Any one of author, superuser, or staff is sufficient.
func CanDelete(id Identity, authorID int64) bool {
	if !id.Authenticated {
		return false
	}
	return id.ID == authorID || id.Superuser || id.Staff
}
