// Package identity models who is acting: the role vocabulary, the RoleSet
// used by authorization guards, and the verified Claims extracted from a
// request's bearer token.
//
// An actor always carries a set of roles, never a single role. Authorization
// checks are set-membership questions ("does the actor hold any dispatching
// role"), which keeps multi-role users and future roles from breaking guards.
package identity
