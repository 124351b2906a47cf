package policy

import (
	"net/http"

	"blogserver/models"
)

// Policy decides whether an action is allowed, first without the
// target object (listing, creation) and then against the resolved
// object's owner. Pure predicates, no I/O.
type Policy interface {
	CanAttempt(method string, actor *models.User) bool
	CanActOn(method string, actor *models.User, ownerID uint64) bool
}

// OwnerOrReadOnly allows safe methods to anyone; writes require an
// authenticated actor, per-object writes require the owner.
type OwnerOrReadOnly struct{}

func (OwnerOrReadOnly) CanAttempt(method string, actor *models.User) bool {
	return isSafe(method) || actor != nil
}

func (OwnerOrReadOnly) CanActOn(method string, actor *models.User, ownerID uint64) bool {
	if isSafe(method) {
		return true
	}
	return actor != nil && actor.ID == ownerID
}

// ReadOnly gates resources that expose no write routes at all.
type ReadOnly struct{}

func (ReadOnly) CanAttempt(string, *models.User) bool { return true }

func (ReadOnly) CanActOn(string, *models.User, uint64) bool { return true }

// FollowPolicy bans PUT/PATCH entirely, requires authentication for
// everything else, and hides other users' subscriptions.
type FollowPolicy struct{}

func (FollowPolicy) CanAttempt(method string, actor *models.User) bool {
	if method == http.MethodPut || method == http.MethodPatch {
		return false
	}
	return actor != nil
}

func (FollowPolicy) CanActOn(method string, actor *models.User, ownerID uint64) bool {
	if method == http.MethodPut || method == http.MethodPatch {
		return false
	}
	return actor != nil && actor.ID == ownerID
}

var policies = map[string]Policy{
	"posts":    OwnerOrReadOnly{},
	"comments": OwnerOrReadOnly{},
	"groups":   ReadOnly{},
	"follow":   FollowPolicy{},
}

// For selects the policy for a resource name.
func For(resource string) Policy {
	p, ok := policies[resource]
	if !ok {
		panic("no policy for resource " + resource)
	}
	return p
}

func isSafe(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}
