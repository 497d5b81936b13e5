// Package policy holds the pure authorization predicates evaluated by the
// domain services and the route middleware. No side effects, no store access.
package policy

import "restaurant-directory-api/models"

// HasRole reports whether actual satisfies the required role set.
// An empty required set means the operation is open to any role.
func HasRole(required []models.Role, actual models.Role) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if r == actual {
			return true
		}
	}
	return false
}

// IsOwner reports whether the caller owns the resource.
func IsOwner(resourceOwnerID, callerID uint) bool {
	return resourceOwnerID == callerID
}
