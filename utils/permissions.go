package utils

import "strings"

// MatchesPermission checks if a granted permission matches the required one.
// Permission format is "resource:action"; wildcards are supported on either
// part:
//
//   - "*" matches everything (admin wildcard)
//   - "rondas:*" matches every action on rondas
//   - "*:read" matches read on every resource
//   - "rondas:delete" exact match
func MatchesPermission(userPerm, requiredPerm string) bool {
	if userPerm == requiredPerm {
		return true
	}

	// full wildcard grants everything
	if userPerm == "*" {
		return true
	}

	userParts := strings.Split(userPerm, ":")
	reqParts := strings.Split(requiredPerm, ":")

	// single-part permissions only match exactly, handled above
	if len(userParts) != 2 || len(reqParts) != 2 {
		return false
	}

	resourceOK := userParts[0] == "*" || userParts[0] == reqParts[0]
	actionOK := userParts[1] == "*" || userParts[1] == reqParts[1]
	return resourceOK && actionOK
}
