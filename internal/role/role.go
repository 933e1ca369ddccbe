// Package role contains utilities for user roles.
package role

import "math"

type Role int

const (
	RoleAdmin   Role = 200
	RoleEditor  Role = 100
	RoleUnknown Role = math.MinInt
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleEditor:
		return "editor"
	default:
		return "unknown"
	}
}

func ToRole(role string) Role {
	switch role {
	case "admin":
		return RoleAdmin
	case "editor":
		return RoleEditor
	default:
		return RoleUnknown
	}
}
