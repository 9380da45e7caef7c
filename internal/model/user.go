package model

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool { return r == RoleAdmin || r == RoleUser }

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
}

// Identity is what a session carries about its owner.
type Identity struct {
	UserID string
	Name   string
	Role   Role
}

// Session is an issued login: the opaque token handed to the client and the
// identity it resolves to.
type Session struct {
	Token    string
	Identity Identity
}

type CreateUserParams struct {
	Email    string
	Password string
	Name     string
	Role     Role
}

type ChangePasswordParams struct {
	UserID      string
	OldPassword string
	NewPassword string
}

// Capability names one guarded operation group of the staff API.
type Capability string

const (
	CapCatalogRead   Capability = "catalog:read"
	CapCatalogWrite  Capability = "catalog:write"
	CapOrdersRead    Capability = "orders:read"
	CapOrdersWrite   Capability = "orders:write"
	CapDashboardRead Capability = "dashboard:read"
	CapUsersRead     Capability = "users:read"
	CapUsersWrite    Capability = "users:write"
	CapAccountWrite  Capability = "account:write"
)

var AllCapabilities = []Capability{
	CapCatalogRead,
	CapCatalogWrite,
	CapOrdersRead,
	CapOrdersWrite,
	CapDashboardRead,
	CapUsersRead,
	CapUsersWrite,
	CapAccountWrite,
}
