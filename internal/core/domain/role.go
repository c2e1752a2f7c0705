package domain

import "time"

// Capability names one action a role may perform. Capabilities map 1:1 to
// the boolean flags stored on the role record.
type Capability string

const (
	CapPostLogin             Capability = "post_login"
	CapGetMyUser             Capability = "get_my_user"
	CapGetUsers              Capability = "get_users"
	CapPostProducts          Capability = "post_products"
	CapPostProductsWithImage Capability = "post_products_with_image"
	CapGetBestsellers        Capability = "get_bestsellers"
)

// Role is a static set of capability flags. A user's effective permissions
// equal exactly its role's flags; there are no per-user overrides.
type Role struct {
	ID                       string    `json:"id"`
	Name                     string    `json:"name"`
	CanPostLogin             bool      `json:"can_post_login"`
	CanGetMyUser             bool      `json:"can_get_my_user"`
	CanGetUsers              bool      `json:"can_get_users"`
	CanPostProducts          bool      `json:"can_post_products"`
	CanPostProductsWithImage bool      `json:"can_post_products_with_image"`
	CanGetBestsellers        bool      `json:"can_get_bestsellers"`
	CreatedAt                time.Time `json:"created_at"`
}

// DefaultRoles is the built-in role matrix, ensured at startup. BAN keeps
// the account but removes every capability, including login.
func DefaultRoles() []Role {
	return []Role{
		{
			Name:                     RoleAdmin,
			CanPostLogin:             true,
			CanGetMyUser:             true,
			CanGetUsers:              true,
			CanPostProducts:          true,
			CanPostProductsWithImage: true,
			CanGetBestsellers:        true,
		},
		{
			Name:                     RolePremium,
			CanPostLogin:             true,
			CanGetMyUser:             true,
			CanPostProducts:          true,
			CanPostProductsWithImage: true,
			CanGetBestsellers:        true,
		},
		{
			Name:         RoleUser,
			CanPostLogin: true,
			CanGetMyUser: true,
		},
		{
			Name: RoleBan,
		},
	}
}

// Can reports whether the role grants the given capability. A nil role
// grants nothing.
func (r *Role) Can(c Capability) bool {
	if r == nil {
		return false
	}
	switch c {
	case CapPostLogin:
		return r.CanPostLogin
	case CapGetMyUser:
		return r.CanGetMyUser
	case CapGetUsers:
		return r.CanGetUsers
	case CapPostProducts:
		return r.CanPostProducts
	case CapPostProductsWithImage:
		return r.CanPostProductsWithImage
	case CapGetBestsellers:
		return r.CanGetBestsellers
	default:
		return false
	}
}
