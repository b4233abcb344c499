package entity

type Role string

const (
	RoleUser      Role = "user"
	RoleCreator   Role = "creator"
	RoleDeveloper Role = "developer"
)

type Capability string

const (
	CapCreateContent Capability = "create_content"
	CapWithdraw      Capability = "withdraw"
	CapViewHidden    Capability = "view_hidden"
	CapModerate      Capability = "moderate"
	CapGrantCredits  Capability = "grant_credits"
	CapManageCatalog Capability = "manage_catalog"
	CapManageUsers   Capability = "manage_users"
)

// roleCapabilities is the single place role power is defined. Handlers and
// usecases check capabilities, never role strings.
var roleCapabilities = map[Role][]Capability{
	RoleUser: {},
	RoleCreator: {
		CapCreateContent,
		CapWithdraw,
	},
	RoleDeveloper: {
		CapCreateContent,
		CapWithdraw,
		CapViewHidden,
		CapModerate,
		CapGrantCredits,
		CapManageCatalog,
		CapManageUsers,
	},
}

func (r Role) Can(cap Capability) bool {
	for _, c := range roleCapabilities[r] {
		if c == cap {
			return true
		}
	}
	return false
}

func ParseRole(s string) Role {
	switch Role(s) {
	case RoleCreator:
		return RoleCreator
	case RoleDeveloper:
		return RoleDeveloper
	default:
		return RoleUser
	}
}
