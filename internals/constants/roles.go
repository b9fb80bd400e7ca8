package constants

// Role untuk akses route & token claim
const (
	RoleMember  = "member"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
	RoleOwner   = "owner"
)

// AllowedRoles: daftar role yang dikenal sistem
var AllowedRoles = []string{RoleMember, RoleTrainer, RoleAdmin, RoleOwner}

func IsValidRole(role string) bool {
	for _, r := range AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
