package constants

// Operator roles. The console is operated by a single privileged super admin;
// consultancy and agent accounts only reach the submitter endpoints.
const (
	RoleSuperAdmin  = "super_admin"
	RoleOperator    = "operator"
	RoleConsultancy = "consultancy"
	RoleAgent       = "agent"
)

// Ledger entity kinds. "system" is reserved for platform-level adjustments.
const (
	EntityUniversity  = "university"
	EntityConsultancy = "consultancy"
	EntityAgent       = "agent"
	EntitySystem      = "system"
)

var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleOperator,
		RoleConsultancy,
		RoleAgent,
	}

	AdminRoles = []string{
		RoleSuperAdmin,
		RoleOperator,
	}

	SubmitterRoles = []string{
		RoleConsultancy,
		RoleAgent,
	}

	LedgerEntityTypes = []string{
		EntityUniversity,
		EntityConsultancy,
		EntityAgent,
		EntitySystem,
	}
)

func IsAdminRole(role string) bool {
	for _, r := range AdminRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsLedgerEntityType(t string) bool {
	for _, e := range LedgerEntityTypes {
		if e == t {
			return true
		}
	}
	return false
}
