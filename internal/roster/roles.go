package roster

// Role is the closed set of lanes a character can queue for. Requests
// referencing anything else are rejected.
type Role string

const (
	RoleADC     Role = "adc"
	RoleSupport Role = "support"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleOfflane Role = "offlane"
)

var validRoles = map[Role]struct{}{
	RoleADC:     {},
	RoleSupport: {},
	RoleJungle:  {},
	RoleMid:     {},
	RoleOfflane: {},
}

func ValidRole(r string) bool {
	_, ok := validRoles[Role(r)]
	return ok
}
