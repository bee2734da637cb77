package pool

// IdentityKind discriminates the two kinds of authenticated callers.
type IdentityKind int

const (
	// KindPlayer is an ordinary player identity.
	KindPlayer IdentityKind = iota + 1
	// KindAdmin is an admin identity, further qualified by Role.
	KindAdmin
)

// Identity is the resolved caller of a request. It is a tagged union:
// Kind decides which of the remaining fields are meaningful, so a token
// can never be both a player and an admin at the same time.
type Identity struct {
	Kind IdentityKind `json:"kind"`

	// PlayerID is set when Kind == KindPlayer.
	PlayerID int `json:"id_player,omitempty"`

	// AdminID, Username and Role are set when Kind == KindAdmin.
	AdminID  int    `json:"id_admin,omitempty"`
	Username string `json:"username,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

// PlayerIdentity builds the identity carried by a player token.
func PlayerIdentity(id int) Identity {
	return Identity{Kind: KindPlayer, PlayerID: id}
}

// AdminIdentity builds the identity carried by an admin token.
func AdminIdentity(id int, username string, role Role) Identity {
	return Identity{Kind: KindAdmin, AdminID: id, Username: username, Role: role}
}

// IsFullAdmin reports whether the identity may perform mutating admin
// operations.
func (i Identity) IsFullAdmin() bool {
	return i.Kind == KindAdmin && i.Role == RoleAdmin
}

// IsPlayer reports whether the identity belongs to a player account.
func (i Identity) IsPlayer() bool {
	return i.Kind == KindPlayer
}

// Valid reports whether the identity has a consistent tag and payload.
func (i Identity) Valid() bool {
	switch i.Kind {
	case KindPlayer:
		return i.PlayerID > 0
	case KindAdmin:
		_, ok := ParseRole(string(i.Role))
		return i.AdminID > 0 && ok
	default:
		return false
	}
}
