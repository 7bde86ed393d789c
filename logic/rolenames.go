package logic

// RoleNameTable - injectable read-only fallback for role display names, used
// when the directory's role lookup is unavailable. Keys are role ids.
type RoleNameTable map[string]string

// Lookup - returns the known display name for a role id, or the id itself
func (t RoleNameTable) Lookup(roleID string) string {
	if name, ok := t[roleID]; ok {
		return name
	}
	return roleID
}

// DefaultRoleNames - built-in directory role ids and their display names
var DefaultRoleNames = RoleNameTable{
	"62e90394-69f5-4237-9190-012177145e10": "Global Administrator",
	"e8611ab8-c189-46e8-94e1-60213ab1f814": "Privileged Role Administrator",
	"194ae4cb-b126-40b2-bd5b-6091b380977d": "Security Administrator",
	"fe930be7-5e62-47db-91af-98c3a49a38b1": "User Administrator",
	"29232cdf-9323-42fd-ade2-1d097af3e4de": "Exchange Administrator",
	"729827e3-9c14-49f7-bb1b-9608f156bbb8": "Helpdesk Administrator",
	"b79fbf4d-3ef9-4689-8143-76b194e85509": "Global Reader",
	"17315797-102d-40b4-93e0-432062caca18": "Compliance Administrator",
}
