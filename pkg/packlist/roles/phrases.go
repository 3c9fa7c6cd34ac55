package roles

// Role identifies a semantic column role.
type Role string

const (
	// RoleClass is the class/course column.
	RoleClass Role = "class"
	// RoleLesson is the lesson/module column.
	RoleLesson Role = "lesson"
	// RoleItem is the item description column.
	RoleItem Role = "item"
	// RoleQuantity is the numeric quantity column.
	RoleQuantity Role = "quantity"
	// RoleSize is the optional size column.
	RoleSize Role = "size"
	// RoleUnit is the optional unit/notes column.
	RoleUnit Role = "unit"
)

// AllRoles lists every role in a stable order.
var AllRoles = []Role{RoleClass, RoleLesson, RoleItem, RoleQuantity, RoleSize, RoleUnit}

// PhraseTable maps each role to an ordered list of normalized phrases,
// highest priority first.
type PhraseTable map[Role][]string

// DefaultPhrases returns the built-in phrase table. Order matters: earlier
// phrases win over later ones regardless of header position.
func DefaultPhrases() PhraseTable {
	return PhraseTable{
		RoleClass:    {"class", "course", "program"},
		RoleLesson:   {"lesson", "module", "unit", "activity"},
		RoleItem:     {"item description", "item", "product", "material", "supply"},
		RoleQuantity: {"per section total", "needed", "quantity", "qty", "total"},
		RoleSize:     {"size"},
		RoleUnit:     {"unit of measure", "uom", "units", "unit"},
	}
}

// IsValidRole reports whether name is a known role.
func IsValidRole(name string) bool {
	for _, r := range AllRoles {
		if string(r) == name {
			return true
		}
	}
	return false
}

// Merge returns a copy of the default table with the given per-role
// overrides applied. An override replaces the role's whole phrase list.
func (t PhraseTable) Merge(overrides PhraseTable) PhraseTable {
	merged := make(PhraseTable, len(t))
	for role, phrases := range t {
		merged[role] = phrases
	}
	for role, phrases := range overrides {
		if len(phrases) > 0 {
			merged[role] = phrases
		}
	}
	return merged
}
