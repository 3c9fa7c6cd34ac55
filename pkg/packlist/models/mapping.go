package models

// RoleMapping assigns semantic roles to column headers of a RawTable.
// Class, Lesson, Item and Quantity are required and must name four distinct
// headers. Size and Unit are optional; an empty string means unset.
type RoleMapping struct {
	// Class is the header of the class/course column.
	Class string
	// Lesson is the header of the lesson/module column.
	Lesson string
	// Item is the header of the item description column.
	Item string
	// Quantity is the header of the numeric quantity column.
	Quantity string
	// Size is the header of the optional size column.
	Size string
	// Unit is the header of the optional unit/notes column.
	Unit string
}

// Required returns the four required headers in role order.
func (m RoleMapping) Required() []string {
	return []string{m.Class, m.Lesson, m.Item, m.Quantity}
}

// HasSize reports whether a size column was requested.
func (m RoleMapping) HasSize() bool { return m.Size != "" }

// HasUnit reports whether a unit column was requested.
func (m RoleMapping) HasUnit() bool { return m.Unit != "" }
