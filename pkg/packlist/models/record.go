package models

// AggregatedRecord is one summarized (class, lesson, item) row.
type AggregatedRecord struct {
	// Class is the raw class column value.
	Class string
	// Lesson is the raw lesson column value.
	Lesson string
	// Item is the raw item column value.
	Item string
	// Quantity is the sum of coerced quantities across the source rows.
	Quantity float64
	// Size is the size value of the first source row, if a size column
	// was resolved.
	Size string
	// Unit is the unit value of the first source row, if a unit column
	// was resolved.
	Unit string
}
