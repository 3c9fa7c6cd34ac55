package models

// IndexSheetName is the name of the summary sheet appended to every workbook.
const IndexSheetName = "INDEX"

// Sheet holds the aggregated records destined for one output sheet.
type Sheet struct {
	// Name is the generated sheet name, unique within the workbook.
	Name string
	// Class is the raw class value shared by all records.
	Class string
	// Lesson is the raw lesson value shared by all records.
	Lesson string
	// Records are the sheet rows, sorted ascending by Item.
	Records []AggregatedRecord
}

// IndexEntry is one row of the INDEX sheet.
type IndexEntry struct {
	// Class is the raw class value of the sheet.
	Class string
	// Lesson is the raw lesson value of the sheet.
	Lesson string
	// Sheet is the generated sheet name.
	Sheet string
	// Items is the number of records on the sheet.
	Items int
}

// Collision records a sheet-name clash that was resolved by renaming.
type Collision struct {
	// Name is the safe sheet name both groups mapped to.
	Name string
	// RenamedTo is the disambiguated name the later group received.
	RenamedTo string
	// Class is the class value of the renamed group.
	Class string
	// Lesson is the lesson value of the renamed group.
	Lesson string
}

// Workbook is the assembled output artifact, ready for serialization.
type Workbook struct {
	// Sheets are the per-(class, lesson) sheets, sorted by class then lesson.
	Sheets []Sheet
	// Index holds one entry per sheet, in the same order.
	Index []IndexEntry
	// HasSize reports whether sheets carry a Size column.
	HasSize bool
	// HasUnit reports whether sheets carry a Unit/Notes column.
	HasUnit bool
	// Collisions lists sheet-name clashes resolved during assembly.
	Collisions []Collision
}
