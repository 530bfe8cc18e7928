package models

// Course is a fixed culinary course a dish can be filed under.
type Course struct {
	ID   int
	Name string
	Type string
}

// CoursePlaceholder is the label of the empty "unselected" choice.
const CoursePlaceholder = "Select a course"

var courses = [...]Course{
	{ID: 1, Name: "Hors D'Oeurves", Type: "Hors D'Oeurves"},
	{ID: 2, Name: "Amuse-Bouche", Type: "Amuse-Bouche"},
	{ID: 3, Name: "Soup", Type: "Soup"},
	{ID: 4, Name: "Salad", Type: "Salad"},
	{ID: 5, Name: "Appetizer", Type: "Appetizer"},
	{ID: 6, Name: "Fish", Type: "Fish"},
	{ID: 7, Name: "Main Entree", Type: "Main Entree"},
	{ID: 8, Name: "Palate", Type: "Cleanser"},
	{ID: 9, Name: "Second Main Entree", Type: "Second Main Entree"},
	{ID: 10, Name: "Cheese", Type: "Cheese"},
	{ID: 11, Name: "Dessert", Type: "Dessert"},
	{ID: 12, Name: "Mignardise", Type: "Mignardise"},
}

// Courses returns the 12 courses in menu order.
func Courses() []Course {
	out := make([]Course, len(courses))
	copy(out, courses[:])
	return out
}

// CourseByName looks a course up by its selection value.
func CourseByName(name string) (Course, bool) {
	for _, c := range courses {
		if c.Name == name {
			return c, true
		}
	}
	return Course{}, false
}

// CourseByID looks a course up by id (1..12).
func CourseByID(id int) (Course, bool) {
	if id < 1 || id > len(courses) {
		return Course{}, false
	}
	return courses[id-1], true
}
