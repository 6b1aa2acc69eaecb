package column

// Column is a grouping bucket for tasks, ordered left to right on the board.
type Column struct {
	// ID is the unique identifier. The four seeded defaults use fixed ids;
	// user-created columns get generated ones.
	ID string `json:"id"`

	// Title is the display name.
	Title string `json:"title"`

	// Color is a token from Palette, purely cosmetic.
	Color string `json:"color"`

	// Order positions the column among its siblings, ascending. Not
	// required unique; ties keep a stable relative order.
	Order int `json:"order"`
}

// CreateRequest holds the fields accepted when creating a column.
type CreateRequest struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

// DefaultColor is used when a create request omits the color.
const DefaultColor = "slate"

// Palette is the fixed set of color tokens a column may carry.
var Palette = []string{
	"slate", "red", "orange", "amber", "yellow", "lime",
	"green", "emerald", "teal", "cyan", "sky", "blue",
	"indigo", "violet", "purple", "fuchsia", "pink", "rose",
}

// Defaults are the four columns seeded into an empty board.
func Defaults() []Column {
	return []Column{
		{ID: "backlog", Title: "Backlog", Color: "slate", Order: 0},
		{ID: "todo", Title: "To Do", Color: "red", Order: 1},
		{ID: "inProgress", Title: "In Progress", Color: "blue", Order: 2},
		{ID: "done", Title: "Done", Color: "green", Order: 3},
	}
}
