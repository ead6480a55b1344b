package model

// NeutralColor is used for budgets and rows whose category is not in the registry.
const NeutralColor = "gray"

// Category is a fixed classification label with display metadata.
type Category struct {
	Name  string `toml:"name" json:"name"`
	Color string `toml:"color" json:"color"`
	Icon  string `toml:"icon,omitempty" json:"icon,omitempty"`
}

// DefaultCategories returns the built-in category list in display order.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Food", Color: "blue", Icon: "dollar-sign"},
		{Name: "Transportation", Color: "green", Icon: "car"},
		{Name: "Entertainment", Color: "purple", Icon: "film"},
		{Name: "Shopping", Color: "yellow", Icon: "shopping-bag"},
		{Name: "Bills", Color: "red", Icon: "receipt"},
		{Name: "Other", Color: "gray", Icon: "package"},
	}
}
