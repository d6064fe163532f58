package model

// MenuItem represents a dish on the restaurant menu.
type MenuItem struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       *string `json:"image"`
	IsAvailable bool    `json:"is_available"`
}

// MenuItemDoc is a stored menu item together with its document identifier.
type MenuItemDoc struct {
	ID string `json:"id"`
	MenuItem
}
