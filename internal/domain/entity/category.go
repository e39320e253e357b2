package entity

import "time"

// Category representa una categoría del menú (hamburguesas, bebidas, etc.).
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
