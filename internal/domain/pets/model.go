package pets

import "time"

// Pet es una mascota de la lista "My Pets".
type Pet struct {
	ID   string
	Name string
	Type string // Dog, Cat, Rabbit... texto libre
	Age  int

	CreatedAt time.Time
}

// DefaultPets es la lista con la que arranca la página.
func DefaultPets(now time.Time) []Pet {
	return []Pet{
		{ID: "1", Name: "Buddy", Type: "Dog", Age: 3, CreatedAt: now},
		{ID: "2", Name: "Whiskers", Type: "Cat", Age: 2, CreatedAt: now},
		{ID: "3", Name: "Fluffy", Type: "Rabbit", Age: 1, CreatedAt: now},
	}
}
