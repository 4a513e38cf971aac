package schedule

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "3:04 PM" // formato que se muestra
)

// Task es una tarea agendada para una mascota.
type Task struct {
	ID    string
	Title string
	Date  string // YYYY-MM-DD
	Time  string // 3:04 PM

	CreatedAt time.Time
}

// DefaultTasks es la agenda con la que arranca la página.
func DefaultTasks(now time.Time) []Task {
	return []Task{
		{ID: "1", Title: "Walk Buddy", Date: "2025-04-10", Time: "9:00 AM", CreatedAt: now},
		{ID: "2", Title: "Feed Whiskers", Date: "2025-04-10", Time: "12:00 PM", CreatedAt: now},
	}
}
