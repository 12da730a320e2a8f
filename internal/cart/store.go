package cart

// Store persists cart lines between sessions.
type Store interface {
	Load() ([]Line, error)
	Save(lines []Line) error
}
