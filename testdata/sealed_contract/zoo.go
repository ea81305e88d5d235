package zoo

type Animal interface {
	Move() string
	animal()
}

type Otter struct{}

func (Otter) Move() string { return "swim" }
func (Otter) animal()      {}

// Impostor has the exported method only.
type Impostor struct{}

func (Impostor) Move() string { return "walk" }
