package animals

// Mover is open: any package can satisfy it.
type Mover interface {
	Move() string
}

type Dog struct{}

func (d Dog) Move() string { return "run" }

type Bat struct{}

func (b *Bat) Move() string { return "fly" }

type Rock struct{} // no Move, must not be reported
