package puzzle

import "fmt"

type Answer struct {
	Part        int
	Description string
	Value       int
}

func (a Answer) String() string {
	return fmt.Sprintf("Part %d - %s: %d", a.Part, a.Description, a.Value)
}
