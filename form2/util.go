package form2

import (
	"fmt"
	"runtime/debug"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Stack returns the goroutine stack at the point of failure.
func (s *shapeErr) Stack() string {
	return s.stack
}

func recoverShape(err *error) {
	if a := recover(); a != nil {
		*err = &shapeErr{
			panicObj: a,
			stack:    string(debug.Stack()),
		}
	}
}
