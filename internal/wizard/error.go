package wizard

import "errors"

var (
	ErrWrongStep            = errors.New("action not available at this step")
	ErrImageIndexOutOfRange = errors.New("image index out of range")
)
