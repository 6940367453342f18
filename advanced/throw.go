package advanced

import "github.com/pkg/errors"

// Threading errors up through the splitter, face tracer and boundary walker
// would add a ton of complexity to the code. Instead, we use panics, and the
// public API recovers to convert to an error.

type ClipError error

// Panic with a ClipError.
func fatalf(format string, args ...interface{}) {
	panic(ClipError(errors.Errorf(format, args...)))
}

func HandleClipPanicRecover(r interface{}) error {
	if r != nil {
		if clipError, ok := r.(ClipError); ok {
			return clipError
		}
		panic(r)
	}
	return nil
}
