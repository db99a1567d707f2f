package errs

// Error categories shared by every layer. Concrete errors are created with
// Mark(New("..."), ErrXxx) so callers can branch on the category with Is.
var (
	// malformed input, never retried
	ErrValidation = New("validation error")
	// referenced request or bid does not exist
	ErrNotFound = New("not found")
	// operation not legal in the entity's current state
	ErrInvalidState = New("invalid state")
	// lost a concurrent transition; refetch and retry the user action
	ErrConflict = New("conflict")
	// actor lacks the role or ownership required
	ErrAuthorization = New("authorization error")
)

// Category returns the taxonomy marker carried by err, or nil.
func Category(err error) error {
	for _, c := range []error{ErrValidation, ErrNotFound, ErrInvalidState, ErrConflict, ErrAuthorization} {
		if Is(err, c) {
			return c
		}
	}
	return nil
}
