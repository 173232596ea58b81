package github

// NotFoundError is returned when no release or suitable tag could be resolved.
type NotFoundError struct {
}

func (e NotFoundError) Error() string {
	return "could not be found"
}
