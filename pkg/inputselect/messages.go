package inputselect

// ItemsMsg delivers a freshly loaded item list to the dropdown with the
// matching ID and clears its loading flag. A non-nil Err leaves the list
// empty.
type ItemsMsg[T any] struct {
	ID    string
	Items []T
	Err   error
}

// LoadingMsg sets the loading flag of the dropdown with the matching ID.
type LoadingMsg struct {
	ID      string
	Loading bool
}
