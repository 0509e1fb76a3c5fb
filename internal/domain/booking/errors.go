package booking

import "errors"

// Repository outcome sentinels. Repositories never return bare nils to
// signal state; callers classify with errors.Is and translate to the
// HTTP taxonomy at the usecase boundary.
var (
	// ErrNotFound: the row addressed by id/username does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict: a uniqueness rule (username, barber-service pair)
	// would be violated by the write.
	ErrConflict = errors.New("record conflicts with an existing row")

	// ErrInvalidReference: a foreign key on the candidate row does not
	// resolve to an existing Customer, Barber or Service.
	ErrInvalidReference = errors.New("referenced record does not exist")
)
