package store

// Store is the serialized key-value contract shared by all backends.
// Operations are synchronous and run to completion; there is no context
// parameter because nothing in the store suspends or supports cancellation.
//
// Read reports absence through its second return rather than an error;
// errors are reserved for the backend actually failing (I/O, quota,
// connectivity). Callers above the store are expected to catch errors,
// log them, and degrade to an empty state rather than propagate.
type Store interface {
	// Read returns the value stored under key and whether it existed.
	Read(key string) (string, bool, error)

	// Write stores value under key, overwriting any previous value.
	Write(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
