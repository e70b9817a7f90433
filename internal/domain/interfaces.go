package domain

// StorageManager persists one record of type V per username.
//
// Get reports absence with ok == false and a nil error. Set either makes the new
// value retrievable or returns an error and keeps the previous value. Delete of
// an absent username succeeds.
type StorageManager[V any] interface {
	Get(u Username) (v V, ok bool, err error)
	Set(u Username, v V) error
	Delete(u Username) error
}
