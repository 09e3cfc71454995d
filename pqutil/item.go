package pqutil

// Item encapsulates a payload and its priority.
type Item[T, P any] struct {
	Payload  T
	Priority P
}
