package dto

// UpdateModel is the capability shared by all update payloads: they carry
// the identity of the row they mutate.
type UpdateModel interface {
	ModelID() int
}
