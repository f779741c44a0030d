// internal/types/types.go
package types

// EntityID - монотонно растущий идентификатор сущности в пределах одной партии.
// Ноль никогда не выдаётся и означает «нет сущности».
type EntityID uint64
