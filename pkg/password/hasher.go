package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher encapsula bcrypt con costo configurable. El costo se paga en cada
// Hash y cada Verify; no se cachean resultados de verificación.
type Hasher struct {
	cost int
}

// NewHasher construye el hasher con el costo por defecto de bcrypt (10).
func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// SetCost ajusta el factor de trabajo (p. ej. bcrypt.MinCost en tests).
func (h *Hasher) SetCost(cost int) {
	h.cost = cost
}

// Hash genera un digest bcrypt con salt fresco: dos llamadas con el mismo
// plaintext producen salidas distintas.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify informa si plaintext fue el origen del hash almacenado.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
