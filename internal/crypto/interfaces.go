package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable hashes and checks
// candidates against them. It knows nothing about users, transports or
// storage; its only job is credential derivation.
//
// Implementations must be salted: hashing the same password twice yields two
// different hash strings, and Verify is the only way to relate them.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	// The returned string embeds the salt and cost parameters.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext password matches the stored hash.
	// It must run in time independent of where the mismatch occurs.
	Verify(password string, hash string) bool
}
