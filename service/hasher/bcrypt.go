package hasher

import (
	"github.com/lordvidex/errs"
	"golang.org/x/crypto/bcrypt"
)

type Bcrypt struct{}

func (b *Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare fails with an Unauthenticated error when the password does not
// match the hash. A malformed hash is treated the same as a mismatch.
func (b *Bcrypt) Compare(hashed, original string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(original))
	if err != nil {
		return errs.B().Code(errs.Unauthenticated).Msg("passwords do not match").Err()
	}
	return nil
}
