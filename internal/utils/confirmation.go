package utils

import "crypto/rand"

// confirmationAlphabet is the character set used for booking
// confirmation codes. Uppercase letters and digits only, so codes
// survive being read over the phone or typed from a printout.
const confirmationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewConfirmationCode returns a random confirmation code of the given
// length drawn from confirmationAlphabet using crypto/rand. The code
// is opaque: it carries no booking information and is only ever used
// for guest-facing lookup.
func NewConfirmationCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = confirmationAlphabet[int(b)%len(confirmationAlphabet)]
	}
	return string(buf), nil
}
