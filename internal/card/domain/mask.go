package domain

const maskPrefix = "**** **** **** "

// MaskNumber renders a plaintext card number for display, revealing only its last
// four digits.
func MaskNumber(plain string) (string, error) {
	if len(plain) < 4 {
		return "", ErrInvalidCardNumber
	}
	return maskPrefix + plain[len(plain)-4:], nil
}
