package domain

// Zero overwrites b with zeros. Used on plaintext cipher keys once the AEAD holds its own copy.
func Zero(b []byte) {
	clear(b)
}
