package auth

// Digest is the placeholder credential transform carried over from the
// original data set: reversed secret between fixed affixes. It is NOT a
// cryptographic hash and must not be used outside demo deployments; the only
// contract it satisfies is that login compares equal strings against the
// stored digest.
func Digest(password string) string {
	runes := []rune(password)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return "hashed_" + string(runes) + "_poc"
}
