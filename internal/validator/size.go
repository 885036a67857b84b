package validator

// SizeLimit supplies the maximum secret payload size. It is consulted on every
// validation so the limit can change at runtime.
type SizeLimit interface {
	MaxSecretBytes() int
}

// FixedLimit is a constant SizeLimit.
type FixedLimit int

// MaxSecretBytes returns the limit.
func (l FixedLimit) MaxSecretBytes() int {
	return int(l)
}

// SecretTooBig reports whether payload exceeds max bytes. Strings are counted
// by their UTF-8 encoded length.
func SecretTooBig(payload any, max int) bool {
	switch p := payload.(type) {
	case string:
		return len(p) > max
	case []byte:
		return len(p) > max
	default:
		return false
	}
}
