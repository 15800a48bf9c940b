package entities

// PermissionVectorLength is the number of capability flags in a grant
const PermissionVectorLength = 4

// PermissionVector holds the four independent capability flags carried by a
// SECURITY grant. The meaning of each position is policy-defined and opaque
// to the resolver. The zero value is the "no access" result and the identity
// element for Merge.
type PermissionVector [PermissionVectorLength]bool

// ParsePermissionVector parses the permissions property of a SECURITY edge.
// A valid value is exactly 4 characters, each '0' or '1'.
// Anything else (wrong length, other characters, empty string) yields the
// zero vector and ok=false; malformed grants never contribute access.
func ParsePermissionVector(s string) (PermissionVector, bool) {
	var v PermissionVector
	if len(s) != PermissionVectorLength {
		return PermissionVector{}, false
	}
	for i := 0; i < PermissionVectorLength; i++ {
		switch s[i] {
		case '0':
			v[i] = false
		case '1':
			v[i] = true
		default:
			return PermissionVector{}, false
		}
	}
	return v, true
}

// Merge returns the per-position logical OR of the two vectors.
// The operation is commutative, associative, and idempotent, so the result
// of folding a set of grants is independent of discovery order.
func (v PermissionVector) Merge(other PermissionVector) PermissionVector {
	var merged PermissionVector
	for i := 0; i < PermissionVectorLength; i++ {
		merged[i] = v[i] || other[i]
	}
	return merged
}

// IsZero reports whether no flag is set
func (v PermissionVector) IsZero() bool {
	return v == PermissionVector{}
}

// String serializes the vector as a 4-character binary string (e.g., "0110")
func (v PermissionVector) String() string {
	buf := make([]byte, PermissionVectorLength)
	for i := 0; i < PermissionVectorLength; i++ {
		if v[i] {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
