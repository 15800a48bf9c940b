package resolution

import "github.com/pfried/graphperm/internal/entities"

// ExtractPermissions reads the permission vector carried by an edge.
// Only SECURITY edges carry a payload; SUBRESOURCE and IS_MEMBER_OF edges
// establish connectivity and contribute nothing. A SECURITY edge whose
// permissions property is missing or malformed resolves to the zero vector:
// bad grant data fails safe, it never grants access and never raises an
// error.
func ExtractPermissions(edge *entities.Edge) entities.PermissionVector {
	if edge.Type != entities.EdgeTypeSecurity {
		return entities.PermissionVector{}
	}
	v, ok := entities.ParsePermissionVector(edge.Permissions)
	if !ok {
		return entities.PermissionVector{}
	}
	return v
}
