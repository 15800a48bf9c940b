package resolution

import (
	"testing"

	"github.com/pfried/graphperm/internal/entities"
)

func TestExtractPermissions(t *testing.T) {
	tests := []struct {
		name string
		edge *entities.Edge
		want string
	}{
		{
			name: "valid security grant",
			edge: &entities.Edge{Type: entities.EdgeTypeSecurity, Permissions: "1010"},
			want: "1010",
		},
		{
			name: "malformed grant fails safe",
			edge: &entities.Edge{Type: entities.EdgeTypeSecurity, Permissions: "10"},
			want: "0000",
		},
		{
			name: "absent permissions property",
			edge: &entities.Edge{Type: entities.EdgeTypeSecurity},
			want: "0000",
		},
		{
			name: "containment edge carries nothing",
			edge: &entities.Edge{Type: entities.EdgeTypeSubresource, Permissions: "1111"},
			want: "0000",
		},
		{
			name: "membership edge carries nothing",
			edge: &entities.Edge{Type: entities.EdgeTypeMemberOf, Permissions: "1111"},
			want: "0000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPermissions(tt.edge).String(); got != tt.want {
				t.Errorf("ExtractPermissions() = %q, want %q", got, tt.want)
			}
		})
	}
}
