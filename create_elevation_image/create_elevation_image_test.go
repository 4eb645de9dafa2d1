package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yalue/elevation"
)

func TestParseBoundaryPolicy(t *testing.T) {
	cases := []struct {
		name string
		want elevation.BoundaryPolicy
	}{
		{"clamp", elevation.ClampToGrid},
		{"reject", elevation.RejectAtEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseBoundaryPolicy(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			// The flag accepts exactly the names the policies print.
			assert.Equal(t, tc.name, got.String())
		})
	}
	for _, bad := range []string{"", "Clamp", "wrap"} {
		_, err := parseBoundaryPolicy(bad)
		assert.Error(t, err, "policy %q", bad)
	}
}
