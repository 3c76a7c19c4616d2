package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationType_IsKnown(t *testing.T) {
	known := []RelationType{
		RelationUses, RelationOwns, RelationSends,
		RelationReceives, RelationSharesPhone, RelationSimilarEmail,
	}
	for _, rt := range known {
		assert.True(t, rt.IsKnown(), "%s should be known", rt)
	}
	assert.False(t, RelationType("FOLLOWS").IsKnown())
	assert.False(t, RelationType("").IsKnown())
}

func TestRelationType_UnknownTagsFlowThroughStore(t *testing.T) {
	s := NewStore()
	custom := RelationType("FOLLOWS")
	assert.NoError(t, s.AddRelationship("U1", "U2", custom, nil))

	rels := s.RelationshipsOfType(custom)
	assert.Len(t, rels, 1)
	assert.Equal(t, custom, rels[0].Type)
}
