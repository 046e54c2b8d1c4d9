package lawcite_test

import (
	"testing"

	"github.com/fwojciec/lawcite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Validate(t *testing.T) {
	t.Parallel()

	t.Run("container with children is valid", func(t *testing.T) {
		t.Parallel()

		node := &lawcite.Node{
			Role:   lawcite.RoleArticle,
			Number: "1",
			Children: []*lawcite.Node{
				{Role: lawcite.RoleSentence, Text: "本文"},
			},
		}

		require.NoError(t, node.Validate())
	})

	t.Run("node cannot be both container and leaf", func(t *testing.T) {
		t.Parallel()

		node := &lawcite.Node{
			Role: lawcite.RoleParagraph,
			Text: "本文",
			Children: []*lawcite.Node{
				{Role: lawcite.RoleSentence, Text: "本文"},
			},
		}

		err := node.Validate()
		require.Error(t, err)
		assert.Equal(t, lawcite.EINVALID, lawcite.ErrorCode(err))
	})

	t.Run("sentence cannot have children", func(t *testing.T) {
		t.Parallel()

		node := &lawcite.Node{
			Role:     lawcite.RoleSentence,
			Children: []*lawcite.Node{{Role: lawcite.RoleSentence}},
		}

		err := node.Validate()
		require.Error(t, err)
		assert.Equal(t, lawcite.EINVALID, lawcite.ErrorCode(err))
	})

	t.Run("only sub-items carry a depth", func(t *testing.T) {
		t.Parallel()

		node := &lawcite.Node{Role: lawcite.RoleItem, Number: "1", Depth: 2}

		err := node.Validate()
		require.Error(t, err)
		assert.Equal(t, lawcite.EINVALID, lawcite.ErrorCode(err))
	})
}

func TestNode_CountLeaves(t *testing.T) {
	t.Parallel()

	tree := &lawcite.Node{
		Role: lawcite.RoleLaw,
		Children: []*lawcite.Node{
			{Role: lawcite.RoleSentence, Text: "題名"},
			{
				Role:   lawcite.RoleArticle,
				Number: "1",
				Children: []*lawcite.Node{
					{Role: lawcite.RoleSentence, Text: "一文目"},
					{Role: lawcite.RoleSentence, Text: "二文目"},
				},
			},
		},
	}

	assert.Equal(t, 3, tree.CountLeaves())
}
