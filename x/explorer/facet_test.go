package explorer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/characterhub/characterhub/client/mock"
	"github.com/characterhub/characterhub/core"
)

func tagged(id string, tags ...core.CharacterTag) core.Character {
	return core.Character{ID: id, Tags: tags}
}

func TestDeriveFacetsCountsAndOrder(t *testing.T) {
	villain := core.CharacterTag{ID: "t1", Name: "villain"}
	medieval := core.CharacterTag{ID: "t2", Name: "medieval"}
	royalty := core.CharacterTag{ID: "t3", Name: "royalty"}

	characters := []core.Character{
		tagged("c1", villain, medieval),
		tagged("c2", villain),
		tagged("c3", medieval),
		tagged("c4", royalty),
	}

	facets := deriveFacets(characters, nil)

	assert.Len(t, facets, 3)
	assert.Equal(t, "medieval", facets[0].Tag.Name)
	assert.Equal(t, 2, facets[0].Count)
	assert.Equal(t, "villain", facets[1].Tag.Name)
	assert.Equal(t, 2, facets[1].Count)
	assert.Equal(t, "royalty", facets[2].Tag.Name)
	assert.Equal(t, 1, facets[2].Count)
}

func TestDeriveFacetsExcludesSelected(t *testing.T) {
	villain := core.CharacterTag{ID: "t1", Name: "villain"}
	medieval := core.CharacterTag{ID: "t2", Name: "medieval"}

	characters := []core.Character{
		tagged("c1", villain, medieval),
		tagged("c2", villain),
	}

	facets := deriveFacets(characters, []core.CharacterTag{villain})

	assert.Len(t, facets, 1)
	assert.Equal(t, "medieval", facets[0].Tag.Name)
}

func TestVisibleTagsWindow(t *testing.T) {
	characters := make([]core.Character, 0, 6)
	names := []string{"a", "b", "c", "d", "e", "f"}
	for i, name := range names {
		tags := make([]core.CharacterTag, 0, i+1)
		// tag "a" appears on every character, "f" only on the last
		for j := 0; j <= i; j++ {
			tags = append(tags, core.CharacterTag{ID: names[j], Name: names[j]})
		}
		characters = append(characters, tagged(name, tags...))
	}

	e := New(nil, nil)
	e.characters = characters

	visible := e.VisibleTags()
	assert.Len(t, visible, facetWindow)
	assert.Equal(t, "a", visible[0].Tag.Name)

	e.ToggleShowMore()
	assert.Len(t, e.VisibleTags(), 6)

	e.ToggleShowMore()
	assert.Len(t, e.VisibleTags(), facetWindow)
}

func TestSelectTagCollapsesWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli := mock_client.NewMockClient(ctrl)
	cli.EXPECT().SearchCharacters(gomock.Any(), "token", gomock.Any()).Return(
		core.CharactersResponse{}, nil,
	).AnyTimes()

	e := New(cli, newStubSource(ctrl), WithDebounce(testDebounce))
	defer e.Close()

	e.ToggleShowMore()
	assert.True(t, e.expanded)

	e.SelectTag(context.Background(), core.CharacterTag{ID: "t1", Name: "villain"})
	assert.False(t, e.expanded)
}
