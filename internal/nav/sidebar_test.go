package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSidebar_OrderAndReplace(t *testing.T) {
	a := SidebarTree{NewGroup("A").Link("/a/").Build()}
	b := SidebarTree{NewGroup("B").Link("/b/").Build()}
	c := SidebarTree{NewGroup("C").Link("/c/").Build()}

	s := NewSidebar(
		SidebarSection{Prefix: "/", Tree: a},
		SidebarSection{Prefix: "/reference/", Tree: b},
	)
	assert.Equal(t, []string{"/", "/reference/"}, s.Prefixes())

	replaced := s.With("/", c)
	assert.Equal(t, []string{"/", "/reference/"}, replaced.Prefixes(), "replacing keeps position")
	tree, ok := replaced.Get("/")
	assert.True(t, ok)
	assert.Equal(t, c, tree)

	original, _ := s.Get("/")
	assert.Equal(t, a, original, "With must not mutate the receiver")

	_, ok = s.Get("/missing/")
	assert.False(t, ok)
}

func TestSidebar_AppendKeepsDuplicates(t *testing.T) {
	tree := SidebarTree{NewGroup("A").Link("/a/").Build()}
	s := Sidebar{}.Append("/", tree).Append("/", tree)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"/", "/"}, s.Prefixes())
}

func TestSidebar_ZeroValue(t *testing.T) {
	var s Sidebar
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Prefixes())
	assert.Empty(t, s.Sections())
}
