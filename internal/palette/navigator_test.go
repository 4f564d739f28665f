package palette

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestNavigator() (*Navigator, *Registry) {
	r := NewRegistry()
	r.RegisterPage("Switch branch", CommandsPage{})
	return NewNavigator(r), r
}

func TestNavigatorTransitions(t *testing.T) {
	n, _ := newTestNavigator()
	require.Equal(t, Idle, n.State())

	n.Open()
	require.Equal(t, Listing, n.State())

	require.True(t, n.SetPage("Switch branch", false))
	require.Equal(t, Paged, n.State())
	require.Equal(t, "Switch branch", n.Page())

	require.True(t, n.GoBack())
	require.Equal(t, Listing, n.State())
	require.False(t, n.GoBack())

	n.SetQuery("abc")
	require.True(t, n.SetPage("Switch branch", true))
	n.Close()
	require.Equal(t, Idle, n.State())
	require.Empty(t, n.Page())
	require.Empty(t, n.Query())
}

func TestNavigatorOpenFromPagedClearsPage(t *testing.T) {
	n, _ := newTestNavigator()
	n.Open()
	n.SetPage("Switch branch", false)
	n.SetQuery("dev")
	n.Open()
	require.Equal(t, Listing, n.State())
	require.Equal(t, "dev", n.Query())
}

func TestSetPageUnknownLeavesStateUnchanged(t *testing.T) {
	n, _ := newTestNavigator()
	n.Open()
	require.True(t, n.SetPage("Switch branch", false))
	n.SetQuery("keep")

	require.False(t, n.SetPage("nonexistent", false))
	require.Equal(t, "Switch branch", n.Page())
	require.Equal(t, "keep", n.Query())
	require.Equal(t, Paged, n.State())

	require.False(t, n.SetPage("", false))
	require.False(t, NewNavigator(nil).SetPage("Switch branch", false))
}

func TestSetPageQueryHandling(t *testing.T) {
	n, _ := newTestNavigator()
	n.Open()
	n.SetQuery("main")
	require.True(t, n.SetPage("Switch branch", false))
	require.Empty(t, n.Query())

	n.GoBack()
	n.SetQuery("main")
	require.True(t, n.SetPage("Switch branch", true))
	require.Equal(t, "main", n.Query())

	n.GoBack()
	require.Equal(t, "main", n.Query(), "going back keeps the query")
}

func TestSetPageWhileIdleAlsoOpensPalette(t *testing.T) {
	n, _ := newTestNavigator()
	require.True(t, n.SetPage("Switch branch", false))
	require.True(t, n.IsOpen())
	require.Equal(t, Paged, n.State())
}

func TestSetOpenAndReconcile(t *testing.T) {
	n, r := newTestNavigator()
	h := r.RegisterPage("Docs", CommandsPage{})
	n.SetOpen(true)
	require.True(t, n.SetPage("Docs", false))

	require.False(t, n.Reconcile())
	h.Unregister()
	require.True(t, n.Reconcile())
	require.Equal(t, Listing, n.State())

	n.SetOpen(false)
	require.Equal(t, Idle, n.State())
}
