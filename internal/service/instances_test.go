package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jundev/oneline/internal/widget"
)

func TestInstancesLifecycle(t *testing.T) {
	t.Parallel()
	r := NewInstances(widget.LayoutSmall)
	require.Equal(t, 1, r.Len())

	medium := r.Add(widget.LayoutMedium)
	_, err := uuid.Parse(medium.ID)
	require.NoError(t, err)

	list := r.List()
	require.Len(t, list, 2)
	require.NotEqual(t, list[0].ID, list[1].ID)

	require.True(t, r.SetLayout(medium.ID, widget.LayoutSmall))
	require.Equal(t, widget.LayoutSmall, r.List()[1].Layout)

	require.True(t, r.Remove(list[0].ID))
	require.False(t, r.Remove(list[0].ID))
	require.False(t, r.SetLayout("missing", widget.LayoutMedium))
	require.Equal(t, []Instance{{ID: medium.ID, Layout: widget.LayoutSmall}}, r.List())
}
