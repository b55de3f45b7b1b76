package arrays_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/arraykit/internal/arrays"
	"github.com/agbru/arraykit/internal/arrays/mocks"
)

func TestDefaultFactory_ListIsSorted(t *testing.T) {
	t.Parallel()
	factory := arrays.NewDefaultFactory()
	assert.Equal(t, []string{"merge", "quick"}, factory.List())
}

func TestDefaultFactory_Get(t *testing.T) {
	t.Parallel()
	factory := arrays.NewDefaultFactory()

	merge, err := factory.Get("merge")
	require.NoError(t, err)
	assert.False(t, merge.InPlace())
	assert.Equal(t, "merge", merge.Key())

	quick, err := factory.Get("quick")
	require.NoError(t, err)
	assert.True(t, quick.InPlace())

	_, err = factory.Get("bogo")
	assert.ErrorIs(t, err, arrays.ErrUnknownSorter)
}

func TestDefaultFactory_GetAllReturnsSnapshot(t *testing.T) {
	t.Parallel()
	factory := arrays.NewDefaultFactory()
	all := factory.GetAll()
	delete(all, "merge")

	_, err := factory.Get("merge")
	assert.NoError(t, err, "mutating the snapshot must not affect the factory")
}

func TestDefaultFactory_Register(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	custom := mocks.NewMockSorter(ctrl)
	custom.EXPECT().Key().Return("custom").AnyTimes()

	factory := arrays.NewDefaultFactory()
	require.NoError(t, factory.Register(custom))
	assert.Equal(t, []string{"custom", "merge", "quick"}, factory.List())

	err := factory.Register(custom)
	assert.ErrorIs(t, err, arrays.ErrDuplicateSorter)

	assert.Error(t, factory.Register(nil))
}

func TestSorters_SortSemantics(t *testing.T) {
	t.Parallel()

	t.Run("merge returns a copy", func(t *testing.T) {
		t.Parallel()
		data := []int{3, 1, 2}
		got := arrays.MergeSorter{}.Sort(arrays.Some(data))
		assert.Equal(t, "[1, 2, 3]", got.String())
		assert.Equal(t, []int{3, 1, 2}, data)
	})

	t.Run("quick sorts the argument", func(t *testing.T) {
		t.Parallel()
		data := []int{3, 1, 2}
		got := arrays.QuickSorter{}.Sort(arrays.Some(data))
		assert.Equal(t, "[1, 2, 3]", got.String())
		assert.Equal(t, []int{1, 2, 3}, data)
	})

	t.Run("absent passes through", func(t *testing.T) {
		t.Parallel()
		assert.True(t, arrays.MergeSorter{}.Sort(arrays.None()).IsNone())
		assert.True(t, arrays.QuickSorter{}.Sort(arrays.None()).IsNone())
	})
}
