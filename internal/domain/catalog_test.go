package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidCategory(t *testing.T) {
	t.Parallel()

	for _, opt := range Categories() {
		require.True(t, ValidCategory(opt.Value), opt.Value)
	}
	require.False(t, ValidCategory("gardening"))
	require.False(t, ValidCategory(""))
	require.False(t, ValidCategory("Software Issues")) // labels are not values
}

func TestValidDepartment(t *testing.T) {
	t.Parallel()

	for _, opt := range Departments() {
		require.True(t, ValidDepartment(opt.Value), opt.Value)
	}
	require.False(t, ValidDepartment("legal"))
	require.False(t, ValidDepartment(""))
}

func TestSubcategoriesFollowCategory(t *testing.T) {
	t.Parallel()

	for _, cat := range Categories() {
		if cat.Value == "others" {
			continue
		}
		subs := SubcategoriesFor(cat.Value)
		require.NotEmpty(t, subs, cat.Value)
		for _, sub := range subs {
			require.NotEmpty(t, sub.Label)
			require.NotEmpty(t, sub.Value)
		}
	}
}

func TestSubcategoriesUnknownFallsBackToGeneral(t *testing.T) {
	t.Parallel()

	for _, category := range []string{"others", "", "nonsense"} {
		subs := SubcategoriesFor(category)
		require.Len(t, subs, 1, category)
		require.Equal(t, "general", subs[0].Value)
	}
}
