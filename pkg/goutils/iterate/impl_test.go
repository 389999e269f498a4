/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package iterate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type (
	IPages interface {
		Pages(enum func(name string))
	}
	pages struct {
		names []string
	}
)

func (s *pages) Pages(enum func(name string)) {
	for _, name := range s.names {
		enum(name)
	}
}

func Test_ForEachError(t *testing.T) {
	require := require.New(t)

	var tested IPages = &pages{names: []string{"MAIN", "SUB", "SEC"}}
	testErr := errors.New("test error")

	visited := []string{}
	err := ForEachError(tested.Pages, func(n string) error {
		visited = append(visited, n)
		if n == "SUB" {
			return testErr
		}
		return nil
	})
	require.ErrorIs(err, testErr)
	require.Equal([]string{"MAIN", "SUB"}, visited, "iteration must stop on first error")

	visited = visited[:0]
	require.NoError(ForEachError(Slice(tested.(*pages).names), func(n string) error {
		visited = append(visited, n)
		return nil
	}))
	require.Equal([]string{"MAIN", "SUB", "SEC"}, visited)
}

func Test_FindFirst(t *testing.T) {
	require := require.New(t)

	var tested IPages = &pages{names: []string{"MAIN", "SUB", "SEC"}}

	ok, data := FindFirst(tested.Pages, func(n string) bool { return n[0] == 'S' })
	require.True(ok)
	require.Equal("SUB", data)

	ok, data = FindFirst(tested.Pages, func(n string) bool { return n == "impossible" })
	require.False(ok)
	require.Empty(data)
}

func Test_FindFirstError(t *testing.T) {
	require := require.New(t)

	testErr := errors.New("test error")

	data, err := FindFirstError(Slice([]int{1, 2, 3}), func(i int) error {
		if i > 1 {
			return testErr
		}
		return nil
	})
	require.ErrorIs(err, testErr)
	require.Equal(2, data)

	data, err = FindFirstError(Slice([]int{1, 2, 3}), func(int) error { return nil })
	require.NoError(err)
	require.Zero(data)
}
