// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore-labs/scenelayout/value"
)

func TestTopoSortOrdersDependencyFirst(t *testing.T) {
	names := []string{"width", "height", "depth"}
	deps := map[string]string{"width": "height"}
	order, err := value.TopoSort(names, deps, nil)
	require.NoError(t, err)
	widthIdx, heightIdx := indexOf(order, "width"), indexOf(order, "height")
	assert.Less(t, heightIdx, widthIdx)
}

func TestTopoSortCycleFails(t *testing.T) {
	names := []string{"width", "height"}
	deps := map[string]string{"width": "height", "height": "width"}
	_, err := value.TopoSort(names, deps, nil)
	assert.Error(t, err)
}

func TestTopoSortAliasResolution(t *testing.T) {
	names := []string{"width", "height"}
	deps := map[string]string{"width": "h"}
	aliases := map[string]string{"h": "height"}
	order, err := value.TopoSort(names, deps, aliases)
	require.NoError(t, err)
	assert.Less(t, indexOf(order, "height"), indexOf(order, "width"))
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
