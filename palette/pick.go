// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "cogentcore.org/swatch/keylist"

// Pick returns the entries of the given map with the given keys, in the
// order of the keys. Keys that are not in the map are skipped, and map
// entries whose keys are not given are left out. A key given twice keeps
// its first position.
func Pick[K comparable, V any](source map[K]V, keys ...K) *keylist.List[K, V] {
	res := keylist.New[K, V]()
	for _, k := range keys {
		if v, ok := source[k]; ok {
			res.Set(k, v)
		}
	}
	return res
}

// PickList is like [Pick], for an ordered source list.
func PickList[K comparable, V any](source *keylist.List[K, V], keys ...K) *keylist.List[K, V] {
	res := keylist.New[K, V]()
	for _, k := range keys {
		if v, ok := source.AtTry(k); ok {
			res.Set(k, v)
		}
	}
	return res
}
