// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package hash

import (
	"math/rand/v2"
	"testing"
)

func Test_HashMap_01(t *testing.T) {
	items := []uint{1, 2, 3, 4, 3, 2, 1}
	check_HashMap(t, items, 64)
}

func Test_HashMap_02(t *testing.T) {
	items := generateRandomUints(10, 32)
	check_HashMap(t, items, 64)
}

func Test_HashMap_03(t *testing.T) {
	items := generateRandomUints(100, 32)
	check_HashMap(t, items, 64)
}

func Test_HashMap_04(t *testing.T) {
	items := generateRandomUints(1000, 32)
	check_HashMap(t, items, 64)
}

func Test_HashMap_05(t *testing.T) {
	items := generateRandomUints(1000, 10000)
	check_HashMap(t, items, 64)
}

// Force collisions by using a tiny number of distinct hashcodes.
func Test_HashMap_06(t *testing.T) {
	items := generateRandomUints(1000, 500)
	check_HashMap(t, items, 3)
}

func Test_HashMap_07(t *testing.T) {
	items := generateRandomUints(100, 100)
	check_HashMap(t, items, 1)
}

func Test_HashMap_08(t *testing.T) {
	hmap := NewMap[testKey, uint](0)
	//
	if hmap.Insert(testKey{1, 1}, 1) {
		t.Errorf("unexpected duplicate")
	}
	//
	if !hmap.Insert(testKey{1, 1}, 2) {
		t.Errorf("expected duplicate")
	}
	//
	if v, ok := hmap.Get(testKey{1, 1}); !ok || v != 2 {
		t.Errorf("expected 2, got %d", v)
	}
	//
	if hmap.Size() != 1 {
		t.Errorf("expected 1 item, got %d", hmap.Size())
	}
}

func Test_Combine_01(t *testing.T) {
	if Combine(1, 2) == Combine(2, 1) {
		t.Errorf("combine should be order sensitive")
	}
	//
	if Combine(1, 2) != Combine(1, 2) {
		t.Errorf("combine should be deterministic")
	}
	//
	if String("sin") == String("cos") {
		t.Errorf("unexpected collision")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

type testKey struct {
	value   uint
	modulus uint
}

func (p testKey) Equals(other testKey) bool {
	return p.value == other.value
}

func (p testKey) Hash() uint64 {
	return uint64(p.value % p.modulus)
}

func check_HashMap(t *testing.T, items []uint, modulus uint) {
	gmap := initGoMap(items)
	hmap := NewMap[testKey, uint](0)
	// Insert items
	for key, val := range gmap {
		hmap.Insert(testKey{key, modulus}, val)
	}
	// Sanity check number of unique items
	if hmap.Size() != uint(len(gmap)) {
		t.Errorf("expected %d items, got %d: %s", len(gmap), hmap.Size(), hmap.String())
	}
	// Sanity check containership
	for key, val := range gmap {
		if !hmap.ContainsKey(testKey{key, modulus}) {
			t.Errorf("missing key %d: %s", key, hmap.String())
		} else if v, ok := hmap.Get(testKey{key, modulus}); !ok {
			t.Errorf("missing item %d=>%d: %s", key, val, hmap.String())
		} else if v != val {
			t.Errorf("expecting %d=>%d, got %d=>%d: %s", key, val, key, v, hmap.String())
		}
	}
}

func initGoMap(items []uint) map[uint]uint {
	gmap := make(map[uint]uint)
	//
	for _, v := range items {
		if w, ok := gmap[v]; ok {
			gmap[v] = w + 1
		} else {
			gmap[v] = 1
		}
	}
	//
	return gmap
}

func generateRandomUints(n, m uint) []uint {
	items := make([]uint, n)
	//
	for i := range n {
		items[i] = rand.UintN(m)
	}
	//
	return items
}
