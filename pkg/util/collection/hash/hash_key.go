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
	"hash/fnv"
)

// A reasonably simple hashmap implementation which permits collisions.  Observe
// that structural digests of expressions are only 64 bits wide, hence two
// distinct expression shapes can (rarely) share a hashcode.  The intern table
// must never conflate them, so equality is always checked within a bucket.

// Hasher provides a generic definition of a hashing function suitable for use
// within the hashmap.  It additionally includes equality, which is used to
// resolve collisions.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Combine folds zero or more 64-bit words (e.g. child hashcodes) into a single
// hashcode using the FNV-1a scheme.  The order of words matters.
func Combine(words ...uint64) uint64 {
	hash := offset64
	//
	for _, w := range words {
		hash ^= w
		hash *= prime64
	}
	//
	return hash
}

// String generates a 64-bit hashcode from a given string.
func String(s string) uint64 {
	hash := fnv.New64a()
	hash.Write([]byte(s))
	// Done
	return hash.Sum64()
}

// Bytes generates a 64-bit hashcode from a given byte array.
func Bytes(bytes []byte) uint64 {
	hash := fnv.New64a()
	hash.Write(bytes)
	// Done
	return hash.Sum64()
}
