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
package math

import (
	"math/big"
	"testing"
)

func Test_Pow_0(t *testing.T) {
	check(0, t)
}

func Test_Pow_1(t *testing.T) {
	check(1, t)
}

func Test_Pow_2(t *testing.T) {
	check(2, t)
}

func Test_Pow_3(t *testing.T) {
	check(3, t)
}

func Test_Pow_4(t *testing.T) {
	check(4, t)
}

func Test_Pow_5(t *testing.T) {
	check(5, t)
}

func Test_PowInt_01(t *testing.T) {
	if r, ok := PowInt(big.NewInt(3), 4, 64); !ok || r.Int64() != 81 {
		t.Errorf("expected 81, got %v", r)
	}
	//
	if _, ok := PowInt(big.NewInt(1<<20), 100, 64); ok {
		t.Errorf("expected size limit to be exceeded")
	}
	//
	if r, ok := PowInt(big.NewInt(1), 1000000, 64); !ok || r.Int64() != 1 {
		t.Errorf("expected 1, got %v", r)
	}
}

func Test_NthRoot_01(t *testing.T) {
	for k := uint64(1); k < 6; k++ {
		for base := uint64(0); base < 40; base++ {
			n := new(big.Int).SetUint64(PowUint64(base, k))
			//
			if r, exact := NthRoot(n, k); !exact || r.Uint64() != base {
				t.Errorf("root %d of %s: expected %d, got %s (%t)", k, n, base, r, exact)
			}
			// One more is never exact (except for trivial cases)
			n.Add(n, big.NewInt(1))
			//
			if r, exact := NthRoot(n, k); k > 1 && base > 0 && (exact || r.Uint64() != base) {
				t.Errorf("root %d of %s: expected inexact %d, got %s (%t)", k, n, base, r, exact)
			}
		}
	}
}

func Test_ExtractPower_01(t *testing.T) {
	checkExtract(t, 12, 2, 2, 3)
	checkExtract(t, 9, 2, 3, 1)
	checkExtract(t, 36, 2, 6, 1)
	checkExtract(t, 7, 2, 1, 7)
	checkExtract(t, 64, 3, 4, 1)
	checkExtract(t, 48, 3, 2, 6)
	checkExtract(t, 1, 2, 1, 1)
}

func Test_ExtractPower_02(t *testing.T) {
	// 2053 is prime and beyond the trial division limit.
	checkExtract(t, 2053*2053*5, 2, 1, 2053*2053*5)
	checkExtract(t, 2053*2053, 2, 2053, 1)
}

func checkExtract(t *testing.T, n int64, k uint64, a int64, b int64) {
	ra, rb := ExtractPower(big.NewInt(n), k)
	//
	if ra.Int64() != a || rb.Int64() != b {
		t.Errorf("extract %d from %d: expected (%d,%d), got (%s,%s)", k, n, a, b, ra, rb)
	}
}

func check(base uint64, t *testing.T) {
	for i := uint64(0); i < 10; i++ {
		// Bruteforce solution
		e := bruteForce(base, i)
		// Check for a match
		if x := PowUint64(base, i); x != e {
			t.Errorf("2^%d == %d != %d", i, x, e)
		}
	}
}

func bruteForce(base, exp uint64) uint64 {
	acc := uint64(1)
	for i := uint64(0); i < exp; i++ {
		acc *= base
	}

	return acc
}
