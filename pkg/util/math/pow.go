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
)

// TRIAL_DIVISION_LIMIT determines the largest candidate base considered when
// extracting perfect powers by trial division.  Any cofactor left over is only
// checked for being a perfect power itself.
const TRIAL_DIVISION_LIMIT = 1024

// PowUint64 raises a given base raised to a given power.
func PowUint64(base uint64, exp uint64) uint64 {
	result := uint64(1)
	//
	for {
		if exp&1 == 1 {
			result *= base
		}
		// div 2
		exp >>= 1
		//
		if exp == 0 {
			break
		}
		//
		base *= base
	}

	return result
}

// PowInt raises a given base to a given non-negative power, provided the
// result (conservatively estimated) requires no more than maxBits bits.
// Otherwise, false is returned and no computation is performed.
func PowInt(base *big.Int, exp uint64, maxBits uint64) (*big.Int, bool) {
	var bits = uint64(base.BitLen())
	// Conservative size estimate
	if bits > 1 && exp > maxBits/(bits-1) {
		return nil, false
	}
	//
	return new(big.Int).Exp(base, new(big.Int).SetUint64(exp), nil), true
}

// NthRoot computes the integer kth root of a non-negative integer n, rounding
// down.  The second return indicates whether the root is exact.
func NthRoot(n *big.Int, k uint64) (*big.Int, bool) {
	if n.Sign() < 0 || k == 0 {
		panic("invalid root")
	} else if n.Sign() == 0 || k == 1 {
		return new(big.Int).Set(n), true
	} else if k == 2 {
		r := new(big.Int).Sqrt(n)
		return r, new(big.Int).Mul(r, r).Cmp(n) == 0
	}
	// Newton iteration from an overestimate.
	var (
		bk    = new(big.Int).SetUint64(k)
		bk1   = new(big.Int).SetUint64(k - 1)
		x     = new(big.Int).Lsh(big.NewInt(1), uint(uint64(n.BitLen())/k+1))
		kexp1 = new(big.Int).SetUint64(k - 1)
	)
	//
	for {
		// y = ((k-1)*x + n / x^(k-1)) / k
		xk1 := new(big.Int).Exp(x, kexp1, nil)
		y := new(big.Int).Quo(n, xk1)
		y.Add(y, new(big.Int).Mul(bk1, x))
		y.Quo(y, bk)
		//
		if y.Cmp(x) >= 0 {
			break
		}
		//
		x = y
	}
	//
	return x, new(big.Int).Exp(x, bk, nil).Cmp(n) == 0
}

// ExtractPower splits a positive integer n into a^k * b, such that a is as
// large as can be determined.  Specifically, all kth powers of bases upto
// TRIAL_DIVISION_LIMIT are extracted, and any remaining cofactor which is
// itself a perfect kth power is extracted as well.
func ExtractPower(n *big.Int, k uint64) (*big.Int, *big.Int) {
	var (
		a  = big.NewInt(1)
		b  = new(big.Int).Set(n)
		bk = new(big.Int).SetUint64(k)
		r  = new(big.Int)
		q  = new(big.Int)
	)
	//
	if n.Sign() <= 0 || k <= 1 {
		return a, b
	}
	//
	for p := int64(2); p <= TRIAL_DIVISION_LIMIT; p++ {
		bp := big.NewInt(p)
		pk := new(big.Int).Exp(bp, bk, nil)
		// Check whether any further factors are possible
		if pk.Cmp(b) > 0 {
			break
		}
		// Extract all occurrences
		for {
			q.QuoRem(b, pk, r)
			//
			if r.Sign() != 0 {
				break
			}
			//
			b.Set(q)
			a.Mul(a, bp)
		}
	}
	// Check whether cofactor is itself a perfect power
	if b.Cmp(big.NewInt(1)) > 0 {
		if root, exact := NthRoot(b, k); exact {
			a.Mul(a, root)
			b.SetInt64(1)
		}
	}
	//
	return a, b
}
