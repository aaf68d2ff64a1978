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
package stack

import "testing"

func Test_Stack_01(t *testing.T) {
	st := NewStack[int]()
	//
	if !st.IsEmpty() {
		t.Errorf("expected empty stack")
	}
	//
	st.Push(1)
	st.Push(2)
	//
	if st.Len() != 2 || st.Peek(0) != 2 || st.Peek(1) != 1 {
		t.Errorf("unexpected stack contents")
	}
	//
	if st.Pop() != 2 || st.Pop() != 1 || !st.IsEmpty() {
		t.Errorf("unexpected pop order")
	}
}

func Test_Stack_02(t *testing.T) {
	st := NewStack[int]()
	st.Push(1)
	st.Push(2)
	//
	clone := st.Clone()
	clone.Replace(0, 3)
	clone.Push(4)
	//
	if st.Len() != 2 || st.Peek(0) != 2 {
		t.Errorf("clone affected original")
	}
	//
	if clone.Len() != 3 || clone.Peek(1) != 3 {
		t.Errorf("unexpected clone contents")
	}
}

func Test_Stack_03(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	//
	NewStack[int]().Pop()
}
