// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

import (
	"bytes"
	"fmt"
	"io"
)

// String dumps every slot of the buffer. A "|" marks the logical end when
// Size() < Capacity():
//
//	{ 1 2 | 0 0 }, m_end=2, m_capacity=4
func (v *Vector[T]) String() string {
	var buf bytes.Buffer
	buf.WriteString("{ ")
	for i := range v.storage {
		if i == v.size {
			buf.WriteString("| ")
		}
		fmt.Fprintf(&buf, "%v ", v.storage[i])
	}
	fmt.Fprintf(&buf, "}, m_end=%d, m_capacity=%d", v.size, len(v.storage))
	return buf.String()
}

func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())
	return int64(n), err
}
