// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package marray

import "fmt"

// InvalidLength is returned by Make/Init when the requested length is
// negative.
type InvalidLength int

func (e InvalidLength) Error() string {
	return fmt.Sprintf("marray: invalid length %d", int(e))
}
