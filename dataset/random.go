// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"math/rand"

	"github.com/aclements/go-trace/series"
)

// Random returns n observations [i, v] for i in [0, n), where each v
// is a random integer in [0, 10].
func Random(rng *rand.Rand, n int) []series.Observation {
	obs := make([]series.Observation, n)
	for i := range obs {
		obs[i] = series.Obs(series.Number(float64(i)), math.Round(rng.Float64()*10))
	}
	return obs
}

const nameChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomName returns a random five character name.
func RandomName(rng *rand.Rand) string {
	b := make([]byte, 5)
	for i := range b {
		b[i] = nameChars[rng.Intn(len(nameChars))]
	}
	return string(b)
}

// RandomSet returns a set of k series of n random observations each,
// with random distinct names.
func RandomSet(rng *rand.Rand, k, n int) *series.Set {
	set := series.NewSet()
	for set.Len() < k {
		name := RandomName(rng)
		if _, ok := set.Lookup(name); ok {
			continue
		}
		set.Add(name, Random(rng, n)...)
	}
	return set
}
