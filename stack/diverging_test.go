// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stack

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/aclements/go-trace/series"
)

func likert(name string, cat string, value, baseline float64) series.Series {
	return series.Series{Name: name, Obs: []series.Observation{
		{Category: series.String(cat), Value: value, Baseline: baseline},
	}}
}

func TestDivergingExample(t *testing.T) {
	set := series.NewSet(
		likert("Disagree", "Q1", 4, 6),
		likert("Agree", "Q1", 10, 2),
	)
	d, err := StackDiverging(set)
	if err != nil {
		t.Fatal(err)
	}
	dis, agr := d.Series[0][0], d.Series[1][0]
	if dis.Value != -4 || dis.Baseline != -6 {
		t.Errorf("Disagree = %v/%v, want -4/-6", dis.Value, dis.Baseline)
	}
	if agr.Value != 10 || agr.Baseline != 2 {
		t.Errorf("Agree = %v/%v, want 10/2", agr.Value, agr.Baseline)
	}
	if dis.Y1 != -4 || dis.B1 != -6 || agr.Y1 != 0 || agr.B1 != 0 {
		t.Errorf("lower edges: Disagree %v/%v Agree %v/%v, want -4/-6 0/0", dis.Y1, dis.B1, agr.Y1, agr.B1)
	}
	if dis.Y0 != 0 || agr.Y0 != -4 {
		t.Errorf("Y0: Disagree %v Agree %v, want 0 and -4", dis.Y0, agr.Y0)
	}
	want := Accumulator{PosBase: 10, NegBase: -4, PosBaselineBase: 2, NegBaselineBase: -6}
	if d.Totals[0] != want {
		t.Errorf("Totals = %+v, want %+v", d.Totals[0], want)
	}
	if lo, hi := d.Domain(); lo != -6 || hi != 10 {
		t.Errorf("Domain = %v, %v, want -6, 10", lo, hi)
	}
}

func TestDivergingSigns(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for iter := 0; iter < 50; iter++ {
		set := series.NewSet()
		n := 1 + rng.Intn(4)
		for i := 0; i < n; i++ {
			var o []series.Observation
			for c := 0; c < 4; c++ {
				o = append(o, series.Observation{
					Category: series.Number(float64(c)),
					Value:    float64(rng.Intn(21) - 10),
					Baseline: float64(rng.Intn(21) - 10),
				})
			}
			set.Add(string(rune('A'+i)), o...)
		}
		d, err := StackDiverging(set)
		if err != nil {
			t.Fatal(err)
		}
		for i, ser := range d.Series {
			for _, s := range ser {
				if i == 0 && (s.Value > 0 || s.Baseline > 0) {
					t.Errorf("series 0 segment %v has positive value %v/%v", s.Category, s.Value, s.Baseline)
				}
				if i > 0 && (s.Value < 0 || s.Baseline < 0) {
					t.Errorf("series %d segment %v has negative value %v/%v", i, s.Category, s.Value, s.Baseline)
				}
			}
		}
		if n == 1 {
			for _, acc := range d.Totals {
				if acc.PosBase != 0 || acc.PosBaselineBase != 0 {
					t.Errorf("single series has positive totals %+v", acc)
				}
			}
		}
	}
}

func TestDivergingSingleZero(t *testing.T) {
	d, err := StackDiverging(series.NewSet(likert("Only", "Q1", 0, 5)))
	if err != nil {
		t.Fatal(err)
	}
	want := Accumulator{NegBaselineBase: -5}
	if d.Totals[0] != want {
		t.Errorf("Totals = %+v, want %+v", d.Totals[0], want)
	}
}

func TestDivergingEmpty(t *testing.T) {
	_, err := StackDiverging(series.NewSet())
	if !errors.Is(err, series.ErrInvalidInput) {
		t.Errorf("StackDiverging({}) error = %v, want invalid input", err)
	}
}

func TestDivergingZeroFill(t *testing.T) {
	set := series.NewSet(
		likert("No", "Q1", 3, 0),
		likert("Yes", "Q2", 5, 1),
	)
	d, err := StackDiverging(set)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Categories) != 2 || len(d.Series[0]) != 2 || len(d.Series[1]) != 2 {
		t.Fatalf("layout not aligned: %v", d.Series)
	}
	if s := d.Series[0][1]; s.Value != 0 {
		t.Errorf("zero-filled segment = %v", s)
	}
	if s := d.Series[1][0]; s.Value != 0 || s.Y1 != 0 {
		t.Errorf("zero-filled segment = %+v", s)
	}
}
