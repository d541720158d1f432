// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestTriangleQuantileTable(t *testing.T) {
	d, err := Triangle(-1, 0, 1)
	require.NoError(t, err)

	qs := []float64{0, 0.2, 0.4, 0.6, 0.8, 1}
	xs, err := d.PPFEach(qs)
	require.NoError(t, err)
	wantX := []float64{-1.000, -0.368, -0.106, 0.106, 0.368, 1.000}
	if !aeqSlice(wantX, xs, 1e-3) {
		t.Errorf("PPF(%v) = %v, want %v", qs, xs, wantX)
	}

	fs, err := d.PDFEach(xs)
	require.NoError(t, err)
	wantF := []float64{0.000, 0.632, 0.894, 0.894, 0.632, 0.000}
	if !aeqSlice(wantF, fs, 1e-3) {
		t.Errorf("PDF(%v) = %v, want %v", xs, fs, wantF)
	}

	// Forward evaluation inverts the quantiles.
	cs, err := d.CDFEach(xs)
	require.NoError(t, err)
	if !aeqSlice(qs, cs, 1e-9) {
		t.Errorf("CDF(PPF(q)) = %v, want %v", cs, qs)
	}
}

func TestTriangleRecurrenceTable(t *testing.T) {
	d, err := Triangle(-1, 0, 1)
	require.NoError(t, err)

	alphas, betas, err := d.TTREach([]int{0, 1, 2, 3})
	require.NoError(t, err)
	if !aeqSlice([]float64{0, 0, 0, 0}, alphas, 1e-3) {
		t.Errorf("alphas = %v, want zeros", alphas)
	}
	want := []float64{4.0, 0.1667, 0.2333, 0.2327}
	if !aeqSlice(want, betas, 2e-3) {
		t.Errorf("betas = %v, want %v", betas, want)
	}
}

func TestTriangleMoments(t *testing.T) {
	d, err := Triangle(-1, 0, 1)
	require.NoError(t, err)

	m, err := d.Mom(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m)

	// The symmetric case has zero mean, and E[X^2] = 1/6.
	m, err = d.Mom(1)
	require.NoError(t, err)
	assert.True(t, aeq(0, m), "mom(1) = %v", m)

	m, err = d.Mom(2)
	require.NoError(t, err)
	assert.True(t, aeq(1.0/6, m), "mom(2) = %v", m)
}

func TestTriangleAgainstDistuv(t *testing.T) {
	d, err := Triangle(-1, 0.25, 1)
	require.NoError(t, err)
	ref := distuv.NewTriangle(-1, 1, 0.25, nil)

	for i := 1; i < 40; i++ {
		x := -1 + float64(i)/20
		f, err := d.PDF(x)
		require.NoError(t, err)
		if !aeqTol(ref.Prob(x), f, 1e-9) {
			t.Errorf("PDF(%v) = %v, want %v", x, f, ref.Prob(x))
		}
		c, err := d.CDF(x)
		require.NoError(t, err)
		if !aeqTol(ref.CDF(x), c, 1e-9) {
			t.Errorf("CDF(%v) = %v, want %v", x, c, ref.CDF(x))
		}
	}
	for i := 1; i < 10; i++ {
		q := float64(i) / 10
		x, err := d.PPF(q)
		require.NoError(t, err)
		if !aeqTol(ref.Quantile(q), x, 1e-9) {
			t.Errorf("PPF(%v) = %v, want %v", q, x, ref.Quantile(q))
		}
	}
}

func TestTriangleNormalization(t *testing.T) {
	// The density integrates to 1 for interior and boundary shapes.
	for _, tc := range []struct{ lower, mid, upper float64 }{
		{-1, 0, 1},
		{0, 0, 1},   // midpoint = lower
		{0, 1, 1},   // midpoint = upper
		{2, 4.5, 5}, // asymmetric
	} {
		d, err := Triangle(tc.lower, tc.mid, tc.upper)
		require.NoError(t, err)

		const n = 2001
		xs := make([]float64, n)
		fs := make([]float64, n)
		for i := range xs {
			xs[i] = tc.lower + (tc.upper-tc.lower)*float64(i)/(n-1)
			fs[i], err = d.PDF(xs[i])
			require.NoError(t, err)
		}
		total := integrate.Trapezoidal(xs, fs)
		if !aeqTol(1, total, 1e-4) {
			t.Errorf("Triangle(%v, %v, %v): density integrates to %v", tc.lower, tc.mid, tc.upper, total)
		}
	}
}

func TestTriangleCDFProperties(t *testing.T) {
	d, err := Triangle(2, 4.5, 5)
	require.NoError(t, err)

	c, err := d.CDF(2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c, "cdf at lower bound")
	c, err = d.CDF(5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c, "cdf at upper bound")

	prev := -1.0
	for i := 0; i <= 100; i++ {
		x := 2 + 3*float64(i)/100
		c, err := d.CDF(x)
		require.NoError(t, err)
		if c < prev {
			t.Fatalf("cdf decreases at %v: %v < %v", x, c, prev)
		}
		prev = c
	}
}

func TestTriangleDegenerateUsesClosedForm(t *testing.T) {
	// midpoint = lower collapses the standardized triangle onto
	// Beta(1,2), midpoint = upper onto Beta(2,1); both recurrences are
	// closed-form, so even tiny resolutions must not hurt them.
	for _, tc := range []struct {
		mid  float64
		a, b float64
	}{
		{-1, 1, 2},
		{1, 2, 1},
	} {
		d, err := Triangle(-1, tc.mid, 1)
		require.NoError(t, err)

		for k := 0; k <= 4; k++ {
			alpha, beta, err := d.TTR(k)
			require.NoError(t, err)
			wantA, wantB := betaTTR(k, tc.a, tc.b)
			wantA = wantA*2 - 1 // affine transform onto [-1, 1]
			wantB *= 4
			if !aeq(wantA, alpha) || !aeq(wantB, beta) {
				t.Errorf("midpoint=%v: ttr(%d) = (%v, %v), want (%v, %v)",
					tc.mid, k, alpha, beta, wantA, wantB)
			}
		}
	}
}

func TestTriangleRoundTrip(t *testing.T) {
	d, err := Triangle(2, 4.5, 5)
	require.NoError(t, err)

	for i := 1; i < 30; i++ {
		x := 2 + 3*float64(i)/30
		c, err := d.CDF(x)
		require.NoError(t, err)
		back, err := d.PPF(c)
		require.NoError(t, err)
		if !aeqTol(x, back, 1e-9) {
			t.Errorf("PPF(CDF(%v)) = %v", x, back)
		}
	}
}

func TestTriangleBadDomain(t *testing.T) {
	for _, tc := range []struct{ lower, mid, upper float64 }{
		{1, 0, -1},  // inverted
		{0, -1, 1},  // midpoint below lower
		{0, 2, 1},   // midpoint above upper
		{1, 1, 1},   // zero width
	} {
		_, err := Triangle(tc.lower, tc.mid, tc.upper)
		assert.ErrorIs(t, err, ErrBadDomain, "Triangle(%v, %v, %v)", tc.lower, tc.mid, tc.upper)
	}
}

func TestTriangleString(t *testing.T) {
	d, err := Triangle(-1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Triangle(lower=-1, midpoint=0, upper=1)", d.String())
}

func BenchmarkTriangleTTR(b *testing.B) {
	d, err := Triangle(-1, 0, 1)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		if _, _, err := d.TTR(5); err != nil {
			b.Fatal(err)
		}
	}
}
