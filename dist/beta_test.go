// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestBetaBadShape(t *testing.T) {
	for _, tc := range []struct{ a, b float64 }{
		{0, 1}, {1, 0}, {-2, 3},
	} {
		_, err := Beta(tc.a, tc.b, 0, 1)
		assert.ErrorIs(t, err, ErrBadParameter, "Beta(%v, %v)", tc.a, tc.b)
	}
}

func TestBetaAgainstDistuv(t *testing.T) {
	d, err := Beta(2, 3, 0, 1)
	require.NoError(t, err)
	ref := distuv.Beta{Alpha: 2, Beta: 3}

	for i := 1; i < 20; i++ {
		x := float64(i) / 20
		f, err := d.PDF(x)
		require.NoError(t, err)
		if !aeqTol(ref.Prob(x), f, 1e-10) {
			t.Errorf("PDF(%v) = %v, want %v", x, f, ref.Prob(x))
		}
		c, err := d.CDF(x)
		require.NoError(t, err)
		if !aeqTol(ref.CDF(x), c, 1e-10) {
			t.Errorf("CDF(%v) = %v, want %v", x, c, ref.CDF(x))
		}
	}
	for i := 1; i < 10; i++ {
		q := float64(i) / 10
		x, err := d.PPF(q)
		require.NoError(t, err)
		if !aeqTol(ref.Quantile(q), x, 1e-10) {
			t.Errorf("PPF(%v) = %v, want %v", q, x, ref.Quantile(q))
		}
	}
}

func TestBetaMoments(t *testing.T) {
	d, err := Beta(2, 3, 0, 1)
	require.NoError(t, err)

	// E[X^k] = Π (a+i)/(a+b+i).
	want := []float64{1, 2.0 / 5, (2.0 / 5) * (3.0 / 6), (2.0 / 5) * (3.0 / 6) * (4.0 / 7)}
	got, err := d.MomEach([]int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.True(t, aeqSlice(want, got, 1e-12), "moments %v, want %v", got, want)
}

func TestBetaUniformRecurrence(t *testing.T) {
	// Beta(1,1) is the uniform distribution on [0,1]; its monic
	// recurrence is the shifted Legendre one.
	for k := 0; k <= 5; k++ {
		alpha, beta := betaTTR(k, 1, 1)
		if !aeq(0.5, alpha) {
			t.Errorf("alpha_%d = %v, want 0.5", k, alpha)
		}
		want := 1.0
		if k > 0 {
			kf := float64(k)
			want = kf * kf / (4 * (4*kf*kf - 1))
		}
		if !aeq(want, beta) {
			t.Errorf("beta_%d = %v, want %v", k, beta, want)
		}
	}
}

func TestBetaRecurrenceMatchesEngine(t *testing.T) {
	// The closed-form Jacobi recurrence and the quadrature fallback
	// must agree on a smooth density.
	d, err := Beta(2, 3, 0, 1)
	require.NoError(t, err)

	alphas, betas, err := Recurrence(d, 4, nil, 2000)
	require.NoError(t, err)
	for k := 0; k <= 4; k++ {
		wantA, wantB := betaTTR(k, 2, 3)
		if !aeqTol(wantA, alphas[k], 1e-3) || !aeqTol(wantB, betas[k], 1e-3) {
			t.Errorf("engine ttr(%d) = (%v, %v), want (%v, %v)",
				k, alphas[k], betas[k], wantA, wantB)
		}
	}
}

func TestBetaRemapped(t *testing.T) {
	d, err := Beta(2, 2, -1, 1)
	require.NoError(t, err)

	lo, hi, err := d.Bounds()
	require.NoError(t, err)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 1.0, hi)

	m, err := d.Mom(1)
	require.NoError(t, err)
	assert.True(t, aeq(0, m), "symmetric mean, got %v", m)
}
