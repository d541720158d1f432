// distinfo prints a summary table for a triangular distribution:
// quantiles, density, cumulative probability, raw moments, and the
// three-term recurrence coefficients of its orthogonal polynomials.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yuanyuansjtu/go-randvar/dist"
)

func main() {
	lower := flag.Float64("lower", -1, "lower bound of the support")
	mid := flag.Float64("mid", 0, "location of the peak")
	upper := flag.Float64("upper", 1, "upper bound of the support")
	order := flag.Int("order", 3, "highest moment/recurrence order to print")
	flag.Parse()

	d, err := dist.Triangle(*lower, *mid, *upper)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(d)
	fmt.Println()

	fmt.Printf("%8s %10s %10s %10s\n", "q", "ppf", "pdf", "cdf")
	for i := 0; i <= 10; i++ {
		q := float64(i) / 10
		x, err := d.PPF(q)
		if err != nil {
			fatal(err)
		}
		f, err := d.PDF(x)
		if err != nil {
			fatal(err)
		}
		c, err := d.CDF(x)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("%8.2f %10.4f %10.4f %10.4f\n", q, x, f, c)
	}
	fmt.Println()

	for k := 0; k <= *order; k++ {
		m, err := d.Mom(k)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("mom(%d) %10.4f\n", k, m)
	}
	fmt.Println()

	for k := 0; k <= *order; k++ {
		a, b, err := d.TTR(k)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("ttr(%d)  alpha %10.4f  beta %10.4f\n", k, a, b)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
