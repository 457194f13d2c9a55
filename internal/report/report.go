// Package report renders the fixed trajectory report.
//
// The layout is a byte-exact contract: a model header, one line per
// coefficient, the initial position, then one line per step with the
// elapsed time to 3 decimals and the position to 8 decimals.
package report

import (
	"fmt"
	"io"

	"github.com/san-kum/lorenz63/internal/config"
	"github.com/san-kum/lorenz63/internal/dynamo"
)

type Reporter struct {
	w   io.Writer
	cfg config.Config
}

func New(w io.Writer, cfg config.Config) *Reporter {
	return &Reporter{w: w, cfg: cfg}
}

// Header writes the model banner, the three coefficient lines and the
// initial position. The Rayleigh line carries 8 decimal digits; the
// other values print in Go's default representation.
func (r *Reporter) Header() {
	fmt.Fprintln(r.w, "Lorenz 63 model")
	fmt.Fprintf(r.w, "Prandtl number = %v\n", r.cfg.Prandtl)
	fmt.Fprintf(r.w, "Rayleigh number = %.8f\n", r.cfg.Rayleigh)
	fmt.Fprintf(r.w, "beta = %v\n", r.cfg.Beta)
	fmt.Fprintf(r.w, "The initial state is at [%v, %v, %v]\n",
		r.cfg.Initial[0], r.cfg.Initial[1], r.cfg.Initial[2])
}

// OnStep writes one trajectory line. Satisfies dynamo.Observer, so a
// Reporter can stream a run as the simulator produces it.
func (r *Reporter) OnStep(x dynamo.State, t float64) {
	fmt.Fprintf(r.w, "t = %.3f, [%.8f, %.8f, %.8f]\n", t, x[0], x[1], x[2])
}

// Write renders a complete recorded result: header, then every
// post-initial state.
func (r *Reporter) Write(result *dynamo.Result) {
	r.Header()
	for i := 1; i < len(result.States); i++ {
		r.OnStep(result.States[i], result.Times[i])
	}
}
