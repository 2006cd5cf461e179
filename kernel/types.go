package kernel

import (
	"github.com/katalvlaran/spmv/distplan"
	"github.com/katalvlaran/spmv/icrs"
)

// Kernel pairs one processor's local nonzero block with the two
// routing tables mv_init produced for it. All three are read-only and
// shared across every MatVec call.
type Kernel struct {
	M     *icrs.ICRS
	VPlan *distplan.Plan
	UPlan *distplan.Plan
}

// New builds a Kernel from a converted local block and its v- and
// u-plans. m, vplan and uplan must come from the same local matrix
// block: vplan from icrs.ICRS.ColIndex, uplan from icrs.ICRS.RowIndex.
func New(m *icrs.ICRS, vplan, uplan *distplan.Plan) *Kernel {
	return &Kernel{M: m, VPlan: vplan, UPlan: uplan}
}

// contribution is one fan-in message: "add Val to your local u
// component Local." Self-describing, since the u-plan runs no
// negotiation round to pre-agree an order.
type contribution struct {
	Local int
	Val   float64
}
