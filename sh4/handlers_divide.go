package sh4

import "github.com/retrocore/sh4dc/opcodes"

func div0u(c *CPU, word uint16) (bool, error) {
	c.Regs.SetQ(false)
	c.Regs.SetM(false)
	c.Regs.SetT(false)
	return false, nil
}

func div0sRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	q := c.Regs.R(n)&0x80000000 != 0
	mm := c.Regs.R(m)&0x80000000 != 0
	c.Regs.SetQ(q)
	c.Regs.SetM(mm)
	c.Regs.SetT(q != mm)
	return false, nil
}

// div1RmRn performs one non-restoring division step. This is the
// manufacturer's documented four-branch carry rule (spec §4.3.2): the
// outcome depends on the old Q, M, and whether the trial add/subtract
// against the divisor carried out, not on a single uniform formula.
func div1RmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)

	oldQ := c.Regs.Q()
	rn := c.Regs.R(n)
	newQ := rn&0x80000000 != 0
	rn = (rn << 1) | boolToU32(c.Regs.T())

	rm := c.Regs.R(m)
	var carried bool

	if !oldQ {
		if !c.Regs.M() {
			before := rn
			rn -= rm
			carried = rn > before
			if !newQ {
				newQ = carried
			} else {
				newQ = !carried
			}
		} else {
			before := rn
			rn += rm
			carried = rn < before
			if !newQ {
				newQ = !carried
			} else {
				newQ = carried
			}
		}
	} else {
		if !c.Regs.M() {
			before := rn
			rn += rm
			carried = rn < before
			if !newQ {
				newQ = carried
			} else {
				newQ = !carried
			}
		} else {
			before := rn
			rn -= rm
			carried = rn > before
			if !newQ {
				newQ = !carried
			} else {
				newQ = carried
			}
		}
	}

	c.Regs.SetR(n, rn)
	c.Regs.SetQ(newQ)
	c.Regs.SetT(newQ == c.Regs.M())
	return false, nil
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func divideHandlers() map[opcodes.Operator]Handler {
	return map[opcodes.Operator]Handler{
		"DIV0U":       div0u,
		"DIV0S_RM_RN": div0sRmRn,
		"DIV1_RM_RN":  div1RmRn,
	}
}
