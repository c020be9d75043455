package sh4

import "github.com/retrocore/sh4dc/opcodes"

// setDelay schedules target as the PC to take effect once the instruction
// in the delay slot (the next fetch) has executed, per spec §4.3.4/§4.6.
func (c *CPU) setDelay(target uint32) {
	c.delayPending = true
	c.delayTarget = target
	c.delayBranchPC = c.currentPC
}

func braDisp(c *CPU, word uint16) (bool, error) {
	d := signExt12(fieldD12(word))
	c.setDelay(uint32(int32(c.currentPC) + 4 + (d << 1)))
	return false, nil
}

func bsrDisp(c *CPU, word uint16) (bool, error) {
	d := signExt12(fieldD12(word))
	c.Regs.SetPR(c.currentPC + 4)
	c.setDelay(uint32(int32(c.currentPC) + 4 + (d << 1)))
	return false, nil
}

func btDisp(c *CPU, word uint16) (bool, error) {
	if !c.Regs.T() {
		return false, nil
	}
	d := signExt8(uint8(fieldD8(word)))
	c.Regs.SetPC(uint32(int32(c.currentPC) + 4 + (d << 1)))
	c.pcOverridden = true
	return false, nil
}

func bfDisp(c *CPU, word uint16) (bool, error) {
	if c.Regs.T() {
		return false, nil
	}
	d := signExt8(uint8(fieldD8(word)))
	c.Regs.SetPC(uint32(int32(c.currentPC) + 4 + (d << 1)))
	c.pcOverridden = true
	return false, nil
}

// btsDisp is BT/S: like BT, but the branch (when taken) has a delay slot.
func btsDisp(c *CPU, word uint16) (bool, error) {
	if !c.Regs.T() {
		return false, nil
	}
	d := signExt8(uint8(fieldD8(word)))
	c.setDelay(uint32(int32(c.currentPC) + 4 + (d << 1)))
	return false, nil
}

func bfsDisp(c *CPU, word uint16) (bool, error) {
	if c.Regs.T() {
		return false, nil
	}
	d := signExt8(uint8(fieldD8(word)))
	c.setDelay(uint32(int32(c.currentPC) + 4 + (d << 1)))
	return false, nil
}

func jmpAtRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	c.setDelay(c.Regs.R(n))
	return false, nil
}

func jsrAtRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	c.Regs.SetPR(c.currentPC + 4)
	c.setDelay(c.Regs.R(n))
	return false, nil
}

func brafRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	c.setDelay(c.currentPC + 4 + c.Regs.R(n))
	return false, nil
}

func bsrfRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	c.Regs.SetPR(c.currentPC + 4)
	c.setDelay(c.currentPC + 4 + c.Regs.R(n))
	return false, nil
}

func rts(c *CPU, word uint16) (bool, error) {
	c.setDelay(c.Regs.PR())
	return false, nil
}

// rte restores SR from SSR immediately rather than after the delay slot: the
// delay slot instruction executes under the restored (pre-exception) mode,
// per spec §4.3.4's RTE carve-out.
func rte(c *CPU, word uint16) (bool, error) {
	c.Regs.SetSR(c.Regs.SSR())
	c.setDelay(c.Regs.SPC())
	return false, nil
}

func trapaImm(c *CPU, word uint16) (bool, error) {
	imm := uint32(fieldI8(word))
	c.mmio.setTRA(imm << 2)
	c.raiseException(ExcTrap, c.currentPC+2, 0)
	return true, nil
}

func branchHandlers() map[opcodes.Operator]Handler {
	return map[opcodes.Operator]Handler{
		"BRA_DISP":  braDisp,
		"BSR_DISP":  bsrDisp,
		"BT_DISP":   btDisp,
		"BF_DISP":   bfDisp,
		"BTS_DISP":  btsDisp,
		"BFS_DISP":  bfsDisp,
		"JMP_ATRN":  jmpAtRn,
		"JSR_ATRN":  jsrAtRn,
		"BRAF_RN":   brafRn,
		"BSRF_RN":   bsrfRn,
		"RTS":       rts,
		"RTE":       rte,
		"TRAPA_IMM": trapaImm,
	}
}
