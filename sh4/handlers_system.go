package sh4

import "github.com/retrocore/sh4dc/opcodes"

// fieldBankIdx extracts the 3-bit banked-register index from the RnBANK
// operand forms (bit 7 of the encoding is fixed at 1 and not part of the
// index).
func fieldBankIdx(word uint16) int { return int((word >> 4) & 0x7) }

func ldcRmSR(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	c.Regs.SetSR(c.Regs.R(fieldM(word)))
	return false, nil
}

func ldcRmGBR(c *CPU, word uint16) (bool, error) {
	c.Regs.SetGBR(c.Regs.R(fieldM(word)))
	return false, nil
}

func ldcRmVBR(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	c.Regs.SetVBR(c.Regs.R(fieldM(word)))
	return false, nil
}

func ldcRmSSR(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	c.Regs.SetSSR(c.Regs.R(fieldM(word)))
	return false, nil
}

func ldcRmSPC(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	c.Regs.SetSPC(c.Regs.R(fieldM(word)))
	return false, nil
}

func ldcRmDBR(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	c.Regs.SetDBR(c.Regs.R(fieldM(word)))
	return false, nil
}

func ldcRmRnBank(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	m := fieldN(word) // the source is the mmmm field, placed at bits 8-11
	j := fieldBankIdx(word)
	c.Regs.SetRBank(j, c.Regs.R(m))
	return false, nil
}

func stcSRRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	c.Regs.SetR(fieldN(word), c.Regs.SR())
	return false, nil
}

func stcGBRRn(c *CPU, word uint16) (bool, error) {
	c.Regs.SetR(fieldN(word), c.Regs.GBR())
	return false, nil
}

func stcVBRRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	c.Regs.SetR(fieldN(word), c.Regs.VBR())
	return false, nil
}

func stcSSRRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	c.Regs.SetR(fieldN(word), c.Regs.SSR())
	return false, nil
}

func stcSPCRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	c.Regs.SetR(fieldN(word), c.Regs.SPC())
	return false, nil
}

func stcSGRRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	c.Regs.SetR(fieldN(word), c.Regs.SGR())
	return false, nil
}

func stcDBRRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	c.Regs.SetR(fieldN(word), c.Regs.DBR())
	return false, nil
}

func stcRmBankRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	n := fieldN(word)
	j := fieldBankIdx(word)
	c.Regs.SetR(n, c.Regs.RBank(j))
	return false, nil
}

func ldclAtRmPSR(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	m := fieldM(word)
	addr := c.Regs.R(m)
	v, fault := c.readLong(addr)
	if fault {
		return true, nil
	}
	c.Regs.SetSR(v)
	c.Regs.SetR(m, addr+4)
	return false, nil
}

func ldclAtRmPGBR(c *CPU, word uint16) (bool, error) {
	m := fieldM(word)
	addr := c.Regs.R(m)
	v, fault := c.readLong(addr)
	if fault {
		return true, nil
	}
	c.Regs.SetGBR(v)
	c.Regs.SetR(m, addr+4)
	return false, nil
}

func ldclAtRmPVBR(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	m := fieldM(word)
	addr := c.Regs.R(m)
	v, fault := c.readLong(addr)
	if fault {
		return true, nil
	}
	c.Regs.SetVBR(v)
	c.Regs.SetR(m, addr+4)
	return false, nil
}

func ldclAtRmPSSR(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	m := fieldM(word)
	addr := c.Regs.R(m)
	v, fault := c.readLong(addr)
	if fault {
		return true, nil
	}
	c.Regs.SetSSR(v)
	c.Regs.SetR(m, addr+4)
	return false, nil
}

func ldclAtRmPSPC(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	m := fieldM(word)
	addr := c.Regs.R(m)
	v, fault := c.readLong(addr)
	if fault {
		return true, nil
	}
	c.Regs.SetSPC(v)
	c.Regs.SetR(m, addr+4)
	return false, nil
}

func ldclAtRmPDBR(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	m := fieldM(word)
	addr := c.Regs.R(m)
	v, fault := c.readLong(addr)
	if fault {
		return true, nil
	}
	c.Regs.SetDBR(v)
	c.Regs.SetR(m, addr+4)
	return false, nil
}

func ldclAtRmPRnBank(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	m := fieldN(word)
	j := fieldBankIdx(word)
	addr := c.Regs.R(m)
	v, fault := c.readLong(addr)
	if fault {
		return true, nil
	}
	c.Regs.SetRBank(j, v)
	c.Regs.SetR(m, addr+4)
	return false, nil
}

func stclSRAtMRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	n := fieldN(word)
	addr := c.Regs.R(n) - 4
	if c.writeLong(addr, c.Regs.SR()) {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func stclGBRAtMRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	addr := c.Regs.R(n) - 4
	if c.writeLong(addr, c.Regs.GBR()) {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func stclVBRAtMRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	n := fieldN(word)
	addr := c.Regs.R(n) - 4
	if c.writeLong(addr, c.Regs.VBR()) {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func stclSSRAtMRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	n := fieldN(word)
	addr := c.Regs.R(n) - 4
	if c.writeLong(addr, c.Regs.SSR()) {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func stclSPCAtMRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	n := fieldN(word)
	addr := c.Regs.R(n) - 4
	if c.writeLong(addr, c.Regs.SPC()) {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func stclSGRAtMRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	n := fieldN(word)
	addr := c.Regs.R(n) - 4
	if c.writeLong(addr, c.Regs.SGR()) {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func stclDBRAtMRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	n := fieldN(word)
	addr := c.Regs.R(n) - 4
	if c.writeLong(addr, c.Regs.DBR()) {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func stclRmBankAtMRn(c *CPU, word uint16) (bool, error) {
	if requirePrivileged(c) {
		return true, nil
	}
	n := fieldN(word)
	j := fieldBankIdx(word)
	addr := c.Regs.R(n) - 4
	if c.writeLong(addr, c.Regs.RBank(j)) {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func ldsRmMACH(c *CPU, word uint16) (bool, error) {
	c.Regs.SetMACH(c.Regs.R(fieldM(word)))
	return false, nil
}

func ldsRmMACL(c *CPU, word uint16) (bool, error) {
	c.Regs.SetMACL(c.Regs.R(fieldM(word)))
	return false, nil
}

func ldsRmPR(c *CPU, word uint16) (bool, error) {
	c.Regs.SetPR(c.Regs.R(fieldM(word)))
	return false, nil
}

func ldsRmFPSCR(c *CPU, word uint16) (bool, error) {
	c.FPU.SetFPSCR(c.Regs.R(fieldM(word)))
	return false, nil
}

func ldsRmFPUL(c *CPU, word uint16) (bool, error) {
	c.FPU.SetFPUL(c.Regs.R(fieldM(word)))
	return false, nil
}

func stsMACHRn(c *CPU, word uint16) (bool, error) {
	c.Regs.SetR(fieldN(word), c.Regs.MACH())
	return false, nil
}

func stsMACLRn(c *CPU, word uint16) (bool, error) {
	c.Regs.SetR(fieldN(word), c.Regs.MACL())
	return false, nil
}

func stsPRRn(c *CPU, word uint16) (bool, error) {
	c.Regs.SetR(fieldN(word), c.Regs.PR())
	return false, nil
}

func stsFPSCRRn(c *CPU, word uint16) (bool, error) {
	c.Regs.SetR(fieldN(word), c.FPU.FPSCR())
	return false, nil
}

func stsFPULRn(c *CPU, word uint16) (bool, error) {
	c.Regs.SetR(fieldN(word), c.FPU.FPUL())
	return false, nil
}

func ldslAtRmPMACH(c *CPU, word uint16) (bool, error) {
	m := fieldM(word)
	addr := c.Regs.R(m)
	v, fault := c.readLong(addr)
	if fault {
		return true, nil
	}
	c.Regs.SetMACH(v)
	c.Regs.SetR(m, addr+4)
	return false, nil
}

func ldslAtRmPMACL(c *CPU, word uint16) (bool, error) {
	m := fieldM(word)
	addr := c.Regs.R(m)
	v, fault := c.readLong(addr)
	if fault {
		return true, nil
	}
	c.Regs.SetMACL(v)
	c.Regs.SetR(m, addr+4)
	return false, nil
}

func ldslAtRmPPR(c *CPU, word uint16) (bool, error) {
	m := fieldM(word)
	addr := c.Regs.R(m)
	v, fault := c.readLong(addr)
	if fault {
		return true, nil
	}
	c.Regs.SetPR(v)
	c.Regs.SetR(m, addr+4)
	return false, nil
}

func ldslAtRmPFPSCR(c *CPU, word uint16) (bool, error) {
	m := fieldM(word)
	addr := c.Regs.R(m)
	v, fault := c.readLong(addr)
	if fault {
		return true, nil
	}
	c.FPU.SetFPSCR(v)
	c.Regs.SetR(m, addr+4)
	return false, nil
}

func ldslAtRmPFPUL(c *CPU, word uint16) (bool, error) {
	m := fieldM(word)
	addr := c.Regs.R(m)
	v, fault := c.readLong(addr)
	if fault {
		return true, nil
	}
	c.FPU.SetFPUL(v)
	c.Regs.SetR(m, addr+4)
	return false, nil
}

func stslMACHAtMRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	addr := c.Regs.R(n) - 4
	if c.writeLong(addr, c.Regs.MACH()) {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func stslMACLAtMRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	addr := c.Regs.R(n) - 4
	if c.writeLong(addr, c.Regs.MACL()) {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func stslPRAtMRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	addr := c.Regs.R(n) - 4
	if c.writeLong(addr, c.Regs.PR()) {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func stslFPSCRAtMRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	addr := c.Regs.R(n) - 4
	if c.writeLong(addr, c.FPU.FPSCR()) {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func stslFPULAtMRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	addr := c.Regs.R(n) - 4
	if c.writeLong(addr, c.FPU.FPUL()) {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

// sleep parks the core; Run's budget loop ticks the host one cycle at a time
// until an interrupt wakes it, per spec §3.4.
func sleep(c *CPU, word uint16) (bool, error) {
	c.state = StateSleep
	return false, nil
}

func nop(c *CPU, word uint16) (bool, error) {
	return false, nil
}

func systemHandlers() map[opcodes.Operator]Handler {
	return map[opcodes.Operator]Handler{
		"LDC_RM_SR":          ldcRmSR,
		"LDC_RM_GBR":         ldcRmGBR,
		"LDC_RM_VBR":         ldcRmVBR,
		"LDC_RM_SSR":         ldcRmSSR,
		"LDC_RM_SPC":         ldcRmSPC,
		"LDC_RM_DBR":         ldcRmDBR,
		"LDC_RM_RNBANK":      ldcRmRnBank,
		"STC_SR_RN":          stcSRRn,
		"STC_GBR_RN":         stcGBRRn,
		"STC_VBR_RN":         stcVBRRn,
		"STC_SSR_RN":         stcSSRRn,
		"STC_SPC_RN":         stcSPCRn,
		"STC_SGR_RN":         stcSGRRn,
		"STC_DBR_RN":         stcDBRRn,
		"STC_RMBANK_RN":      stcRmBankRn,
		"LDCL_ATRMP_SR":      ldclAtRmPSR,
		"LDCL_ATRMP_GBR":     ldclAtRmPGBR,
		"LDCL_ATRMP_VBR":     ldclAtRmPVBR,
		"LDCL_ATRMP_SSR":     ldclAtRmPSSR,
		"LDCL_ATRMP_SPC":     ldclAtRmPSPC,
		"LDCL_ATRMP_DBR":     ldclAtRmPDBR,
		"LDCL_ATRMP_RNBANK":  ldclAtRmPRnBank,
		"STCL_SR_ATMRN":      stclSRAtMRn,
		"STCL_GBR_ATMRN":     stclGBRAtMRn,
		"STCL_VBR_ATMRN":     stclVBRAtMRn,
		"STCL_SSR_ATMRN":     stclSSRAtMRn,
		"STCL_SPC_ATMRN":     stclSPCAtMRn,
		"STCL_SGR_ATMRN":     stclSGRAtMRn,
		"STCL_DBR_ATMRN":     stclDBRAtMRn,
		"STCL_RMBANK_ATMRN":  stclRmBankAtMRn,
		"LDS_RM_MACH":        ldsRmMACH,
		"LDS_RM_MACL":        ldsRmMACL,
		"LDS_RM_PR":          ldsRmPR,
		"LDS_RM_FPSCR":       ldsRmFPSCR,
		"LDS_RM_FPUL":        ldsRmFPUL,
		"STS_MACH_RN":        stsMACHRn,
		"STS_MACL_RN":        stsMACLRn,
		"STS_PR_RN":          stsPRRn,
		"STS_FPSCR_RN":       stsFPSCRRn,
		"STS_FPUL_RN":        stsFPULRn,
		"LDSL_ATRMP_MACH":    ldslAtRmPMACH,
		"LDSL_ATRMP_MACL":    ldslAtRmPMACL,
		"LDSL_ATRMP_PR":      ldslAtRmPPR,
		"LDSL_ATRMP_FPSCR":   ldslAtRmPFPSCR,
		"LDSL_ATRMP_FPUL":    ldslAtRmPFPUL,
		"STSL_MACH_ATMRN":    stslMACHAtMRn,
		"STSL_MACL_ATMRN":    stslMACLAtMRn,
		"STSL_PR_ATMRN":      stslPRAtMRn,
		"STSL_FPSCR_ATMRN":   stslFPSCRAtMRn,
		"STSL_FPUL_ATMRN":    stslFPULAtMRn,
		"SLEEP":              sleep,
		"NOP":                nop,
	}
}
