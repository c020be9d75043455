package sh4

// Thin wrappers over bus.CPUBus that turn a bus-level AddressError into the
// architectural memory-access exception (§7) rather than a Go error: the
// fault is recorded via raiseException and the caller is told execution of
// the current instruction must stop, mirroring the "partial effects are
// rolled back because register writes are deferred" policy in spec §7.

func (c *CPU) readByte(addr uint32) (uint8, bool) {
	v, err := c.bus.Read8(addr)
	if err != nil {
		c.raiseException(ExcMemoryReadError, c.currentPC, 0)
		return 0, true
	}
	return v, false
}

func (c *CPU) writeByte(addr uint32, v uint8) bool {
	if err := c.bus.Write8(addr, v); err != nil {
		c.raiseException(ExcMemoryWriteError, c.currentPC, 0)
		return true
	}
	return false
}

func (c *CPU) readWord(addr uint32) (uint16, bool) {
	v, err := c.bus.Read16(addr)
	if err != nil {
		c.raiseException(ExcMemoryReadError, c.currentPC, 0)
		return 0, true
	}
	return v, false
}

func (c *CPU) writeWord(addr uint32, v uint16) bool {
	if err := c.bus.Write16(addr, v); err != nil {
		c.raiseException(ExcMemoryWriteError, c.currentPC, 0)
		return true
	}
	return false
}

func (c *CPU) readLong(addr uint32) (uint32, bool) {
	v, err := c.bus.Read32(addr)
	if err != nil {
		c.raiseException(ExcMemoryReadError, c.currentPC, 0)
		return 0, true
	}
	return v, false
}

func (c *CPU) writeLong(addr uint32, v uint32) bool {
	if err := c.bus.Write32(addr, v); err != nil {
		c.raiseException(ExcMemoryWriteError, c.currentPC, 0)
		return true
	}
	return false
}

func (c *CPU) readFloat(addr uint32) (float32, bool) {
	v, err := c.bus.ReadFloat32(addr)
	if err != nil {
		c.raiseException(ExcMemoryReadError, c.currentPC, 0)
		return 0, true
	}
	return v, false
}

func (c *CPU) writeFloat(addr uint32, v float32) bool {
	if err := c.bus.WriteFloat32(addr, v); err != nil {
		c.raiseException(ExcMemoryWriteError, c.currentPC, 0)
		return true
	}
	return false
}

func (c *CPU) readDouble(addr uint32) (float64, bool) {
	v, err := c.bus.ReadFloat64(addr)
	if err != nil {
		c.raiseException(ExcMemoryReadError, c.currentPC, 0)
		return 0, true
	}
	return v, false
}

func (c *CPU) writeDouble(addr uint32, v float64) bool {
	if err := c.bus.WriteFloat64(addr, v); err != nil {
		c.raiseException(ExcMemoryWriteError, c.currentPC, 0)
		return true
	}
	return false
}
