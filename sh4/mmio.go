package sh4

// On-chip register block window, per spec §6.4.
const (
	mmioBase = 0xFF000000
	mmioSize = 0x00400000
)

// Offsets (address - mmioBase) of the registers the core itself must alias
// into CPU-visible state rather than treat as inert storage. Real hardware
// places these at fixed addresses within the on-chip block. The offsets are
// reached only through MMIO's Read32/Write32/Read8/Write8, which nothing in
// this package calls: exception entry and the store-queue flush use the
// MMIO fields directly (setEXPEVT, setINTEVT, setTRA, QACR0, QACR1). The
// full peripheral memory map — TMU/DMAC/SCIF/RTC/BSC — is an external
// collaborator's concern.
const (
	offExpevt = 0x000024
	offIntevt = 0x000028
	offTra    = 0x000020
	offTocr   = 0x000390
	offTstr   = 0x000004
	offMmucr  = 0x000010
	offQacr0  = 0x00038C
	offQacr1  = 0x000390 + 4
)

// MMIO models the flat on-chip register window as a byte-addressed backing
// store with a handful of dedicated handler registers aliased into CPU
// fields. Registers without side effects route through the generic
// store-through path.
type MMIO struct {
	cpu *CPU
	raw [mmioSize]byte

	expevt uint32
	intevt uint32
	tra    uint32
	tocr   uint8
	tstr   uint8
	mmucr  uint32
	qacr0  uint32
	qacr1  uint32
}

func (m *MMIO) init(cpu *CPU) { m.cpu = cpu }

// Contains reports whether addr falls inside the on-chip register window.
func Contains(addr uint32) bool {
	return addr >= mmioBase && addr < mmioBase+mmioSize
}

func (m *MMIO) setEXPEVT(v uint32) { m.expevt = v }
func (m *MMIO) setINTEVT(v uint32) { m.intevt = v }
func (m *MMIO) setTRA(v uint32)    { m.tra = v }

// QACR0, QACR1 are read by the store-queue flush handler to assemble the
// physical flush address (§6.3).
func (m *MMIO) QACR0() uint32 { return m.qacr0 }
func (m *MMIO) QACR1() uint32 { return m.qacr1 }

// MMUCR SQMD bit: when set, user-mode store-queue writes/flushes fault.
const mmucrSQMD = 1 << 9

func (m *MMIO) sqmd() bool { return m.mmucr&mmucrSQMD != 0 }

// Read32 and Write32 are the only widths the dedicated registers are
// defined at; loads/stores of other widths against this block pass through
// the generic byte store, matching how an emulator's bus would route an
// unrecognized on-chip address.
func (m *MMIO) Read32(offset uint32) uint32 {
	switch offset {
	case offExpevt:
		return m.expevt
	case offIntevt:
		return m.intevt
	case offTra:
		return m.tra
	case offMmucr:
		return m.mmucr
	case offQacr0:
		return m.qacr0
	case offQacr1:
		return m.qacr1
	default:
		return readLE32(m.raw[offset : offset+4])
	}
}

func (m *MMIO) Write32(offset uint32, v uint32) {
	switch offset {
	case offExpevt:
		m.expevt = v
	case offIntevt:
		m.intevt = v
	case offTra:
		m.tra = v
	case offMmucr:
		m.mmucr = v
	case offQacr0:
		m.qacr0 = v & 0x1F
	case offQacr1:
		m.qacr1 = v & 0x1F
	default:
		writeLE32(m.raw[offset:offset+4], v)
	}
}

func (m *MMIO) Read8(offset uint32) uint8 {
	switch offset {
	case offTocr:
		return m.tocr
	case offTstr:
		return m.tstr
	default:
		return m.raw[offset]
	}
}

func (m *MMIO) Write8(offset uint32, v uint8) {
	switch offset {
	case offTocr:
		m.tocr = v
	case offTstr:
		m.tstr = v
	default:
		m.raw[offset] = v
	}
}

func readLE32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func writeLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
