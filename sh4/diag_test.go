package sh4_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/retrocore/sh4dc/test"
)

func TestSnapshotReflectsLiveState(t *testing.T) {
	c, _ := newTestCPU()
	c.Regs.SetR(3, 0x12345678)
	c.Regs.SetGBR(0xAABBCCDD)
	c.FPU.SetFPUL(7)

	snap := c.Snapshot()
	test.Equate(t, snap.GPR[3], uint32(0x12345678))
	test.Equate(t, snap.GBR, uint32(0xAABBCCDD))
	test.Equate(t, snap.FPUL, uint32(7))
	test.Equate(t, snap.PC, c.Regs.PC())
}

func TestSnapshotValidateAcceptsLiveCapture(t *testing.T) {
	c, _ := newTestCPU()
	if err := c.Snapshot().Validate(); err != nil {
		t.Fatalf("a freshly captured snapshot must validate: %v", err)
	}
}

func TestSnapshotsOfDistinctStatesDiffer(t *testing.T) {
	c, _ := newTestCPU()
	before := c.Snapshot()
	c.Regs.SetR(0, 0xFF)
	after := c.Snapshot()
	if cmp.Equal(before, after) {
		t.Fatal("snapshots taken before and after a register write must differ")
	}
}
