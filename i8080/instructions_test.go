package i8080

import "testing"

// run executes n Step calls, failing the test on any error.
func run(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("Step() #%d returned error: %v", i, err)
		}
	}
}

func TestSTAStoresAccumulator(t *testing.T) {
	c := New()
	c.setA(0x42)
	// STA 0x3000
	c.Memory[0] = 0x32
	c.Memory[1] = 0x00
	c.Memory[2] = 0x30

	run(t, c, 1)

	if got := c.ReadMem(0x3000); got != 0x42 {
		t.Errorf("ReadMem(0x3000) = 0x%02X, want 0x42", got)
	}
	if c.Pc != 3 {
		t.Errorf("Pc = %d, want 3", c.Pc)
	}
}

func TestDCRBUnderflowWraps(t *testing.T) {
	c := New()
	c.setReg(B, 0x00)
	c.flagCY = true // DCR must not touch CY
	c.Memory[0] = 0x05 // DCR B

	run(t, c, 1)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{c.reg(B), byte(0xFF)},
		{c.Flags().Z, false},
		{c.Flags().S, true},
		{c.Flags().CY, true}, // preserved
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

func TestDCRMOperatesOnMemory(t *testing.T) {
	c := New()
	c.setHL(0x4000)
	c.WriteMem(0x4000, 0x01)
	c.Memory[0] = 0x35 // DCR M

	run(t, c, 1)

	if got := c.ReadMem(0x4000); got != 0x00 {
		t.Errorf("ReadMem(HL) = 0x%02X, want 0x00", got)
	}
	if !c.Flags().Z {
		t.Errorf("Z flag not set after DCR M to zero")
	}
}

func TestADIAddsImmediate(t *testing.T) {
	c := New()
	c.setA(0x10)
	c.Memory[0] = 0xC6 // ADI
	c.Memory[1] = 0x05

	run(t, c, 1)

	if c.A() != 0x15 {
		t.Errorf("A = 0x%02X, want 0x15", c.A())
	}
	if c.Pc != 2 {
		t.Errorf("Pc = %d, want 2", c.Pc)
	}
}

func TestADDOverflowSetsCarry(t *testing.T) {
	c := New()
	c.setA(0xFF)
	c.setReg(B, 0x01)
	c.Memory[0] = 0x80 // ADD B

	run(t, c, 1)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{c.A(), byte(0x00)},
		{c.Flags().CY, true},
		{c.Flags().Z, true},
		{c.Flags().AC, true}, // carry out of bit 3 too
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

func TestLXIBCLoadsPair(t *testing.T) {
	c := New()
	c.Memory[0] = 0x01 // LXI B
	c.Memory[1] = 0x34
	c.Memory[2] = 0x12

	run(t, c, 1)

	if c.BC() != 0x1234 {
		t.Errorf("BC() = 0x%04X, want 0x1234", c.BC())
	}
}

func TestLXISPLoadsStackPointer(t *testing.T) {
	c := New()
	c.Memory[0] = 0x31 // LXI SP
	c.Memory[1] = 0x00
	c.Memory[2] = 0x24

	run(t, c, 1)

	if c.Sp != 0x2400 {
		t.Errorf("Sp = 0x%04X, want 0x2400", c.Sp)
	}
}

func TestJMPChaining(t *testing.T) {
	c := New()
	c.Memory[0] = 0xC3 // JMP 0x0010
	c.Memory[1] = 0x10
	c.Memory[2] = 0x00
	c.Memory[0x10] = 0xC3 // JMP 0x0020
	c.Memory[0x11] = 0x20
	c.Memory[0x12] = 0x00

	run(t, c, 2)

	if c.Pc != 0x0020 {
		t.Errorf("Pc = 0x%04X, want 0x0020", c.Pc)
	}
}

func TestCallRetDuality(t *testing.T) {
	c := New()
	c.Sp = 0x2400
	c.Memory[0] = 0xCD // CALL 0x0100
	c.Memory[1] = 0x00
	c.Memory[2] = 0x01
	c.Memory[0x100] = 0xC9 // RET

	run(t, c, 2)

	if c.Pc != 0x0003 {
		t.Errorf("Pc after CALL/RET = 0x%04X, want 0x0003 (return address)", c.Pc)
	}
	if c.Sp != 0x2400 {
		t.Errorf("Sp after CALL/RET = 0x%04X, want 0x2400 (balanced)", c.Sp)
	}
}

func TestInterruptAcceptedWhenEnabled(t *testing.T) {
	c := New()
	c.Sp = 0x2400
	c.IntEnable = true
	c.Memory[0] = 0x00 // NOP, never reached this step

	c.RequestInterrupt(0xCF) // RST 1

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step() returned error: %v", err)
	}
	if c.Pc != 0x0008 {
		t.Errorf("Pc after RST 1 = 0x%04X, want 0x0008", c.Pc)
	}
	if c.IntEnable {
		t.Errorf("IntEnable still true after interrupt acceptance, want false")
	}
	if c.interruptPending() {
		t.Errorf("interrupt still pending after acceptance")
	}
	if cycles == 0 {
		t.Errorf("interrupt acceptance reported 0 cycles")
	}
	// Return address pushed should be PC from before acceptance (0), since
	// the interrupted instruction never actually ran.
	if got := c.popWord(); got != 0x0000 {
		t.Errorf("pushed return address = 0x%04X, want 0x0000", got)
	}
}

func TestInterruptIgnoredWhenDisabled(t *testing.T) {
	c := New()
	c.IntEnable = false
	c.Memory[0] = 0x00 // NOP

	c.RequestInterrupt(0xCF)
	run(t, c, 1)

	if c.Pc != 1 {
		t.Errorf("Pc = %d, want 1 (NOP ran, interrupt still pending)", c.Pc)
	}
	if !c.interruptPending() {
		t.Errorf("interrupt was consumed despite IntEnable being false")
	}
}

func TestHLTStopsAdvancingUntilInterrupt(t *testing.T) {
	c := New()
	c.Memory[0] = 0x76 // HLT
	run(t, c, 1)
	if !c.Halt {
		t.Fatalf("Halt not set after HLT")
	}

	beforePC := c.Pc
	run(t, c, 3)
	if c.Pc != beforePC {
		t.Errorf("Pc advanced while halted: %d -> %d", beforePC, c.Pc)
	}

	c.IntEnable = true
	c.RequestInterrupt(0xCF)
	run(t, c, 1)
	if c.Halt {
		t.Errorf("Halt still set after an accepted interrupt")
	}
	if c.Pc != 0x0008 {
		t.Errorf("Pc = 0x%04X, want 0x0008 after waking on RST 1", c.Pc)
	}
}

func TestUndefinedOpcodeReportsError(t *testing.T) {
	c := New()
	c.Memory[0] = 0x08 // undefined

	_, err := c.Step()
	if err == nil {
		t.Fatalf("Step() returned no error for undefined opcode 0x08")
	}
	uerr, ok := err.(*UndefinedOpcodeError)
	if !ok {
		t.Fatalf("error type = %T, want *UndefinedOpcodeError", err)
	}
	if uerr.Opcode != 0x08 || uerr.PC != 0 {
		t.Errorf("error = %+v, want Opcode=0x08 PC=0", uerr)
	}
}

func TestUnboundPortDefaults(t *testing.T) {
	c := New()
	c.Memory[0] = 0xDB // IN 7
	c.Memory[1] = 0x07
	c.setA(0xFF)

	run(t, c, 1)

	if c.A() != 0x00 {
		t.Errorf("A after IN on unbound port = 0x%02X, want 0x00", c.A())
	}

	// OUT on an unbound port must not panic or alter state.
	c.Memory[2] = 0xD3 // OUT 7
	c.Memory[3] = 0x07
	c.Pc = 2
	run(t, c, 1)
}

func TestDAAExample(t *testing.T) {
	// A classic textbook case: 0x9B after an add sequence decimal-adjusts
	// to 0x01 with CY and AC both set.
	c := New()
	c.setA(0x9B)
	c.flagCY = false
	c.flagAC = false
	c.Memory[0] = 0x27 // DAA

	run(t, c, 1)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{c.A(), byte(0x01)},
		{c.Flags().CY, true},
		{c.Flags().AC, true},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

func TestPushPopPSWRoundTripThroughStack(t *testing.T) {
	c := New()
	c.Sp = 0x2400
	c.setA(0x3C)
	c.flagS = true
	c.flagZ = true
	c.flagAC = false
	c.flagP = true
	c.flagCY = true

	wantFlags := c.Flags()

	c.Memory[0] = 0xF5 // PUSH PSW
	c.Memory[1] = 0xF1 // POP PSW
	run(t, c, 2)

	if c.A() != 0x3C {
		t.Errorf("A after PUSH/POP PSW = 0x%02X, want 0x3C", c.A())
	}
	if c.Flags() != wantFlags {
		t.Errorf("Flags after PUSH/POP PSW = %+v, want %+v", c.Flags(), wantFlags)
	}
}

func TestCMPDoesNotModifyAccumulator(t *testing.T) {
	c := New()
	c.setA(0x05)
	c.setReg(B, 0x05)
	c.Memory[0] = 0xB8 // CMP B

	run(t, c, 1)

	if c.A() != 0x05 {
		t.Errorf("A after CMP B (equal) = 0x%02X, want unchanged 0x05", c.A())
	}
	if !c.Flags().Z {
		t.Errorf("Z not set after CMP of equal values")
	}
}

func TestMOVAFromRegisterLoadsAccumulator(t *testing.T) {
	// MOV A,B .. MOV A,L (0x78-0x7D) and MOV A,A (0x7F) all write the
	// accumulator from another register; in an earlier, broken table build
	// the accumulator's rows collided with the MOV M,r / HLT row (0x70-0x77),
	// leaving these opcodes nil (undefined).
	c := New()
	c.setReg(B, 0x99)
	c.Memory[0] = 0x78 // MOV A,B

	run(t, c, 1)

	if c.A() != 0x99 {
		t.Errorf("A after MOV A,B = 0x%02X, want 0x99", c.A())
	}
}

func TestMOVMAStoresAccumulatorToMemory(t *testing.T) {
	// MOV M,A (0x77) stores A at [HL] — used constantly to write video RAM.
	// It was previously clobbered by an erroneous MOV A,A binding.
	c := New()
	c.setHL(0x2400)
	c.setA(0x7E)
	c.Memory[0] = 0x77 // MOV M,A

	run(t, c, 1)

	if got := c.ReadMem(0x2400); got != 0x7E {
		t.Errorf("ReadMem(HL) after MOV M,A = 0x%02X, want 0x7E", got)
	}
	if c.A() != 0x7E {
		t.Errorf("MOV M,A modified A, want unchanged 0x7E")
	}
}

func TestMOVAFromMemoryLoadsAccumulator(t *testing.T) {
	// MOV A,M (0x7E) reads [HL] into A; it sits in the accumulator row
	// (0x78-0x7F), one row below HLT (0x76) and MOV M,A (0x77).
	c := New()
	c.setHL(0x3000)
	c.WriteMem(0x3000, 0xAB)
	c.Memory[0] = 0x7E // MOV A,M

	run(t, c, 1)

	if c.A() != 0xAB {
		t.Errorf("A after MOV A,M = 0x%02X, want 0xAB", c.A())
	}
}

func TestHLTStillAt0x76AfterTableFix(t *testing.T) {
	// 0x76, between MOV M,L (0x75) and MOV M,A (0x77), must remain HLT
	// rather than a MOV derived from slot arithmetic.
	c := New()
	c.Memory[0] = 0x76
	run(t, c, 1)
	if !c.Halt {
		t.Errorf("0x76 did not set Halt; MOV table may have overwritten HLT")
	}
}

func TestDADSumsIntoHLAndOnlyTouchesCarry(t *testing.T) {
	c := New()
	c.setHL(0xFFFF)
	c.setBC(0x0001)
	c.flagZ = true // must survive DAD untouched
	c.Memory[0] = 0x09 // DAD B

	run(t, c, 1)

	if c.HL() != 0x0000 {
		t.Errorf("HL = 0x%04X, want 0x0000", c.HL())
	}
	if !c.Flags().CY {
		t.Errorf("CY not set after 17-bit DAD overflow")
	}
	if !c.Flags().Z {
		t.Errorf("DAD modified Z, want it untouched")
	}
}
