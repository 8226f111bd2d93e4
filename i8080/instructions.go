package i8080

// execFunc is the body of one instruction. imm8/imm16 carry whatever
// immediate operand the opcode's size calls for (decode.go reads them from
// memory before advancing PC); instructions that take no immediate ignore
// both parameters.
type execFunc func(c *CPU, imm8 byte, imm16 uint16)

// Instruction describes one opcode slot: its mnemonic (for tracing and
// disassembly), its size in bytes including the opcode itself, its base
// cycle cost, and the function that executes it. A nil Exec marks one of
// the 8080's twelve undefined opcodes.
type Instruction struct {
	Name   string
	Size   byte
	Cycles byte
	Exec   execFunc
}

// opcodeCycles is the 8080's fixed per-opcode cycle cost table, independent
// of any taken/not-taken branch delta (spec §6 "Cycle accounting" — this
// emulator does not model the real chip's conditional-branch cycle penalty,
// matching the arcade ROM's reference implementation).
var opcodeCycles = [256]byte{
	4, 10, 7, 5, 5, 5, 7, 4, 4, 10, 7, 5, 5, 5, 7, 4,
	4, 10, 7, 5, 5, 5, 7, 4, 4, 10, 7, 5, 5, 5, 7, 4,
	4, 10, 16, 5, 5, 5, 7, 4, 4, 10, 16, 5, 5, 5, 7, 4,
	4, 10, 13, 5, 10, 10, 10, 4, 4, 10, 13, 5, 5, 5, 7, 4,
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5,
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5,
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5,
	7, 7, 7, 7, 7, 7, 7, 7, 5, 5, 5, 5, 5, 5, 7, 5,
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	5, 10, 10, 10, 11, 11, 7, 11, 5, 10, 10, 10, 11, 17, 7, 11,
	5, 10, 10, 10, 11, 11, 7, 11, 5, 10, 10, 10, 11, 17, 7, 11,
	5, 10, 10, 18, 11, 11, 7, 11, 5, 5, 10, 4, 11, 17, 7, 11,
	5, 10, 10, 4, 11, 11, 7, 11, 5, 5, 10, 4, 11, 17, 7, 11,
}

// regNames indexes B,C,D,E,H,L,A by register constant, for mnemonic text.
var regNames = [numRegisters]string{"B", "C", "D", "E", "H", "L", "A"}

// instr is a small builder to keep the table below legible.
func instr(name string, size byte, opcode byte, fn execFunc) Instruction {
	return Instruction{Name: name, Size: size, Cycles: opcodeCycles[opcode], Exec: fn}
}

// opcodeTable is the complete 256-entry dispatch table. Undefined opcodes
// (spec §9(a): 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD,
// 0xED, 0xFD) carry a nil Exec; decode.go reports them via
// UndefinedOpcodeError instead of silently treating them as NOP, unlike the
// reference emulator this was distilled from.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]Instruction {
	var t [256]Instruction

	und := func(op byte) {
		t[op] = Instruction{Name: "???", Size: 1, Cycles: opcodeCycles[op], Exec: nil}
	}

	t[0x00] = instr("NOP", 1, 0x00, execNOP)
	t[0x01] = instr("LXI B", 3, 0x01, lxiRP(B))
	t[0x02] = instr("STAX B", 1, 0x02, staxRP(B))
	t[0x03] = instr("INX B", 1, 0x03, inxRP(B))
	t[0x04] = instr("INR B", 1, 0x04, inrR(B))
	t[0x05] = instr("DCR B", 1, 0x05, dcrR(B))
	t[0x06] = instr("MVI B", 2, 0x06, mviR(B))
	t[0x07] = instr("RLC", 1, 0x07, execRLC)
	und(0x08)
	t[0x09] = instr("DAD B", 1, 0x09, dadRP(B))
	t[0x0A] = instr("LDAX B", 1, 0x0A, ldaxRP(B))
	t[0x0B] = instr("DCX B", 1, 0x0B, dcxRP(B))
	t[0x0C] = instr("INR C", 1, 0x0C, inrR(C))
	t[0x0D] = instr("DCR C", 1, 0x0D, dcrR(C))
	t[0x0E] = instr("MVI C", 2, 0x0E, mviR(C))
	t[0x0F] = instr("RRC", 1, 0x0F, execRRC)

	und(0x10)
	t[0x11] = instr("LXI D", 3, 0x11, lxiRP(D))
	t[0x12] = instr("STAX D", 1, 0x12, staxRP(D))
	t[0x13] = instr("INX D", 1, 0x13, inxRP(D))
	t[0x14] = instr("INR D", 1, 0x14, inrR(D))
	t[0x15] = instr("DCR D", 1, 0x15, dcrR(D))
	t[0x16] = instr("MVI D", 2, 0x16, mviR(D))
	t[0x17] = instr("RAL", 1, 0x17, execRAL)
	und(0x18)
	t[0x19] = instr("DAD D", 1, 0x19, dadRP(D))
	t[0x1A] = instr("LDAX D", 1, 0x1A, ldaxRP(D))
	t[0x1B] = instr("DCX D", 1, 0x1B, dcxRP(D))
	t[0x1C] = instr("INR E", 1, 0x1C, inrR(E))
	t[0x1D] = instr("DCR E", 1, 0x1D, dcrR(E))
	t[0x1E] = instr("MVI E", 2, 0x1E, mviR(E))
	t[0x1F] = instr("RAR", 1, 0x1F, execRAR)

	und(0x20)
	t[0x21] = instr("LXI H", 3, 0x21, lxiRP(H))
	t[0x22] = instr("SHLD", 3, 0x22, execSHLD)
	t[0x23] = instr("INX H", 1, 0x23, inxRP(H))
	t[0x24] = instr("INR H", 1, 0x24, inrR(H))
	t[0x25] = instr("DCR H", 1, 0x25, dcrR(H))
	t[0x26] = instr("MVI H", 2, 0x26, mviR(H))
	t[0x27] = instr("DAA", 1, 0x27, execDAA)
	und(0x28)
	t[0x29] = instr("DAD H", 1, 0x29, dadRP(H))
	t[0x2A] = instr("LHLD", 3, 0x2A, execLHLD)
	t[0x2B] = instr("DCX H", 1, 0x2B, dcxRP(H))
	t[0x2C] = instr("INR L", 1, 0x2C, inrR(L))
	t[0x2D] = instr("DCR L", 1, 0x2D, dcrR(L))
	t[0x2E] = instr("MVI L", 2, 0x2E, mviR(L))
	t[0x2F] = instr("CMA", 1, 0x2F, execCMA)

	und(0x30)
	t[0x31] = instr("LXI SP", 3, 0x31, execLXISP)
	t[0x32] = instr("STA", 3, 0x32, execSTA)
	t[0x33] = instr("INX SP", 1, 0x33, execINXSP)
	t[0x34] = instr("INR M", 1, 0x34, execINRM)
	t[0x35] = instr("DCR M", 1, 0x35, execDCRM)
	t[0x36] = instr("MVI M", 2, 0x36, execMVIM)
	t[0x37] = instr("STC", 1, 0x37, execSTC)
	und(0x38)
	t[0x39] = instr("DAD SP", 1, 0x39, execDADSP)
	t[0x3A] = instr("LDA", 3, 0x3A, execLDA)
	t[0x3B] = instr("DCX SP", 1, 0x3B, execDCXSP)
	t[0x3C] = instr("INR A", 1, 0x3C, inrR(A))
	t[0x3D] = instr("DCR A", 1, 0x3D, dcrR(A))
	t[0x3E] = instr("MVI A", 2, 0x3E, mviR(A))
	t[0x3F] = instr("CMC", 1, 0x3F, execCMC)

	// 0x40-0x7F: MOV r,r' / MOV r,M / MOV M,r / HLT. Opcodes encode both the
	// destination and source in 3-bit slots ordered B,C,D,E,H,L,M,A: slot 6
	// is always the memory operand M, and the accumulator's slot is 7, which
	// does NOT match its register constant A (6) — both the destination and
	// source loops must index by slot, not by register constant, or the
	// accumulator rows collide with the M/HLT row.
	slotReg := [8]int{B, C, D, E, H, L, -1, A} // -1 marks the M slot
	for dstSlot := 0; dstSlot < 8; dstSlot++ {
		base := byte(0x40 + dstSlot*8)
		dst := slotReg[dstSlot]
		for srcSlot := 0; srcSlot < 8; srcSlot++ {
			op := base + byte(srcSlot)
			src := slotReg[srcSlot]
			switch {
			case dstSlot == 6 && srcSlot == 6:
				t[op] = instr("HLT", 1, op, execHLT)
			case dstSlot == 6:
				t[op] = instr("MOV M,"+regNames[src], 1, op, movMR(src))
			case srcSlot == 6:
				t[op] = instr("MOV "+regNames[dst]+",M", 1, op, movRM(dst))
			default:
				t[op] = instr("MOV "+regNames[dst]+","+regNames[src], 1, op, movRR(dst, src))
			}
		}
	}

	// 0x80-0xBF: ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP, register/memory forms,
	// using the same 8-slot ordering as the MOV block above.
	arith := []struct {
		base byte
		name string
		r    func(int) execFunc
		m    execFunc
	}{
		{0x80, "ADD", addR, execADDM},
		{0x88, "ADC", adcR, execADCM},
		{0x90, "SUB", subR, execSUBM},
		{0x98, "SBB", sbbR, execSBBM},
		{0xA0, "ANA", anaR, execANAM},
		{0xA8, "XRA", xraR, execXRAM},
		{0xB0, "ORA", oraR, execORAM},
		{0xB8, "CMP", cmpR, execCMPM},
	}
	for _, grp := range arith {
		for slot := 0; slot < 8; slot++ {
			op := grp.base + byte(slot)
			r := slotReg[slot]
			if r == -1 {
				t[op] = instr(grp.name+" M", 1, op, grp.m)
				continue
			}
			t[op] = instr(grp.name+" "+regNames[r], 1, op, grp.r(r))
		}
	}

	t[0xC0] = instr("RNZ", 1, 0xC0, rCond(condNZ))
	t[0xC1] = instr("POP B", 1, 0xC1, popRP(B))
	t[0xC2] = instr("JNZ", 3, 0xC2, jCond(condNZ))
	t[0xC3] = instr("JMP", 3, 0xC3, execJMP)
	t[0xC4] = instr("CNZ", 3, 0xC4, cCond(condNZ))
	t[0xC5] = instr("PUSH B", 1, 0xC5, pushRP(B))
	t[0xC6] = instr("ADI", 2, 0xC6, execADI)
	t[0xC7] = instr("RST 0", 1, 0xC7, rst(0))
	t[0xC8] = instr("RZ", 1, 0xC8, rCond(condZ))
	t[0xC9] = instr("RET", 1, 0xC9, execRET)
	t[0xCA] = instr("JZ", 3, 0xCA, jCond(condZ))
	und(0xCB)
	t[0xCC] = instr("CZ", 3, 0xCC, cCond(condZ))
	t[0xCD] = instr("CALL", 3, 0xCD, execCALL)
	t[0xCE] = instr("ACI", 2, 0xCE, execACI)
	t[0xCF] = instr("RST 1", 1, 0xCF, rst(1))

	t[0xD0] = instr("RNC", 1, 0xD0, rCond(condNC))
	t[0xD1] = instr("POP D", 1, 0xD1, popRP(D))
	t[0xD2] = instr("JNC", 3, 0xD2, jCond(condNC))
	t[0xD3] = instr("OUT", 2, 0xD3, execOUT)
	t[0xD4] = instr("CNC", 3, 0xD4, cCond(condNC))
	t[0xD5] = instr("PUSH D", 1, 0xD5, pushRP(D))
	t[0xD6] = instr("SUI", 2, 0xD6, execSUI)
	t[0xD7] = instr("RST 2", 1, 0xD7, rst(2))
	t[0xD8] = instr("RC", 1, 0xD8, rCond(condC))
	und(0xD9)
	t[0xDA] = instr("JC", 3, 0xDA, jCond(condC))
	t[0xDB] = instr("IN", 2, 0xDB, execIN)
	t[0xDC] = instr("CC", 3, 0xDC, cCond(condC))
	und(0xDD)
	t[0xDE] = instr("SBI", 2, 0xDE, execSBI)
	t[0xDF] = instr("RST 3", 1, 0xDF, rst(3))

	t[0xE0] = instr("RPO", 1, 0xE0, rCond(condPO))
	t[0xE1] = instr("POP H", 1, 0xE1, popRP(H))
	t[0xE2] = instr("JPO", 3, 0xE2, jCond(condPO))
	t[0xE3] = instr("XTHL", 1, 0xE3, execXTHL)
	t[0xE4] = instr("CPO", 3, 0xE4, cCond(condPO))
	t[0xE5] = instr("PUSH H", 1, 0xE5, pushRP(H))
	t[0xE6] = instr("ANI", 2, 0xE6, execANI)
	t[0xE7] = instr("RST 4", 1, 0xE7, rst(4))
	t[0xE8] = instr("RPE", 1, 0xE8, rCond(condPE))
	t[0xE9] = instr("PCHL", 1, 0xE9, execPCHL)
	t[0xEA] = instr("JPE", 3, 0xEA, jCond(condPE))
	t[0xEB] = instr("XCHG", 1, 0xEB, execXCHG)
	t[0xEC] = instr("CPE", 3, 0xEC, cCond(condPE))
	und(0xED)
	t[0xEE] = instr("XRI", 2, 0xEE, execXRI)
	t[0xEF] = instr("RST 5", 1, 0xEF, rst(5))

	t[0xF0] = instr("RP", 1, 0xF0, rCond(condP))
	t[0xF1] = instr("POP PSW", 1, 0xF1, execPOPPSW)
	t[0xF2] = instr("JP", 3, 0xF2, jCond(condP))
	t[0xF3] = instr("DI", 1, 0xF3, execDI)
	t[0xF4] = instr("CP", 3, 0xF4, cCond(condP))
	t[0xF5] = instr("PUSH PSW", 1, 0xF5, execPUSHPSW)
	t[0xF6] = instr("ORI", 2, 0xF6, execORI)
	t[0xF7] = instr("RST 6", 1, 0xF7, rst(6))
	t[0xF8] = instr("RM", 1, 0xF8, rCond(condM))
	t[0xF9] = instr("SPHL", 1, 0xF9, execSPHL)
	t[0xFA] = instr("JM", 3, 0xFA, jCond(condM))
	t[0xFB] = instr("EI", 1, 0xFB, execEI)
	t[0xFC] = instr("CM", 3, 0xFC, cCond(condM))
	und(0xFD)
	t[0xFE] = instr("CPI", 2, 0xFE, execCPI)
	t[0xFF] = instr("RST 7", 1, 0xFF, rst(7))

	return t
}
