// This file is part of cycle6502.
//
// cycle6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cycle6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cycle6502.  If not, see <https://www.gnu.org/licenses/>.

package instructions

import "fmt"

// Operator is the documented mnemonic of an instruction.
type Operator int

// List of operators. Illegal is the zero value and is used for every opcode
// that does not decode to a documented instruction.
const (
	Illegal Operator = iota

	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	numOperators
)

var operatorNames = [numOperators]string{
	Illegal: "???",
	ADC:     "ADC", AND: "AND", ASL: "ASL", BCC: "BCC", BCS: "BCS", BEQ: "BEQ",
	BIT: "BIT", BMI: "BMI", BNE: "BNE", BPL: "BPL", BRK: "BRK", BVC: "BVC",
	BVS: "BVS", CLC: "CLC", CLD: "CLD", CLI: "CLI", CLV: "CLV", CMP: "CMP",
	CPX: "CPX", CPY: "CPY", DEC: "DEC", DEX: "DEX", DEY: "DEY", EOR: "EOR",
	INC: "INC", INX: "INX", INY: "INY", JMP: "JMP", JSR: "JSR", LDA: "LDA",
	LDX: "LDX", LDY: "LDY", LSR: "LSR", NOP: "NOP", ORA: "ORA", PHA: "PHA",
	PHP: "PHP", PLA: "PLA", PLP: "PLP", ROL: "ROL", ROR: "ROR", RTI: "RTI",
	RTS: "RTS", SBC: "SBC", SEC: "SEC", SED: "SED", SEI: "SEI", STA: "STA",
	STX: "STX", STY: "STY", TAX: "TAX", TAY: "TAY", TSX: "TSX", TXA: "TXA",
	TXS: "TXS", TYA: "TYA",
}

func (op Operator) String() string {
	if op < 0 || op >= numOperators {
		return fmt.Sprintf("unknown operator (%d)", int(op))
	}
	return operatorNames[op]
}

// ParseOperator returns the Operator for the mnemonic. The comparison is case
// sensitive and expects upper case.
func ParseOperator(mnemonic string) (Operator, bool) {
	for op := ADC; op < numOperators; op++ {
		if operatorNames[op] == mnemonic {
			return op, true
		}
	}
	return Illegal, false
}

// effect is the category of the operator when the addressing mode doesn't
// decide it.
func (op Operator) effect() Category {
	switch op {
	case STA, STX, STY, PHA, PHP:
		return Write
	case ASL, LSR, ROL, ROR, INC, DEC:
		return RMW
	case BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS, JMP:
		return Flow
	case JSR, RTS:
		return Subroutine
	case BRK, RTI:
		return Interrupt
	}
	return Read
}
