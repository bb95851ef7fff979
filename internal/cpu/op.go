package cpu

// Op is the operation performed by an Instruction.
type Op uint8

const (
	OpInvalid Op = iota
	OpNOP
	OpLD
	OpLDH
	OpINC
	OpDEC
	OpADD
	OpADC
	OpSUB
	OpSBC
	OpAND
	OpXOR
	OpOR
	OpCP
	OpJP
	OpJR
	OpCALL
	OpRET
	OpRETI
	OpRST
	OpPUSH
	OpPOP
	OpRLCA
	OpRRCA
	OpRLA
	OpRRA
	OpDAA
	OpCPL
	OpSCF
	OpCCF
	OpHALT
	OpSTOP
	OpDI
	OpEI

	// 0xCB prefixed
	OpRLC
	OpRRC
	OpRL
	OpRR
	OpSLA
	OpSRA
	OpSWAP
	OpSRL
	OpBIT
	OpRES
	OpSET

	opCount
)

var opNames = [opCount]string{
	OpInvalid: "INVALID",
	OpNOP:     "NOP",
	OpLD:      "LD",
	OpLDH:     "LDH",
	OpINC:     "INC",
	OpDEC:     "DEC",
	OpADD:     "ADD",
	OpADC:     "ADC",
	OpSUB:     "SUB",
	OpSBC:     "SBC",
	OpAND:     "AND",
	OpXOR:     "XOR",
	OpOR:      "OR",
	OpCP:      "CP",
	OpJP:      "JP",
	OpJR:      "JR",
	OpCALL:    "CALL",
	OpRET:     "RET",
	OpRETI:    "RETI",
	OpRST:     "RST",
	OpPUSH:    "PUSH",
	OpPOP:     "POP",
	OpRLCA:    "RLCA",
	OpRRCA:    "RRCA",
	OpRLA:     "RLA",
	OpRRA:     "RRA",
	OpDAA:     "DAA",
	OpCPL:     "CPL",
	OpSCF:     "SCF",
	OpCCF:     "CCF",
	OpHALT:    "HALT",
	OpSTOP:    "STOP",
	OpDI:      "DI",
	OpEI:      "EI",
	OpRLC:     "RLC",
	OpRRC:     "RRC",
	OpRL:      "RL",
	OpRR:      "RR",
	OpSLA:     "SLA",
	OpSRA:     "SRA",
	OpSWAP:    "SWAP",
	OpSRL:     "SRL",
	OpBIT:     "BIT",
	OpRES:     "RES",
	OpSET:     "SET",
}

func (o Op) String() string {
	if o < opCount {
		return opNames[o]
	}
	return "UNKNOWN"
}
