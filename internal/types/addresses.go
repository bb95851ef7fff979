package types

// HardwareAddress represents the address of a hardware
// register. The hardware registers are mapped to memory
// addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

// Boundaries of the memory regions that make up the 64 KiB
// address space. Each End is inclusive.
const (
	BootEnd       uint16 = 0x00FF
	ROMBank0      uint16 = 0x0000
	ROMBank0End   uint16 = 0x3FFF
	ROMBankN      uint16 = 0x4000
	ROMBankNEnd   uint16 = 0x7FFF
	VRAM          uint16 = 0x8000
	VRAMEnd       uint16 = 0x9FFF
	ExternalRAM   uint16 = 0xA000
	ExternalEnd   uint16 = 0xBFFF
	WRAM0         uint16 = 0xC000
	WRAM0End      uint16 = 0xCFFF
	WRAMN         uint16 = 0xD000
	WRAMNEnd      uint16 = 0xDFFF
	Echo          uint16 = 0xE000
	EchoEnd       uint16 = 0xFDFF
	OAM           uint16 = 0xFE00
	OAMEnd        uint16 = 0xFE9F
	Prohibited    uint16 = 0xFEA0
	ProhibitedEnd uint16 = 0xFEFF
	IO            uint16 = 0xFF00
	IOEnd         uint16 = 0xFF7F
	HRAM          uint16 = 0xFF80
	HRAMEnd       uint16 = 0xFFFE
)

const (
	// P1 selects the joypad button group in bits 4-5 and
	// reports the state of the selected buttons in bits 0-3,
	// where 0 means pressed.
	P1 HardwareAddress = 0xFF00
	// SB holds the byte to be transferred over the serial port.
	SB HardwareAddress = 0xFF01
	// SC controls the serial port.
	//
	//  Bit 7: Transfer Start Flag (1=Transfer in progress)
	//  Bit 0: Shift Clock         (0=External, 1=Internal)
	SC HardwareAddress = 0xFF02
	// DIV is incremented at 16384Hz. Writing any value
	// to DIV resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is incremented at the frequency selected by TAC.
	// When it overflows it is reloaded from TMA and a timer
	// interrupt is requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC controls the timer.
	//
	//  Bit 2:   Timer Enable
	//  Bit 1-0: Input Clock Select
	//           00: 4096Hz   (1024 cycles)
	//           01: 262144Hz (16 cycles)
	//           10: 65536Hz  (64 cycles)
	//           11: 16384Hz  (256 cycles)
	TAC HardwareAddress = 0xFF07
	// IF requests interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h)
	//  Bit 2: Timer Interrupt Request (INT 50h)
	//  Bit 3: Serial Interrupt Request (INT 58h)
	//  Bit 4: Joypad Interrupt Request (INT 60h)
	IF HardwareAddress = 0xFF0F

	// NR10 is the first of the audio registers.
	NR10 HardwareAddress = 0xFF10
	// NR50 controls the master volume.
	NR50 HardwareAddress = 0xFF24
	// NR51 pans each channel to the left and right outputs.
	NR51 HardwareAddress = 0xFF25
	// NR52 is the audio master control register, and the
	// last of the audio control registers.
	NR52 HardwareAddress = 0xFF26
	// WaveRAM is the first byte of the 16 byte wave pattern RAM.
	WaveRAM HardwareAddress = 0xFF30
	// WaveRAMEnd is the last byte of the wave pattern RAM.
	WaveRAMEnd HardwareAddress = 0xFF3F

	// LCDC controls the LCD.
	//
	//  Bit 7: LCD Enable                     (0=Off, 1=On)
	//  Bit 6: Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 5: Window Display Enable          (0=Off, 1=On)
	//  Bit 4: BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3: BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 2: OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//  Bit 1: OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//  Bit 0: BG Display                     (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT reports the LCD status. Bits 0-2 are read only and
	// bit 7 always reads as 1.
	//
	//  Bit 6: LYC=LY Coincidence Interrupt (1=Enable)
	//  Bit 5: Mode 2 OAM Interrupt         (1=Enable)
	//  Bit 4: Mode 1 V-Blank Interrupt     (1=Enable)
	//  Bit 3: Mode 0 H-Blank Interrupt     (1=Enable)
	//  Bit 2: Coincidence Flag             (0:LYC<>LY, 1:LYC=LY)
	//  Bit 1-0: Mode Flag
	STAT HardwareAddress = 0xFF41
	SCY  HardwareAddress = 0xFF42
	SCX  HardwareAddress = 0xFF43
	// LY is the current scanline, in the range 0-153. It is
	// read only.
	LY HardwareAddress = 0xFF44
	// LYC is compared against LY on every scanline.
	LYC HardwareAddress = 0xFF45
	// DMA copies 160 bytes from (value << 8) into OAM.
	DMA  HardwareAddress = 0xFF46
	BGP  HardwareAddress = 0xFF47
	OBP0 HardwareAddress = 0xFF48
	OBP1 HardwareAddress = 0xFF49
	WY   HardwareAddress = 0xFF4A
	WX   HardwareAddress = 0xFF4B
	// BDIS disables the boot ROM overlay once a non-zero
	// value has been written to it.
	BDIS HardwareAddress = 0xFF50
	// IE enables interrupts, using the same bit layout as IF.
	IE HardwareAddress = 0xFFFF
)
