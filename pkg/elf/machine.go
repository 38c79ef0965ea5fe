package elf

// Machine is the e_machine architecture code.
type Machine uint16

const (
	MachineNone          Machine = 0
	MachineM32           Machine = 1
	MachineSPARC         Machine = 2
	Machine386           Machine = 3
	Machine68K           Machine = 4
	Machine88K           Machine = 5
	MachineIAMCU         Machine = 6
	Machine860           Machine = 7
	MachineMIPS          Machine = 8
	MachineS370          Machine = 9
	MachineMIPS_RS3_LE   Machine = 10
	MachinePARISC        Machine = 15
	MachineVPP500        Machine = 17
	MachineSPARC32Plus   Machine = 18
	Machine960           Machine = 19
	MachinePPC           Machine = 20
	MachinePPC64         Machine = 21
	MachineS390          Machine = 22
	MachineSPU           Machine = 23
	MachineV800          Machine = 36
	MachineFR20          Machine = 37
	MachineRH32          Machine = 38
	MachineRCE           Machine = 39
	MachineARM           Machine = 40
	MachineFakeAlpha     Machine = 41
	MachineSH            Machine = 42
	MachineSPARCV9       Machine = 43
	MachineTriCore       Machine = 44
	MachineARC           Machine = 45
	MachineH8_300        Machine = 46
	MachineH8_300H       Machine = 47
	MachineH8S           Machine = 48
	MachineH8_500        Machine = 49
	MachineIA64          Machine = 50
	MachineMIPSX         Machine = 51
	MachineColdFire      Machine = 52
	MachineM68HC12       Machine = 53
	MachineMMA           Machine = 54
	MachinePCP           Machine = 55
	MachineNCPU          Machine = 56
	MachineNDF1          Machine = 57
	MachineStarCore      Machine = 58
	MachineME16          Machine = 59
	MachineST100         Machine = 60
	MachineTinyJ         Machine = 61
	MachineX86_64        Machine = 62
	MachineDSP           Machine = 63
	MachinePDP10         Machine = 64
	MachinePDP11         Machine = 65
	MachineFX66          Machine = 66
	MachineST9Plus       Machine = 67
	MachineST7           Machine = 68
	MachineM68HC16       Machine = 69
	MachineM68HC11       Machine = 70
	MachineM68HC08       Machine = 71
	MachineM68HC05       Machine = 72
	MachineSVx           Machine = 73
	MachineST19          Machine = 74
	MachineVAX           Machine = 75
	MachineCris          Machine = 76
	MachineJavelin       Machine = 77
	MachineFirepath      Machine = 78
	MachineZSP           Machine = 79
	MachineMMIX          Machine = 80
	MachineHUAny         Machine = 81
	MachinePrism         Machine = 82
	MachineAVR           Machine = 83
	MachineFR30          Machine = 84
	MachineD10V          Machine = 85
	MachineD30V          Machine = 86
	MachineV850          Machine = 87
	MachineM32R          Machine = 88
	MachineMN10300       Machine = 89
	MachineMN10200       Machine = 90
	MachinePicoJava      Machine = 91
	MachineOpenRISC      Machine = 92
	MachineARCompact     Machine = 93
	MachineXtensa        Machine = 94
	MachineVideoCode     Machine = 95
	MachineTMMGPP        Machine = 96
	MachineNS32K         Machine = 97
	MachineTPC           Machine = 98
	MachineSNP1K         Machine = 99
	MachineST200         Machine = 100
	MachineIP2K          Machine = 101
	MachineMAX           Machine = 102
	MachineCompactRISC   Machine = 103
	MachineF2MC16        Machine = 104
	MachineMSP430        Machine = 105
	MachineBlackfin      Machine = 106
	MachineS1C33         Machine = 107
	MachineSEP           Machine = 108
	MachineArcaRISC      Machine = 109
	MachineUnicore       Machine = 110
	MachineExcess        Machine = 111
	MachineDXP           Machine = 112
	MachineAlteraNiosII  Machine = 113
	MachineCRX           Machine = 114
	MachineXGATE         Machine = 115
	MachineC166          Machine = 116
	MachineM16C          Machine = 117
	MachineDsPIC30F      Machine = 118
	MachineCE            Machine = 119
	MachineM32C          Machine = 120
	MachineTSK3000       Machine = 131
	MachineRS08          Machine = 132
	MachineSHARC         Machine = 133
	MachineECOG2         Machine = 134
	MachineScore7        Machine = 135
	MachineDSP24         Machine = 136
	MachineVideoCoreIII  Machine = 137
	MachineLatticeMICO32 Machine = 138
	MachineC17           Machine = 139
	MachineTMS320C6000   Machine = 140
	MachineTMS320C2000   Machine = 141
	MachineTMS320C55x    Machine = 142
	MachineTI_ARP32      Machine = 143
	MachineTI_PRU        Machine = 144
	MachineMMDSPPlus     Machine = 160
	MachineCypressM8C    Machine = 161
	MachineR32C          Machine = 162
	MachineTriMedia      Machine = 163
	MachineQDSP6         Machine = 164
	Machine8051          Machine = 165
	MachineSTxP7x        Machine = 166
	MachineNDS32         Machine = 167
	MachineECOG1X        Machine = 168
	MachineMAXQ30        Machine = 169
	MachineXIMO16        Machine = 170
	MachineM2000         Machine = 171
	MachineCrayNV2       Machine = 172
	MachineRX            Machine = 173
	MachineMETAG         Machine = 174
	MachineMCST_Elbrus   Machine = 175
	MachineECOG16        Machine = 176
	MachineCR16          Machine = 177
	MachineETPU          Machine = 178
	MachineSLE9X         Machine = 179
	MachineL10M          Machine = 180
	MachineK10M          Machine = 181
	MachineAArch64       Machine = 183
	MachineAVR32         Machine = 185
	MachineSTM8          Machine = 186
	MachineTILE64        Machine = 187
	MachineTILEPro       Machine = 188
	MachineMicroBlaze    Machine = 189
	MachineCUDA          Machine = 190
	MachineTILEGx        Machine = 191
	MachineCloudShield   Machine = 192
	MachineCOREA_1st     Machine = 193
	MachineCOREA_2nd     Machine = 194
	MachineARCv2         Machine = 195
	MachineOpen8         Machine = 196
	MachineRL78          Machine = 197
	MachineVideoCoreV    Machine = 198
	MachineR78KOR        Machine = 199
	MachineF56800EX      Machine = 200
	MachineBA1           Machine = 201
	MachineBA2           Machine = 202
	MachineXCORE         Machine = 203
	MachineMchpPIC       Machine = 204
	MachineIGT           Machine = 205
	MachineKM32          Machine = 210
	MachineKMX32         Machine = 211
	MachineKMX16         Machine = 212
	MachineKMX8          Machine = 213
	MachineKVARC         Machine = 214
	MachineCDP           Machine = 215
	MachineCOGE          Machine = 216
	MachineCoolEngine    Machine = 217
	MachineNORC          Machine = 218
	MachineCSR_Kalimba   Machine = 219
	MachineZ80           Machine = 220
	MachineVISIUMcore    Machine = 221
	MachineFT32          Machine = 222
	MachineMoxie         Machine = 223
	MachineAMDGPU        Machine = 224
	MachineRISCV         Machine = 243
	MachineBPF           Machine = 247
	MachineCSKY          Machine = 252
	MachineLoongArch     Machine = 258
	MachineNum           Machine = 259
	MachineAlpha         Machine = 0x9026
)

var machineTable = &codeTable[Machine]{
	name:  "Machine",
	width: 2,
	names: map[Machine]string{
		MachineNone:          "None",
		MachineM32:           "M32",
		MachineSPARC:         "SPARC",
		Machine386:           "Intel 80386",
		Machine68K:           "Motorola 68000",
		Machine88K:           "Motorola 88000",
		MachineIAMCU:         "IAMCU",
		Machine860:           "Intel 80860",
		MachineMIPS:          "MIPS",
		MachineS370:          "System/370",
		MachineMIPS_RS3_LE:   "MIPS RS3000 LE",
		MachinePARISC:        "PARISC",
		MachineVPP500:        "VPP500",
		MachineSPARC32Plus:   "SPARC32+",
		Machine960:           "Intel 80960",
		MachinePPC:           "PowerPC",
		MachinePPC64:         "PowerPC64",
		MachineS390:          "S/390",
		MachineSPU:           "SPU",
		MachineV800:          "V800",
		MachineFR20:          "FR20",
		MachineRH32:          "RH32",
		MachineRCE:           "RCE",
		MachineARM:           "ARM",
		MachineFakeAlpha:     "FAKE_ALPHA",
		MachineSH:            "SH",
		MachineSPARCV9:       "SPARC v9",
		MachineTriCore:       "TriCore",
		MachineARC:           "ARC",
		MachineH8_300:        "H8/300",
		MachineH8_300H:       "H8/300H",
		MachineH8S:           "H8S",
		MachineH8_500:        "H8/500",
		MachineIA64:          "IA-64",
		MachineMIPSX:         "MIPSX",
		MachineColdFire:      "ColdFire",
		MachineM68HC12:       "M68HC12",
		MachineMMA:           "MMA",
		MachinePCP:           "PCP",
		MachineNCPU:          "nCPU",
		MachineNDF1:          "NDF1",
		MachineStarCore:      "StarCore",
		MachineME16:          "ME16",
		MachineST100:         "ST100",
		MachineTinyJ:         "TinyJ",
		MachineX86_64:        "x86-64",
		MachineDSP:           "DSP",
		MachinePDP10:         "PDP10",
		MachinePDP11:         "PDP11",
		MachineFX66:          "FX66",
		MachineST9Plus:       "ST9Plus",
		MachineST7:           "ST7",
		MachineM68HC16:       "M68HC16",
		MachineM68HC11:       "M68HC11",
		MachineM68HC08:       "M68HC08",
		MachineM68HC05:       "M68HC05",
		MachineSVx:           "SVx",
		MachineST19:          "ST19",
		MachineVAX:           "VAX",
		MachineCris:          "Cris",
		MachineJavelin:       "Javelin",
		MachineFirepath:      "Firepath",
		MachineZSP:           "ZSP",
		MachineMMIX:          "MMIX",
		MachineHUAny:         "HUANY",
		MachinePrism:         "Prism",
		MachineAVR:           "AVR",
		MachineFR30:          "FR30",
		MachineD10V:          "D10V",
		MachineD30V:          "D30V",
		MachineV850:          "v850",
		MachineM32R:          "M32R",
		MachineMN10300:       "MN10300",
		MachineMN10200:       "MN10200",
		MachinePicoJava:      "picoJava",
		MachineOpenRISC:      "OpenRISC",
		MachineARCompact:     "ARCompact",
		MachineXtensa:        "Xtensa",
		MachineVideoCode:     "VideoCode",
		MachineTMMGPP:        "TMMGPP",
		MachineNS32K:         "NS32K",
		MachineTPC:           "TPC",
		MachineSNP1K:         "SNP1K",
		MachineST200:         "ST200",
		MachineIP2K:          "IP2K",
		MachineMAX:           "MAX",
		MachineCompactRISC:   "CompactRISC",
		MachineF2MC16:        "F2MC16",
		MachineMSP430:        "MSP430",
		MachineBlackfin:      "Blackfin",
		MachineS1C33:         "S1C33",
		MachineSEP:           "SEP",
		MachineArcaRISC:      "ArcaRISC",
		MachineUnicore:       "Unicore",
		MachineExcess:        "eXcess",
		MachineDXP:           "DXP",
		MachineAlteraNiosII:  "AlteraNiosII",
		MachineCRX:           "CRX",
		MachineXGATE:         "XGATE",
		MachineC166:          "C166",
		MachineM16C:          "M16C",
		MachineDsPIC30F:      "dsPIC30F",
		MachineCE:            "CE",
		MachineM32C:          "M32C",
		MachineTSK3000:       "TSK3000",
		MachineRS08:          "RS08",
		MachineSHARC:         "SHARC",
		MachineECOG2:         "eCOG2",
		MachineScore7:        "Score7",
		MachineDSP24:         "DSP24",
		MachineVideoCoreIII:  "VideoCoreIII",
		MachineLatticeMICO32: "LatticeMICO32",
		MachineC17:           "C17",
		MachineTMS320C6000:   "TMS320C6000",
		MachineTMS320C2000:   "TMS320C2000",
		MachineTMS320C55x:    "TMS320C55x",
		MachineTI_ARP32:      "TI ARP32",
		MachineTI_PRU:        "TI PRU",
		MachineMMDSPPlus:     "MMDSPPlus",
		MachineCypressM8C:    "CypressM8C",
		MachineR32C:          "R32C",
		MachineTriMedia:      "TriMedia",
		MachineQDSP6:         "QDSP6",
		Machine8051:          "Intel 8051",
		MachineSTxP7x:        "STxP7x",
		MachineNDS32:         "NDS32",
		MachineECOG1X:        "eCOG1X",
		MachineMAXQ30:        "MAXQ30",
		MachineXIMO16:        "XIMO16",
		MachineM2000:         "M2000",
		MachineCrayNV2:       "CrayNV2",
		MachineRX:            "RX",
		MachineMETAG:         "META",
		MachineMCST_Elbrus:   "MCST Elbrus",
		MachineECOG16:        "eCOG16",
		MachineCR16:          "CR16",
		MachineETPU:          "ETPU",
		MachineSLE9X:         "SLE9X",
		MachineL10M:          "L10M",
		MachineK10M:          "K10M",
		MachineAArch64:       "AArch64",
		MachineAVR32:         "AVR32",
		MachineSTM8:          "STM8",
		MachineTILE64:        "TILE64",
		MachineTILEPro:       "TILEPro",
		MachineMicroBlaze:    "MicroBlaze",
		MachineCUDA:          "CUDA",
		MachineTILEGx:        "TILEGx",
		MachineCloudShield:   "CloudShield",
		MachineCOREA_1st:     "COREA 1st",
		MachineCOREA_2nd:     "COREA 2nd",
		MachineARCv2:         "ARCv2",
		MachineOpen8:         "Open8",
		MachineRL78:          "RL78",
		MachineVideoCoreV:    "VideoCoreV",
		MachineR78KOR:        "78KOR",
		MachineF56800EX:      "56800EX",
		MachineBA1:           "BA1",
		MachineBA2:           "BA2",
		MachineXCORE:         "xCORE",
		MachineMchpPIC:       "MchpPIC",
		MachineIGT:           "iGT",
		MachineKM32:          "KM32",
		MachineKMX32:         "KMX32",
		MachineKMX16:         "KMX16",
		MachineKMX8:          "KMX8",
		MachineKVARC:         "KVARC",
		MachineCDP:           "CDP",
		MachineCOGE:          "COGE",
		MachineCoolEngine:    "CoolEngine",
		MachineNORC:          "NORC",
		MachineCSR_Kalimba:   "CSR Kalimba",
		MachineZ80:           "Z80",
		MachineVISIUMcore:    "VISIUMcore",
		MachineFT32:          "FT32",
		MachineMoxie:         "Moxie",
		MachineAMDGPU:        "AMD GPU",
		MachineRISCV:         "RISC-V",
		MachineBPF:           "BPF",
		MachineCSKY:          "C-SKY",
		MachineLoongArch:     "LoongArch",
		MachineNum:           "Num",
		MachineAlpha:         "Alpha",
	},
}

func (m Machine) String() string { return machineTable.format(m) }
