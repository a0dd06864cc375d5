package coding

// Per-version/level constants transcribed from the ISO/IEC 18004:2015
// tables (6.4.10, 7.5.1, Annex D, Annex E). Index 0 is unused; indices
// 1..40 are QR versions 1..40; indices 41..44 are Micro versions
// M1..M4.

const (
	numVer   = 45 // table size: index 0 unused, 1-40 QR, 41-44 Micro
	microOff = 40 // vtab[microOff+v] is Micro version v
)

// rawCapacity holds, per version, the total codeword count, the
// remainder bit count (QR only) and the total EC codeword count for
// each of the four levels in L, M, Q, H order.
var rawCapacity = [numVer]struct {
	words     int
	remainder int
	ec        [4]int
}{
	{0, 0, [4]int{0, 0, 0, 0}},
	{26, 0, [4]int{7, 10, 13, 17}}, // 1
	{44, 7, [4]int{10, 16, 22, 28}},
	{70, 7, [4]int{15, 26, 36, 44}},
	{100, 7, [4]int{20, 36, 52, 64}},
	{134, 7, [4]int{26, 48, 72, 88}}, // 5
	{172, 7, [4]int{36, 64, 96, 112}},
	{196, 0, [4]int{40, 72, 108, 130}},
	{242, 0, [4]int{48, 88, 132, 156}},
	{292, 0, [4]int{60, 110, 160, 192}},
	{346, 0, [4]int{72, 130, 192, 224}}, // 10
	{404, 0, [4]int{80, 150, 224, 264}},
	{466, 0, [4]int{96, 176, 260, 308}},
	{532, 0, [4]int{104, 198, 288, 352}},
	{581, 3, [4]int{120, 216, 320, 384}},
	{655, 3, [4]int{132, 240, 360, 432}}, // 15
	{733, 3, [4]int{144, 280, 408, 480}},
	{815, 3, [4]int{168, 308, 448, 532}},
	{901, 3, [4]int{180, 338, 504, 588}},
	{991, 3, [4]int{196, 364, 546, 650}},
	{1085, 3, [4]int{224, 416, 600, 700}}, // 20
	{1156, 4, [4]int{224, 442, 644, 750}},
	{1258, 4, [4]int{252, 476, 690, 816}},
	{1364, 4, [4]int{270, 504, 750, 900}},
	{1474, 4, [4]int{300, 560, 810, 960}},
	{1588, 4, [4]int{312, 588, 870, 1050}}, // 25
	{1706, 4, [4]int{336, 644, 952, 1110}},
	{1828, 4, [4]int{360, 700, 1020, 1200}},
	{1921, 3, [4]int{390, 728, 1050, 1260}},
	{2051, 3, [4]int{420, 784, 1140, 1350}},
	{2185, 3, [4]int{450, 812, 1200, 1440}}, // 30
	{2323, 3, [4]int{480, 868, 1290, 1530}},
	{2465, 3, [4]int{510, 924, 1350, 1620}},
	{2611, 3, [4]int{540, 980, 1440, 1710}},
	{2761, 3, [4]int{570, 1036, 1530, 1800}},
	{2876, 0, [4]int{570, 1064, 1590, 1890}}, // 35
	{3034, 0, [4]int{600, 1120, 1680, 1980}},
	{3196, 0, [4]int{630, 1204, 1770, 2100}},
	{3362, 0, [4]int{660, 1260, 1860, 2220}},
	{3532, 0, [4]int{720, 1316, 1950, 2310}},
	{3706, 0, [4]int{750, 1372, 2040, 2430}}, // 40
	{5, 0, [4]int{2, 5, 5, 5}},               // M1
	{10, 0, [4]int{5, 6, 10, 10}},            // M2
	{17, 0, [4]int{6, 8, 17, 17}},            // M3
	{24, 0, [4]int{8, 10, 14, 24}},           // M4
}

// rawBlocks holds, per version and level, the (a, b) group-count pair
// from Annex D: a groups of the smaller block size, b groups of the
// larger (one codeword longer) block size. nblock = a+b.
var rawBlocks = [numVer][4][2]int{
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}}, // 1
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
	{{1, 0}, {1, 0}, {2, 0}, {2, 0}},
	{{1, 0}, {2, 0}, {2, 0}, {4, 0}},
	{{1, 0}, {2, 0}, {2, 2}, {2, 2}}, // 5
	{{2, 0}, {4, 0}, {4, 0}, {4, 0}},
	{{2, 0}, {4, 0}, {2, 4}, {4, 1}},
	{{2, 0}, {2, 2}, {4, 2}, {4, 2}},
	{{2, 0}, {3, 2}, {4, 4}, {4, 4}},
	{{2, 2}, {4, 1}, {6, 2}, {6, 2}}, // 10
	{{4, 0}, {1, 4}, {4, 4}, {3, 8}},
	{{2, 2}, {6, 2}, {4, 6}, {7, 4}},
	{{4, 0}, {8, 1}, {8, 4}, {12, 4}},
	{{3, 1}, {4, 5}, {11, 5}, {11, 5}},
	{{5, 1}, {5, 5}, {5, 7}, {11, 7}}, // 15
	{{5, 1}, {7, 3}, {15, 2}, {3, 13}},
	{{1, 5}, {10, 1}, {1, 15}, {2, 17}},
	{{5, 1}, {9, 4}, {17, 1}, {2, 19}},
	{{3, 4}, {3, 11}, {17, 4}, {9, 16}},
	{{3, 5}, {3, 13}, {15, 5}, {15, 10}}, // 20
	{{4, 4}, {17, 0}, {17, 6}, {19, 6}},
	{{2, 7}, {17, 0}, {7, 16}, {34, 0}},
	{{4, 5}, {4, 14}, {11, 14}, {16, 14}},
	{{6, 4}, {6, 14}, {11, 16}, {30, 2}},
	{{8, 4}, {8, 13}, {7, 22}, {22, 13}}, // 25
	{{10, 2}, {19, 4}, {28, 6}, {33, 4}},
	{{8, 4}, {22, 3}, {8, 26}, {12, 28}},
	{{3, 10}, {3, 23}, {4, 31}, {11, 31}},
	{{7, 7}, {21, 7}, {1, 37}, {19, 26}},
	{{5, 10}, {19, 10}, {15, 25}, {23, 25}}, // 30
	{{13, 3}, {2, 29}, {42, 1}, {23, 28}},
	{{17, 0}, {10, 23}, {10, 35}, {19, 35}},
	{{17, 1}, {14, 21}, {29, 19}, {11, 46}},
	{{13, 6}, {14, 23}, {44, 7}, {59, 1}},
	{{12, 7}, {12, 26}, {39, 14}, {22, 41}}, // 35
	{{6, 14}, {6, 34}, {46, 10}, {2, 64}},
	{{17, 4}, {29, 14}, {49, 10}, {24, 46}},
	{{4, 18}, {13, 32}, {48, 14}, {42, 32}},
	{{20, 4}, {40, 7}, {43, 22}, {10, 67}},
	{{19, 6}, {18, 31}, {34, 34}, {20, 61}}, // 40
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},        // M1
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},        // M2
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},        // M3
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},        // M4
}

// rawAlign holds, per QR version, the second and third alignment
// pattern center coordinates along one axis (Annex E), which
// alignCenters expands into the full list (the first center is always
// 6). The third is zero for versions 2-6, which have only two centers;
// both are zero for version 1 and all Micro versions, which have no
// alignment patterns.
var rawAlign = [numVer][2]int{
	{0, 0},
	{0, 0}, {18, 0}, {22, 0}, {26, 0}, {30, 0}, // 1-5
	{34, 0}, {22, 38}, {24, 42}, {26, 46}, {28, 50}, // 6-10
	{30, 54}, {32, 58}, {34, 62}, {26, 46}, {26, 48}, // 11-15
	{26, 50}, {30, 54}, {30, 56}, {30, 58}, {34, 62}, // 16-20
	{28, 50}, {26, 50}, {30, 54}, {28, 54}, {32, 58}, // 21-25
	{30, 58}, {34, 62}, {26, 50}, {30, 54}, {26, 52}, // 26-30
	{30, 56}, {34, 60}, {30, 58}, {34, 62}, {30, 54}, // 31-35
	{24, 50}, {28, 54}, {32, 58}, {26, 54}, {30, 58}, // 36-40
	{0, 0}, {0, 0}, {0, 0}, {0, 0}, // M1-M4
}

// blockInfo describes the block layout for one (version, level) pair:
// the data codeword stream is split into nblock blocks, each bearing
// ecPerBlock EC codewords.
type blockInfo struct {
	nblock     int
	ecPerBlock int
}

// verInfo is the fully derived per-version table entry.
type verInfo struct {
	words       int // total codewords, data+EC
	remainder   int // remainder bits after placement (QR only)
	alignCenter []int // alignment pattern center coordinates, nil if none
	levels      [4]blockInfo
}

var vtab [numVer]verInfo

func init() {
	for i := 1; i < numVer; i++ {
		v := &vtab[i]
		v.words = rawCapacity[i].words
		v.remainder = rawCapacity[i].remainder
		if i <= 40 {
			size := 21 + 4*(i-1)
			v.alignCenter = alignCenters(rawAlign[i][0], rawAlign[i][1], size)
		}
		for l := 0; l < 4; l++ {
			a, b := rawBlocks[i][l][0], rawBlocks[i][l][1]
			nblock := a + b
			if nblock == 0 {
				continue
			}
			v.levels[l] = blockInfo{
				nblock:     nblock,
				ecPerBlock: rawCapacity[i].ec[l] / nblock,
			}
		}
	}
}

// alignCenters expands the raw (second-center, third-center) table
// entry from Annex E into the full list of alignment pattern center
// coordinates along one axis, including the mandatory first center at
// module 6. second is 0 for versions with no alignment patterns
// (version 1); third is 0 for versions with only one extra center
// (versions 2-6). For versions with three or more extra centers, the
// stride between second and third repeats for every subsequent center
// up to the symbol edge.
func alignCenters(second, third, size int) []int {
	if second == 0 {
		return nil
	}
	if third == 0 {
		return []int{6, second}
	}
	centers := []int{6}
	stride := third - second
	for x := second - 2; x+2 <= size-7; x += stride {
		centers = append(centers, x+2)
	}
	return centers
}

// versionIndex maps a (type, version) pair to the internal table
// index 1..44.
func versionIndex(t SymbolType, version int) int {
	if t == MicroQR {
		return microOff + version
	}
	return version
}

// blockLayout returns the block layout for (t, version, level): the
// data stream splits into nblock blocks, each with ecPerBlock EC
// codewords.
func blockLayout(t SymbolType, version int, level Level) blockInfo {
	return vtab[versionIndex(t, version)].levels[level.tableIndex()]
}

// DataCapacityBits returns the maximum number of segment-builder data
// bits (mode indicators, char counts and payloads combined) that fit
// in (t, version, level), after terminator, padding and EC codewords
// are accounted for.
func DataCapacityBits(t SymbolType, version int, level Level) int {
	v := &vtab[versionIndex(t, version)]
	bi := v.levels[level.tableIndex()]
	bits := 8 * (v.words - bi.nblock*bi.ecPerBlock)
	if t == MicroQR && (version == 1 || version == 3) {
		bits -= 4 // final data codeword is a nibble, not a byte
	}
	return bits
}
