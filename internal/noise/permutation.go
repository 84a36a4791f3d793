package noise

import (
	"fmt"
	"math/rand"
)

// DefaultSeed is used when no seed is given, so repeated runs match.
const DefaultSeed int64 = 1

// Table is a seed-shuffled permutation of 0..255, stored twice so that
// callers adding small offsets never need a bounds check.
type Table struct {
	perm [512]int
}

// NewTable shuffles the identity permutation with the given seed.
func NewTable(seed int64) *Table {
	t := &Table{}
	r := rand.New(rand.NewSource(seed))

	p := make([]int, 256)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(256, func(i, j int) { p[i], p[j] = p[j], p[i] })

	for i := 0; i < 512; i++ {
		t.perm[i] = p[i&255]
	}
	return t
}

// NewTableFrom uses p as is. p must hold each of 0..255 exactly once.
func NewTableFrom(p []int) (*Table, error) {
	if len(p) != 256 {
		return nil, &ConfigError{Field: "permutation", Reason: fmt.Sprintf("has %d entries, want 256", len(p))}
	}
	var seen [256]bool
	for i, v := range p {
		if v < 0 || v > 255 || seen[v] {
			return nil, &ConfigError{Field: "permutation", Reason: fmt.Sprintf("entry %d (%d) is out of range or repeated", i, v)}
		}
		seen[v] = true
	}
	t := &Table{}
	for i := 0; i < 512; i++ {
		t.perm[i] = p[i&255]
	}
	return t, nil
}

// At returns the entry for any integer, negative ones included.
func (t *Table) At(i int) int {
	return t.perm[i&0xFF]
}

// reference is the fixed 512-entry permutation the 1D gradient uses as its
// second and third lookup.
var reference = [512]int{
	31, 99, 136, 15, 174, 2, 75, 87, 89, 71, 207, 108, 28, 201, 162, 125, 127, 43,
	238, 107, 242, 23, 228, 245, 102, 29, 91, 24, 140, 92, 175, 68, 246, 151, 145,
	32, 214, 157, 132, 149, 78, 134, 116, 155, 112, 52, 208, 189, 212, 195, 8, 77,
	167, 233, 251, 98, 158, 227, 239, 48, 97, 66, 252, 44, 12, 250, 50, 128, 181,
	173, 72, 21, 34, 225, 186, 253, 60, 109, 40, 172, 147, 42, 46, 96, 22, 166, 110,
	86, 94, 115, 3, 118, 138, 101, 221, 82, 56, 130, 153, 241, 188, 38, 4, 122, 236,
	200, 7, 104, 53, 83, 88, 64, 142, 129, 123, 177, 203, 180, 193, 229, 18, 226,
	39, 121, 25, 58, 192, 182, 160, 202, 248, 139, 41, 93, 111, 95, 120, 80, 240,
	211, 14, 205, 20, 113, 137, 148, 232, 84, 36, 124, 163, 219, 183, 231, 5, 255,
	254, 178, 209, 70, 224, 11, 213, 61, 35, 198, 59, 54, 49, 249, 16, 184, 199, 168,
	45, 165, 216, 159, 206, 19, 222, 143, 152, 63, 74, 0, 73, 215, 33, 114, 223, 117,
	100, 27, 69, 10, 141, 90, 190, 105, 187, 196, 126, 133, 51, 191, 169, 26, 17, 62,
	161, 210, 154, 179, 194, 220, 218, 37, 204, 171, 6, 150, 235, 243, 217, 176, 76,
	55, 135, 106, 146, 234, 144, 1, 119, 156, 30, 65, 85, 247, 103, 244, 230, 81, 197,
	13, 131, 170, 67, 79, 9, 237, 164, 47, 185, 57, 190, 127, 14, 125, 169, 48, 97,
	223, 22, 241, 148, 247, 146, 202, 209, 255, 2, 215, 155, 240, 52, 206, 186, 220,
	181, 188, 21, 77, 132, 73, 88, 227, 83, 50, 226, 4, 69, 28, 238, 152, 170, 141,
	252, 166, 74, 104, 60, 46, 177, 75, 171, 81, 245, 82, 114, 173, 119, 33, 210, 185,
	103, 64, 17, 160, 151, 168, 232, 197, 26, 115, 130, 35, 18, 23, 244, 236, 149, 11,
	165, 135, 7, 191, 192, 111, 57, 162, 246, 13, 129, 41, 112, 51, 156, 108, 1, 55,
	20, 140, 47, 95, 0, 219, 71, 29, 234, 139, 70, 250, 124, 212, 19, 157, 225, 126,
	161, 32, 193, 243, 6, 178, 87, 201, 228, 131, 3, 208, 12, 43, 85, 175, 248, 231,
	145, 204, 229, 53, 90, 8, 195, 16, 113, 235, 36, 143, 56, 107, 176, 72, 39, 205,
	237, 38, 24, 142, 159, 233, 106, 180, 182, 230, 137, 99, 199, 189, 214, 183, 49,
	194, 167, 92, 42, 221, 153, 30, 224, 116, 34, 94, 144, 89, 163, 78, 102, 198, 66,
	40, 200, 109, 65, 133, 96, 10, 79, 5, 184, 203, 242, 222, 187, 63, 207, 45, 249,
	25, 138, 76, 68, 62, 136, 239, 179, 54, 58, 121, 27, 117, 150, 213, 158, 110, 61,
	251, 123, 44, 37, 211, 84, 67, 174, 120, 122, 218, 31, 134, 9, 196, 128, 98, 91,
	164, 101, 80, 217, 154, 86, 100, 172, 93, 15, 254, 59, 147, 118, 105, 253, 216,
}
