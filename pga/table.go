package pga

import (
	"math/bits"
)

// The product tables are derived from the defining relations of the
// algebra rather than written out by hand. Each blade is a bitmask over
// the generators (bit i is e_i). Multiplying two blades XORs their masks,
// picks up a sign for every transposition needed to sort the generators
// and multiplies in the metric of every generator that appears twice.

var bladeMasks = [Size]uint8{
	0x0,
	0x1, 0x2, 0x4, 0x8,
	0x3, 0x5, 0x9, 0x6, 0xa, 0xc,
	0x7, 0xb, 0xd, 0xe,
	0xf,
}

// bladeSigns orients each named blade against its sorted generators:
// e31 = -e13, e021 = -e012 and e032 = -e023.
var bladeSigns = [Size]float64{
	1,
	1, 1, 1, 1,
	1, 1, 1, 1, -1, 1,
	-1, 1, -1, 1,
	1,
}

// metric[i] is e_i * e_i.
var metric = [4]float64{0, 1, 1, 1}

type term struct {
	a, b, out Blade
	sign      float64
}

// table is a sparse list of the non-zero blade-pair products of a bilinear
// operation.
type table []term

var (
	maskBlades [Size]Blade

	mulTable, wedgeTable, dotTable, veeTable table

	// complementSigns[i] * Blade(15-i) is the right complement of
	// Blade(i): Blade(i) ^ complementSigns[i] Blade(15-i) = e0123.
	complementSigns [Size]float64
)

func init() {
	for i, m := range bladeMasks {
		maskBlades[m] = Blade(i)
	}

	mulTable = buildTable(func(i, j, out Blade) bool { return true })
	wedgeTable = buildTable(func(i, j, out Blade) bool {
		return bladeMasks[i]&bladeMasks[j] == 0
	})
	dotTable = buildTable(func(i, j, out Blade) bool {
		d := i.Grade() - j.Grade()
		if d < 0 {
			d = -d
		}
		return out.Grade() == d
	})

	for i := Blade(0); i < Size; i++ {
		complementSigns[i] = Basis(i, 1).Wedge(Basis(Size-1-i, 1))[E0123]
	}
	veeTable = buildVeeTable()
}

// reorderSign returns the sign picked up when the generators of the
// bitmasks a and b are concatenated and then sorted.
func reorderSign(a, b uint8) float64 {
	a >>= 1
	n := 0
	for a != 0 {
		n += bits.OnesCount8(a & b)
		a >>= 1
	}
	if n&1 == 0 {
		return 1
	}
	return -1
}

// bladeProduct returns the geometric product of two named basis blades as
// sign * out. sign is zero when a null generator is repeated.
func bladeProduct(i, j Blade) (sign float64, out Blade) {
	ma, mb := bladeMasks[i], bladeMasks[j]
	sign = reorderSign(ma, mb)
	common := ma & mb
	for g := 0; g < len(metric); g++ {
		if common&(1<<uint(g)) != 0 {
			sign *= metric[g]
		}
	}
	out = maskBlades[ma^mb]
	if sign == 0 {
		return 0, out
	}
	return sign * bladeSigns[i] * bladeSigns[j] * bladeSigns[out], out
}

func buildTable(keep func(i, j, out Blade) bool) table {
	t := table{}
	for i := Blade(0); i < Size; i++ {
		for j := Blade(0); j < Size; j++ {
			sign, out := bladeProduct(i, j)
			if sign == 0 || !keep(i, j, out) {
				continue
			}
			t = append(t, term{i, j, out, sign})
		}
	}
	return t
}

// complement maps a onto its right complement.
func complement(a Multivector) Multivector {
	var res Multivector
	for i := range a {
		res[Size-1-i] = complementSigns[i] * a[i]
	}
	return res
}

// uncomplement inverts complement.
func uncomplement(a Multivector) Multivector {
	var res Multivector
	for i := range a {
		res[i] = complementSigns[i] * a[Size-1-i]
	}
	return res
}

// buildVeeTable tabulates the regressive product
// a v b = uncomplement(complement(b) ^ complement(a)).
func buildVeeTable() table {
	t := table{}
	for i := Blade(0); i < Size; i++ {
		for j := Blade(0); j < Size; j++ {
			a, b := Basis(i, 1), Basis(j, 1)
			res := uncomplement(complement(b).Wedge(complement(a)))
			for k, x := range res {
				if x != 0 {
					t = append(t, term{i, j, Blade(k), x})
				}
			}
		}
	}
	return t
}

func (t table) apply(a, b *Multivector) Multivector {
	var res Multivector
	for _, tm := range t {
		res[tm.out] += tm.sign * a[tm.a] * b[tm.b]
	}
	return res
}
