package entities

import (
	"strconv"
	"strings"
)

type BagStatus string

const (
	BagDisponible BagStatus = "DISPONIBLE"
	BagOcupada    BagStatus = "OCUPADA"
)

func (s BagStatus) IsValid() bool {
	return s == BagDisponible || s == BagOcupada
}

const MaxBagIDLength = 10

type Bag struct {
	ID     string
	Status BagStatus
}

// CompareBagIDs orders bag codes the way they hang on the rack: the numeric
// prefix compares as a number, the rest lexically ignoring case. Codes without
// a numeric prefix go last. Remaining ties break on the raw codes, so the order
// is total.
func CompareBagIDs(a, b string) int {
	na, ra, okA := splitBagID(a)
	nb, rb, okB := splitBagID(b)

	switch {
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	case okA && okB && na != nb:
		if na < nb {
			return -1
		}
		return 1
	}
	if c := strings.Compare(strings.ToLower(ra), strings.ToLower(rb)); c != 0 {
		return c
	}
	// codes are unique case-sensitively: "1A" and "1a" are distinct bags
	return strings.Compare(a, b)
}

func splitBagID(id string) (int, string, bool) {
	i := 0
	for i < len(id) && id[i] >= '0' && id[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, id, false
	}
	n, err := strconv.Atoi(id[:i])
	if err != nil {
		return 0, id, false
	}
	return n, id[i:], true
}
