package breed

import "fmt"

// Breed identifies one of the supported dog breeds. The set is closed:
// adding a breed means adding an enum value, a key, and a catalog entry,
// and the compiler flags every switch that misses the new value.
type Breed int

const (
	GoldenRetriever Breed = iota
	GermanShepherd
	Dachshund

	breedCount
)

// Key returns the stable string identifier used in profiles, CLI flags
// and output paths.
func (b Breed) Key() string {
	switch b {
	case GoldenRetriever:
		return "goldenRetriever"
	case GermanShepherd:
		return "germanShepherd"
	case Dachshund:
		return "dachshund"
	default:
		return "unknown"
	}
}

func (b Breed) String() string { return b.Key() }

// ParseBreed resolves a breed key. Unknown keys are a configuration
// error at the integration boundary and fail here, not at paint time.
func ParseBreed(key string) (Breed, error) {
	for _, b := range Catalog() {
		if b.Key() == key {
			return b, nil
		}
	}
	return 0, fmt.Errorf("breed: unknown key %q", key)
}

// Catalog enumerates every supported breed in declaration order.
func Catalog() []Breed {
	all := make([]Breed, 0, breedCount)
	for b := Breed(0); b < breedCount; b++ {
		all = append(all, b)
	}
	return all
}
