package growth

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// Notes are "field:value" pairs joined by ",". Integer values of biomass
// and bred-seed notes are 8-byte big-endian, so those notes are decoded by
// position rather than by splitting on separators.

const (
	noteSep = ","
	noteKV  = ":"
)

// seedNote renders "dna:<hex>[,strain:<n>,rarity:<n>]"
func seedNote(dna []byte, strain, rarity uint64, traits bool) []byte {
	var b bytes.Buffer
	b.WriteString(domain.NoteFieldDNA + noteKV + hex.EncodeToString(dna))
	if traits {
		b.WriteString(noteSep + domain.NoteFieldStrain + noteKV + strconv.FormatUint(strain, 10))
		b.WriteString(noteSep + domain.NoteFieldRarity + noteKV + strconv.FormatUint(rarity, 10))
	}
	return b.Bytes()
}

// pairNote renders "<k1>:<itob v1>,<k2>:<itob v2>"
func pairNote(k1 string, v1 uint64, k2 string, v2 uint64) []byte {
	note := make([]byte, 0, len(k1)+len(k2)+2*len(noteKV)+len(noteSep)+16)
	note = append(note, k1+noteKV...)
	note = append(note, domain.Itob(v1)...)
	note = append(note, noteSep+k2+noteKV...)
	note = append(note, domain.Itob(v2)...)
	return note
}

// parsePairNote decodes a note written by pairNote with the given keys
func parsePairNote(note []byte, k1, k2 string) (uint64, uint64, error) {
	p1 := []byte(k1 + noteKV)
	p2 := []byte(noteSep + k2 + noteKV)
	if len(note) != len(p1)+8+len(p2)+8 ||
		!bytes.HasPrefix(note, p1) ||
		!bytes.Equal(note[len(p1)+8:len(p1)+8+len(p2)], p2) {
		return 0, 0, fmt.Errorf("%w: note is not %s/%s", domain.ErrInvalidArgument, k1, k2)
	}
	v1, _ := domain.Btoi(note[len(p1) : len(p1)+8])
	v2, _ := domain.Btoi(note[len(note)-8:])
	return v1, v2, nil
}

// BiomassNote decodes the weight and seed id minted into a biomass token
func BiomassNote(note []byte) (weight, seed uint64, err error) {
	return parsePairNote(note, domain.NoteFieldWeight, domain.NoteFieldSeed)
}

// BredSeedNote decodes the parent ids minted into a bred seed
func BredSeedNote(note []byte) (parent1, parent2 uint64, err error) {
	return parsePairNote(note, domain.NoteFieldParent1, domain.NoteFieldParent2)
}
