package seed

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

const (
	bakeryAvatarCount       = 22
	professionalAvatarCount = 20
)

// BakeryAvatars lists the bakery storefront pictures.
func BakeryAvatars() []string {
	return avatarPool("boulangerie", bakeryAvatarCount)
}

// ProfessionalAvatars lists the professional portraits.
func ProfessionalAvatars() []string {
	return avatarPool("boulanger", professionalAvatarCount)
}

func avatarPool(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d.jpeg", prefix, i+1)
	}
	return out
}

// PickAvatar chooses a picture for id from pool. The choice only depends on
// seed and id, so a restart with the same seed hands out the same avatars.
func PickAvatar(pool []string, seed uint64, id string) string {
	if len(pool) == 0 {
		return ""
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)

	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(id)
	return pool[d.Sum64()%uint64(len(pool))]
}

// BakeryImage cycles through the bakery pictures by index.
func BakeryImage(i int) string {
	pool := BakeryAvatars()
	return "/assets/boulangeries/" + pool[i%len(pool)]
}
