package bars

import (
	"crypto/md5"
	"strings"
)

// DuplicateHash fingerprints lyrics for duplicate detection. Case and
// punctuation are ignored, but word and line boundaries count, so
// resubmitting the same verse with different punctuation still collides.
func DuplicateHash(lyrics string) [md5.Size]byte {
	s := strings.ToUpper(hashStrip(lyrics))
	sum := md5.New()
	sum.Write([]byte(s))

	out := make([]byte, 0, md5.Size)
	out = sum.Sum(out[:])

	var result [md5.Size]byte
	for i := 0; i < md5.Size; i++ {
		result[i] = out[i]
	}
	return result
}

func hashStrip(s string) string {
	return stripBytes(s, func(b byte) bool {
		return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || b == ' ' || b == '\n'
	})
}

func stripBytes(s string, keep func(b byte) bool) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if keep(s[i]) {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
