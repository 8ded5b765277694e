package order

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID returns a globally-unique, human-quotable order id:
// "ORD" + millisecond timestamp + 5 random base36 characters.
func NewOrderID(now time.Time) string {
	var b strings.Builder
	b.Grow(3 + 13 + 5)
	b.WriteString("ORD")
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	for range 5 {
		b.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return b.String()
}
