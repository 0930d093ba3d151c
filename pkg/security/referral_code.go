package security

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// ReferralCodePrefix is stamped onto every generated referral code.
const ReferralCodePrefix = "FT-"

// referralCodeCharset omits 0/O and 1/I to keep codes easy to share verbally.
var referralCodeCharset = []rune("ABCDEFGHJKLMNPQRSTUVWXYZ23456789")

// GenerateReferralCode returns a code like FT-K7M2QX with the given suffix length.
func GenerateReferralCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}

	var sb strings.Builder
	sb.WriteString(ReferralCodePrefix)
	for i := 0; i < length; i++ {
		idx, err := randInt(len(referralCodeCharset))
		if err != nil {
			return "", err
		}
		sb.WriteRune(referralCodeCharset[idx])
	}
	return sb.String(), nil
}

func randInt(max int) (int, error) {
	if max <= 0 {
		return 0, fmt.Errorf("invalid max %d", max)
	}
	var buff = make([]byte, 1)
	if _, err := rand.Read(buff); err != nil {
		return 0, err
	}
	return int(buff[0]) % max, nil
}
