package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const (
	otpMin = 100000
	otpMax = 999999

	resetTokenPrefix    = "reset"
	resetTokenSuffixLen = 9
	base36              = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// GenerateOTP возвращает шестизначный код из [100000, 999999].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+otpMin), nil
}

// GenerateResetToken собирает непрозрачный токен reset_<userId>_<unixMillis>_<suffix>.
// Токен нигде не хранится и не подписывается.
func GenerateResetToken(userID int64, now time.Time) (string, error) {
	suffix, err := randomString(resetTokenSuffixLen, base36)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%d_%d_%s", resetTokenPrefix, userID, now.UnixMilli(), suffix), nil
}

func randomString(n int, alphabet string) (string, error) {
	var b strings.Builder
	b.Grow(n)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String(), nil
}
