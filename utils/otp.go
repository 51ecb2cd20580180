package authUtils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	otpKeyPrefix = "otp:"
	otpTTL       = 5 * time.Minute
)

// GenerateOTP issues a 6-digit verification code for the given email and
// stores it in redis with a short TTL. Delivery is mocked; the caller
// decides whether to echo the code back (demo mode) or drop it.
func GenerateOTP(ctx context.Context, rdb *redis.Client, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if err := rdb.Set(ctx, otpKeyPrefix+email, code, otpTTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// VerifyOTP checks the submitted code against the stored one and consumes it
// on success so a code cannot be replayed.
func VerifyOTP(ctx context.Context, rdb *redis.Client, email, code string) (bool, error) {
	stored, err := rdb.Get(ctx, otpKeyPrefix+email).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}

	_ = rdb.Del(ctx, otpKeyPrefix+email).Err()
	return true, nil
}
