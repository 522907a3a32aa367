package Admission

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares admission records between bot processes. The key lives for exactly one
// cooldown, so Redis' own clock decides expiry; Now is only stored for inspection.
type RedisStore struct {

	Client *redis.Client
	Prefix string

}

// NewRedisStore connects to URL (redis://...) and verifies the connection.
func NewRedisStore(URL string) (*RedisStore, error) {

	Options, ErrorParsing := redis.ParseURL(URL)

	if ErrorParsing != nil {

		return nil, fmt.Errorf("failed to parse redis URL: %w", ErrorParsing)

	}

	Client := redis.NewClient(Options)

	ContextToUse, CancelFunc := context.WithTimeout(context.Background(), 5*time.Second)
	defer CancelFunc()

	if ErrorPinging := Client.Ping(ContextToUse).Err(); ErrorPinging != nil {

		_ = Client.Close()

		return nil, fmt.Errorf("failed to connect to redis: %w", ErrorPinging)

	}

	return &RedisStore{Client: Client, Prefix: "admission"}, nil

}

func (R *RedisStore) Key(GuildID string) string {

	return fmt.Sprintf("%s:%s", R.Prefix, GuildID)

}

// Admit sets the guild key only when absent. A key found without an expiry gets the cooldown
// applied; a key that expired between the two calls is set again once.
func (R *RedisStore) Admit(Ctx context.Context, GuildID string, Now time.Time, Cooldown time.Duration) (Decision, error) {

	Key := R.Key(GuildID)

	for Try := 0; Try < 2; Try++ {

		Stored, ErrorSetting := R.Client.SetNX(Ctx, Key, strconv.FormatInt(Now.UnixMilli(), 10), Cooldown).Result()

		if ErrorSetting != nil {

			return Decision{}, fmt.Errorf("setnx failed: %w", ErrorSetting)

		}

		if Stored {

			return Decision{Admitted: true}, nil

		}

		Remaining, ErrorReading := R.Client.PTTL(Ctx, Key).Result()

		if ErrorReading != nil {

			return Decision{}, fmt.Errorf("pttl failed: %w", ErrorReading)

		}

		switch {

			case Remaining > 0:

				return Decision{Admitted: false, RetryAfter: Remaining}, nil

			case Remaining == -1:

				if ErrorExpiring := R.Client.PExpire(Ctx, Key, Cooldown).Err(); ErrorExpiring != nil {

					return Decision{}, fmt.Errorf("pexpire failed: %w", ErrorExpiring)

				}

				return Decision{Admitted: false, RetryAfter: Cooldown}, nil

		}

	}

	return Decision{Admitted: false}, nil

}

func (R *RedisStore) Close() error {

	return R.Client.Close()

}
