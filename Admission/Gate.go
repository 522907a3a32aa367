package Admission

import (
	"Encore/Utils"
	"context"
	"time"

	"go.uber.org/zap"
)

// Decision is the result of an admission check. RetryAfter is set on rejection when known.
type Decision struct {

	Admitted   bool
	RetryAfter time.Duration

}

// Store owns the guild -> last admitted time record. Admit must check and record atomically.
type Store interface {

	Admit(Ctx context.Context, GuildID string, Now time.Time, Cooldown time.Duration) (Decision, error)

}

// Gate throttles requests per guild: one admitted request per cooldown window.
type Gate struct {

	Store    Store
	Cooldown time.Duration

	Clock  func() time.Time
	Logger *Utils.Logging

}

func NewGate(Store Store, Cooldown time.Duration, Logger *Utils.Logging) *Gate {

	if Logger == nil {

		Logger = Utils.Logger

	}

	return &Gate{

		Store:    Store,
		Cooldown: Cooldown,
		Clock:    time.Now,
		Logger:   Logger,

	}

}

// TryAdmit admits GuildID at Now when it has no record or its last admission is at least Cooldown old.
// A rejected call leaves the record untouched.
func (G *Gate) TryAdmit(GuildID string, Now time.Time) bool {

	return G.Decide(context.Background(), GuildID, Now).Admitted

}

// Admit is Decide at the gate's clock.
func (G *Gate) Admit(Ctx context.Context, GuildID string) Decision {

	return G.Decide(Ctx, GuildID, G.now())

}

// Decide is TryAdmit with the wait time reported. Store failures reject the request.
func (G *Gate) Decide(Ctx context.Context, GuildID string, Now time.Time) Decision {

	if G.Cooldown <= 0 {

		return Decision{Admitted: true}

	}

	Result, ErrorAdmitting := G.Store.Admit(Ctx, GuildID, Now, G.Cooldown)

	if ErrorAdmitting != nil {

		G.Logger.Error("Admission store failed, rejecting request", zap.String("guild", GuildID), zap.Error(ErrorAdmitting))

		return Decision{Admitted: false}

	}

	return Result

}

func (G *Gate) now() time.Time {

	if G.Clock != nil {

		return G.Clock()

	}

	return time.Now()

}
