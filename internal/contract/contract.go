// Package contract is the tribunal state machine: instantiate a trial, take
// funded votes, collect the jury's decisions and settle claims.
package contract

import (
	"context"
	"fmt"
	"sync"

	"github.com/eigerco/tribunal/internal/funds"
	"github.com/eigerco/tribunal/internal/store"
	"github.com/eigerco/tribunal/internal/trial"
	"github.com/eigerco/tribunal/pkg/db"
	"github.com/eigerco/tribunal/pkg/log"
)

const (
	Name    = "tribunal"
	Version = "0.3.0"
)

// Deps are the collaborators one call may touch. Store is scoped to the
// call's transaction.
type Deps struct {
	Store   *store.Store
	Querier funds.Querier
}

// Contract runs calls against one trial's state in kv.
type Contract struct {
	kv      db.KVStore
	querier funds.Querier
	// calls are serialized; the host may call from several goroutines
	mu sync.Mutex
}

// New returns a Contract over kv. querier answers cw20 balance and allowance
// queries and may be nil for natively funded trials.
func New(kv db.KVStore, querier funds.Querier) *Contract {
	return &Contract{kv: kv, querier: querier}
}

// Instantiate creates the trial. It fails if one already exists.
func (c *Contract) Instantiate(ctx context.Context, env Env, info MessageInfo, msg InstantiateMsg) (Response, error) {
	return c.transact(env, info, "instantiate", func(deps Deps) (Response, error) {
		return instantiate(ctx, deps, env, info, msg)
	})
}

// Execute dispatches msg to its engine.
func (c *Contract) Execute(ctx context.Context, env Env, info MessageInfo, msg ExecuteMsg) (Response, error) {
	kind, err := msg.kind()
	if err != nil {
		return Response{}, err
	}
	return c.transact(env, info, kind, func(deps Deps) (Response, error) {
		switch {
		case msg.Vote != nil:
			return vote(ctx, deps, env, info, *msg.Vote)
		case msg.Decide != nil:
			return decide(ctx, deps, env, info, *msg.Decide)
		case msg.Cancel != nil:
			return cancel(ctx, deps, env, info, *msg.Cancel)
		default:
			return claim(ctx, deps, env, info)
		}
	})
}

// transact runs fn inside one batch and commits it only if fn succeeds, so a
// failed call leaves no trace.
func (c *Contract) transact(env Env, info MessageInfo, kind string, fn func(Deps) (Response, error)) (Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	batch := c.kv.NewBatch()
	defer batch.Close() //nolint:errcheck

	logger := log.Contract.With().
		Str("msg", kind).
		Str("sender", info.Sender.String()).
		Uint64("time", env.Block.Time.Seconds()).
		Logger()

	resp, err := fn(Deps{Store: store.New(batch), Querier: c.querier})
	if err != nil {
		logger.Info().Err(err).Str("code", Code(err)).Msg("call rejected")
		return Response{}, err
	}
	if err := batch.Commit(); err != nil {
		logger.Error().Err(err).Msg("commit failed")
		return Response{}, fmt.Errorf("commit batch: %w", err)
	}

	logger.Debug().Int("transfers", len(resp.Messages)).Msg("call executed")
	return resp, nil
}

// loadTrial loads the trial as seen at the call's block time.
func loadTrial(st *store.Store, env Env) (trial.Trial, error) {
	t, err := st.Trial()
	if err != nil {
		return trial.Trial{}, fmt.Errorf("load trial: %w", err)
	}
	if t.Advance(env.Block.Time) {
		log.Contract.Debug().Uint64("start", t.Verdict.Start.Seconds()).Msg("deliberations started")
	}
	return t, nil
}

func assetFor(deps Deps, env Env, t trial.Trial) (funds.Asset, error) {
	asset, err := funds.NewAsset(t.Token, env.Contract.Address, deps.Querier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return asset, nil
}
