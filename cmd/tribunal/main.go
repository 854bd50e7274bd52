package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/eigerco/tribunal/internal/chaintime"
	"github.com/eigerco/tribunal/internal/config"
	"github.com/eigerco/tribunal/internal/contract"
	"github.com/eigerco/tribunal/internal/funds"
	"github.com/eigerco/tribunal/internal/safemath"
	"github.com/eigerco/tribunal/pkg/db"
	"github.com/eigerco/tribunal/pkg/db/pebble"
	"github.com/eigerco/tribunal/pkg/log"
	"github.com/eigerco/tribunal/pkg/serialization/codec"
)

// main runs one call against a tribunal stored on disk and prints the
// result as canonical JSON.
//
//	go run ./cmd/tribunal -sender alice -instantiate @trial.json
//	go run ./cmd/tribunal -sender bob -funds 50ujuno -execute '{"vote":{"choice":0,"weight":5}}'
//	go run ./cmd/tribunal -query '{"get_trial":{}}'
func main() {
	configPath := flag.String("config", "", "YAML config file")
	sender := flag.String("sender", "", "address of the caller")
	now := flag.Uint64("time", 0, "block time in unix seconds, default now")
	height := flag.Uint64("height", 0, "block height")
	attached := flag.String("funds", "", "attached coins, e.g. 100ujuno,5uatom")
	ledger := flag.String("ledger", "", "JSON file with cw20 balances and allowances")
	instantiate := flag.String("instantiate", "", "instantiate message, JSON or @file")
	execute := flag.String("execute", "", "execute message, JSON or @file")
	query := flag.String("query", "", "query message, JSON or @file")
	flag.Parse()

	if err := run(*configPath, *sender, *now, *height, *attached, *ledger, *instantiate, *execute, *query); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if code := contract.Code(err); code != "" {
			fmt.Fprintln(os.Stderr, "code:", code)
		}
		os.Exit(1)
	}
}

func run(configPath, sender string, now, height uint64, attached, ledger, instantiate, execute, query string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := initLogger(cfg); err != nil {
		return err
	}

	kv, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer kv.Close() //nolint:errcheck

	querier := funds.NewLedgerQuerier()
	if ledger != "" {
		if err := loadLedger(querier, ledger); err != nil {
			return err
		}
	}
	c := contract.New(kv, querier)

	env := contract.Env{
		Block:    contract.BlockInfo{Height: height, Time: chaintime.Timestamp(now)},
		Contract: contract.ContractInfo{Address: funds.Address(cfg.ContractAddress)},
	}
	if now == 0 {
		env.Block.Time = chaintime.Now()
	}
	coins, err := parseCoins(attached)
	if err != nil {
		return err
	}
	info := contract.MessageInfo{Sender: funds.Address(sender), Funds: coins}

	txID := uuid.New()
	logger := log.Host.With().Str("tx", txID.String()).Logger()
	ctx := context.Background()

	var result interface{}
	switch {
	case instantiate != "":
		var msg contract.InstantiateMsg
		if err := readMessage(instantiate, &msg); err != nil {
			return err
		}
		logger.Info().Str("sender", sender).Msg("instantiate")
		result, err = c.Instantiate(ctx, env, info, msg)
	case execute != "":
		var msg contract.ExecuteMsg
		if err := readMessage(execute, &msg); err != nil {
			return err
		}
		logger.Info().Str("sender", sender).Msg("execute")
		result, err = c.Execute(ctx, env, info, msg)
	case query != "":
		var msg contract.QueryMsg
		if err := readMessage(query, &msg); err != nil {
			return err
		}
		logger.Debug().Msg("query")
		result, err = c.Query(env, msg)
	default:
		return errors.New("one of -instantiate, -execute or -query is required")
	}
	if err != nil {
		logger.Warn().Err(err).Str("code", contract.Code(err)).Msg("call failed")
		return err
	}

	out, err := codec.NewJSONCodec().Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func initLogger(cfg config.Config) error {
	level, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	typ, err := log.ParseLoggerType(cfg.LogType)
	if err != nil {
		return err
	}
	log.Init(log.Options{LogLevel: level, Type: typ, Out: os.Stderr})
	return nil
}

func openStore(cfg config.Config) (db.KVStore, error) {
	if cfg.InMemory {
		return pebble.NewKVStore()
	}
	return pebble.Open(cfg.DBPath)
}

// readMessage decodes arg as JSON, or the file it names when it starts with @.
func readMessage(arg string, v interface{}) error {
	raw := []byte(arg)
	if path, ok := strings.CutPrefix(arg, "@"); ok {
		var err error
		if raw, err = os.ReadFile(path); err != nil {
			return fmt.Errorf("read message: %w", err)
		}
	}
	c := codec.NewJSONCodec()
	c.Strict = true
	if err := c.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	return nil
}

// parseCoins parses a comma separated list such as "100ujuno,5uatom".
func parseCoins(s string) ([]funds.Coin, error) {
	if s == "" {
		return nil, nil
	}
	var coins []funds.Coin
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		i := strings.IndexFunc(part, func(r rune) bool { return r < '0' || r > '9' })
		if i <= 0 {
			return nil, fmt.Errorf("malformed coin %q", part)
		}
		amount, err := safemath.Parse(part[:i])
		if err != nil {
			return nil, fmt.Errorf("coin %q: %w", part, err)
		}
		coins = append(coins, funds.Coin{Denom: part[i:], Amount: amount})
	}
	return coins, nil
}

type ledgerFile struct {
	Balances []struct {
		Token  funds.Address    `json:"token"`
		Owner  funds.Address    `json:"owner"`
		Amount safemath.Uint128 `json:"amount"`
	} `json:"balances"`
	Allowances []struct {
		Token   funds.Address    `json:"token"`
		Owner   funds.Address    `json:"owner"`
		Spender funds.Address    `json:"spender"`
		Amount  safemath.Uint128 `json:"amount"`
	} `json:"allowances"`
}

func loadLedger(q *funds.LedgerQuerier, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read ledger: %w", err)
	}
	var f ledgerFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("decode ledger: %w", err)
	}
	for _, b := range f.Balances {
		q.SetBalance(b.Token, b.Owner, b.Amount)
	}
	for _, a := range f.Allowances {
		q.SetAllowance(a.Token, a.Owner, a.Spender, a.Amount)
	}
	return nil
}
