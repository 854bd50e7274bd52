package funds

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/tribunal/internal/safemath"
)

const (
	contractAddr Address = "contract"
	voter        Address = "voter"
	tokenAddr    Address = "token"
)

func TestTokenValidate(t *testing.T) {
	tests := []struct {
		name    string
		token   Token
		wantErr bool
	}{
		{"native", NewNativeToken("ujuno"), false},
		{"cw20", NewCW20Token(tokenAddr), false},
		{"empty_denom", NewNativeToken(""), true},
		{"empty_address", NewCW20Token(""), true},
		{"no_variant", Token{}, true},
		{"denom_not_utf8", NewNativeToken("u\xffjuno"), true},
		{"address_not_utf8", NewCW20Token("cw20\xff"), true},
		{"both_variants", Token{Native: &NativeToken{Denom: "a"}, CW20: &CW20Token{Address: "b"}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.token.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAddressValidate(t *testing.T) {
	assert.NoError(t, Address("juno1juror").Validate())
	assert.ErrorIs(t, Address("").Validate(), ErrInvalidAddress)
	assert.ErrorIs(t, Address("a\xff").Validate(), ErrInvalidAddress)
}

func TestTokenJSON(t *testing.T) {
	var tok Token
	require.NoError(t, json.Unmarshal([]byte(`{"cw20":{"address":"token"}}`), &tok))
	assert.Equal(t, NewCW20Token(tokenAddr), tok)
	assert.Equal(t, "cw20:token", tok.String())

	b, err := json.Marshal(NewNativeToken("ujuno"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"native":{"denom":"ujuno"}}`, string(b))
}

func TestNativeVerifyPayment(t *testing.T) {
	asset, err := NewAsset(NewNativeToken("ujuno"), contractAddr, nil)
	require.NoError(t, err)

	coin := func(denom string, amount uint64) Coin {
		return Coin{Denom: denom, Amount: safemath.New(amount)}
	}

	tests := []struct {
		name     string
		attached []Coin
		wantErr  error
	}{
		{"exact", []Coin{coin("ujuno", 50)}, nil},
		{"exact_with_zero_foreign_coin", []Coin{coin("uatom", 0), coin("ujuno", 50)}, nil},
		{"nothing_attached", nil, ErrInsufficientFunds},
		{"wrong_denom_only", []Coin{coin("uatom", 50)}, ErrExcessiveFunds},
		{"too_little", []Coin{coin("ujuno", 49)}, ErrInsufficientFunds},
		{"too_much", []Coin{coin("ujuno", 51)}, ErrExcessiveFunds},
		{"duplicate_coin", []Coin{coin("ujuno", 25), coin("ujuno", 25)}, ErrExcessiveFunds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := asset.VerifyPayment(context.Background(), Payment{
				Payer:    voter,
				Attached: tc.attached,
				Amount:   safemath.New(50),
			})
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNativeInstructions(t *testing.T) {
	asset, err := NewAsset(NewNativeToken("ujuno"), contractAddr, nil)
	require.NoError(t, err)

	assert.Equal(t, Transfer{
		Kind: BankSend, Denom: "ujuno", From: voter, To: contractAddr, Amount: safemath.New(40),
	}, asset.Collect(voter, safemath.New(40)))

	assert.Equal(t, Transfer{
		Kind: BankSend, Denom: "ujuno", From: contractAddr, To: voter, Amount: safemath.New(40),
	}, asset.Issue(voter, safemath.New(40)))
}

func TestCW20VerifyPayment(t *testing.T) {
	ledger := NewLedgerQuerier()
	asset, err := NewAsset(NewCW20Token(tokenAddr), contractAddr, ledger)
	require.NoError(t, err)

	pay := Payment{Payer: voter, Amount: safemath.New(100)}

	// no balance at all
	err = asset.VerifyPayment(context.Background(), pay)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// balance but no allowance for the contract
	ledger.SetBalance(tokenAddr, voter, safemath.New(500))
	err = asset.VerifyPayment(context.Background(), pay)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// allowance granted to somebody else does not count
	ledger.SetAllowance(tokenAddr, voter, "other", safemath.New(500))
	err = asset.VerifyPayment(context.Background(), pay)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	ledger.SetAllowance(tokenAddr, voter, contractAddr, safemath.New(100))
	assert.NoError(t, asset.VerifyPayment(context.Background(), pay))

	assert.Equal(t, Transfer{
		Kind: TokenTransferFrom, Token: tokenAddr, From: voter, To: contractAddr, Amount: safemath.New(100),
	}, asset.Collect(voter, safemath.New(100)))
	assert.Equal(t, Transfer{
		Kind: TokenTransfer, Token: tokenAddr, From: contractAddr, To: voter, Amount: safemath.New(7),
	}, asset.Issue(voter, safemath.New(7)))
}

type failingQuerier struct{}

var errQuery = errors.New("token contract unreachable")

func (failingQuerier) TokenBalance(context.Context, Address, Address) (safemath.Uint128, error) {
	return safemath.Zero, errQuery
}

func (failingQuerier) TokenAllowance(context.Context, Address, Address, Address) (safemath.Uint128, error) {
	return safemath.Zero, errQuery
}

func TestCW20QuerierFailure(t *testing.T) {
	asset, err := NewAsset(NewCW20Token(tokenAddr), contractAddr, failingQuerier{})
	require.NoError(t, err)

	err = asset.VerifyPayment(context.Background(), Payment{Payer: voter, Amount: safemath.New(1)})
	assert.ErrorIs(t, err, errQuery)
	assert.NotErrorIs(t, err, ErrInsufficientFunds)
}

func TestNewAssetRejectsInvalidToken(t *testing.T) {
	_, err := NewAsset(Token{}, contractAddr, nil)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTransferKindText(t *testing.T) {
	b, err := json.Marshal(Transfer{Kind: TokenTransferFrom, Amount: safemath.New(1)})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"kind":"token_transfer_from"`)

	var tr Transfer
	require.NoError(t, json.Unmarshal(b, &tr))
	assert.Equal(t, TokenTransferFrom, tr.Kind)

	_, err = json.Marshal(Transfer{})
	assert.ErrorIs(t, err, ErrUnknownTransfer)
}
