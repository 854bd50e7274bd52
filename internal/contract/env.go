package contract

import (
	"github.com/eigerco/tribunal/internal/chaintime"
	"github.com/eigerco/tribunal/internal/funds"
)

// Env is the host context of a call.
type Env struct {
	Block    BlockInfo    `json:"block"`
	Contract ContractInfo `json:"contract"`
}

type BlockInfo struct {
	Height uint64              `json:"height"`
	Time   chaintime.Timestamp `json:"time"`
}

type ContractInfo struct {
	Address funds.Address `json:"address"`
}

// MessageInfo carries the authenticated sender and the native coins it
// attached to the call.
type MessageInfo struct {
	Sender funds.Address `json:"sender"`
	Funds  []funds.Coin  `json:"funds,omitempty"`
}
