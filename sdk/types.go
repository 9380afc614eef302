package sdk

// Intent mirrors the host's intent blobs attached to a contract call.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Sender identifies who signed the transaction currently executing.
type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Caller is the immediate caller, which differs from the sender when a
// contract invokes another contract.
type Caller struct {
	Address Address `json:"id"`
}

// Env is the execution environment the chain exposes to a running call.
type Env struct {
	ContractId  string `json:"contract.id"`
	TxId        string `json:"tx.id"`
	Index       int64  `json:"tx.index"`
	OpIndex     int64  `json:"tx.op_index"`
	BlockId     string `json:"block.id"`
	BlockHeight uint64 `json:"block.height"`
	Timestamp   string `json:"block.timestamp"`
	Sender      Sender
	Caller      Caller
	Payer       string
	Intents     []Intent
}

// ContractCallOptions carries optional extras for cross-contract calls.
type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}
