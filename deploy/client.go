package deploy

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// rpcMethodInstantiate is the node's contract instantiation endpoint.
const rpcMethodInstantiate = "contracts_instantiate"

// Instantiator submits compiled contracts to a node's JSON-RPC endpoint.
type Instantiator struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// NewInstantiator wires an Instantiator with a sane client timeout.
func NewInstantiator(baseURL string, logger zerolog.Logger) *Instantiator {
	return &Instantiator{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Logger:     logger,
	}
}

// InstantiateRequest carries everything the node needs to put the
// contract on chain: the code blob, which constructor to run with which
// payload, who signs, and the funding/gas envelope.
type InstantiateRequest struct {
	Code        []byte
	Constructor string
	Args        string
	SignerURI   string
	Endowment   uint64
	GasLimit    uint64
}

// InstantiateResult is the node's answer to a successful instantiation.
type InstantiateResult struct {
	ContractAddress string `json:"contractAddress"`
	TxHash          string `json:"txHash"`
}

type rpcRequest struct {
	Jsonrpc string        `json:"jsonrpc"`
	Id      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcInstantiateParams struct {
	Code        string `json:"code"`
	Constructor string `json:"constructor"`
	Args        string `json:"args"`
	Suri        string `json:"suri"`
	Value       uint64 `json:"value"`
	GasLimit    uint64 `json:"gasLimit"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// Instantiate deploys the contract and returns its on-chain address.
func (i *Instantiator) Instantiate(ctx context.Context, req InstantiateRequest) (*InstantiateResult, error) {
	if len(req.Code) == 0 {
		return nil, fmt.Errorf("contract code is empty")
	}
	if req.Constructor == "" {
		return nil, fmt.Errorf("constructor name is required")
	}
	if req.SignerURI == "" {
		return nil, fmt.Errorf("signer uri is required")
	}

	body, err := json.Marshal(rpcRequest{
		Jsonrpc: "2.0",
		Id:      1,
		Method:  rpcMethodInstantiate,
		Params: []interface{}{rpcInstantiateParams{
			Code:        base64.StdEncoding.EncodeToString(req.Code),
			Constructor: req.Constructor,
			Args:        req.Args,
			Suri:        req.SignerURI,
			Value:       req.Endowment,
			GasLimit:    req.GasLimit,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode instantiation request: %w", err)
	}

	i.Logger.Info().
		Str("url", i.BaseURL).
		Str("constructor", req.Constructor).
		Uint64("endowment", req.Endowment).
		Uint64("gas_limit", req.GasLimit).
		Int("code_bytes", len(req.Code)).
		Msg("submitting contract instantiation")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, i.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := i.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("node request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read node response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("node returned status %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		return nil, fmt.Errorf("failed to decode node response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, fmt.Errorf("instantiation rejected by node (code %d): %s",
			rpcResp.Error.Code, rpcResp.Error.Message)
	}

	result := &InstantiateResult{}
	if err := json.Unmarshal(rpcResp.Result, result); err != nil {
		return nil, fmt.Errorf("failed to decode instantiation result: %w", err)
	}
	if result.ContractAddress == "" {
		return nil, fmt.Errorf("node reported success but no contract address")
	}

	i.Logger.Info().
		Str("contract_address", result.ContractAddress).
		Str("tx_hash", result.TxHash).
		Msg("contract instantiated")

	return result, nil
}
