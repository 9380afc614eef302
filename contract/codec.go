package contract

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"dapp_token/sdk"
)

// JSON encoding for stored state and query responses. tinyjson's
// writer/lexer work without reflection, which keeps the wasm build lean.

// buildJSON finalizes a writer and aborts on encoder errors, which can
// only stem from a programming mistake, not from user input.
func buildJSON(w *jwriter.Writer) string {
	b, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("json encode failed: " + err.Error())
	}
	return string(b)
}

// encodeConfig renders the token config as a compact JSON blob.
func encodeConfig(cfg *Config) string {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"holder":`)
	w.String(cfg.TokenHolder.String())
	w.RawString(`,"supply":`)
	w.Uint64(uint64(cfg.TotalSupply))
	w.RawString(`,"faucet":`)
	w.Uint64(uint64(cfg.FaucetAmount))
	w.RawString(`,"protocol":`)
	w.String(cfg.ProtocolAccount.String())
	w.RawString(`,"humanThreshold":`)
	w.Uint8(cfg.HumanThreshold)
	w.RawString(`,"recencyMs":`)
	w.Uint64(cfg.RecencyThresholdMs)
	w.RawByte('}')
	return buildJSON(&w)
}

// decodeConfig parses a stored config blob; unknown fields are skipped so
// older blobs survive additive changes.
func decodeConfig(data string) *Config {
	in := jlexer.Lexer{Data: []byte(data)}
	cfg := &Config{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "holder":
			cfg.TokenHolder = sdk.Address(in.String())
		case "supply":
			cfg.TotalSupply = Balance(in.Uint64())
		case "faucet":
			cfg.FaucetAmount = Balance(in.Uint64())
		case "protocol":
			cfg.ProtocolAccount = sdk.Address(in.String())
		case "humanThreshold":
			cfg.HumanThreshold = in.Uint8()
		case "recencyMs":
			cfg.RecencyThresholdMs = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
	if err := in.Error(); err != nil {
		sdk.Abort("config decode failed: " + err.Error())
	}
	return cfg
}

// encodeBalanceResponse is the balance_of query result.
func encodeBalanceResponse(account sdk.Address, balance Balance) string {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"account":`)
	w.String(account.String())
	w.RawString(`,"balance":`)
	w.Uint64(uint64(balance))
	w.RawByte('}')
	return buildJSON(&w)
}

// encodeHumanQuery is the payload for the protocol's human check.
func encodeHumanQuery(account sdk.Address, threshold uint8) string {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"account":`)
	w.String(account.String())
	w.RawString(`,"threshold":`)
	w.Uint8(threshold)
	w.RawByte('}')
	return buildJSON(&w)
}

// encodeAccountQuery is the payload for protocol lookups keyed by account.
func encodeAccountQuery(account sdk.Address) string {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"account":`)
	w.String(account.String())
	w.RawByte('}')
	return buildJSON(&w)
}

// decodeBoolResponse parses a bare JSON bool, the protocol's answer to
// the human check.
func decodeBoolResponse(data string) (bool, error) {
	in := jlexer.Lexer{Data: []byte(data)}
	v := in.Bool()
	in.Consumed()
	if err := in.Error(); err != nil {
		return false, err
	}
	return v, nil
}

// decodeLastCorrectCaptcha parses the protocol's captcha recency record
// and returns how many milliseconds ago the last correct solution was.
func decodeLastCorrectCaptcha(data string) (uint64, error) {
	in := jlexer.Lexer{Data: []byte(data)}
	var beforeMs uint64
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "before_ms":
			beforeMs = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
	if err := in.Error(); err != nil {
		return 0, err
	}
	return beforeMs, nil
}
