package sdk

import "encoding/json"

// parseEnv maps the host's flat JSON env blob onto Env. The msg.* keys
// arrive as top-level entries, so they are lifted out of a generic map
// instead of relying on struct tags alone.
func parseEnv(envStr string) Env {
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)

	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	if sender, ok := envMap["msg.sender"].(string); ok {
		env.Sender.Address = Address(sender)
	}
	env.Sender.RequiredAuths = addressList(envMap["msg.required_auths"])
	env.Sender.RequiredPostingAuths = addressList(envMap["msg.required_posting_auths"])

	if caller, ok := envMap["msg.caller"].(string); ok {
		env.Caller.Address = Address(caller)
	}
	if payer, ok := envMap["msg.payer"].(string); ok {
		env.Payer = payer
	}
	if intents, ok := envMap["intents"]; ok {
		if raw, err := json.Marshal(intents); err == nil {
			json.Unmarshal(raw, &env.Intents)
		}
	}
	return env
}

func addressList(v interface{}) []Address {
	out := make([]Address, 0)
	list, ok := v.([]interface{})
	if !ok {
		return out
	}
	for _, entry := range list {
		if addr, ok := entry.(string); ok {
			out = append(out, Address(addr))
		}
	}
	return out
}
